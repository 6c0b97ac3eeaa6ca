package swiss_test

import (
	"fmt"

	"github.com/halfvector/swisstable"
)

func ExampleMap() {
	m := swiss.New[string, int]()
	m.Insert("apples", 3)
	m.Insert("oranges", 5)

	if v, ok := m.Get("apples"); ok {
		fmt.Println(v)
	}
	m.Delete("apples")
	fmt.Println(m.Contains("apples"))

	// Output:
	// 3
	// false
}

func ExampleSet() {
	s := swiss.NewSet[string]()
	s.Add("red")
	s.Add("green")
	s.Add("red")

	fmt.Println(s.Len())
	fmt.Println(s.Contains("green"))

	// Output:
	// 2
	// true
}
