//go:build !swissdebug

package swiss

const debugAssertions = false
