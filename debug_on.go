//go:build swissdebug

package swiss

// debugAssertions gates the precondition checks that are too costly to run
// in every build (e.g. InsertUnique re-deriving find to check for a
// duplicate). Build with -tags swissdebug to enable them.
const debugAssertions = true
