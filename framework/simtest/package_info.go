// Package simtest provides the test-scope abstraction used by the conformance suite.
//
// It is deliberately similar to Go's testing package: a T value represents one test
// scope, subtests are created with T.Run, and assertion failures are reported with
// Errorf/FailNow so the testify assertion API can be used against it. Unlike the
// testing package, results are accumulated into a Results value that the caller
// inspects after the run, and per-scope debug output is captured so a test logger
// can replay it for failed tests.
package simtest
