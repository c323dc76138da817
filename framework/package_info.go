// Package framework contains the low-level implementation of test harness infrastructure
// that can be reused for different kinds of tests. The base package contains shared
// types such as Logger; other components are in the subpackages harness and simtest.
//
// The general model is:
//
// 1. The test harness opens a message channel to the simulation server under test and
// drives it with a fixed script of requests, observing the replies and any unsolicited
// pushes.
//
// 2. There is a general notion of a test scope which is similar to Go's testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results.
//
// The domain-specific code that knows what is being tested is responsible for providing
// the request messages to send, the expectations about reply payloads, and domain-specific
// test APIs on top of the test scope.
package framework
