// Package simtests contains the conformance test suite that the harness runs against
// a simulation server: a fixed script of request/response steps followed by a bounded
// observation of the event stream. The reusable mechanics live in the framework
// packages; this package only knows the protocol being tested.
package simtests
