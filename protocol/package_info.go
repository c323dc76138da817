// Package protocol defines the wire contract between the harness and the simulation
// server: the request messages the harness can send, the response messages the server
// can push back, and the JSON codec between them.
//
// One JSON object is exchanged per message. Every message carries a "type" field naming
// its kind; everything else is kind-specific. Incoming payloads are modeled as
// ldvalue.Value rather than concrete structs, because the harness only asserts on the
// shape of the data (which collections exist, how many entities they hold), not on a
// full entity schema, and the server is free to add fields at any time.
package protocol
