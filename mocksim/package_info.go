// Package mocksim provides a scriptable stand-in for the simulation server, used by
// the harness's own tests. Each SimulationService is an http.Handler that upgrades
// requests to WebSocket and reacts to incoming protocol messages according to a
// MessageHandler supplied by the test, so a test can script a conforming server, a
// silent one, or one that sends garbage.
package mocksim
