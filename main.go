package main

import (
	_ "embed" // this is required in order for go:embed to work
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/evoworld/sim-test-harness/framework"
	"github.com/evoworld/sim-test-harness/framework/harness"
	"github.com/evoworld/sim-test-harness/framework/simtest"
	"github.com/evoworld/sim-test-harness/simtests"
)

//go:embed VERSION
var versionString string // comes from the VERSION file which we update for each release

func main() {
	fmt.Printf("evoworld-sim-test-harness v%s\n", strings.TrimSpace(versionString))

	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	results, err := run(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !results.OK() {
		os.Exit(1)
	}
}

func run(params commandParams) (*simtest.Results, error) {
	if err := checkServerLiveness(params); err != nil {
		return nil, err
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	h := harness.NewTestHarness(params.harness, mainDebugLogger)

	testLogger := simtest.ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := simtests.RunSimTestSuite(h, params.filters, testLogger)

	fmt.Println()
	simtest.PrintResults(results)

	return &results, nil
}

// checkServerLiveness runs the optional pre-flight probes: a process-name lookup,
// and a wait loop for the server port. Neither runs unless asked for, so the harness
// can still target servers on other hosts or behind proxies.
func checkServerLiveness(params commandParams) error {
	if params.processName != "" {
		pids, err := harness.ProbeProcess(params.processName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: process probe failed: %s\n", err)
		} else if len(pids) == 0 {
			fmt.Printf("No running process matches %q\n", params.processName)
		} else {
			fmt.Printf("Found process %q with PID(s) %v\n", params.processName, pids)
		}
	}

	if params.waitFor > 0 {
		hostPort, err := params.harness.HostPort()
		if err != nil {
			return err
		}
		if err := harness.WaitForServer(hostPort, params.waitFor, os.Stdout); err != nil {
			return fmt.Errorf("%v\nstart the simulation server and try again, or check the -url value", err)
		}
	}

	return nil
}
