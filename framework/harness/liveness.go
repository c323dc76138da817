package harness

import (
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// ProbePort reports whether something is listening at hostPort, using a plain TCP
// connect test bounded by timeout.
func ProbePort(hostPort string, timeout time.Duration) bool {
	conn, err := net.DialTimeout("tcp", hostPort, timeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// ProbeProcess returns the PIDs of running processes whose name contains name
// (case-insensitive). An empty result with a nil error means no match was found.
func ProbeProcess(name string) ([]int32, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("could not list processes: %w", err)
	}
	want := strings.ToLower(name)
	var pids []int32
	for _, p := range procs {
		pname, err := p.Name()
		if err != nil {
			continue // process may have exited mid-scan
		}
		if strings.Contains(strings.ToLower(pname), want) {
			pids = append(pids, p.Pid)
		}
	}
	return pids, nil
}

// WaitForServer polls hostPort until it accepts a TCP connection or the timeout
// elapses, writing progress to output.
func WaitForServer(hostPort string, timeout time.Duration, output io.Writer) error {
	fmt.Fprintf(output, "Waiting for simulation server at %s", hostPort)
	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		if ProbePort(hostPort, time.Second) {
			fmt.Fprintln(output)
			return nil
		}
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return fmt.Errorf("no listener at %s after %s", hostPort, timeout)
		}
		time.Sleep(100 * time.Millisecond)
	}
}
