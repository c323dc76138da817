package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/evoworld/sim-test-harness/framework/harness"
	"github.com/evoworld/sim-test-harness/framework/simtest"
)

type commandParams struct {
	endpoint    string
	configFile  string
	filters     simtest.RegexFilters
	debug       bool
	debugAll    bool
	waitFor     time.Duration
	processName string
	harness     harness.Params
}

// configFileContents is the optional YAML configuration file. Durations are strings in
// Go duration syntax, such as "500ms" or "1m30s". Command-line flags take precedence
// over the file.
type configFileContents struct {
	Endpoint           string `yaml:"endpoint"`
	HandshakeTimeout   string `yaml:"handshakeTimeout"`
	ResponseTimeout    string `yaml:"responseTimeout"`
	ObservationWindow  string `yaml:"observationWindow"`
	MonitorPollTimeout string `yaml:"monitorPollTimeout"`
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.endpoint, "url", "",
		fmt.Sprintf("simulation server WebSocket URL (default %s)", harness.DefaultEndpoint))
	fs.StringVar(&c.configFile, "config", "", "path to an optional YAML configuration file")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.DurationVar(&c.waitFor, "wait", 0,
		"wait up to this long for the server port to start accepting connections before testing")
	fs.StringVar(&c.processName, "process-name", "",
		"report whether a process with this name is running before testing")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if err := c.resolve(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

// resolve merges the config file (if any) and command-line flags into the final
// harness parameters. Anything left unset falls back to the built-in defaults.
func (c *commandParams) resolve() error {
	var p harness.Params
	if c.configFile != "" {
		data, err := os.ReadFile(c.configFile)
		if err != nil {
			return fmt.Errorf("cannot read configuration file: %v", err)
		}
		var contents configFileContents
		if err := yaml.Unmarshal(data, &contents); err != nil {
			return fmt.Errorf("cannot parse configuration file: %v", err)
		}
		p.Endpoint = contents.Endpoint
		for _, d := range []struct {
			value  string
			target *time.Duration
			name   string
		}{
			{contents.HandshakeTimeout, &p.HandshakeTimeout, "handshakeTimeout"},
			{contents.ResponseTimeout, &p.ResponseTimeout, "responseTimeout"},
			{contents.ObservationWindow, &p.ObservationWindow, "observationWindow"},
			{contents.MonitorPollTimeout, &p.MonitorPollTimeout, "monitorPollTimeout"},
		} {
			if d.value == "" {
				continue
			}
			parsed, err := time.ParseDuration(d.value)
			if err != nil {
				return fmt.Errorf("invalid %s in configuration file: %v", d.name, err)
			}
			*d.target = parsed
		}
	}
	if c.endpoint != "" {
		p.Endpoint = c.endpoint
	}
	c.harness = p.WithDefaults()
	return nil
}
