package framework

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

type Logger interface {
	Println(args ...interface{})
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Println(args ...interface{})                {}
func (n nullLogger) Printf(message string, args ...interface{}) {}

func NullLogger() Logger { return nullLogger{} }

type CapturedMessage struct {
	Time    time.Time
	Message string
}

type CapturedOutput []CapturedMessage

// CapturingLogger records all output produced within a test scope, so the test runner
// can replay it when a test fails. While a subtest is running, output sent to the parent
// scope's logger is redirected to the subtest's logger; the suite runs one subtest at a
// time, so there is at most one redirect target. See simtest.(*T).DebugLogger().
type CapturingLogger struct {
	messages []CapturedMessage
	redirect *CapturingLogger
	lock     sync.Mutex
}

func (l *CapturingLogger) Println(args ...interface{}) {
	// Sprintln appends a newline that we don't want in a captured record
	l.record(strings.TrimRight(fmt.Sprintln(args...), "\r\n"))
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.record(fmt.Sprintf(message, args...))
}

func (l *CapturingLogger) record(message string) {
	m := CapturedMessage{Time: time.Now(), Message: message}
	l.lock.Lock()
	target := l.redirect
	if target == nil {
		l.messages = append(l.messages, m)
	}
	l.lock.Unlock()
	if target != nil {
		target.record(m.Message)
	}
}

func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	ret := append(CapturedOutput(nil), l.messages...)
	l.lock.Unlock()
	return ret
}

// BeginScope starts redirecting this logger's output to child, seeding the child
// with everything captured so far. EndScope reverses it.
func (l *CapturingLogger) BeginScope(child *CapturingLogger) {
	l.lock.Lock()
	l.redirect = child
	prior := append([]CapturedMessage(nil), l.messages...)
	l.lock.Unlock()
	child.lock.Lock()
	child.messages = append(prior, child.messages...)
	child.lock.Unlock()
}

func (l *CapturingLogger) EndScope() {
	l.lock.Lock()
	l.redirect = nil
	l.lock.Unlock()
}

func (output CapturedOutput) ToString(prefix string) string {
	lines := make([]string, 0, len(output))
	for _, m := range output {
		lines = append(lines, fmt.Sprintf("%s[%s] %s", prefix, m.Time.Format(timestampFormat), m.Message))
	}
	return strings.Join(lines, "\n")
}

type prefixedLogger struct {
	base   Logger
	prefix string
}

// LoggerWithPrefix decorates a Logger so every message starts with the given prefix.
func LoggerWithPrefix(baseLogger Logger, prefix string) Logger {
	return prefixedLogger{baseLogger, prefix}
}

func (p prefixedLogger) Println(args ...interface{}) {
	p.base.Println(append([]interface{}{p.prefix}, args...)...)
}

func (p prefixedLogger) Printf(message string, args ...interface{}) {
	p.base.Printf(p.prefix+message, args...)
}
