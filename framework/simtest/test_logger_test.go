package simtest

import (
	"testing"

	"github.com/evoworld/sim-test-harness/framework"

	"github.com/stretchr/testify/assert"
)

// recordingTestLogger lets tests observe TestLogger callbacks without console output.
type recordingTestLogger struct {
	started  []string
	skipped  []string
	errs     []error
	finished func(id TestID, failed bool, output []string)
}

func (l *recordingTestLogger) TestStarted(id TestID)          { l.started = append(l.started, id.String()) }
func (l *recordingTestLogger) TestError(id TestID, err error) { l.errs = append(l.errs, err) }
func (l *recordingTestLogger) TestFinished(id TestID, failed bool, debugOutput framework.CapturedOutput) {
	if l.finished != nil {
		messages := make([]string, 0, len(debugOutput))
		for _, m := range debugOutput {
			messages = append(messages, m.Message)
		}
		l.finished(id, failed, messages)
	}
}
func (l *recordingTestLogger) TestSkipped(id TestID, reason string) {
	l.skipped = append(l.skipped, id.String())
}

func TestTestLoggerReceivesLifecycleCallbacks(t *testing.T) {
	var logger recordingTestLogger
	var finished []string
	logger.finished = func(id TestID, failed bool, output []string) {
		finished = append(finished, id.String())
	}
	_ = Run(TestConfiguration{TestLogger: &logger}, func(t *T) {
		t.Run("one", func(t *T) {})
		t.Run("two", func(t *T) { t.SkipWithReason("later") })
	})
	assert.Equal(t, []string{"one", "two"}, logger.started)
	assert.Equal(t, []string{"one"}, finished)
	assert.Equal(t, []string{"two"}, logger.skipped)
}
