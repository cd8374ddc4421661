package core

import (
	"context"
	"sync"
	"time"

	"rostercore/pkg/domain"
)

type logEntry struct {
	level string
	msg   string
	args  []any
}

type captureLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (c *captureLogger) add(level, msg string, args []any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, logEntry{level: level, msg: msg, args: args})
}

func (c *captureLogger) Debug(msg string, args ...any) { c.add("debug", msg, args) }
func (c *captureLogger) Info(msg string, args ...any)  { c.add("info", msg, args) }
func (c *captureLogger) Warn(msg string, args ...any)  { c.add("warn", msg, args) }
func (c *captureLogger) Error(msg string, args ...any) { c.add("error", msg, args) }

func (c *captureLogger) count(level string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.entries {
		if e.level == level {
			n++
		}
	}
	return n
}

type metricsCall struct {
	op      string
	success bool
}

type captureMetricsRecorder struct {
	calls []metricsCall
}

func (c *captureMetricsRecorder) Observe(_ context.Context, op string, success bool, _ time.Duration) {
	c.calls = append(c.calls, metricsCall{op: op, success: success})
}

func (c *captureMetricsRecorder) has(op string, success bool) bool {
	for _, call := range c.calls {
		if call.op == op && call.success == success {
			return true
		}
	}
	return false
}

// failingFinds wraps a team store so that lookups fail while writes succeed.
type failingFinds struct {
	domain.RecordStore[domain.TeamRecord]
	err error
}

func (f failingFinds) Find(context.Context, int64) (domain.TeamRecord, bool, error) {
	return domain.TeamRecord{}, false, f.err
}

func bostonTeam() Team {
	return Team{
		ID:           domain.Ptr(int64(0)),
		City:         domain.Ptr("Boston"),
		NickName:     domain.Ptr("Red Sox"),
		Abbreviation: domain.Ptr("BOS"),
	}
}

func ortizFields(teamID int64) PlayerFields {
	return PlayerFields{
		ID:        domain.Ptr(int64(0)),
		FirstName: domain.Ptr("David"),
		LastName:  domain.Ptr("Ortiz"),
		Number:    domain.Ptr(34),
		TeamID:    domain.Ptr(teamID),
		Position:  domain.Ptr(domain.PositionDesignatedHitter),
	}
}
