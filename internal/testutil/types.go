package testutil

import (
	"fmt"
	"sync"

	"github.com/junioryono/inspire"
)

// TestLogger is a service without dependencies that records messages.
type TestLogger struct {
	inspire.Service

	mu    sync.Mutex
	lines []string
}

func NewTestLogger() *TestLogger {
	return &TestLogger{}
}

func (l *TestLogger) Log(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, msg)
}

func (l *TestLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// TestStore depends on a *TestLogger.
type TestStore struct {
	Logger *TestLogger
	Items  []string
}

func NewTestStore() *TestStore {
	return &TestStore{}
}

func (s *TestStore) Inject(services ...any) error {
	if len(services) != 1 {
		return fmt.Errorf("store expects 1 service, got %d", len(services))
	}

	logger, ok := services[0].(*TestLogger)
	if !ok {
		return fmt.Errorf("store expects *TestLogger, got %T", services[0])
	}
	s.Logger = logger
	return nil
}

// Recorder captures every service passed to Inject, in order.
type Recorder struct {
	Received []any
	Calls    int
	Err      error
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Inject(services ...any) error {
	r.Calls++
	r.Received = append(r.Received, services...)
	return r.Err
}

// TestCloser appends its name to Log when closed.
type TestCloser struct {
	inspire.Service

	Name string
	Log  *[]string
	Err  error
}

func (c *TestCloser) Close() error {
	*c.Log = append(*c.Log, c.Name)
	return c.Err
}
