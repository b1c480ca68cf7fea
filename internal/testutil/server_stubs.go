package testutil

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"

	"sports-hub-service/internal/poller"
)

// StubPoller implements the server's Poller for tests.
type StubPoller struct {
	StartCalls  int
	StopCalls   int
	ReloadCalls int
	Err         error
	ReloadCount int
	ReloadErr   error
	StatusVal   poller.Status
}

func (p *StubPoller) Start(ctx context.Context) {
	_ = ctx
	p.StartCalls++
}

func (p *StubPoller) Stop(ctx context.Context) error {
	_ = ctx
	p.StopCalls++
	return p.Err
}

func (p *StubPoller) Status() poller.Status {
	return p.StatusVal
}

func (p *StubPoller) Reload(ctx context.Context) (int, error) {
	_ = ctx
	p.ReloadCalls++
	return p.ReloadCount, p.ReloadErr
}

// StubCacheWorker records Start calls and returns Err.
type StubCacheWorker struct {
	StartCalls int
	Err        error
}

func (w *StubCacheWorker) Start(ctx context.Context) error {
	_ = ctx
	w.StartCalls++
	return w.Err
}

// StubHTTPServer implements httpServer for tests. Serve returns immediately.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ShutdownErr error
	ServeErr    error

	mu            sync.Mutex
	serveCalls    int
	shutdownCalls int
}

func (s *StubHTTPServer) Serve(l net.Listener) error {
	s.mu.Lock()
	s.serveCalls++
	s.mu.Unlock()
	if l != nil {
		_ = l.Close()
	}
	return s.ServeErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.mu.Lock()
	s.shutdownCalls++
	s.mu.Unlock()
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	return s.HandlerVal
}

// ServeCalls reports how many times Serve ran.
func (s *StubHTTPServer) ServeCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serveCalls
}

// ShutdownCalls reports how many times Shutdown ran.
func (s *StubHTTPServer) ShutdownCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdownCalls
}

// BlockingHTTPServer allows simulating a shutdown that waits on an unblock channel.
type BlockingHTTPServer struct {
	AddrVal       string
	HandlerVal    http.Handler
	ShutdownCalls int
	Unblock       chan struct{}
}

func (b *BlockingHTTPServer) Serve(l net.Listener) error {
	if l != nil {
		_ = l.Close()
	}
	return nil
}

func (b *BlockingHTTPServer) Shutdown(ctx context.Context) error {
	b.ShutdownCalls++
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.Unblock:
		return nil
	}
}

func (b *BlockingHTTPServer) Addr() string {
	return b.AddrVal
}

func (b *BlockingHTTPServer) Handler() http.Handler {
	return b.HandlerVal
}

// ErrHTTPServer returns an error from Serve.
type ErrHTTPServer struct {
	ShutdownCalls int
}

func (e *ErrHTTPServer) Serve(l net.Listener) error {
	if l != nil {
		_ = l.Close()
	}
	return errors.New("serve failure")
}

func (e *ErrHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	e.ShutdownCalls++
	return nil
}

func (e *ErrHTTPServer) Addr() string {
	return "127.0.0.1:0"
}

func (e *ErrHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}
