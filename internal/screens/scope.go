// Package screens holds the pieces shared by the screen controllers.
package screens

import (
	"context"
	"sync"
)

// Scope tracks the goroutines started on behalf of one screen.
// Cancel stops them without waiting. Wait blocks until all of them returned.
// A cancelled scope can be renewed so the screen may start again.
type Scope struct {
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewScope creates an active scope derived from parent.
func NewScope(parent context.Context) *Scope {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Scope{parent: parent, ctx: ctx, cancel: cancel}
}

// Go runs fn on a new goroutine with the scope's context.
// It returns false, without running fn, when the scope is cancelled.
func (s *Scope) Go(fn func(ctx context.Context)) bool {
	s.mu.Lock()
	ctx := s.ctx
	if ctx.Err() != nil {
		s.mu.Unlock()
		return false
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		fn(ctx)
	}()
	return true
}

// Cancel cancels the context of every goroutine started so far.
func (s *Scope) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel()
}

// Renew replaces a cancelled context with a fresh one.
// It is a no-op while the scope is still active.
func (s *Scope) Renew() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() == nil {
		return
	}
	s.ctx, s.cancel = context.WithCancel(s.parent)
}

// Done reports whether the scope is currently cancelled.
func (s *Scope) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx.Err() != nil
}

// Wait blocks until every goroutine started with Go has returned.
func (s *Scope) Wait() {
	s.wg.Wait()
}
