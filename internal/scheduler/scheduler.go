package scheduler

import (
	"context"
	"sync"
	"time"
)

const DefaultDelay = 300 * time.Millisecond

// Token identifies one scheduled call. Only the most recent token is current.
type Token uint64

type tokenKey struct{}

// Scheduler collapses bursts of calls into the last one after a quiet period.
// Calls never run in parallel: a task starts only after the previous one returned.
type Scheduler struct {
	delay time.Duration

	mu     sync.Mutex
	seq    Token
	timer  *time.Timer
	cancel context.CancelFunc

	exec sync.Mutex
}

func New(delay time.Duration) *Scheduler {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Scheduler{delay: delay}
}

// Schedule replaces any pending call with task, to be run after the quiet period.
// The context passed to task is cancelled as soon as a newer call supersedes it.
func (s *Scheduler) Schedule(task func(ctx context.Context)) Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, ctx := s.nextLocked(context.Background())
	s.timer = time.AfterFunc(s.delay, func() {
		s.run(ctx, tok, task)
	})
	return tok
}

// RunNow supersedes any pending call and runs task synchronously, skipping the quiet period.
func (s *Scheduler) RunNow(ctx context.Context, task func(ctx context.Context)) Token {
	s.mu.Lock()
	tok, runCtx := s.nextLocked(ctx)
	s.mu.Unlock()

	s.run(runCtx, tok, task)
	return tok
}

// Cancel drops the pending call and marks the in-flight one stale.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.stopLocked()
}

// IsCurrent reports whether tok belongs to the latest call.
func (s *Scheduler) IsCurrent(tok Token) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return tok == s.seq
}

// TokenFromContext returns the token of the call that owns ctx.
func TokenFromContext(ctx context.Context) (Token, bool) {
	tok, ok := ctx.Value(tokenKey{}).(Token)
	return tok, ok
}

func (s *Scheduler) nextLocked(parent context.Context) (Token, context.Context) {
	s.seq++
	s.stopLocked()

	ctx, cancel := context.WithCancel(context.WithValue(parent, tokenKey{}, s.seq))
	s.cancel = cancel
	return s.seq, ctx
}

func (s *Scheduler) stopLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Scheduler) run(ctx context.Context, tok Token, task func(ctx context.Context)) {
	s.exec.Lock()
	defer s.exec.Unlock()

	if ctx.Err() != nil || !s.IsCurrent(tok) {
		return
	}
	task(ctx)
}
