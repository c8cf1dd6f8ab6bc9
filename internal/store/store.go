// Package store is the single source of truth for jobs, candidates and agents.
//
// Every mutation replaces the current State with a new one derived from it, so a
// State obtained from Snapshot never changes and observers can detect updates by
// comparing pointers. Records reachable from a State are shared between
// snapshots and must be treated as read-only; Clone them before editing.
package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/hiring-desk/internal/ai"
	"github.com/spigell/hiring-desk/internal/ai/heuristic"
	"github.com/spigell/hiring-desk/internal/ai/voice"
	"github.com/spigell/hiring-desk/internal/recruiting"
)

// DefaultCallDelay models how long a simulated screening call lasts.
const DefaultCallDelay = 4 * time.Second

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// Seed is the initial content of a store. It is used as-is.
type Seed struct {
	Jobs       []*recruiting.Job       `mapstructure:"jobs"`
	Candidates []*recruiting.Candidate `mapstructure:"candidates"`
	Agents     []*recruiting.Agent     `mapstructure:"agents"`
}

// State is an immutable view of the store contents.
type State struct {
	Jobs       []*recruiting.Job
	Candidates []*recruiting.Candidate
	Agents     []*recruiting.Agent
	Language   Language
}

// Subscriber is notified after every change with the previous and the new state.
type Subscriber func(prev, next *State)

type Store struct {
	mu    sync.Mutex
	state *State

	subscribers map[int]Subscriber
	nextSubID   int

	// pending counts scheduled call completions; drained is closed when it drops to zero.
	pending int
	drained chan struct{}

	matcher   ai.Matcher
	screener  ai.Screener
	scheduler Scheduler
	callDelay time.Duration
	logger    *zap.Logger
}

type Option func(*Store)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMatcher(m ai.Matcher) Option {
	return func(s *Store) {
		if m != nil {
			s.matcher = m
		}
	}
}

func WithScreener(sc ai.Screener) Option {
	return func(s *Store) {
		if sc != nil {
			s.screener = sc
		}
	}
}

func WithScheduler(sc Scheduler) Option {
	return func(s *Store) {
		if sc != nil {
			s.scheduler = sc
		}
	}
}

// WithCallDelay sets how long simulated calls take. Non-positive values are ignored.
func WithCallDelay(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.callDelay = d
		}
	}
}

// New creates a store holding the seed. Without options it uses the heuristic
// matcher with random noise, the scripted voice screener and real timers.
func New(seed Seed, opts ...Option) *Store {
	s := &Store{
		state: &State{
			Jobs:       seed.Jobs,
			Candidates: seed.Candidates,
			Agents:     seed.Agents,
			Language:   LanguageEnglish,
		},
		subscribers: make(map[int]Subscriber),
		scheduler:   RealScheduler{},
		callDelay:   DefaultCallDelay,
		logger:      zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.matcher == nil {
		s.matcher = heuristic.NewMatcher(heuristic.RandomNoise{}, s.logger.Named("matcher"))
	}
	if s.screener == nil {
		s.screener = voice.NewScreener(s.logger.Named("screener"))
	}

	return s
}

// Snapshot returns the current state.
func (s *Store) Snapshot() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Jobs() []*recruiting.Job { return s.Snapshot().Jobs }

func (s *Store) Candidates() []*recruiting.Candidate { return s.Snapshot().Candidates }

func (s *Store) Agents() []*recruiting.Agent { return s.Snapshot().Agents }

func (s *Store) Language() Language { return s.Snapshot().Language }

// SetLanguage switches the display language flag. Stored records are not affected.
func (s *Store) SetLanguage(lang Language) {
	s.apply(func(prev *State) *State {
		next := *prev
		next.Language = lang
		return &next
	})
}

// Subscribe registers fn to be called after each change. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// Wait blocks until every scheduled call completion has run or ctx is done.
// Completions are never canceled; Wait only observes them.
func (s *Store) Wait(ctx context.Context) error {
	s.mu.Lock()
	if s.pending == 0 {
		s.mu.Unlock()
		return nil
	}
	drained := s.drained
	s.mu.Unlock()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// apply runs fn against the current state under the store lock. A nil result,
// or the unchanged state, means no-op. Subscribers are notified outside the lock.
func (s *Store) apply(fn func(prev *State) *State) bool {
	s.mu.Lock()
	prev := s.state
	next := fn(prev)
	if next == nil || next == prev {
		s.mu.Unlock()
		return false
	}
	s.state = next

	subscribers := make([]Subscriber, 0, len(s.subscribers))
	for id := range s.nextSubID {
		if sub, ok := s.subscribers[id]; ok {
			subscribers = append(subscribers, sub)
		}
	}
	s.mu.Unlock()

	for _, sub := range subscribers {
		sub(prev, next)
	}
	return true
}
