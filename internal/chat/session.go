// Package chat implements the scripted concierge widget. Replies are canned
// per-locale strings served in order behind a short delay; the delay is a
// cancelable scheduled task tied to the session's lifetime.
package chat

import (
	"sync"
	"time"
)

const DefaultReplyDelay = 800 * time.Millisecond

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

type Message struct {
	Role Role
	Text string
}

// Session is a single chat conversation. Safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	script  []string
	idx     int
	msgs    []Message
	delay   time.Duration
	timers  map[*time.Timer]struct{}
	closed  bool
	onReply func(Message)
}

// Option configures a Session.
type Option func(*Session)

// WithReplyDelay overrides the simulated typing delay.
func WithReplyDelay(d time.Duration) Option {
	return func(s *Session) { s.delay = d }
}

// WithOnReply registers a callback invoked (outside the session lock) each
// time a scripted reply lands.
func WithOnReply(fn func(Message)) Option {
	return func(s *Session) { s.onReply = fn }
}

// NewSession starts a conversation seeded with the localized greeting.
// script entries are served in order, cycling when exhausted.
func NewSession(greeting string, script []string, opts ...Option) *Session {
	s := &Session{
		script: script,
		msgs:   []Message{{Role: RoleBot, Text: greeting}},
		delay:  DefaultReplyDelay,
		timers: make(map[*time.Timer]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send records the visitor's message and schedules the next scripted reply.
// Empty input is ignored, matching the widget's behavior.
func (s *Session) Send(text string) {
	if text == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.msgs = append(s.msgs, Message{Role: RoleUser, Text: text})

	if len(s.script) == 0 {
		return
	}
	reply := Message{Role: RoleBot, Text: s.script[s.idx%len(s.script)]}
	s.idx++

	var t *time.Timer
	t = time.AfterFunc(s.delay, func() { s.deliver(t, reply) })
	s.timers[t] = struct{}{}
}

// deliver appends a scheduled reply unless the session was closed first.
// A session torn down before the timer fires must not be mutated.
func (s *Session) deliver(t *time.Timer, m Message) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	delete(s.timers, t)
	s.msgs = append(s.msgs, m)
	cb := s.onReply
	s.mu.Unlock()

	if cb != nil {
		cb(m)
	}
}

// Messages returns a copy of the transcript so far.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.msgs))
	copy(out, s.msgs)
	return out
}

// Close tears the session down and cancels every pending reply.
// Idempotent; Send and pending timers become no-ops afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}
