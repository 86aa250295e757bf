package mail

import (
	"context"
	"sync"
)

// MemorySender is the in-memory test double of [Sender]. It records the
// last code sent per address and exposes a query for assertions.
type MemorySender struct {
	mu    sync.Mutex
	sent  map[string]string
	fail  error
	calls int
}

// NewMemorySender constructs an empty [MemorySender].
func NewMemorySender() *MemorySender {
	return &MemorySender{sent: make(map[string]string)}
}

// SendActivationCode implements [Sender].
func (s *MemorySender) SendActivationCode(_ context.Context, email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if s.fail != nil {
		return s.fail
	}
	s.sent[email] = code

	return nil
}

// HasActivationCodeMail reports whether the given code was the last one
// delivered to the address.
func (s *MemorySender) HasActivationCodeMail(email, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sent[email] == code
}

// FailWith makes every subsequent send return err. Test helper.
func (s *MemorySender) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fail = err
}

// Calls returns how many sends were attempted, failed ones included.
func (s *MemorySender) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls
}
