package testutil

import (
	"fmt"
	"sync"
)

// TokenSequence provides a thread-safe deterministic run-token generator
// for tests.
//
// Unlike render.NewRunToken, TokenSequence can be reset for test reuse.
// This enables the same render pass to run multiple times with identical
// tokens, which golden-file comparison depends on.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type TokenSequence struct {
	mu     sync.Mutex
	prefix string
	seq    int64
}

// NewTokenSequence creates a generator producing "prefix-1", "prefix-2", ...
func NewTokenSequence(prefix string) *TokenSequence {
	return &TokenSequence{prefix: prefix}
}

// Next returns the next token in the sequence.
func (t *TokenSequence) Next() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	return fmt.Sprintf("%s-%d", t.prefix, t.seq)
}

// Reset restarts the sequence. After Reset, the next call to Next returns
// "prefix-1" again.
func (t *TokenSequence) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq = 0
}
