// Package idgen supplies entity identifiers and opaque access tokens as an
// injected capability, so aggregate construction stays deterministic in tests.
package idgen

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"cafepos/pkg/secrets"
)

// Generator creates identifiers and bearer tokens.
type Generator interface {
	NewID() string
	NewToken() (string, error)
}

// Random issues UUIDv4 ids and crypto-random tokens.
type Random struct{}

func (Random) NewID() string {
	return uuid.NewString()
}

func (Random) NewToken() (string, error) {
	return secrets.GenerateToken()
}

// Sequence is a deterministic Generator for tests: ids are "<prefix>-1",
// "<prefix>-2", ... and tokens "token-1", "token-2", ...
type Sequence struct {
	Prefix string

	mu     sync.Mutex
	ids    int
	tokens int
}

// NewSequence returns a Sequence using prefix for ids.
func NewSequence(prefix string) *Sequence {
	return &Sequence{Prefix: prefix}
}

func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids++
	return fmt.Sprintf("%s-%d", s.Prefix, s.ids)
}

func (s *Sequence) NewToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens++
	return fmt.Sprintf("token-%d", s.tokens), nil
}
