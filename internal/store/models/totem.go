package models

import (
	"strings"
	"time"

	"cafepos/internal/platform/idgen"
	dErrors "cafepos/pkg/domain-errors"
)

// Totem is an unattended kiosk owned by a Store. It authenticates with an
// opaque bearer token issued at creation.
//
// Invariants:
//   - ID, Name and TokenAccess are non-empty
//   - TokenAccess never changes after construction
type Totem struct {
	id          string
	name        string
	tokenAccess string
	createdAt   time.Time
}

// TotemProps rehydrates a stored totem.
type TotemProps struct {
	ID          string
	Name        string
	TokenAccess string
	CreatedAt   time.Time
}

// NewTotem creates a totem with a generated id and access token.
func NewTotem(gen idgen.Generator, name string, now time.Time) (*Totem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvalid, "totem name is required")
	}
	token, err := gen.NewToken()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnexpected, "could not issue totem token")
	}
	return &Totem{id: gen.NewID(), name: name, tokenAccess: token, createdAt: now}, nil
}

// RestoreTotem rehydrates a totem; id, name and token must all be present.
func RestoreTotem(p TotemProps) (*Totem, error) {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return nil, dErrors.New(dErrors.CodeInvalid, "totem id is required")
	case strings.TrimSpace(p.Name) == "":
		return nil, dErrors.New(dErrors.CodeInvalid, "totem name is required")
	case p.TokenAccess == "":
		return nil, dErrors.New(dErrors.CodeInvalid, "totem access token is required")
	}
	return &Totem{id: p.ID, name: strings.TrimSpace(p.Name), tokenAccess: p.TokenAccess, createdAt: p.CreatedAt}, nil
}

func (t *Totem) ID() string           { return t.id }
func (t *Totem) Name() string         { return t.name }
func (t *Totem) TokenAccess() string  { return t.tokenAccess }
func (t *Totem) CreatedAt() time.Time { return t.createdAt }

func (t *Totem) Props() TotemProps {
	return TotemProps{ID: t.id, Name: t.name, TokenAccess: t.tokenAccess, CreatedAt: t.createdAt}
}
