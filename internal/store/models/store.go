package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"cafepos/internal/platform/idgen"
	"cafepos/pkg/domain"
	dErrors "cafepos/pkg/domain-errors"
	"cafepos/pkg/secrets"
)

const (
	// MinPasswordLength is the shortest plaintext password accepted at creation.
	MinPasswordLength = 8
	// MaxPasswordLength keeps salt+password within bcrypt's 72 byte input limit.
	MaxPasswordLength = 40
)

// Store is the aggregate root for a cafeteria store and its totems.
//
// Invariants:
//   - Name and FantasyName are non-blank
//   - Email, CNPJ and Phone are validated value objects
//   - Only the salt and bcrypt hash of the password are held; plaintext is discarded
//   - Totem names are unique within the store (exact match after trim)
//
// Uniqueness of email, CNPJ and name across stores is enforced by the create
// use case through gateway lookups.
type Store struct {
	id           string
	name         string
	fantasyName  string
	email        domain.Email
	cnpj         domain.CNPJ
	phone        domain.BrazilianPhone
	salt         string
	passwordHash string
	createdAt    time.Time
	totems       []*Totem
}

// Input is the creation payload for a new store.
type Input struct {
	Name        string
	FantasyName string
	Email       domain.Email
	CNPJ        domain.CNPJ
	Phone       domain.BrazilianPhone
	Password    string
}

// Props rehydrates a stored store.
type Props struct {
	ID           string
	Name         string
	FantasyName  string
	Email        domain.Email
	CNPJ         domain.CNPJ
	Phone        domain.BrazilianPhone
	Salt         string
	PasswordHash string
	CreatedAt    time.Time
	Totems       []*Totem
}

// NewStore creates a store, hashing the plaintext password with a fresh salt.
func NewStore(gen idgen.Generator, in Input, now time.Time) (*Store, error) {
	if n := utf8.RuneCountInString(in.Password); n < MinPasswordLength {
		return nil, dErrors.Newf(dErrors.CodeInvalid, "password must have at least %d characters", MinPasswordLength)
	} else if n > MaxPasswordLength {
		return nil, dErrors.Newf(dErrors.CodeInvalid, "password must have at most %d characters", MaxPasswordLength)
	}
	salt, err := secrets.GenerateSalt()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnexpected, "could not generate password salt")
	}
	hash, err := secrets.HashPassword(in.Password, salt)
	if err != nil {
		return nil, err
	}
	return build(Props{
		ID:           gen.NewID(),
		Name:         in.Name,
		FantasyName:  in.FantasyName,
		Email:        in.Email,
		CNPJ:         in.CNPJ,
		Phone:        in.Phone,
		Salt:         salt,
		PasswordHash: hash,
		CreatedAt:    now,
	}, false)
}

// RestoreStore rehydrates a store and its totems.
func RestoreStore(p Props) (*Store, error) {
	return build(p, true)
}

func build(p Props, restoring bool) (*Store, error) {
	name := strings.TrimSpace(p.Name)
	fantasy := strings.TrimSpace(p.FantasyName)
	switch {
	case name == "":
		return nil, dErrors.New(dErrors.CodeInvalid, "store name is required")
	case fantasy == "":
		return nil, dErrors.New(dErrors.CodeInvalid, "store fantasy name is required")
	case p.Email.IsZero():
		return nil, dErrors.New(dErrors.CodeInvalid, "store email is required")
	case p.CNPJ.IsZero():
		return nil, dErrors.New(dErrors.CodeInvalid, "store CNPJ is required")
	case p.Phone.IsZero():
		return nil, dErrors.New(dErrors.CodeInvalid, "store phone is required")
	case p.Salt == "" || p.PasswordHash == "":
		return nil, dErrors.New(dErrors.CodeInvalid, "store password is required")
	}
	if restoring && strings.TrimSpace(p.ID) == "" {
		return nil, dErrors.New(dErrors.CodeInvalid, "store id is required")
	}
	s := &Store{
		id:           p.ID,
		name:         name,
		fantasyName:  fantasy,
		email:        p.Email,
		cnpj:         p.CNPJ,
		phone:        p.Phone,
		salt:         p.Salt,
		passwordHash: p.PasswordHash,
		createdAt:    p.CreatedAt,
	}
	for _, t := range p.Totems {
		if err := s.AddTotem(t); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) ID() string                   { return s.id }
func (s *Store) Name() string                 { return s.name }
func (s *Store) FantasyName() string          { return s.fantasyName }
func (s *Store) Email() domain.Email          { return s.email }
func (s *Store) CNPJ() domain.CNPJ            { return s.cnpj }
func (s *Store) Phone() domain.BrazilianPhone { return s.phone }
func (s *Store) Salt() string                 { return s.salt }
func (s *Store) PasswordHash() string         { return s.passwordHash }
func (s *Store) CreatedAt() time.Time         { return s.createdAt }

// Totems returns a copy of the totem list.
func (s *Store) Totems() []*Totem {
	out := make([]*Totem, len(s.totems))
	copy(out, s.totems)
	return out
}

// FindTotem returns the totem with the given id, or nil.
func (s *Store) FindTotem(id string) *Totem {
	for _, t := range s.totems {
		if t.id == id {
			return t
		}
	}
	return nil
}

// AddTotem appends a totem unless one with the same name already exists.
func (s *Store) AddTotem(t *Totem) error {
	if t == nil {
		return dErrors.New(dErrors.CodeInvalid, "totem is required")
	}
	for _, existing := range s.totems {
		if existing.name == t.name {
			return dErrors.New(dErrors.CodeConflict, "Totem with this name already exists")
		}
	}
	s.totems = append(s.totems, t)
	return nil
}

// RemoveTotem drops the totem with the given id.
func (s *Store) RemoveTotem(id string) error {
	for i, t := range s.totems {
		if t.id == id {
			s.totems = append(s.totems[:i:i], s.totems[i+1:]...)
			return nil
		}
	}
	return dErrors.New(dErrors.CodeNotFound, "Totem not found")
}

// VerifyPassword checks a plaintext password against the stored salt and hash.
func (s *Store) VerifyPassword(password string) error {
	return secrets.VerifyPassword(password, s.salt, s.passwordHash)
}

func (s *Store) Props() Props {
	return Props{
		ID:           s.id,
		Name:         s.name,
		FantasyName:  s.fantasyName,
		Email:        s.email,
		CNPJ:         s.cnpj,
		Phone:        s.phone,
		Salt:         s.salt,
		PasswordHash: s.passwordHash,
		CreatedAt:    s.createdAt,
		Totems:       s.Totems(),
	}
}
