package session_auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/cinevault/internal/model"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

var (
	ErrInvalidCredentials = errors.New("invalid admin credentials")
	ErrNoSession          = errors.New("no active session")
	ErrAdminExists        = errors.New("admin already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrResourceNotFound   = errors.New("no such resource")
	ErrInternal           = errors.New("internal error")
)

//go:generate mockery --name=AdminRepository --output=./mocks/session/admin --filename=admin.go
type AdminRepository interface {
	FetchByEmail(ctx context.Context, email string) (model.Admin, error)
	Store(ctx context.Context, a model.Admin) error
}

//go:generate mockery --name=SessionCacher --output=./mocks/session/cache --filename=cache.go
type SessionCacher interface {
	Get(k string) (model.Session, bool, error)
	Set(k string, s model.Session, ttl time.Duration) error
	Delete(k string) error
	Expire(k string, ttl time.Duration) error
}

//go:generate mockery --name=Notifier --output=./mocks/session/notifier --filename=notifier.go
type Notifier interface {
	Publish(e model.Event)
}

type Service struct {
	sessionTTL    time.Duration
	admins        AdminRepository
	sessionCacher SessionCacher
	notifier      Notifier

	cost int
	now  func() time.Time
}

type Option func(*Service)

// WithCost sets the bcrypt cost used for new password hashes.
func WithCost(cost int) Option {
	return func(s *Service) {
		s.cost = cost
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(
	sessionTTL time.Duration,
	admins AdminRepository,
	sessionCacher SessionCacher,
	notifier Notifier,
	opts ...Option,
) *Service {
	if sessionTTL <= 0 {
		sessionTTL = time.Hour * 12
	}

	s := &Service{
		sessionTTL:    sessionTTL,
		admins:        admins,
		sessionCacher: sessionCacher,
		notifier:      notifier,
		cost:          bcrypt.DefaultCost,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) SignIn(ctx context.Context, email string, password string) (model.Session, error) {
	admin, err := s.admins.FetchByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Session{}, ErrInvalidCredentials
		}
		return model.Session{}, errors.Join(ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword(admin.PasswordHash, []byte(password)); err != nil {
		return model.Session{}, ErrInvalidCredentials
	}

	session := model.Session{
		Token:     uuid.New().String(),
		AdminID:   admin.ID,
		Email:     admin.Email,
		CreatedAt: s.now().UTC(),
	}
	if err := s.sessionCacher.Set(session.Token, session, s.sessionTTL); err != nil {
		return model.Session{}, errors.Join(ErrInternal, err)
	}

	s.publish(model.EventSessionStarted, session)
	return session, nil
}

// SignOut ends the session. Ending an unknown session is not an error.
func (s *Service) SignOut(ctx context.Context, token string) error {
	session, ok, err := s.sessionCacher.Get(token)
	if err != nil {
		return errors.Join(ErrInternal, err)
	}
	if !ok {
		return nil
	}

	if err := s.sessionCacher.Delete(token); err != nil {
		return errors.Join(ErrInternal, err)
	}

	s.publish(model.EventSessionEnded, session)
	return nil
}

// Session returns the live session behind token and extends its lifetime.
func (s *Service) Session(ctx context.Context, token string) (model.Session, error) {
	if token == "" {
		return model.Session{}, ErrNoSession
	}

	session, ok, err := s.sessionCacher.Get(token)
	if err != nil {
		return model.Session{}, errors.Join(ErrInternal, err)
	}
	if !ok {
		return model.Session{}, ErrNoSession
	}

	if err := s.sessionCacher.Expire(token, s.sessionTTL); err != nil {
		return model.Session{}, errors.Join(ErrInternal, err)
	}
	return session, nil
}

// Register creates an admin account. There is no public sign up, this is
// called from the command line only.
func (s *Service) Register(ctx context.Context, email string, password string) (model.Admin, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return model.Admin{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if len(password) < minPasswordLen {
		return model.Admin{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return model.Admin{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	admin := model.Admin{
		ID:           uuid.New(),
		Email:        normalizeEmail(addr.Address),
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.admins.Store(ctx, admin); err != nil {
		if errors.Is(err, ErrAdminExists) {
			return model.Admin{}, ErrAdminExists
		}
		return model.Admin{}, errors.Join(ErrInternal, err)
	}
	return admin, nil
}

func (s *Service) publish(t model.EventType, session model.Session) {
	if s.notifier == nil {
		return
	}
	s.notifier.Publish(model.Event{
		Type: t,
		Payload: map[string]any{
			"token": session.Token,
			"email": session.Email,
		},
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
