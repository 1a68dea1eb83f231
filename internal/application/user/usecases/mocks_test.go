package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/expohub/expohub/internal/application/common"
	tokenusecases "github.com/expohub/expohub/internal/application/token/usecases"
	"github.com/expohub/expohub/internal/domain/token"
	"github.com/expohub/expohub/internal/domain/user"
	vo "github.com/expohub/expohub/internal/domain/user/valueobjects"
)

type memoryUsers struct {
	byID      map[uint]*user.User
	nextID    uint
	updateErr error
	updates   int
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byID: map[uint]*user.User{}}
}

func (m *memoryUsers) Create(_ context.Context, u *user.User) error {
	m.nextID++
	if err := u.SetID(m.nextID); err != nil {
		return err
	}
	m.byID[u.ID()] = u
	return nil
}

func (m *memoryUsers) Update(_ context.Context, u *user.User) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updates++
	m.byID[u.ID()] = u
	return nil
}

// GetByID returns a copy so unsaved changes stay invisible, as with a
// database.
func (m *memoryUsers) GetByID(_ context.Context, id uint) (*user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email vo.Email) (*user.User, error) {
	for _, u := range m.byID {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (m *memoryUsers) ExistsByEmail(ctx context.Context, email vo.Email) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

type prefixHasher struct{}

func (prefixHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (prefixHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// stubTokens hands out predictable tokens and consumes them once.
type stubTokens struct {
	issued   map[string]uint
	purposes map[string]token.Purpose
	used     map[string]bool
	expired  map[string]bool
	issueErr error
}

func newStubTokens() *stubTokens {
	return &stubTokens{
		issued:   map[string]uint{},
		purposes: map[string]token.Purpose{},
		used:     map[string]bool{},
		expired:  map[string]bool{},
	}
}

func (s *stubTokens) Issue(_ context.Context, userID uint, purpose token.Purpose) (*tokenusecases.IssuedToken, error) {
	if s.issueErr != nil {
		return nil, s.issueErr
	}
	plain := string(purpose) + "-" + strings.Repeat("x", len(s.issued)+1)
	s.issued[plain] = userID
	s.purposes[plain] = purpose
	return &tokenusecases.IssuedToken{PlainToken: plain, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (s *stubTokens) ValidateAndConsume(_ context.Context, purpose token.Purpose, plain, _ string) (uint, error) {
	userID, ok := s.issued[plain]
	switch {
	case !ok || s.purposes[plain] != purpose:
		return 0, token.ErrTokenNotFound
	case s.used[plain]:
		return 0, token.ErrTokenAlreadyUsed
	case s.expired[plain]:
		return 0, token.ErrTokenExpired
	}
	s.used[plain] = true
	return userID, nil
}

type recordingEmails struct {
	err          error
	verification []string
	resets       []string
	changed      []string
}

func (e *recordingEmails) SendVerificationEmail(to, tok string) error {
	e.verification = append(e.verification, to+"|"+tok)
	return e.err
}

func (e *recordingEmails) SendPasswordResetEmail(to, tok string) error {
	e.resets = append(e.resets, to+"|"+tok)
	return e.err
}

func (e *recordingEmails) SendPasswordChangedEmail(to string) error {
	e.changed = append(e.changed, to)
	return e.err
}

func (e *recordingEmails) SendLifecycleNotice(string, common.LifecycleNotice) error {
	return e.err
}

type staticIssuer struct{}

func (staticIssuer) Issue(p user.Principal) (string, int64, error) {
	return "jwt-for-" + p.Role.String(), 3600, nil
}

// directTx runs fn without a database.
type directTx struct{}

func (directTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
