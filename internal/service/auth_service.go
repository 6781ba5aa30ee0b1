package service

import (
	"backend/internal/model"
	"backend/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// SessionTTL is the fixed lifetime of a login session
const SessionTTL = 24 * time.Hour

// Login failure codes
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
)

// AuthService manages login sessions and credential checks
type AuthService interface {
	Login(ctx context.Context, login, password, ip string) (*model.Session, *model.User, error)
	Logout(ctx context.Context, sessionID string) bool
	CreateSession(ctx context.Context, userID uint, ip string) (*model.Session, error)
	GetSession(ctx context.Context, sessionID string) *model.Session
	ValidateSession(ctx context.Context, sessionID string) bool
	RemoveSession(ctx context.Context, sessionID string) bool
	RemoveExpiredSessions(ctx context.Context) bool
	GetSessionByUserID(ctx context.Context, userID uint) *model.Session
}

type authService struct {
	sessions repository.SessionRepository
	users    repository.UserRepository
}

// NewAuthService returns a new instance of AuthService
func NewAuthService(sessions repository.SessionRepository, users repository.UserRepository) AuthService {
	return &authService{sessions: sessions, users: users}
}

// Login authenticates by case-insensitive login and password. An unknown
// login is reported before the password is ever checked, so the caller can
// distinguish the two failures.
func (s *authService) Login(ctx context.Context, login, password, ip string) (*model.Session, *model.User, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		return nil, nil, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, user, ErrWrongPassword
	}

	session, err := s.CreateSession(ctx, user.ID, ip)
	if err != nil {
		return nil, user, err
	}
	return session, user, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) bool {
	return s.RemoveSession(ctx, sessionID)
}

// CreateSession inserts a fresh session expiring exactly SessionTTL after
// creation and returns the full persisted record.
func (s *authService) CreateSession(ctx context.Context, userID uint, ip string) (*model.Session, error) {
	now := time.Now()
	session := &model.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
		IP:        ip,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession returns the session or nil. Storage errors are logged and
// reported as "no session": the gate must fail closed.
func (s *authService) GetSession(ctx context.Context, sessionID string) *model.Session {
	if sessionID == "" {
		return nil
	}
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil
	}
	return session
}

func (s *authService) ValidateSession(ctx context.Context, sessionID string) bool {
	session := s.GetSession(ctx, sessionID)
	return session != nil && session.IsValid()
}

func (s *authService) RemoveSession(ctx context.Context, sessionID string) bool {
	removed, err := s.sessions.Delete(ctx, sessionID)
	if err != nil {
		log.WithError(err).Error("failed to remove session")
		return false
	}
	return removed
}

// RemoveExpiredSessions is a fire-and-forget maintenance sweep
func (s *authService) RemoveExpiredSessions(ctx context.Context) bool {
	removed, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		log.WithError(err).Error("failed to remove expired sessions")
		return false
	}
	return removed
}

func (s *authService) GetSessionByUserID(ctx context.Context, userID uint) *model.Session {
	session, err := s.sessions.GetValidByUserID(ctx, userID)
	if err != nil {
		return nil
	}
	return session
}
