package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"finai/internal/logger"
	"finai/internal/models"
	"finai/internal/store"
	"finai/internal/util"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxFailedLogins = 5
	lockoutDuration = 10 * time.Minute
	minPasswordLen  = 6
	maxPasswordLen  = 64
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type AuthConfig struct {
	JWTSecret  string
	Issuer     string
	TokenTTL   time.Duration
	BcryptCost int
}

type AuthService struct {
	users store.UserStore
	cfg   AuthConfig
	log   zerolog.Logger
	now   func() time.Time
}

func NewAuthService(users store.UserStore, cfg AuthConfig, log zerolog.Logger) *AuthService {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users: users,
		cfg:   cfg,
		log:   logger.WithComponent(log, logger.ComponentAuth),
		now:   time.Now,
	}
}

func validatePassword(pwd string) error {
	if len(pwd) < minPasswordLen || len(pwd) > maxPasswordLen {
		return validationf("password must be %d-%d characters", minPasswordLen, maxPasswordLen)
	}
	return nil
}

// Register creates a user. Emails are compared case-insensitively.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRe.MatchString(email) {
		return nil, validationf("invalid email address")
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, validationf("email already registered")
		}
		return nil, err
	}

	s.log.Info().Str("user_id", u.ID).Msg("user registered")
	return u, nil
}

// Login checks the credentials and returns a signed token. Five consecutive failures
// lock the account for ten minutes.
func (s *AuthService) Login(ctx context.Context, email, password, ip string) (string, *models.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, unauthorized("invalid email or password")
		}
		return "", nil, err
	}

	now := s.now()
	if u.LockedUntil != nil && now.Before(*u.LockedUntil) {
		return "", nil, unauthorized("account locked, try again later")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		u.FailedLoginAttempts++
		if u.FailedLoginAttempts >= maxFailedLogins {
			lockUntil := now.Add(lockoutDuration)
			u.LockedUntil = &lockUntil
			u.FailedLoginAttempts = 0
			s.log.Warn().Str("user_id", u.ID).Str("ip", ip).Msg("account locked after failed logins")
		}
		if err := s.users.Update(ctx, u); err != nil {
			return "", nil, err
		}
		return "", nil, unauthorized("invalid email or password")
	}

	u.FailedLoginAttempts = 0
	u.LockedUntil = nil
	u.LastLoginAt = &now
	u.LastLoginIP = ip
	if err := s.users.Update(ctx, u); err != nil {
		return "", nil, err
	}

	token, err := util.GenerateToken(s.cfg.JWTSecret, s.cfg.Issuer, u.ID, u.Email, s.cfg.TokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, u, nil
}

// Authenticate resolves a bearer token to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := util.ParseToken(s.cfg.JWTSecret, token)
	if err != nil {
		return nil, unauthorized("invalid or expired token")
	}
	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, unauthorized("user not found")
		}
		return nil, err
	}
	return u, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, u *models.User, oldPassword, newPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(oldPassword)); err != nil {
		return validationf("current password is incorrect")
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	if oldPassword == newPassword {
		return validationf("new password must differ from the current one")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}
	s.log.Info().Str("user_id", u.ID).Msg("password changed")
	return nil
}
