// Package services provides the business logic between the API handlers and
// the repositories.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/madenai/arqflow/internal/auth"
	"github.com/madenai/arqflow/internal/db/models"
	"github.com/madenai/arqflow/internal/db/repos"
	"github.com/madenai/arqflow/internal/external"
	"github.com/madenai/arqflow/internal/logger"
)

// User service errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUserCreateFailed = errors.New("failed to create user")
	ErrEmailTaken       = errors.New("email already registered")
)

// User provides business logic for account operations.
type User struct {
	repo  *repos.UserRepository
	geoip *external.GeoIPClient
}

// NewUserService creates a new user service instance. The geoip client is
// optional; without it logins are recorded with the bare IP.
func NewUserService(repo *repos.UserRepository, geoip *external.GeoIPClient) *User {
	return &User{
		repo:  repo,
		geoip: geoip,
	}
}

// Register creates an account with a hashed password.
func (s *User) Register(ctx context.Context, name, email, password, company string) (*models.User, error) {
	if existing, err := s.repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, errors.Join(ErrUserCreateFailed, err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Company:      company,
		Role:         models.UserRoleUser,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, errors.Join(ErrUserCreateFailed, err)
	}
	return user, nil
}

// AuthSession is the result of a successful login.
type AuthSession struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

// Login verifies credentials, issues a token, and records the login audit
// trail (timestamp, IP, and geolocation when the lookup succeeds).
func (s *User) Login(ctx context.Context, email, password, ip string) (*AuthSession, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, auth.ErrInvalidCredentials
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := auth.GenerateToken(user.ID, user.Email, user.Role.String())
	if err != nil {
		return nil, err
	}

	s.recordLogin(ctx, user, ip)
	return &AuthSession{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// recordLogin updates the audit fields on the user row. The geolocation
// lookup is best-effort; a failure never blocks the login.
func (s *User) recordLogin(ctx context.Context, user *models.User, ip string) {
	now := nowUTC()
	user.LastLoginAt = &now
	user.LastLoginIP = ip

	if s.geoip != nil && ip != "" {
		loc, err := s.geoip.Lookup(ctx, ip)
		if err != nil {
			logger.Debugf("geolocation lookup failed for %s: %v", ip, err)
		} else {
			user.Country = loc.Country
			user.City = loc.City
		}
	}

	if err := s.repo.Update(ctx, user); err != nil {
		logger.Errorf("failed to record login for user %d: %v", user.ID, err)
	}
}

// GetUser retrieves a user by ID.
func (s *User) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, errors.Join(ErrUserNotFound, err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email.
func (s *User) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.Join(ErrUserNotFound, err)
	}
	return user, nil
}

// GetAllUsers retrieves all users.
func (s *User) GetAllUsers(ctx context.Context, opts *models.ListOptions) ([]models.User, error) {
	return s.repo.List(ctx, opts)
}

// UpdateUser persists profile edits.
func (s *User) UpdateUser(ctx context.Context, user *models.User) error {
	return s.repo.Update(ctx, user)
}

// DeleteUser deletes a user.
func (s *User) DeleteUser(ctx context.Context, userID uint) error {
	return s.repo.Delete(ctx, userID)
}
