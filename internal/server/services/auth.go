// Package services contains server-side business logic. This file implements
// AuthService, which handles signup and login and issues session tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eduhub/eduhub/internal/common"
	"github.com/eduhub/eduhub/internal/server/auth"
	"github.com/eduhub/eduhub/internal/server/config"
	"github.com/eduhub/eduhub/internal/server/models"
	"github.com/eduhub/eduhub/internal/server/repositories/repomanager"
	"github.com/eduhub/eduhub/internal/server/repositories/users"
)

// PasswordHasher is implemented by *auth.Hasher.
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, digest string) (bool, error)
	Burn(ctx context.Context, plaintext string)
}

// Session is a successful login or signup: the user without its credential
// and a freshly signed token.
type Session struct {
	User  models.PublicUser
	Token string
}

// AuthService provides authentication-related operations:
// - Signup: create a user and open a session
// - Login: verify credentials and open a session
type AuthService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	hasher                      PasswordHasher
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, hasher PasswordHasher, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                          db,
		repomanager:                 m,
		hasher:                      hasher,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Login checks email and password. Unknown email and wrong password both
// yield common.ErrorUnauthorized; for an unknown email the hasher still does
// a full comparison so the two cases take the same time.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Burn(ctx, password)
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	ok, err := s.hasher.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("error verifying password for user %d: %w", user.ID, err)
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	return s.openSession(user)
}

// Signup creates a user and returns a session for it. A taken email yields
// common.ErrEmailTaken, whether caught by the pre-check or by the unique
// constraint when two signups race.
func (s *AuthService) Signup(ctx context.Context, in models.NewUser) (*Session, error) {
	user, err := createUser(ctx, s.repomanager.Users(s.db), s.hasher, in)
	if err != nil {
		return nil, err
	}
	return s.openSession(user)
}

func (s *AuthService) openSession(user *models.User) (*Session, error) {
	token, err := auth.GenerateToken(auth.Identity{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("error signing token: %w", err)
	}
	return &Session{User: user.Public(), Token: token}, nil
}

// createUser checks the email is free, hashes the password and inserts the
// user. No transaction is held while hashing; the users_email_key constraint
// rejects a concurrent duplicate and surfaces as common.ErrEmailTaken.
func createUser(ctx context.Context, repo users.Repository, hasher PasswordHasher, in models.NewUser) (*models.User, error) {
	_, err := repo.GetUserByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, common.ErrEmailTaken
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	digest, err := hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, err
	}

	created, err := repo.Create(ctx, &models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: digest,
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return created, nil
}
