package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/itemsim/server/internal/auth"
	"github.com/itemsim/server/internal/domain"
	"github.com/itemsim/server/internal/logger"
	"github.com/itemsim/server/internal/repository"
)

// Service defines the account operations
type Service interface {
	SignUp(ctx context.Context, email, password, passwordCheck, name string) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	GetByID(ctx context.Context, userID string) (*domain.User, error)
}

type service struct {
	repo   repository.User
	issuer *auth.TokenIssuer
}

// NewService creates a new user service
func NewService(repo repository.User, issuer *auth.TokenIssuer) Service {
	return &service{repo: repo, issuer: issuer}
}

// SignUp registers a new account. The email doubles as the login ID and must
// be 5-20 lowercase letters and digits with at least one of each.
func (s *service) SignUp(ctx context.Context, email, password, passwordCheck, name string) (*domain.User, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSignUpCalled, "email", email)

	if err := validateLoginID(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password, passwordCheck); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf(ErrMsgLookupUserFailed, err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
	}
	if err := s.repo.InsertUser(ctx, user); err != nil {
		return nil, err
	}

	log.Info(LogMsgUserRegistered, "user_id", user.ID, "email", email)
	return user, nil
}

// SignIn verifies credentials and returns a signed session token. Unknown
// email and wrong password are both reported as Unauthorized.
func (s *service) SignIn(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSignInCalled, "email", email)

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", fmt.Errorf("unknown email: %w", domain.ErrUnauthorized)
		}
		return "", fmt.Errorf(ErrMsgLookupUserFailed, err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", fmt.Errorf("wrong password: %w", domain.ErrUnauthorized)
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return "", err
	}

	log.Info(LogMsgUserSignedIn, "user_id", user.ID)
	return token, nil
}

// GetByID fetches a user by ID
func (s *service) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}
