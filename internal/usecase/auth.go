package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	domainErrors "github.com/digishoplabs/digishop/internal/domain/errors"
	"github.com/digishoplabs/digishop/internal/domain/model"
	"github.com/digishoplabs/digishop/internal/domain/repository"
	pkgAuth "github.com/digishoplabs/digishop/internal/pkg/auth"
)

const minPasswordLength = 8

// AuthUseCase handles user lifecycle, credentials and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new customer account. No token is issued: the client is
// expected to log in afterwards.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domainErrors.ErrInvalidInput)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domainErrors.ErrInvalidInput)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", domainErrors.ErrInvalidInput)
	}
	if !validEmail(email) {
		return nil, fmt.Errorf("%w: invalid email address", domainErrors.ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domainErrors.ErrInvalidInput, minPasswordLength)
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.users.Create(ctx, name, email, hash, false)
}

// Authenticate validates credentials and returns the user with a fresh token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// AuthenticateAdmin is Authenticate restricted to administrator accounts.
func (u *AuthUseCase) AuthenticateAdmin(ctx context.Context, email, password string) (*model.User, string, error) {
	usr, token, err := u.Authenticate(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	if !usr.IsAdmin {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	return usr, token, nil
}

// ParseToken verifies the bearer token and extracts its claims.
func (u *AuthUseCase) ParseToken(token string) (*pkgAuth.Claims, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// ListUsers returns every registered account.
func (u *AuthUseCase) ListUsers(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

// UpdateUserInput carries optional fields for a partial user update.
type UpdateUserInput struct {
	ID       string
	Name     string
	Email    string
	Password string
}

// UpdateUser applies a partial update to an existing account.
func (u *AuthUseCase) UpdateUser(ctx context.Context, input UpdateUserInput) (*model.User, error) {
	if input.ID == "" {
		return nil, fmt.Errorf("%w: user id is required", domainErrors.ErrInvalidInput)
	}

	usr, err := u.users.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		usr.Name = input.Name
	}
	if input.Email != "" {
		if !validEmail(input.Email) {
			return nil, fmt.Errorf("%w: invalid email address", domainErrors.ErrInvalidInput)
		}
		usr.Email = input.Email
	}
	if input.Password != "" {
		if len(input.Password) < minPasswordLength {
			return nil, fmt.Errorf("%w: password must be at least %d characters", domainErrors.ErrInvalidInput, minPasswordLength)
		}
		hash, err := u.hasher.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		usr.PasswordHash = hash
	}

	if err := u.users.Update(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// RemoveUser deletes an account by id.
func (u *AuthUseCase) RemoveUser(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: user id is required", domainErrors.ErrInvalidInput)
	}
	return u.users.Delete(ctx, id)
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
