package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"compogen/internal/entity"
	"compogen/internal/repository"
	"compogen/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Compared against on login with an unknown email so both failure paths
// cost one bcrypt verification.
const dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// ProfileUpdateInput carries only the fields present in the request.
// A nil field means "leave unchanged"; a pointer to an empty string is
// still applied.
type ProfileUpdateInput struct {
	Name  *string
	Email *string
}

// AuthResult pairs the account with a freshly issued bearer token.
type AuthResult struct {
	User      *entity.User
	Token     string
	ExpiresIn int64
}

type AuthService struct {
	users        repository.UserRepository
	passwordHash PasswordHasher
	tokens       TokenIssuer
	clock        Clock
}

func NewAuthService(
	users repository.UserRepository,
	passwordHash PasswordHasher,
	tokens TokenIssuer,
	clock Clock,
) *AuthService {
	return &AuthService{
		users:        users,
		passwordHash: passwordHash,
		tokens:       tokens,
		clock:        clock,
	}
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The unique index catches the race the pre-check above misses.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.issueFor(user)
}

// Login returns ErrInvalidCredentials for both an unknown email and a wrong
// password, so responses carry no enumeration signal.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = s.passwordHash.Verify(dummyPasswordHash, input.Password)
		return nil, ErrInvalidCredentials
	}
	if !s.passwordHash.Verify(user.PasswordHash, input.Password) {
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	user.LastLogin = &now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.issueFor(user)
}

func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies only the fields present in the request to the
// caller's own record.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, input ProfileUpdateInput) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		user.Email = utils.NormalizeEmail(*input.Email)
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issueFor(user *entity.User) (*AuthResult, error) {
	token, ttl, err := s.tokens.Issue(user.ID.String())
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: int64(ttl.Seconds()),
	}, nil
}

func (s *AuthService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}
