package service

import (
	"context"
	"errors"
	"strings"

	"fundbuddy/internal/domain"
	"fundbuddy/internal/repository"
)

var (
	// ErrInvalidCredentials indicates that provided login credentials are
	// incorrect. It deliberately does not distinguish an unknown email from
	// a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserAlreadyExists is returned when registering with a taken email.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrNotAuthenticated indicates that no user is currently logged in.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Name       string
	Goal       string
	SocialName string
}

// AuthService describes account and session lifecycle operations.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, email string, upd ProfileUpdate) (*domain.User, error)
}

type authService struct {
	users   repository.UserRepository
	session repository.SessionRepository
}

func NewAuthService(users repository.UserRepository, session repository.SessionRepository) AuthService {
	return &authService{users: users, session: session}
}

// Register creates the account and logs the new user in, mirroring the
// sign-up flow where the fresh account becomes the current one.
func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	name, err := domain.RequireField("name", name)
	if err != nil {
		return nil, err
	}
	email, err = domain.RequireField("email", email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, &domain.ValidationError{Field: "password", Reason: "is required"}
	}

	user := domain.User{
		Name:     name,
		Email:    email,
		Password: password,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	if err := s.session.SetCurrent(ctx, email); err != nil {
		return nil, err
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.session.SetCurrent(ctx, user.Email); err != nil {
		return nil, err
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

// CurrentUser resolves the held session through the account directory, so
// the directory stays the single source of truth for profile data.
func (s *authService) CurrentUser(ctx context.Context) (*domain.User, error) {
	email, err := s.session.Current(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// the directory lost the account the session points at
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

func (s *authService) UpdateProfile(ctx context.Context, email string, upd ProfileUpdate) (*domain.User, error) {
	name, err := domain.RequireField("name", upd.Name)
	if err != nil {
		return nil, err
	}

	goal := strings.TrimSpace(upd.Goal)
	if goal != "" {
		if _, err := domain.ParseAmount("goal", goal); err != nil {
			return nil, err
		}
	}

	user, err := s.users.Update(ctx, email, func(u *domain.User) {
		u.Name = name
		u.Goal = goal
		u.SocialName = strings.TrimSpace(upd.SocialName)
	})
	if err != nil {
		return nil, err
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}
