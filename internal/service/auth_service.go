package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"fleetops-service/internal/auth"
	"fleetops-service/internal/model"
	"fleetops-service/internal/repository"
)

// ErrProtectedAccount is returned when an operation would remove or demote an
// account the role rules protect.
var ErrProtectedAccount = errors.New("this account cannot be modified")

type AuthService struct {
	users  *repository.UserRepository
	tokens *auth.Tokens
	log    zerolog.Logger
	now    func() time.Time
}

func NewAuthService(users *repository.UserRepository, tokens *auth.Tokens, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log, now: time.Now}
}

type LoginResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login verifies credentials, stamps last_login and issues an access token.
// Inactive accounts fail the same way bad credentials do.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive || !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	user.LastLogin = &now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(*user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("user logged in")
	return &LoginResult{Token: token, User: *user}, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, principal model.Principal, oldPassword, newPassword string) error {
	if len(newPassword) < 4 {
		return ErrInvalidInput
	}

	user, err := s.users.GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !auth.VerifyPassword(oldPassword, user.PasswordHash) {
		return ErrOldPasswordMismatch
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

func (s *AuthService) ListUsers(ctx context.Context, principal model.Principal) ([]model.User, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	return s.users.List(ctx)
}

func (s *AuthService) GetUser(ctx context.Context, principal model.Principal, id uint) (*model.User, error) {
	if !principal.IsAdmin() && principal.UserID != id {
		return nil, ErrPermissionDenied
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

type CreateUserInput struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	FullName string     `json:"full_name"`
	Email    string     `json:"email"`
	Role     model.Role `json:"role"`
	IsActive *bool      `json:"is_active"`
}

func (s *AuthService) CreateUser(ctx context.Context, principal model.Principal, input CreateUserInput) (*model.User, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" || len(input.Password) < 4 {
		return nil, ErrInvalidInput
	}
	if input.Role == "" {
		input.Role = model.RoleUser
	}
	if !input.Role.Valid() {
		return nil, ErrInvalidInput
	}
	// Granting SUPERADMIN is a SuperAdmin-only move.
	if input.Role == model.RoleSuperAdmin && !principal.IsSuperAdmin() {
		return nil, ErrPermissionDenied
	}

	existing, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	user := model.User{
		Username:     input.Username,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(input.FullName),
		Email:        strings.TrimSpace(input.Email),
		Role:         input.Role,
		IsActive:     active,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}

	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("user created")
	return &user, nil
}

type UpdateUserInput struct {
	FullName *string     `json:"full_name"`
	Email    *string     `json:"email"`
	Role     *model.Role `json:"role"`
	IsActive *bool       `json:"is_active"`
}

func (s *AuthService) UpdateUser(ctx context.Context, principal model.Principal, id uint, input UpdateUserInput) (*model.User, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Only a SuperAdmin may touch a SuperAdmin account.
	if user.Role == model.RoleSuperAdmin && !principal.IsSuperAdmin() {
		return nil, ErrPermissionDenied
	}

	if input.FullName != nil {
		user.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Email != nil {
		user.Email = strings.TrimSpace(*input.Email)
	}
	if input.Role != nil && *input.Role != user.Role {
		if !input.Role.Valid() {
			return nil, ErrInvalidInput
		}
		if *input.Role == model.RoleSuperAdmin && !principal.IsSuperAdmin() {
			return nil, ErrPermissionDenied
		}
		// Demoting a SuperAdmin is out of scope entirely.
		if user.Role == model.RoleSuperAdmin {
			return nil, ErrProtectedAccount
		}
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		if user.Role == model.RoleSuperAdmin && !*input.IsActive {
			return nil, ErrProtectedAccount
		}
		user.IsActive = *input.IsActive
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) DeleteUser(ctx context.Context, principal model.Principal, id uint) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	if principal.UserID == id {
		return ErrInvalidInput
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	// SuperAdmin accounts are undeletable, no matter who asks.
	if user.Role == model.RoleSuperAdmin {
		return ErrProtectedAccount
	}
	// Removing an Admin takes a SuperAdmin.
	if user.Role == model.RoleAdmin && !principal.IsSuperAdmin() {
		return ErrPermissionDenied
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("username", user.Username).Msg("user deleted")
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, principal model.Principal, id uint, newPassword string) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	if len(newPassword) < 4 {
		return ErrInvalidInput
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if user.Role == model.RoleSuperAdmin && !principal.IsSuperAdmin() {
		return ErrPermissionDenied
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.log.Info().Str("username", user.Username).Msg("password reset")
	return nil
}

// Bootstrap seeds the default accounts when the users table is empty so a
// fresh deployment is immediately usable. The passwords are meant to be
// rotated on first login.
func (s *AuthService) Bootstrap(ctx context.Context) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeds := []struct {
		username string
		password string
		fullName string
		role     model.Role
	}{
		{"superadmin", "superadmin", "Super Administrator", model.RoleSuperAdmin},
		{"admin", "admin", "Administrator", model.RoleAdmin},
		{"user", "user", "Standard User", model.RoleUser},
	}

	for _, seed := range seeds {
		hash, err := auth.HashPassword(seed.password)
		if err != nil {
			return err
		}
		user := model.User{
			Username:     seed.username,
			PasswordHash: hash,
			FullName:     seed.fullName,
			Role:         seed.role,
			IsActive:     true,
		}
		if err := s.users.Create(ctx, &user); err != nil {
			return err
		}
		s.log.Info().Str("username", seed.username).Str("role", string(seed.role)).Msg("seeded default account")
	}
	return nil
}
