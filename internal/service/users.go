package service

import (
	"context"
	"log/slog"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"gatherly/internal/cache"
	apperrors "gatherly/internal/errors"
	"gatherly/internal/models"
	"gatherly/internal/repository"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validRole(role string) bool {
	switch role {
	case "participant", "organizer", "both":
		return true
	}
	return false
}

type UserService struct {
	users *repository.UserRepository
	cache *cache.Client
}

func NewUserService(users *repository.UserRepository, userCache *cache.Client) *UserService {
	return &UserService{users: users, cache: userCache}
}

func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error) {
	if !emailPattern.MatchString(req.Email) {
		return nil, apperrors.Validation("Invalid email format")
	}
	if len(req.Password) < 6 {
		return nil, apperrors.Validation("Password must be at least 6 characters")
	}
	if !validRole(req.Role) {
		return nil, apperrors.Validation("Invalid role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials. A missing user and a wrong password fail the
// same way so the response does not reveal which emails are registered.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}
	return user, nil
}

func (s *UserService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	if len(req.NewPassword) < 6 {
		return apperrors.Validation("Password must be at least 6 characters")
	}

	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NotFound("User not found")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return apperrors.Unauthorized("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, req.UserID, string(hash)); err != nil {
		return err
	}
	s.invalidate(ctx, req.UserID)
	return nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *models.UpdateProfileRequest) (*models.User, error) {
	if !emailPattern.MatchString(req.Email) {
		return nil, apperrors.Validation("Invalid email format")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}

	inUse, err := s.users.EmailInUse(ctx, req.Email, userID)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, apperrors.Validation("Email is already in use by another account")
	}

	// The unique index still catches a concurrent claim of the same email.
	if err := s.users.UpdateProfile(ctx, userID, req.Name, req.Email); err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)

	return s.users.GetByID(ctx, userID)
}

// GetUser reads through the user cache.
func (s *UserService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	if cached, err := s.cache.GetUser(ctx, userID); err != nil {
		slog.Warn("User cache read failed", "user_id", userID, "error", err)
	} else if cached != nil {
		return cached, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}

	if err := s.cache.SetUser(ctx, user); err != nil {
		slog.Warn("User cache write failed", "user_id", userID, "error", err)
	}
	return user, nil
}

// SetProfilePicture stores the new picture URL and returns the previous one
// so the handler can remove the old file.
func (s *UserService) SetProfilePicture(ctx context.Context, userID int64, pictureURL *string) (*string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}

	if err := s.users.UpdateProfilePicture(ctx, userID, pictureURL); err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)
	return user.ProfilePicture, nil
}

func (s *UserService) invalidate(ctx context.Context, userID int64) {
	if err := s.cache.InvalidateUser(ctx, userID); err != nil {
		slog.Warn("User cache invalidation failed", "user_id", userID, "error", err)
	}
}
