package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/qazimatch/qazimatch/internal/auth"
	"github.com/qazimatch/qazimatch/internal/dtos"
	"github.com/qazimatch/qazimatch/internal/models"
)

type AuthService struct {
	DB        *gorm.DB
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(db *gorm.DB, secret string, ttl time.Duration) *AuthService {
	return &AuthService{DB: db, JWTSecret: secret, JWTTTL: ttl}
}

// Signup registers a user and immediately issues a session token.
func (s *AuthService) Signup(req *dtos.SignupRequest) (*models.User, string, error) {
	var count int64
	s.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		return nil, "", fmt.Errorf("%w: email already registered", ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		PhoneNumber:  req.PhoneNumber,
	}
	if err := s.DB.Create(user).Error; err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, _, err := auth.GenerateToken(user, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return user, token, nil
}

func (s *AuthService) Login(req *dtos.LoginRequest) (*models.User, string, error) {
	var user models.User
	err := s.DB.Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrBadCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", ErrBadCredentials
	}

	token, _, err := auth.GenerateToken(&user, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return &user, token, nil
}

func (s *AuthService) Profile(userID string) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the account. Jobs and applications stay behind as
// soft-deleted rows via the user's gorm.DeletedAt.
func (s *AuthService) Delete(userID string) error {
	res := s.DB.Delete(&models.User{}, "id = ?", userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: user", ErrNotFound)
	}
	return nil
}
