package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/grabpoint/api/app/models"
	"github.com/grabpoint/api/app/repositories"
	"github.com/grabpoint/api/app/utils/apperrors"
)

const resetCodeTTL = 15 * time.Minute

type RegisterInput struct {
	Username    string `json:"username" validate:"required,min=3,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
}

type AuthService struct {
	userRepo repositories.UserRepositoryImpl
	tokens   *TokenService
	mailer   *Mailer
}

func NewAuthService(userRepo repositories.UserRepositoryImpl, tokens *TokenService, mailer *Mailer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
	}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if existing, err := s.userRepo.FindByUsername(ctx, in.Username); err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	} else if existing != nil {
		return nil, apperrors.Validationf("username is already taken")
	}
	if existing, err := s.userRepo.FindByEmail(ctx, in.Email); err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	} else if existing != nil {
		return nil, apperrors.Validationf("email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:    in.Username,
		Email:       in.Email,
		Password:    string(hash),
		FullName:    in.FullName,
		PhoneNumber: in.PhoneNumber,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login checks credentials and returns a bearer token. The verified gate
// lives in TokenService.Issue.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return "", nil, apperrors.Authenticationf("invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperrors.Authenticationf("invalid username or password")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ForgotPassword emails a short-lived one-time code. The response is the same
// whether or not the account exists, so the endpoint leaks nothing.
func (s *AuthService) ForgotPassword(ctx context.Context, username, email string) error {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || user.Email != email {
		log.Warn().Str("username", username).Msg("password reset requested for unknown account")
		return nil
	}

	code, err := generateResetCode()
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash reset code: %w", err)
	}
	hashStr := string(hash)
	expires := time.Now().Add(resetCodeTTL)
	user.ResetCodeHash = &hashStr
	user.ResetCodeExpires = &expires
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	body := BuildResetCodeEmailBody(code, int(resetCodeTTL.Minutes()))
	if err := s.mailer.SendHTMLEmail(user.Email, "Your password reset code", body); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, username, code, newPassword string) error {
	if len(newPassword) < 8 {
		return apperrors.Validationf("password must be at least 8 characters")
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || user.ResetCodeHash == nil || user.ResetCodeExpires == nil {
		return apperrors.Validationf("invalid or expired reset code")
	}
	if time.Now().After(*user.ResetCodeExpires) {
		return apperrors.Validationf("invalid or expired reset code")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.ResetCodeHash), []byte(code)); err != nil {
		return apperrors.Validationf("invalid or expired reset code")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hash)
	user.ResetCodeHash = nil
	user.ResetCodeExpires = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func generateResetCode() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
