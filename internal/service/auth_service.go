package service

import (
	"errors"
	"time"

	"github.com/achyut02/Ai-Placement-Tracker/config"
	"github.com/achyut02/Ai-Placement-Tracker/internal/apperror"
	"github.com/achyut02/Ai-Placement-Tracker/internal/dto"
	"github.com/achyut02/Ai-Placement-Tracker/internal/model"
	"github.com/achyut02/Ai-Placement-Tracker/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	bcryptCost = 12
	tokenTTL   = 24 * time.Hour
)

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg}
}

func (s *authService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if existing, err := s.userRepo.FindByEmail(req.Email); err == nil && existing != nil {
		return nil, apperror.Conflict("email already exists")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.From(err, "")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperror.Internal("Failed to create account", err)
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		IsActive: true,
		Preferences: model.Preferences{
			SkillLevel: "Beginner",
		},
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperror.From(err, "")
	}

	log.Info().Uint("userID", user.ID).Msg("User registered")
	return s.buildAuthResponse(user)
}

func (s *authService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Auth("Invalid email or password")
		}
		return nil, apperror.From(err, "")
	}

	// Comparison errors of any kind mean "does not match" — fail closed.
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apperror.Auth("Invalid email or password")
	}

	if err := s.userRepo.TouchLastLogin(user.ID); err != nil {
		log.Warn().Err(err).Uint("userID", user.ID).Msg("Failed to update last login")
	}
	user.LastLogin = time.Now()

	return s.buildAuthResponse(user)
}

func (s *authService) buildAuthResponse(user *model.User) (*dto.AuthResponse, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, apperror.Internal("Failed to sign token", err)
	}

	var userResp dto.UserResponse
	if err := copier.Copy(&userResp, user); err != nil {
		return nil, apperror.Internal("Failed to prepare response", err)
	}
	return &dto.AuthResponse{Token: signed, User: userResp}, nil
}
