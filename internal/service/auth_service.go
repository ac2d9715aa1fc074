package service

import (
	"errors"
	"time"

	"sprint_edu_backend/internal/config"
	"sprint_edu_backend/internal/model"
	"sprint_edu_backend/internal/repository"
	"sprint_edu_backend/internal/util"
	"sprint_edu_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

func (s *AuthService) Signup(name, email, password string) (*model.User, error) {
	_, err := s.UserRepo.FindByEmail(email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     model.RoleUser,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and advances the login streak: a login the day
// after the previous one extends it, a same-day login keeps it, anything else
// resets it to 1. The returned token only matters to token-mode deployments.
func (s *AuthService) Login(email, password string) (*model.User, string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	s.advanceStreak(user)

	token := ""
	if s.Cfg.Auth.JWTSecret != "" {
		token, err = util.GenerateJWT(user, s.Cfg.Auth.JWTSecret, s.Cfg.Auth.JWTExpireTime)
		if err != nil {
			return nil, "", err
		}
	}

	return user, token, nil
}

func (s *AuthService) advanceStreak(user *model.User) {
	now := time.Now()
	today := now.Truncate(24 * time.Hour)
	last := user.LastLogin.Truncate(24 * time.Hour)

	switch {
	case user.LastLogin.IsZero():
		user.StreakDays = 1
	case last.Equal(today):
		// already counted today
	case last.Equal(today.AddDate(0, 0, -1)):
		user.StreakDays++
	default:
		user.StreakDays = 1
	}

	user.LastLogin = now
	// A lost streak write must not fail the login itself
	if err := s.UserRepo.Update(user); err != nil {
		logger.Log.Warn("failed to persist login streak",
			zap.Uint("user_id", user.ID),
			zap.Error(err),
		)
	}
}
