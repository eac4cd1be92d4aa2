package service

import (
	"context"
	"errors"

	"Atrium/dao"
	"Atrium/models"
	"Atrium/pkg/log"
	"Atrium/pkg/snowflake"
	"Atrium/types"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.SignUpRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type AuthService struct {
	UserDAO *dao.UserDAO
}

func (s *AuthService) Register(ctx context.Context, req *types.SignUpRequest) (*models.User, error) {
	if s.UserDAO.IsEmailExist(ctx, req.Email) {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           snowflake.GenID(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		Role:         types.RoleMember,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		log.L.Error("create user failed", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}
	log.L.Info("user registered", zap.Int64("user_id", user.ID))
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.UserDAO.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
