package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/road-monitoring-service/internal/domain"
	"github.com/road-monitoring-service/internal/domain/repository"
	"github.com/road-monitoring-service/internal/pkg/auth"
	"github.com/road-monitoring-service/internal/pkg/errors"
	"github.com/road-monitoring-service/internal/usecase/dto"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserUseCase struct {
	userRepo    repository.UserRepository
	authorizer  *auth.Authorizer
	authEnabled bool
	logger      *zap.Logger
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	authorizer *auth.Authorizer,
	authEnabled bool,
	logger *zap.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:    userRepo,
		authorizer:  authorizer,
		authEnabled: authEnabled,
		logger:      logger,
	}
}

func (uc *UserUseCase) Register(ctx context.Context, req dto.CredentialsRequest) (*domain.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errors.ErrEmptyCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	user := &domain.User{
		Email:    req.Email,
		Password: string(hash),
	}

	return uc.userRepo.Create(ctx, user)
}

// Login checks the credentials. When token issuance is enabled the
// response carries a signed JWT; otherwise login is a stateless check and
// nothing about the process changes afterwards.
func (uc *UserUseCase) Login(ctx context.Context, req dto.CredentialsRequest) (*dto.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errors.ErrEmptyCredentials
	}

	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == errors.ErrUserNotFound {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	resp := &dto.LoginResponse{Message: "login successful"}

	if uc.authEnabled && uc.authorizer != nil {
		token, err := uc.authorizer.GenerateToken(user.ID, user.Email)
		if err != nil {
			uc.logger.Error("Failed to sign token", zap.Error(err))
			return nil, errors.ErrInternalServer
		}
		resp.Token = token
	}

	return resp, nil
}

// GetEmails возвращает строки вида "email - id" для всех пользователей
func (uc *UserUseCase) GetEmails(ctx context.Context) ([]string, error) {
	users, err := uc.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(users))
	for _, user := range users {
		emails = append(emails, fmt.Sprintf("%s - %s", user.Email, user.ID))
	}

	return emails, nil
}

func (uc *UserUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.userRepo.Delete(ctx, id)
}
