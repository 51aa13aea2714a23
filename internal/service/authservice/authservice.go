package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/codematch/marketplace/internal/domain"
	"github.com/codematch/marketplace/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByUsername(ctx context.Context, username, provider string) (*domain.Contributor, error)
	Create(ctx context.Context, contributor *domain.Contributor) (*domain.Contributor, error)
}

type Service struct {
	contributorRepo Repo
	hashService     auth.HashServiceInterface
	jwtService      auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		contributorRepo: repo,
		hashService:     hashService,
		jwtService:      jwtService,
	}
}

func (s *Service) Register(ctx context.Context, username, provider, password string) (*domain.Contributor, error) {
	existing, err := s.contributorRepo.FindByUsername(ctx, username, provider)
	if err != nil {
		zap.L().Error("can't find contributor: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("contributor already exists", zap.String("username", username))
		return nil, errors.New("username already taken")
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	contributor := &domain.Contributor{
		Username: username,
		Provider: provider,
		Password: hashedPassword,
	}
	contributor, err = s.contributorRepo.Create(ctx, contributor)
	if err != nil {
		zap.L().Error("can't create contributor: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("contributor successfully registered", zap.String("username", username))
	return contributor, nil
}

func (s *Service) Authenticate(ctx context.Context, username, provider, password string) (*domain.Contributor, error) {
	contributor, err := s.contributorRepo.FindByUsername(ctx, username, provider)
	if err != nil || contributor == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(contributor.Password, password); !ok {
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("contributor successfully authenticated", zap.String("username", username))
	return contributor, nil
}

func (s *Service) GenerateToken(contributorID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(contributorID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
