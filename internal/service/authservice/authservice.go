package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/felend/felend/internal/domain"
	"github.com/felend/felend/pkg/auth"
	"github.com/felend/felend/pkg/respcode"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type BonusService interface {
	AddBonusPoints(ctx context.Context, userID int, amount int, description string) (*domain.LedgerEntry, error)
}

type Service struct {
	userRepo     Repo
	bonusService BonusService
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
	welcomeBonus int
}

func New(repo Repo, bonusService BonusService, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, welcomeBonus int) *Service {
	return &Service{
		userRepo:     repo,
		bonusService: bonusService,
		hashService:  hashService,
		jwtService:   jwtService,
		welcomeBonus: welcomeBonus,
	}
}

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func (s *Service) Register(ctx context.Context, email, password, fullName string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrEmailTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	code, err := respcode.New()
	if err != nil {
		zap.L().Error("can't generate respondent code: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Email:          email,
		PasswordHash:   hashedPassword,
		FullName:       fullName,
		RespondentCode: code,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	if s.welcomeBonus > 0 {
		entry, err := s.bonusService.AddBonusPoints(ctx, newUser.ID, s.welcomeBonus, "Welcome bonus for new user")
		if err != nil {
			zap.L().Error("can't grant welcome bonus: ", zap.Error(err))
			return nil, err
		}
		newUser.Balance = entry.BalanceAfter
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
