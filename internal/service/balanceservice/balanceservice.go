package balanceservice

import (
	"context"

	"github.com/felend/felend/internal/apperrors"
	"github.com/felend/felend/internal/domain"
	"github.com/felend/felend/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=balanceservice.go -destination=balanceservice_mock.go -package=balanceservice

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	ApplyDelta(ctx context.Context, userID int, delta int) (int, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	FindByUserID(ctx context.Context, userID int, kind string, limit, offset int) ([]domain.LedgerEntry, error)
	CountByKind(ctx context.Context, userID int, kind string) (int, error)
}

type Service struct {
	userRepo   UserRepo
	ledgerRepo LedgerRepo
	txManager  pg.TXManager
}

func New(userRepo UserRepo, ledgerRepo LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		txManager:  txManager,
	}
}

type Summary struct {
	CurrentBalance     int
	EarnedTransactions int
	SpentTransactions  int
}

func (s *Service) GetBalance(ctx context.Context, userID int) (int, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	if user == nil {
		return 0, apperrors.ErrUserNotFound
	}
	return user.Balance, nil
}

// AddBonusPoints credits a single-sided BONUS entry. Unlike survey rewards
// there is no paired SPENT leg; the balance update and the ledger entry still
// commit together.
func (s *Service) AddBonusPoints(ctx context.Context, userID int, amount int, description string) (*domain.LedgerEntry, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	var entry *domain.LedgerEntry
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		newBalance, err := s.userRepo.ApplyDelta(ctx, userID, amount)
		if err != nil {
			return err
		}
		entry, err = s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
			UserID:       userID,
			Kind:         domain.EntryKindBonus,
			Amount:       amount,
			BalanceAfter: newBalance,
			Description:  description,
		})
		return err
	})
	if err != nil {
		zap.L().Error("can't add bonus points", zap.Error(err))
		return nil, err
	}

	zap.L().Info("bonus points added", zap.Int("userID", userID), zap.Int("amount", amount))
	return entry, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int, kind string, limit, offset int) ([]domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.FindByUserID(ctx, userID, kind, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (s *Service) GetSummary(ctx context.Context, userID int) (*Summary, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	earned, err := s.ledgerRepo.CountByKind(ctx, userID, domain.EntryKindEarned)
	if err != nil {
		return nil, err
	}
	spent, err := s.ledgerRepo.CountByKind(ctx, userID, domain.EntryKindSpent)
	if err != nil {
		return nil, err
	}
	return &Summary{
		CurrentBalance:     user.Balance,
		EarnedTransactions: earned,
		SpentTransactions:  spent,
	}, nil
}
