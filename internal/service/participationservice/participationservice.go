package participationservice

import (
	"context"
	"fmt"
	"time"

	"github.com/felend/felend/internal/apperrors"
	"github.com/felend/felend/internal/domain"
	"github.com/felend/felend/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=participationservice.go -destination=participationservice_mock.go -package=participationservice

type SurveyRepo interface {
	FindByID(ctx context.Context, surveyID int) (*domain.Survey, error)
	IncrementResponses(ctx context.Context, surveyID int) (*domain.Survey, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	ApplyDelta(ctx context.Context, userID int, delta int) (int, error)
	DebitIfEnough(ctx context.Context, userID int, amount int) (int, bool, error)
}

type ParticipationRepo interface {
	FindBySurveyAndRespondent(ctx context.Context, surveyID, respondentID int) (*domain.Participation, error)
	Save(ctx context.Context, p *domain.Participation) error
	MarkRewardPaid(ctx context.Context, participationID int, completedAt time.Time) (bool, error)
	CountVerified(ctx context.Context, surveyID, respondentID int) (int, error)
	FindByRespondentID(ctx context.Context, respondentID int, limit, offset int) ([]domain.Participation, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
}

// Service owns the participation state machine and the dual point transfer.
// All eligibility rules live here; repositories only move rows.
type Service struct {
	surveyRepo        SurveyRepo
	userRepo          UserRepo
	participationRepo ParticipationRepo
	ledgerRepo        LedgerRepo
	txManager         pg.TXManager
}

func New(surveyRepo SurveyRepo, userRepo UserRepo, participationRepo ParticipationRepo, ledgerRepo LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		surveyRepo:        surveyRepo,
		userRepo:          userRepo,
		participationRepo: participationRepo,
		ledgerRepo:        ledgerRepo,
		txManager:         txManager,
	}
}

// Participation states as reported by GetStatus.
const (
	StateNotStarted string = "NOT_STARTED"
	StateInProgress string = "IN_PROGRESS"
	StateCompleted  string = "COMPLETED"
)

type StartResult struct {
	FormURL        string
	RespondentCode string
	Instructions   string
	Resumed        bool
}

type VerifyResult struct {
	Verified     bool
	RewardEarned int
	NewBalance   int
	Message      string
}

type Status struct {
	State          string
	CanParticipate bool
	RewardEarned   int
	StartedAt      *time.Time
	CompletedAt    *time.Time
}

// checkEligibility applies the start preconditions in order, first failure
// wins. GetStatus reuses it so a client never sees can_participate=true
// followed by a rejection from Start.
func (s *Service) checkEligibility(ctx context.Context, survey *domain.Survey, respondentID int) error {
	if survey == nil {
		return apperrors.ErrSurveyNotFound
	}
	if survey.Status != domain.SurveyStatusActive {
		return apperrors.ErrSurveyNotActive
	}
	if survey.CapacityReached() {
		return apperrors.ErrCapacityReached
	}
	if survey.AuthorID == respondentID {
		return apperrors.ErrOwnSurvey
	}
	verified, err := s.participationRepo.CountVerified(ctx, survey.ID, respondentID)
	if err != nil {
		return err
	}
	if verified >= survey.MaxResponsesPerUser {
		return apperrors.ErrParticipationLimit
	}
	return nil
}

// Start creates the respondent's attempt for a survey, or resumes an
// existing unverified one. It never touches the ledger.
func (s *Service) Start(ctx context.Context, surveyID, respondentID int) (*StartResult, error) {
	survey, err := s.surveyRepo.FindByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if err := s.checkEligibility(ctx, survey, respondentID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, respondentID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	existing, err := s.participationRepo.FindBySurveyAndRespondent(ctx, surveyID, respondentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.IsVerified {
			return nil, apperrors.ErrAlreadyCompleted
		}
		return &StartResult{
			FormURL:        survey.FormURL,
			RespondentCode: user.RespondentCode,
			Instructions:   fmt.Sprintf("Continue filling out the form. Use your respondent code: %s", user.RespondentCode),
			Resumed:        true,
		}, nil
	}

	participation := &domain.Participation{
		SurveyID:     surveyID,
		RespondentID: respondentID,
		StartedAt:    time.Now(),
	}
	if err := s.participationRepo.Save(ctx, participation); err != nil {
		zap.L().Error("can't save participation", zap.Error(err))
		return nil, err
	}

	zap.L().Info("participation started", zap.Int("surveyID", surveyID), zap.Int("respondentID", respondentID))
	return &StartResult{
		FormURL:        survey.FormURL,
		RespondentCode: user.RespondentCode,
		Instructions: fmt.Sprintf("Please fill out the form and use your respondent code: %s. "+
			"After completing the form, return here to claim your reward.", user.RespondentCode),
	}, nil
}

// VerifyAndReward pays the respondent for a completed attempt. The whole
// read-check-write sequence runs in one transaction: the compare-and-swap on
// reward_paid claims the attempt, the author leg is a conditional debit, and
// both ledger entries plus the survey counter commit together or not at all.
// Once the survey's capacity is filled no further attempt can be paid, even
// one started while the survey was still open.
func (s *Service) VerifyAndReward(ctx context.Context, surveyID, respondentID int) (*VerifyResult, error) {
	survey, err := s.surveyRepo.FindByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, apperrors.ErrSurveyNotFound
	}

	user, err := s.userRepo.FindByID(ctx, respondentID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	participation, err := s.participationRepo.FindBySurveyAndRespondent(ctx, surveyID, respondentID)
	if err != nil {
		return nil, err
	}
	if participation == nil {
		return nil, apperrors.ErrNotStarted
	}
	if participation.RewardPaid {
		return nil, apperrors.ErrAlreadyRewarded
	}
	if survey.Status == domain.SurveyStatusCompleted || survey.CapacityReached() {
		return nil, apperrors.ErrCapacityReached
	}

	author, err := s.userRepo.FindByID(ctx, survey.AuthorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, apperrors.ErrUserNotFound
	}

	reward := survey.RewardPerResponse
	var newBalance int
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		claimed, err := s.participationRepo.MarkRewardPaid(ctx, participation.ID, time.Now())
		if err != nil {
			return err
		}
		if !claimed {
			return apperrors.ErrAlreadyRewarded
		}

		authorBalance, paid, err := s.userRepo.DebitIfEnough(ctx, author.ID, reward)
		if err != nil {
			return err
		}
		if !paid {
			return apperrors.ErrAuthorCannotPay
		}

		newBalance, err = s.userRepo.ApplyDelta(ctx, respondentID, reward)
		if err != nil {
			return err
		}

		_, err = s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
			UserID:       respondentID,
			Kind:         domain.EntryKindEarned,
			Amount:       reward,
			BalanceAfter: newBalance,
			Description:  fmt.Sprintf("Earned %d points for completing survey: %s", reward, survey.Title),
			SurveyID:     &survey.ID,
		})
		if err != nil {
			return err
		}

		_, err = s.ledgerRepo.Append(ctx, &domain.LedgerEntry{
			UserID:       author.ID,
			Kind:         domain.EntryKindSpent,
			Amount:       -reward,
			BalanceAfter: authorBalance,
			Description:  fmt.Sprintf("Paid %d points for response to survey: %s", reward, survey.Title),
			SurveyID:     &survey.ID,
		})
		if err != nil {
			return err
		}

		updated, err := s.surveyRepo.IncrementResponses(ctx, surveyID)
		if err != nil {
			return err
		}
		if updated == nil {
			// Capacity was filled by a concurrent reward after our snapshot.
			// Rolling back also reverts the claim and the transfer.
			return apperrors.ErrCapacityReached
		}
		if updated.Status == domain.SurveyStatusCompleted && survey.Status != domain.SurveyStatusCompleted {
			zap.L().Info("survey completed, reached target responses", zap.Int("surveyID", surveyID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("reward paid",
		zap.Int("surveyID", surveyID),
		zap.Int("respondentID", respondentID),
		zap.Int("reward", reward),
	)
	return &VerifyResult{
		Verified:     true,
		RewardEarned: reward,
		NewBalance:   newBalance,
		Message:      fmt.Sprintf("Congratulations! You earned %d points. Your new balance is %d points.", reward, newBalance),
	}, nil
}

// GetStatus is a pure read over the attempt state machine.
func (s *Service) GetStatus(ctx context.Context, surveyID, respondentID int) (*Status, error) {
	survey, err := s.surveyRepo.FindByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, apperrors.ErrSurveyNotFound
	}

	participation, err := s.participationRepo.FindBySurveyAndRespondent(ctx, surveyID, respondentID)
	if err != nil {
		return nil, err
	}

	if participation == nil {
		canParticipate := s.checkEligibility(ctx, survey, respondentID) == nil
		return &Status{
			State:          StateNotStarted,
			CanParticipate: canParticipate,
		}, nil
	}

	if participation.RewardPaid {
		return &Status{
			State:        StateCompleted,
			RewardEarned: survey.RewardPerResponse,
			StartedAt:    &participation.StartedAt,
			CompletedAt:  participation.CompletedAt,
		}, nil
	}

	return &Status{
		State:     StateInProgress,
		StartedAt: &participation.StartedAt,
	}, nil
}

// GetUserResponses lists the respondent's attempts across all surveys.
func (s *Service) GetUserResponses(ctx context.Context, respondentID int, limit, offset int) ([]domain.Participation, error) {
	participations, err := s.participationRepo.FindByRespondentID(ctx, respondentID, limit, offset)
	if err != nil {
		zap.L().Error("failed to get user responses", zap.Error(err))
		return nil, err
	}
	return participations, nil
}
