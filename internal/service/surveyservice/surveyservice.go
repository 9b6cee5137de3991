package surveyservice

import (
	"context"
	"time"

	"github.com/felend/felend/internal/apperrors"
	"github.com/felend/felend/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=surveyservice.go -destination=surveyservice_mock.go -package=surveyservice

type SurveyRepo interface {
	FindByID(ctx context.Context, surveyID int) (*domain.Survey, error)
	Save(ctx context.Context, survey *domain.Survey) error
	UpdateStatus(ctx context.Context, surveyID int, status string) error
	Delete(ctx context.Context, surveyID int) error
	FindActive(ctx context.Context, limit, offset int) ([]domain.Survey, error)
	FindByAuthorID(ctx context.Context, authorID int) ([]domain.Survey, error)
	CountRespondents(ctx context.Context, surveyID int) (int, int, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
}

type ParticipationRepo interface {
	CountVerified(ctx context.Context, surveyID, respondentID int) (int, error)
}

type CategoryRepo interface {
	FindActiveByIDs(ctx context.Context, categoryIDs []int) ([]domain.Category, error)
	FindBySurveyID(ctx context.Context, surveyID int) ([]domain.Category, error)
	ReplaceForSurvey(ctx context.Context, surveyID int, categoryIDs []int) error
}

type Service struct {
	surveyRepo        SurveyRepo
	userRepo          UserRepo
	participationRepo ParticipationRepo
	categoryRepo      CategoryRepo
}

func New(surveyRepo SurveyRepo, userRepo UserRepo, participationRepo ParticipationRepo, categoryRepo CategoryRepo) *Service {
	return &Service{
		surveyRepo:        surveyRepo,
		userRepo:          userRepo,
		participationRepo: participationRepo,
		categoryRepo:      categoryRepo,
	}
}

// defaultCostMultiplier sizes the estimated cost of an uncapped survey.
const defaultCostMultiplier = 10

type CreateParams struct {
	Title               string
	Description         string
	FormURL             string
	RewardPerResponse   int
	ResponsesNeeded     *int
	MaxResponsesPerUser int
	CategoryIDs         []int
}

type Stats struct {
	TotalResponses    int
	UniqueRespondents int
	TotalSpent        int
	ResponsesNeeded   *int
	CompletionRate    float64
}

type FeedItem struct {
	Survey         domain.Survey
	CanParticipate bool
	MyResponses    int
}

// Create registers a new survey in DRAFT. The author must hold at least the
// estimated payout: reward x responses_needed, or reward x 10 when uncapped.
func (s *Service) Create(ctx context.Context, authorID int, params CreateParams) (*domain.Survey, error) {
	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, apperrors.ErrUserNotFound
	}

	estimatedCost := params.RewardPerResponse * defaultCostMultiplier
	if params.ResponsesNeeded != nil {
		estimatedCost = params.RewardPerResponse * *params.ResponsesNeeded
	}
	if author.Balance < estimatedCost {
		zap.L().Info("survey creation rejected, balance below estimated cost",
			zap.Int("authorID", authorID),
			zap.Int("estimatedCost", estimatedCost),
			zap.Int("balance", author.Balance),
		)
		return nil, apperrors.ErrEstimatedCostTooBig
	}

	var categories []domain.Category
	if len(params.CategoryIDs) > 0 {
		categories, err = s.categoryRepo.FindActiveByIDs(ctx, params.CategoryIDs)
		if err != nil {
			return nil, err
		}
		if len(categories) != len(params.CategoryIDs) {
			return nil, apperrors.ErrUnknownCategory
		}
	}

	maxPerUser := params.MaxResponsesPerUser
	if maxPerUser < 1 {
		maxPerUser = 1
	}

	survey := &domain.Survey{
		AuthorID:            authorID,
		Title:               params.Title,
		Description:         params.Description,
		FormURL:             params.FormURL,
		RewardPerResponse:   params.RewardPerResponse,
		ResponsesNeeded:     params.ResponsesNeeded,
		MaxResponsesPerUser: maxPerUser,
		Status:              domain.SurveyStatusDraft,
		CreatedAt:           time.Now(),
	}
	if err := s.surveyRepo.Save(ctx, survey); err != nil {
		zap.L().Error("can't save survey", zap.Error(err))
		return nil, err
	}
	if len(params.CategoryIDs) > 0 {
		if err := s.categoryRepo.ReplaceForSurvey(ctx, survey.ID, params.CategoryIDs); err != nil {
			zap.L().Error("can't link survey categories", zap.Error(err))
			return nil, err
		}
		survey.Categories = categories
	}
	return survey, nil
}

func (s *Service) Get(ctx context.Context, surveyID int) (*domain.Survey, error) {
	survey, err := s.surveyRepo.FindByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, apperrors.ErrSurveyNotFound
	}
	survey.Categories, err = s.categoryRepo.FindBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return survey, nil
}

// UpdateStatus applies an author-driven lifecycle change. COMPLETED is owned
// by the reward path and cannot be set by hand.
func (s *Service) UpdateStatus(ctx context.Context, surveyID, userID int, status string) (*domain.Survey, error) {
	survey, err := s.surveyRepo.FindByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, apperrors.ErrSurveyNotFound
	}
	if survey.AuthorID != userID {
		return nil, apperrors.ErrNotSurveyAuthor
	}
	if survey.Status == domain.SurveyStatusCompleted || status == domain.SurveyStatusCompleted {
		return nil, apperrors.ErrSurveyCompleted
	}
	if status != domain.SurveyStatusDraft && status != domain.SurveyStatusActive && status != domain.SurveyStatusPaused {
		return nil, apperrors.ErrUnknownStatus
	}

	if err := s.surveyRepo.UpdateStatus(ctx, surveyID, status); err != nil {
		return nil, err
	}
	survey.Status = status
	zap.L().Info("survey status updated", zap.Int("surveyID", surveyID), zap.String("status", status))
	return survey, nil
}

func (s *Service) Delete(ctx context.Context, surveyID, userID int) error {
	survey, err := s.surveyRepo.FindByID(ctx, surveyID)
	if err != nil {
		return err
	}
	if survey == nil {
		return apperrors.ErrSurveyNotFound
	}
	if survey.AuthorID != userID {
		return apperrors.ErrNotSurveyAuthor
	}
	if survey.TotalResponses > 0 {
		return apperrors.ErrSurveyHasResponses
	}
	return s.surveyRepo.Delete(ctx, surveyID)
}

// GetFeed lists active surveys with per-viewer participation hints.
func (s *Service) GetFeed(ctx context.Context, viewerID int, limit, offset int) ([]FeedItem, error) {
	surveys, err := s.surveyRepo.FindActive(ctx, limit, offset)
	if err != nil {
		zap.L().Error("failed to get surveys feed", zap.Error(err))
		return nil, err
	}

	items := make([]FeedItem, 0, len(surveys))
	for _, survey := range surveys {
		verified, err := s.participationRepo.CountVerified(ctx, survey.ID, viewerID)
		if err != nil {
			return nil, err
		}
		survey.Categories, err = s.categoryRepo.FindBySurveyID(ctx, survey.ID)
		if err != nil {
			return nil, err
		}
		canParticipate := survey.AuthorID != viewerID &&
			!survey.CapacityReached() &&
			verified < survey.MaxResponsesPerUser
		items = append(items, FeedItem{
			Survey:         survey,
			CanParticipate: canParticipate,
			MyResponses:    verified,
		})
	}
	return items, nil
}

func (s *Service) GetMySurveys(ctx context.Context, authorID int) ([]domain.Survey, error) {
	surveys, err := s.surveyRepo.FindByAuthorID(ctx, authorID)
	if err != nil {
		zap.L().Error("failed to get author surveys", zap.Error(err))
		return nil, err
	}
	return surveys, nil
}

func (s *Service) GetStats(ctx context.Context, surveyID int) (*Stats, error) {
	survey, err := s.surveyRepo.FindByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, apperrors.ErrSurveyNotFound
	}

	total, unique, err := s.surveyRepo.CountRespondents(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalResponses:    total,
		UniqueRespondents: unique,
		TotalSpent:        survey.RewardPerResponse * survey.TotalResponses,
		ResponsesNeeded:   survey.ResponsesNeeded,
	}
	if survey.ResponsesNeeded != nil && *survey.ResponsesNeeded > 0 {
		stats.CompletionRate = float64(survey.TotalResponses) / float64(*survey.ResponsesNeeded) * 100
	}
	return stats, nil
}
