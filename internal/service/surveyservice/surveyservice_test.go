package surveyservice

import (
	"context"
	"errors"
	"testing"

	"github.com/felend/felend/internal/apperrors"
	"github.com/felend/felend/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockSurveyRepo, *MockUserRepo, *MockParticipationRepo, *MockCategoryRepo) {
	ctrl := gomock.NewController(t)
	surveyRepo := NewMockSurveyRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	participationRepo := NewMockParticipationRepo(ctrl)
	categoryRepo := NewMockCategoryRepo(ctrl)
	service := New(surveyRepo, userRepo, participationRepo, categoryRepo)
	defer ctrl.Finish()
	return service, surveyRepo, userRepo, participationRepo, categoryRepo
}

func TestCreate(t *testing.T) {
	service, surveyRepo, userRepo, _, categoryRepo := NewMock(t)

	needed := 20

	tests := []struct {
		name          string
		params        CreateParams
		prepareMock   func()
		expectedError error
		checkResult   func(t *testing.T, survey *domain.Survey)
	}{
		{
			name: "Capped survey created",
			params: CreateParams{
				Title:             "Product feedback",
				FormURL:           "https://forms.example.com/abc",
				RewardPerResponse: 10,
				ResponsesNeeded:   &needed,
			},
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Balance: 200}, nil)
				surveyRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			checkResult: func(t *testing.T, survey *domain.Survey) {
				assert.Equal(t, domain.SurveyStatusDraft, survey.Status)
				assert.Equal(t, 1, survey.MaxResponsesPerUser)
			},
		},
		{
			name: "Uncapped survey uses the default multiplier",
			params: CreateParams{
				Title:             "Open-ended poll",
				FormURL:           "https://forms.example.com/xyz",
				RewardPerResponse: 10,
			},
			prepareMock: func() {
				// estimated cost is 10 x 10 = 100
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Balance: 100}, nil)
				surveyRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			checkResult: func(t *testing.T, survey *domain.Survey) {
				assert.Nil(t, survey.ResponsesNeeded)
			},
		},
		{
			name: "Survey created with categories",
			params: CreateParams{
				Title:             "Tech habits",
				FormURL:           "https://forms.example.com/tech",
				RewardPerResponse: 10,
				ResponsesNeeded:   &needed,
				CategoryIDs:       []int{2, 6},
			},
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Balance: 200}, nil)
				categoryRepo.EXPECT().FindActiveByIDs(gomock.Any(), []int{2, 6}).Return([]domain.Category{
					{ID: 2, Name: "Education", IsActive: true},
					{ID: 6, Name: "Technology", IsActive: true},
				}, nil)
				surveyRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, survey *domain.Survey) error {
						survey.ID = 3
						return nil
					})
				categoryRepo.EXPECT().ReplaceForSurvey(gomock.Any(), 3, []int{2, 6}).Return(nil)
			},
			checkResult: func(t *testing.T, survey *domain.Survey) {
				assert.Len(t, survey.Categories, 2)
				assert.Equal(t, "Education", survey.Categories[0].Name)
			},
		},
		{
			name: "Unknown category rejected",
			params: CreateParams{
				Title:             "Tech habits",
				FormURL:           "https://forms.example.com/tech",
				RewardPerResponse: 10,
				ResponsesNeeded:   &needed,
				CategoryIDs:       []int{2, 99},
			},
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Balance: 200}, nil)
				categoryRepo.EXPECT().FindActiveByIDs(gomock.Any(), []int{2, 99}).Return([]domain.Category{
					{ID: 2, Name: "Education", IsActive: true},
				}, nil)
			},
			expectedError: apperrors.ErrUnknownCategory,
		},
		{
			name: "Balance below estimated cost",
			params: CreateParams{
				Title:             "Expensive survey",
				RewardPerResponse: 10,
				ResponsesNeeded:   &needed,
			},
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Balance: 199}, nil)
			},
			expectedError: apperrors.ErrEstimatedCostTooBig,
		},
		{
			name:   "Author not found",
			params: CreateParams{Title: "Orphan", RewardPerResponse: 5},
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			survey, err := service.Create(context.Background(), 1, tt.params)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, survey)
			} else {
				assert.NoError(t, err)
				tt.checkResult(t, survey)
			}
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	service, surveyRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		status        string
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Activate draft",
			userID: 1,
			status: domain.SurveyStatusActive,
			prepareMock: func() {
				surveyRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Survey{
					ID: 1, AuthorID: 1, Status: domain.SurveyStatusDraft,
				}, nil)
				surveyRepo.EXPECT().UpdateStatus(gomock.Any(), 1, domain.SurveyStatusActive).Return(nil)
			},
		},
		{
			name:   "Only the author may change status",
			userID: 2,
			status: domain.SurveyStatusActive,
			prepareMock: func() {
				surveyRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Survey{
					ID: 1, AuthorID: 1, Status: domain.SurveyStatusDraft,
				}, nil)
			},
			expectedError: apperrors.ErrNotSurveyAuthor,
		},
		{
			name:   "Completed is terminal",
			userID: 1,
			status: domain.SurveyStatusActive,
			prepareMock: func() {
				surveyRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Survey{
					ID: 1, AuthorID: 1, Status: domain.SurveyStatusCompleted,
				}, nil)
			},
			expectedError: apperrors.ErrSurveyCompleted,
		},
		{
			name:   "Completed cannot be set by hand",
			userID: 1,
			status: domain.SurveyStatusCompleted,
			prepareMock: func() {
				surveyRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Survey{
					ID: 1, AuthorID: 1, Status: domain.SurveyStatusActive,
				}, nil)
			},
			expectedError: apperrors.ErrSurveyCompleted,
		},
		{
			name:   "Unknown status",
			userID: 1,
			status: "ARCHIVED",
			prepareMock: func() {
				surveyRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Survey{
					ID: 1, AuthorID: 1, Status: domain.SurveyStatusDraft,
				}, nil)
			},
			expectedError: apperrors.ErrUnknownStatus,
		},
		{
			name:   "Survey not found",
			userID: 1,
			status: domain.SurveyStatusActive,
			prepareMock: func() {
				surveyRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: apperrors.ErrSurveyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			survey, err := service.UpdateStatus(context.Background(), 1, tt.userID, tt.status)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.status, survey.Status)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	service, surveyRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Delete untouched survey",
			userID: 1,
			prepareMock: func() {
				surveyRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Survey{ID: 1, AuthorID: 1}, nil)
				surveyRepo.EXPECT().Delete(gomock.Any(), 1).Return(nil)
			},
		},
		{
			name:   "Survey with responses is protected",
			userID: 1,
			prepareMock: func() {
				surveyRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Survey{
					ID: 1, AuthorID: 1, TotalResponses: 3,
				}, nil)
			},
			expectedError: apperrors.ErrSurveyHasResponses,
		},
		{
			name:   "Not the author",
			userID: 2,
			prepareMock: func() {
				surveyRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Survey{ID: 1, AuthorID: 1}, nil)
			},
			expectedError: apperrors.ErrNotSurveyAuthor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.Delete(context.Background(), 1, tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetFeed(t *testing.T) {
	service, surveyRepo, _, participationRepo, categoryRepo := NewMock(t)

	needed := 5
	surveys := []domain.Survey{
		{ID: 1, AuthorID: 2, Status: domain.SurveyStatusActive, MaxResponsesPerUser: 1},
		{ID: 2, AuthorID: 7, Status: domain.SurveyStatusActive, MaxResponsesPerUser: 1},
		{ID: 3, AuthorID: 2, Status: domain.SurveyStatusActive, MaxResponsesPerUser: 1, ResponsesNeeded: &needed, TotalResponses: 5},
	}

	surveyRepo.EXPECT().FindActive(gomock.Any(), 20, 0).Return(surveys, nil)
	participationRepo.EXPECT().CountVerified(gomock.Any(), 1, 7).Return(0, nil)
	participationRepo.EXPECT().CountVerified(gomock.Any(), 2, 7).Return(0, nil)
	participationRepo.EXPECT().CountVerified(gomock.Any(), 3, 7).Return(0, nil)
	categoryRepo.EXPECT().FindBySurveyID(gomock.Any(), 1).Return([]domain.Category{{ID: 6, Name: "Technology"}}, nil)
	categoryRepo.EXPECT().FindBySurveyID(gomock.Any(), 2).Return(nil, nil)
	categoryRepo.EXPECT().FindBySurveyID(gomock.Any(), 3).Return(nil, nil)

	items, err := service.GetFeed(context.Background(), 7, 20, 0)
	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.True(t, items[0].CanParticipate)
	assert.Equal(t, "Technology", items[0].Survey.Categories[0].Name)
	assert.False(t, items[1].CanParticipate, "own survey")
	assert.False(t, items[2].CanParticipate, "capacity reached")
}

func TestGetStats(t *testing.T) {
	service, surveyRepo, _, _, _ := NewMock(t)

	needed := 20

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *Stats
		expectedError error
	}{
		{
			name: "Stats with completion rate",
			prepareMock: func() {
				surveyRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Survey{
					ID: 1, RewardPerResponse: 10, TotalResponses: 5, ResponsesNeeded: &needed,
				}, nil)
				surveyRepo.EXPECT().CountRespondents(gomock.Any(), 1).Return(5, 4, nil)
			},
			expected: &Stats{
				TotalResponses:    5,
				UniqueRespondents: 4,
				TotalSpent:        50,
				ResponsesNeeded:   &needed,
				CompletionRate:    25,
			},
		},
		{
			name: "Uncapped survey has no completion rate",
			prepareMock: func() {
				surveyRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Survey{
					ID: 1, RewardPerResponse: 10, TotalResponses: 5,
				}, nil)
				surveyRepo.EXPECT().CountRespondents(gomock.Any(), 1).Return(5, 5, nil)
			},
			expected: &Stats{
				TotalResponses:    5,
				UniqueRespondents: 5,
				TotalSpent:        50,
			},
		},
		{
			name: "Survey not found",
			prepareMock: func() {
				surveyRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: apperrors.ErrSurveyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			stats, err := service.GetStats(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, stats)
			}
		})
	}
}

func TestGetMySurveys(t *testing.T) {
	service, surveyRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCount int
		expectedError error
	}{
		{
			name: "Author surveys listed",
			prepareMock: func() {
				surveyRepo.EXPECT().FindByAuthorID(gomock.Any(), 1).Return([]domain.Survey{
					{ID: 1, AuthorID: 1}, {ID: 2, AuthorID: 1},
				}, nil)
			},
			expectedCount: 2,
		},
		{
			name: "Repo error",
			prepareMock: func() {
				surveyRepo.EXPECT().FindByAuthorID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			surveys, err := service.GetMySurveys(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Len(t, surveys, tt.expectedCount)
			}
		})
	}
}
