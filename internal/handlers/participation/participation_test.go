package participation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/felend/felend/internal/apperrors"
	"github.com/felend/felend/internal/domain"
	"github.com/felend/felend/internal/dto"
	"github.com/felend/felend/internal/service/participationservice"
	"github.com/felend/felend/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ParticipationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newAuthedRequest(method, target, surveyID string, userID int) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(r.Context(), auth.UserIDKey, userID)
	if surveyID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("surveyID", surveyID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

func TestStartHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		surveyID     string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.StartParticipationResponseDTO
	}{
		{
			name:     "Attempt started",
			surveyID: "1",
			prepareMock: func() {
				service.EXPECT().Start(gomock.Any(), 1, 7).Return(&participationservice.StartResult{
					FormURL:        "https://forms.example.com/abc",
					RespondentCode: "RESP_123456789012",
					Instructions:   "Please fill out the form",
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.StartParticipationResponseDTO{
				FormURL:        "https://forms.example.com/abc",
				RespondentCode: "RESP_123456789012",
				Instructions:   "Please fill out the form",
			},
		},
		{
			name:         "Invalid survey id",
			surveyID:     "abc",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "Survey not found",
			surveyID: "99",
			prepareMock: func() {
				service.EXPECT().Start(gomock.Any(), 99, 7).Return(nil, apperrors.ErrSurveyNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:     "Own survey is forbidden",
			surveyID: "1",
			prepareMock: func() {
				service.EXPECT().Start(gomock.Any(), 1, 7).Return(nil, apperrors.ErrOwnSurvey)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:     "Survey not active",
			surveyID: "1",
			prepareMock: func() {
				service.EXPECT().Start(gomock.Any(), 1, 7).Return(nil, apperrors.ErrSurveyNotActive)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:     "Capacity reached",
			surveyID: "1",
			prepareMock: func() {
				service.EXPECT().Start(gomock.Any(), 1, 7).Return(nil, apperrors.ErrCapacityReached)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:     "Internal server error",
			surveyID: "1",
			prepareMock: func() {
				service.EXPECT().Start(gomock.Any(), 1, 7).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := newAuthedRequest(http.MethodPost, "/api/surveys/"+tt.surveyID+"/participate", tt.surveyID, 7)
			w := httptest.NewRecorder()
			handler.Start(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.StartParticipationResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}

func TestVerifyHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.VerifyParticipationResponseDTO
	}{
		{
			name: "Reward paid",
			prepareMock: func() {
				service.EXPECT().VerifyAndReward(gomock.Any(), 1, 7).Return(&participationservice.VerifyResult{
					Verified:     true,
					RewardEarned: 50,
					NewBalance:   150,
					Message:      "Congratulations! You earned 50 points. Your new balance is 150 points.",
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.VerifyParticipationResponseDTO{
				Verified:     true,
				RewardEarned: 50,
				NewBalance:   150,
				Message:      "Congratulations! You earned 50 points. Your new balance is 150 points.",
			},
		},
		{
			name: "Retry returns conflict",
			prepareMock: func() {
				service.EXPECT().VerifyAndReward(gomock.Any(), 1, 7).Return(nil, apperrors.ErrAlreadyRewarded)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Not started",
			prepareMock: func() {
				service.EXPECT().VerifyAndReward(gomock.Any(), 1, 7).Return(nil, apperrors.ErrNotStarted)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Author balance too low",
			prepareMock: func() {
				service.EXPECT().VerifyAndReward(gomock.Any(), 1, 7).Return(nil, apperrors.ErrAuthorCannotPay)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Survey not found",
			prepareMock: func() {
				service.EXPECT().VerifyAndReward(gomock.Any(), 1, 7).Return(nil, apperrors.ErrSurveyNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newAuthedRequest(http.MethodPost, "/api/surveys/1/verify", "1", 7)
			w := httptest.NewRecorder()
			handler.Verify(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.VerifyParticipationResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}

func TestGetStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		checkBody    func(t *testing.T, body dto.ParticipationStatusResponseDTO)
	}{
		{
			name: "Not started",
			prepareMock: func() {
				service.EXPECT().GetStatus(gomock.Any(), 1, 7).Return(&participationservice.Status{
					State:          participationservice.StateNotStarted,
					CanParticipate: true,
				}, nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body dto.ParticipationStatusResponseDTO) {
				assert.Equal(t, "NOT_STARTED", body.Status)
				assert.True(t, body.CanParticipate)
			},
		},
		{
			name: "Completed with reward",
			prepareMock: func() {
				service.EXPECT().GetStatus(gomock.Any(), 1, 7).Return(&participationservice.Status{
					State:        participationservice.StateCompleted,
					RewardEarned: 50,
				}, nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body dto.ParticipationStatusResponseDTO) {
				assert.Equal(t, "COMPLETED", body.Status)
				assert.Equal(t, 50, body.RewardEarned)
			},
		},
		{
			name: "Survey not found",
			prepareMock: func() {
				service.EXPECT().GetStatus(gomock.Any(), 1, 7).Return(nil, apperrors.ErrSurveyNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newAuthedRequest(http.MethodGet, "/api/surveys/1/status", "1", 7)
			w := httptest.NewRecorder()
			handler.GetStatus(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.checkBody != nil {
				var body dto.ParticipationStatusResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				tt.checkBody(t, body)
			}
		})
	}
}

func TestGetMyResponsesHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Responses listed",
			prepareMock: func() {
				service.EXPECT().GetUserResponses(gomock.Any(), 7, 50, 0).Return([]domain.Participation{
					{ID: 1, SurveyID: 1, RespondentID: 7, IsVerified: true, RewardPaid: true},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No responses",
			prepareMock: func() {
				service.EXPECT().GetUserResponses(gomock.Any(), 7, 50, 0).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetUserResponses(gomock.Any(), 7, 50, 0).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newAuthedRequest(http.MethodGet, "/api/user/responses", "", 7)
			w := httptest.NewRecorder()
			handler.GetMyResponses(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
