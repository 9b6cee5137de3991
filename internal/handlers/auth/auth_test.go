package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/felend/felend/internal/domain"
	"github.com/felend/felend/internal/dto"
	"github.com/felend/felend/internal/service/authservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful registration",
			body: `{"email":"test@example.com","password":"testpassword","full_name":"Test User"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "test@example.com", "testpassword", "Test User").
					Return(&domain.User{ID: 1, Email: "test@example.com"}, nil)
				service.EXPECT().GenerateToken(1).Return("signed-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing credentials",
			body:         `{"email":"","password":""}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Email already taken",
			body: `{"email":"taken@example.com","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "taken@example.com", "testpassword", "").
					Return(nil, authservice.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal server error",
			body: `{"email":"test@example.com","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "test@example.com", "testpassword", "").
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.AuthResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "signed-token", body.Token)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful login",
			body: `{"email":"test@example.com","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "test@example.com", "testpassword").
					Return(&domain.User{ID: 1, Email: "test@example.com"}, nil)
				service.EXPECT().GenerateToken(1).Return("signed-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"email":"test@example.com","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "test@example.com", "wrongpassword").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Token generation error",
			body: `{"email":"test@example.com","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "test@example.com", "testpassword").
					Return(&domain.User{ID: 1}, nil)
				service.EXPECT().GenerateToken(1).Return("", errors.New("signing error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			r := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
