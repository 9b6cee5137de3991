package categories

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/felend/felend/internal/domain"
	"github.com/felend/felend/internal/dto"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*CategoryHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetCategoriesHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		prepareMock    func()
		expectedStatus int
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name: "Categories listed",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any()).Return([]domain.Category{
					{ID: 4, Name: "Business", Description: "Business, entrepreneurship, marketing and economics"},
					{ID: 2, Name: "Education", Description: "Education, learning and academic life"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var response dto.CategoryListResponseDTO
				assert.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, 2, response.Total)
				assert.Equal(t, "Business", response.Categories[0].Name)
				assert.Equal(t, 2, response.Categories[1].ID)
			},
		},
		{
			name: "No categories still responds with an empty list",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any()).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var response dto.CategoryListResponseDTO
				assert.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, 0, response.Total)
			},
		},
		{
			name: "Service error",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
			rec := httptest.NewRecorder()

			handler.GetCategories(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rec.Body.Bytes())
			}
		})
	}
}
