package categoryrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/felend/felend/internal/pg"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var categoryRowColumns = []string{"id", "name", "description", "is_active", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)

	ctrl := gomock.NewController(t)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()

	repo := New(mockDB, txManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB
}

func TestRepository_FindActive(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  int
	}{
		{
			name: "Active categories listed by name",
			mockSetup: func() {
				rows := pgxmock.NewRows(categoryRowColumns).
					AddRow(4, "Business", "Business, entrepreneurship, marketing and economics", true, createdAt).
					AddRow(2, "Education", "Education, learning and academic life", true, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE is_active = TRUE")).
					WillReturnRows(rows)
			},
			expected: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE is_active = TRUE")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			categories, err := repo.FindActive(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, categories, tt.expected)
				assert.Equal(t, "Business", categories[0].Name)
			}
		})
	}
}

func TestRepository_FindActiveByIDs(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Now()

	rows := pgxmock.NewRows(categoryRowColumns).
		AddRow(2, "Education", "Education, learning and academic life", true, createdAt)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = ANY($1) AND is_active = TRUE")).
		WithArgs([]int{2, 99}).
		WillReturnRows(rows)

	categories, err := repo.FindActiveByIDs(context.Background(), []int{2, 99})
	assert.NoError(t, err)
	assert.Len(t, categories, 1)
	assert.Equal(t, 2, categories[0].ID)
}

func TestRepository_FindBySurveyID(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Now()

	rows := pgxmock.NewRows(categoryRowColumns).
		AddRow(2, "Education", "", true, createdAt).
		AddRow(6, "Technology", "", true, createdAt)
	mock.ExpectQuery(regexp.QuoteMeta("JOIN survey_categories sc ON sc.category_id = c.id")).
		WithArgs(1).
		WillReturnRows(rows)

	categories, err := repo.FindBySurveyID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, "Technology", categories[1].Name)
}

func TestRepository_ReplaceForSurvey(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name        string
		categoryIDs []int
		mockSetup   func()
		expectErr   bool
	}{
		{
			name:        "Links replaced",
			categoryIDs: []int{2, 6},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM survey_categories")).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO survey_categories")).
					WithArgs(1, 2).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO survey_categories")).
					WithArgs(1, 6).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name:        "Empty set just clears the links",
			categoryIDs: nil,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM survey_categories")).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			name:        "Insert fails",
			categoryIDs: []int{2},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM survey_categories")).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO survey_categories")).
					WithArgs(1, 2).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.ReplaceForSurvey(context.Background(), 1, tt.categoryIDs)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
