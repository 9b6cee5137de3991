package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/felend/felend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Now()

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			email: "test@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "full_name", "balance", "respondent_code", "created_at"}).
					AddRow(1, "test@example.com", "hashed_password", "Test User", 10, "RESP_123456789012", createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
					WithArgs("test@example.com").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:             1,
				Email:          "test@example.com",
				PasswordHash:   "hashed_password",
				FullName:       "Test User",
				Balance:        10,
				RespondentCode: "RESP_123456789012",
				CreatedAt:      createdAt,
			},
		},
		{
			name:  "User not found",
			email: "nobody@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
					WithArgs("nobody@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			email: "test@example.com",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
					WithArgs("test@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Now()

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create user successfully",
			user: &domain.User{
				Email:          "test@example.com",
				PasswordHash:   "hashed_password",
				FullName:       "Test User",
				RespondentCode: "RESP_123456789012",
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, createdAt)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs("test@example.com", "hashed_password", "Test User", "RESP_123456789012").
					WillReturnRows(rows)
			},
		},
		{
			name: "Duplicate email",
			user: &domain.User{
				Email:          "taken@example.com",
				PasswordHash:   "hashed_password",
				RespondentCode: "RESP_123456789012",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs("taken@example.com", "hashed_password", "", "RESP_123456789012").
					WillReturnError(errors.New("unique constraint violation"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
				assert.Equal(t, createdAt, result.CreatedAt)
			}
		})
	}
}

func TestRepository_ApplyDelta(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		delta     int
		mockSetup func()
		expectErr bool
		balance   int
	}{
		{
			name:  "Credit applied",
			delta: 50,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"balance"}).AddRow(150)
				mock.ExpectQuery(regexp.QuoteMeta("SET balance = balance + $1")).
					WithArgs(50, 1).
					WillReturnRows(rows)
			},
			balance: 150,
		},
		{
			name:  "Missing user",
			delta: 50,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SET balance = balance + $1")).
					WithArgs(50, 1).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			balance, err := repo.ApplyDelta(context.Background(), 1, tt.delta)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.balance, balance)
			}
		})
	}
}

func TestRepository_DebitIfEnough(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		amount    int
		mockSetup func()
		expectErr bool
		paid      bool
		balance   int
	}{
		{
			name:   "Debit succeeds",
			amount: 50,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"balance"}).AddRow(950)
				mock.ExpectQuery(regexp.QuoteMeta("AND balance >= $1")).
					WithArgs(50, 1).
					WillReturnRows(rows)
			},
			paid:    true,
			balance: 950,
		},
		{
			name:   "Balance too low leaves the row untouched",
			amount: 5000,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("AND balance >= $1")).
					WithArgs(5000, 1).
					WillReturnError(pgx.ErrNoRows)
			},
			paid: false,
		},
		{
			name:   "Database error",
			amount: 50,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("AND balance >= $1")).
					WithArgs(50, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			balance, paid, err := repo.DebitIfEnough(context.Background(), 1, tt.amount)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.paid, paid)
				assert.Equal(t, tt.balance, balance)
			}
		})
	}
}
