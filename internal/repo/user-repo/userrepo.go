package userrepo

import (
	"context"
	"errors"

	"github.com/felend/felend/internal/domain"
	"github.com/felend/felend/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `
        SELECT id, email, password_hash, full_name, balance, respondent_code, created_at
        FROM users
        WHERE id = $1
    `
	var user domain.User
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.Balance, &user.RespondentCode, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT id, email, password_hash, full_name, balance, respondent_code, created_at
        FROM users
        WHERE email = $1
    `
	var user domain.User
	err := r.db.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.Balance, &user.RespondentCode, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (email, password_hash, full_name, balance, respondent_code)
        VALUES ($1, $2, $3, 0, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, user.Email, user.PasswordHash, user.FullName, user.RespondentCode).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// ApplyDelta adds a signed amount to the user's balance and returns the new
// balance. It runs in the caller's transaction when one is open.
func (r *Repository) ApplyDelta(ctx context.Context, userID int, delta int) (int, error) {
	query := `
        UPDATE users
        SET balance = balance + $1
        WHERE id = $2
        RETURNING balance
    `
	var balance int
	err := r.db.QueryRow(ctx, query, delta, userID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, pgx.ErrNoRows
	}
	if err != nil {
		zap.L().Error("can't apply balance delta", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// DebitIfEnough subtracts amount only when the current balance covers it.
// The second return value is false when the balance was too low; the row is
// left untouched in that case.
func (r *Repository) DebitIfEnough(ctx context.Context, userID int, amount int) (int, bool, error) {
	query := `
        UPDATE users
        SET balance = balance - $1
        WHERE id = $2 AND balance >= $1
        RETURNING balance
    `
	var balance int
	err := r.db.QueryRow(ctx, query, amount, userID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		zap.L().Error("can't debit balance", zap.Error(err))
		return 0, false, err
	}
	return balance, true, nil
}
