package ledgerrepo

import (
	"context"

	"github.com/felend/felend/internal/domain"
	"github.com/felend/felend/internal/pg"
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

// Append writes one immutable ledger entry. There are no update or delete
// methods on this repository on purpose.
func (r *Repository) Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
        INSERT INTO ledger_entries (user_id, kind, amount, balance_after, description, survey_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		entry.UserID, entry.Kind, entry.Amount, entry.BalanceAfter, entry.Description, entry.SurveyID,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't append ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int, kind string, limit, offset int) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, user_id, kind, amount, balance_after, description, survey_id, created_at
        FROM ledger_entries
        WHERE user_id = $1 AND ($2 = '' OR kind = $2)
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4
    `
	rows, err := r.db.Query(ctx, query, userID, kind, limit, offset)
	if err != nil {
		zap.L().Error("can't get ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var entry domain.LedgerEntry
		err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Kind, &entry.Amount, &entry.BalanceAfter,
			&entry.Description, &entry.SurveyID, &entry.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan ledger entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// CountByKind returns how many entries of one kind the user has, for the
// balance summary.
func (r *Repository) CountByKind(ctx context.Context, userID int, kind string) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM ledger_entries
        WHERE user_id = $1 AND kind = $2
    `
	var count int
	err := r.db.QueryRow(ctx, query, userID, kind).Scan(&count)
	if err != nil {
		zap.L().Error("can't count ledger entries", zap.Error(err))
		return 0, err
	}
	return count, nil
}
