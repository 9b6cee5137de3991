package participationrepo

import (
	"context"
	"errors"
	"time"

	"github.com/felend/felend/internal/domain"
	"github.com/felend/felend/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const participationColumns = `id, survey_id, respondent_id, external_id, external_at,
        is_verified, reward_paid, started_at, completed_at`

func scanParticipation(row pgx.Row) (*domain.Participation, error) {
	var p domain.Participation
	err := row.Scan(
		&p.ID, &p.SurveyID, &p.RespondentID, &p.ExternalID, &p.ExternalAt,
		&p.IsVerified, &p.RewardPaid, &p.StartedAt, &p.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindBySurveyAndRespondent(ctx context.Context, surveyID, respondentID int) (*domain.Participation, error) {
	query := `
        SELECT ` + participationColumns + `
        FROM participations
        WHERE survey_id = $1 AND respondent_id = $2
    `
	p, err := scanParticipation(r.db.QueryRow(ctx, query, surveyID, respondentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find participation", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) Save(ctx context.Context, p *domain.Participation) error {
	query := `
        INSERT INTO participations (survey_id, respondent_id, started_at)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, p.SurveyID, p.RespondentID, p.StartedAt).Scan(&p.ID)
		if err != nil {
			zap.L().Error("can't save participation", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// MarkRewardPaid is the idempotency guard: a compare-and-swap that flips
// reward_paid only when it is still false. A false return means another
// transaction already claimed the reward; nothing was written.
func (r *Repository) MarkRewardPaid(ctx context.Context, participationID int, completedAt time.Time) (bool, error) {
	query := `
        UPDATE participations
        SET is_verified = TRUE, reward_paid = TRUE, completed_at = $1
        WHERE id = $2 AND reward_paid = FALSE
        RETURNING id
    `
	var id int
	err := r.db.QueryRow(ctx, query, completedAt, participationID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't mark reward paid", zap.Error(err))
		return false, err
	}
	return true, nil
}

// CountVerified counts the respondent's verified attempts on one survey,
// the number the per-user participation cap is checked against.
func (r *Repository) CountVerified(ctx context.Context, surveyID, respondentID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM participations
        WHERE survey_id = $1 AND respondent_id = $2 AND is_verified = TRUE
    `
	var count int
	err := r.db.QueryRow(ctx, query, surveyID, respondentID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count verified participations", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) FindByRespondentID(ctx context.Context, respondentID int, limit, offset int) ([]domain.Participation, error) {
	query := `
        SELECT ` + participationColumns + `
        FROM participations
        WHERE respondent_id = $1
        ORDER BY started_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, respondentID, limit, offset)
	if err != nil {
		zap.L().Error("can't get user participations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

// FindUnverified lists attempts that have no external submission recorded
// yet, oldest first, for the form sync poller.
func (r *Repository) FindUnverified(ctx context.Context, limit uint32) ([]domain.Participation, error) {
	query := `
        SELECT ` + participationColumns + `
        FROM participations
        WHERE is_verified = FALSE AND external_id = ''
        ORDER BY started_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get unverified participations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

// RecordExternal stores the external form submission reference on an attempt.
// It never touches is_verified or reward_paid.
func (r *Repository) RecordExternal(ctx context.Context, participationID int, externalID string, externalAt time.Time) error {
	query := `
        UPDATE participations
        SET external_id = $1, external_at = $2
        WHERE id = $3
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, externalID, externalAt, participationID)
		if err != nil {
			zap.L().Error("failed to record external submission", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func collect(rows pgx.Rows) ([]domain.Participation, error) {
	var participations []domain.Participation
	for rows.Next() {
		var p domain.Participation
		err := rows.Scan(
			&p.ID, &p.SurveyID, &p.RespondentID, &p.ExternalID, &p.ExternalAt,
			&p.IsVerified, &p.RewardPaid, &p.StartedAt, &p.CompletedAt,
		)
		if err != nil {
			zap.L().Error("can't scan participation row", zap.Error(err))
			return nil, err
		}
		participations = append(participations, p)
	}
	return participations, nil
}
