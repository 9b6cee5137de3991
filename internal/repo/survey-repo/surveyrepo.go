package surveyrepo

import (
	"context"
	"errors"

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

const surveyColumns = `id, author_id, title, description, form_url, reward_per_response,
        responses_needed, max_responses_per_user, status, total_responses, created_at`

func scanSurvey(row pgx.Row) (*domain.Survey, error) {
	var survey domain.Survey
	err := row.Scan(
		&survey.ID, &survey.AuthorID, &survey.Title, &survey.Description, &survey.FormURL,
		&survey.RewardPerResponse, &survey.ResponsesNeeded, &survey.MaxResponsesPerUser,
		&survey.Status, &survey.TotalResponses, &survey.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *Repository) FindByID(ctx context.Context, surveyID int) (*domain.Survey, error) {
	query := `
        SELECT ` + surveyColumns + `
        FROM surveys
        WHERE id = $1
    `
	survey, err := scanSurvey(r.db.QueryRow(ctx, query, surveyID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find survey", zap.Error(err))
		return nil, err
	}
	return survey, nil
}

func (r *Repository) Save(ctx context.Context, survey *domain.Survey) error {
	query := `
        INSERT INTO surveys (author_id, title, description, form_url, reward_per_response,
            responses_needed, max_responses_per_user, status, total_responses, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, $9)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query,
			survey.AuthorID, survey.Title, survey.Description, survey.FormURL,
			survey.RewardPerResponse, survey.ResponsesNeeded, survey.MaxResponsesPerUser,
			survey.Status, survey.CreatedAt,
		).Scan(&survey.ID)
		if err != nil {
			zap.L().Error("can't save survey", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, surveyID int, status string) error {
	query := `
        UPDATE surveys
        SET status = $1
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, status, surveyID)
		if err != nil {
			zap.L().Error("failed to update survey status", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, surveyID int) error {
	query := `
        DELETE FROM surveys
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, surveyID)
	if err != nil {
		zap.L().Error("can't delete survey", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindActive(ctx context.Context, limit, offset int) ([]domain.Survey, error) {
	query := `
        SELECT ` + surveyColumns + `
        FROM surveys
        WHERE status = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, domain.SurveyStatusActive, limit, offset)
	if err != nil {
		zap.L().Error("can't get active surveys", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var surveys []domain.Survey
	for rows.Next() {
		var survey domain.Survey
		err := rows.Scan(
			&survey.ID, &survey.AuthorID, &survey.Title, &survey.Description, &survey.FormURL,
			&survey.RewardPerResponse, &survey.ResponsesNeeded, &survey.MaxResponsesPerUser,
			&survey.Status, &survey.TotalResponses, &survey.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan survey row", zap.Error(err))
			return nil, err
		}
		surveys = append(surveys, survey)
	}
	return surveys, nil
}

func (r *Repository) FindByAuthorID(ctx context.Context, authorID int) ([]domain.Survey, error) {
	query := `
        SELECT ` + surveyColumns + `
        FROM surveys
        WHERE author_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, authorID)
	if err != nil {
		zap.L().Error("can't get author surveys", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var surveys []domain.Survey
	for rows.Next() {
		var survey domain.Survey
		err := rows.Scan(
			&survey.ID, &survey.AuthorID, &survey.Title, &survey.Description, &survey.FormURL,
			&survey.RewardPerResponse, &survey.ResponsesNeeded, &survey.MaxResponsesPerUser,
			&survey.Status, &survey.TotalResponses, &survey.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan survey row", zap.Error(err))
			return nil, err
		}
		surveys = append(surveys, survey)
	}
	return surveys, nil
}

// IncrementResponses bumps total_responses and flips the survey to COMPLETED
// when the optional cap is reached, all in one statement so the transition is
// atomic with the reward that triggered it. The WHERE clause refuses the bump
// once the cap is filled, so total_responses never exceeds responses_needed
// even under concurrent rewards; a nil survey means the capacity was gone.
func (r *Repository) IncrementResponses(ctx context.Context, surveyID int) (*domain.Survey, error) {
	query := `
        UPDATE surveys
        SET total_responses = total_responses + 1,
            status = CASE
                WHEN responses_needed IS NOT NULL AND total_responses + 1 >= responses_needed
                THEN 'COMPLETED' ELSE status
            END
        WHERE id = $1
          AND (responses_needed IS NULL OR total_responses < responses_needed)
        RETURNING ` + surveyColumns + `
	`
	survey, err := scanSurvey(r.db.QueryRow(ctx, query, surveyID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't increment survey responses", zap.Error(err))
		return nil, err
	}
	return survey, nil
}

// CountRespondents returns total responses and distinct respondents for stats.
func (r *Repository) CountRespondents(ctx context.Context, surveyID int) (int, int, error) {
	query := `
        SELECT COUNT(*), COUNT(DISTINCT respondent_id)
        FROM participations
        WHERE survey_id = $1
    `
	var total, unique int
	err := r.db.QueryRow(ctx, query, surveyID).Scan(&total, &unique)
	if err != nil {
		zap.L().Error("can't count survey respondents", zap.Error(err))
		return 0, 0, err
	}
	return total, unique, nil
}
