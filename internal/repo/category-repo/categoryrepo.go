package categoryrepo

import (
	"context"

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

const categoryColumns = `id, name, description, is_active, created_at`

func scanCategories(rows pgx.Rows) ([]domain.Category, error) {
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		err := rows.Scan(
			&category.ID, &category.Name, &category.Description,
			&category.IsActive, &category.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan category row", zap.Error(err))
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

// FindActive lists categories shown to users, alphabetically by name.
func (r *Repository) FindActive(ctx context.Context) ([]domain.Category, error) {
	query := `
        SELECT ` + categoryColumns + `
        FROM categories
        WHERE is_active = TRUE
        ORDER BY name
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get active categories", zap.Error(err))
		return nil, err
	}
	return scanCategories(rows)
}

// FindActiveByIDs resolves the given ids to active categories; ids that do not
// exist or are inactive are simply absent from the result.
func (r *Repository) FindActiveByIDs(ctx context.Context, categoryIDs []int) ([]domain.Category, error) {
	query := `
        SELECT ` + categoryColumns + `
        FROM categories
        WHERE id = ANY($1) AND is_active = TRUE
        ORDER BY name
    `
	rows, err := r.db.Query(ctx, query, categoryIDs)
	if err != nil {
		zap.L().Error("can't get categories by ids", zap.Error(err))
		return nil, err
	}
	return scanCategories(rows)
}

func (r *Repository) FindBySurveyID(ctx context.Context, surveyID int) ([]domain.Category, error) {
	query := `
        SELECT c.id, c.name, c.description, c.is_active, c.created_at
        FROM categories c
        JOIN survey_categories sc ON sc.category_id = c.id
        WHERE sc.survey_id = $1
        ORDER BY c.name
    `
	rows, err := r.db.Query(ctx, query, surveyID)
	if err != nil {
		zap.L().Error("can't get survey categories", zap.Error(err))
		return nil, err
	}
	return scanCategories(rows)
}

// ReplaceForSurvey swaps the survey's category set in one transaction.
func (r *Repository) ReplaceForSurvey(ctx context.Context, surveyID int, categoryIDs []int) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, `DELETE FROM survey_categories WHERE survey_id = $1`, surveyID)
		if err != nil {
			zap.L().Error("can't clear survey categories", zap.Error(err))
			return err
		}
		for _, categoryID := range categoryIDs {
			_, err := r.db.Exec(ctx,
				`INSERT INTO survey_categories (survey_id, category_id) VALUES ($1, $2)`,
				surveyID, categoryID,
			)
			if err != nil {
				zap.L().Error("can't link survey category", zap.Error(err))
				return err
			}
		}
		return nil
	})
}
