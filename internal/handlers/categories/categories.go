package categories

import (
	"context"
	"net/http"

	"github.com/felend/felend/internal/domain"
	"github.com/felend/felend/internal/dto"
	"github.com/felend/felend/pkg/utils"
)

//go:generate mockgen -source=categories.go -destination=categories_mock.go -package=categories

type Service interface {
	List(ctx context.Context) ([]domain.Category, error)
}

type CategoryHandler struct {
	categoryService Service
}

func New(categoryService Service) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// GetCategories godoc
//
//	@Summary		List survey categories
//	@Description	List all active categories, sorted by name. Public, no authorization required.
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{object}	dto.CategoryListResponseDTO	"Active categories"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/categories [get]
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	response := dto.CategoryListResponseDTO{
		Categories: make([]dto.CategoryDTO, len(categories)),
		Total:      len(categories),
	}
	for i, category := range categories {
		response.Categories[i] = dto.CategoryDTO{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
