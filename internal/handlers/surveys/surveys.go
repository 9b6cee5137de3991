package surveys

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/felend/felend/internal/apperrors"
	"github.com/felend/felend/internal/domain"
	"github.com/felend/felend/internal/dto"
	"github.com/felend/felend/internal/service/surveyservice"
	"github.com/felend/felend/pkg/auth"
	"github.com/felend/felend/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=surveys.go -destination=surveys_mock.go -package=surveys

type Service interface {
	Create(ctx context.Context, authorID int, params surveyservice.CreateParams) (*domain.Survey, error)
	Get(ctx context.Context, surveyID int) (*domain.Survey, error)
	UpdateStatus(ctx context.Context, surveyID, userID int, status string) (*domain.Survey, error)
	Delete(ctx context.Context, surveyID, userID int) error
	GetFeed(ctx context.Context, viewerID int, limit, offset int) ([]surveyservice.FeedItem, error)
	GetMySurveys(ctx context.Context, authorID int) ([]domain.Survey, error)
	GetStats(ctx context.Context, surveyID int) (*surveyservice.Stats, error)
}

type SurveyHandler struct {
	surveyService Service
}

func New(surveyService Service) *SurveyHandler {
	return &SurveyHandler{
		surveyService: surveyService,
	}
}

// Create godoc
//
//	@Summary		Create a survey
//	@Description	Register a new survey in DRAFT. The author must hold at least the estimated payout.
//	@Tags			Surveys
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateSurveyRequestDTO	true	"Survey payload"
//	@Success		201		{object}	dto.SurveyResponseDTO		"Created survey"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Balance below estimated cost"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/surveys [post]
func (h *SurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateSurveyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.FormURL == "" || req.RewardPerResponse <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "title, form_url and a positive reward_per_response are required")
		return
	}

	survey, err := h.surveyService.Create(r.Context(), userID, surveyservice.CreateParams{
		Title:               req.Title,
		Description:         req.Description,
		FormURL:             req.FormURL,
		RewardPerResponse:   req.RewardPerResponse,
		ResponsesNeeded:     req.ResponsesNeeded,
		MaxResponsesPerUser: req.MaxResponsesPerUser,
		CategoryIDs:         req.CategoryIDs,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toSurveyDTO(survey))
}

// Get godoc
//
//	@Summary		Get a survey
//	@Tags			Surveys
//	@Security		BearerAuth
//	@Produce		json
//	@Param			surveyID	path		int						true	"Survey ID"
//	@Success		200			{object}	dto.SurveyResponseDTO	"Survey"
//	@Failure		401			{object}	utils.Response			"User not authorized"
//	@Failure		404			{object}	utils.Response			"Survey not found"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/surveys/{surveyID} [get]
func (h *SurveyHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID, err := strconv.Atoi(chi.URLParam(r, "surveyID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	survey, err := h.surveyService.Get(r.Context(), surveyID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSurveyDTO(survey))
}

// UpdateStatus godoc
//
//	@Summary		Update survey status
//	@Description	Author-driven lifecycle change between DRAFT, ACTIVE and PAUSED. COMPLETED is set automatically when capacity is reached.
//	@Tags			Surveys
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			surveyID	path		int								true	"Survey ID"
//	@Param			request		body		dto.UpdateSurveyStatusRequestDTO	true	"New status"
//	@Success		200			{object}	dto.SurveyResponseDTO			"Updated survey"
//	@Failure		401			{object}	utils.Response					"User not authorized"
//	@Failure		403			{object}	utils.Response					"Not the author"
//	@Failure		404			{object}	utils.Response					"Survey not found"
//	@Failure		409			{object}	utils.Response					"Transition not allowed"
//	@Failure		500			{object}	utils.Response					"Internal server error"
//	@Router			/api/surveys/{surveyID}/status [patch]
func (h *SurveyHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	surveyID, err := strconv.Atoi(chi.URLParam(r, "surveyID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	var req dto.UpdateSurveyStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	survey, err := h.surveyService.UpdateStatus(r.Context(), surveyID, userID, req.Status)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSurveyDTO(survey))
}

// Delete godoc
//
//	@Summary		Delete a survey
//	@Description	Only the author may delete, and only while the survey has no responses.
//	@Tags			Surveys
//	@Security		BearerAuth
//	@Param			surveyID	path	int	true	"Survey ID"
//	@Success		204
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the author"
//	@Failure		404	{object}	utils.Response	"Survey not found"
//	@Failure		409	{object}	utils.Response	"Survey has responses"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/surveys/{surveyID} [delete]
func (h *SurveyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	surveyID, err := strconv.Atoi(chi.URLParam(r, "surveyID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	if err := h.surveyService.Delete(r.Context(), surveyID, userID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetFeed godoc
//
//	@Summary		Get active surveys feed
//	@Description	Active surveys, newest first, with per-viewer participation hints.
//	@Tags			Surveys
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int						false	"Page size (default 50)"
//	@Param			offset	query		int						false	"Page offset"
//	@Success		200		{array}		dto.SurveyFeedItemDTO	"Surveys"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/surveys [get]
func (h *SurveyHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	items, err := h.surveyService.GetFeed(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch surveys")
		return
	}

	response := make([]dto.SurveyFeedItemDTO, len(items))
	for i, item := range items {
		response[i] = dto.SurveyFeedItemDTO{
			SurveyResponseDTO: *toSurveyDTO(&item.Survey),
			CanParticipate:    item.CanParticipate,
			MyResponses:       item.MyResponses,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetMySurveys godoc
//
//	@Summary		Get my surveys
//	@Tags			Surveys
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SurveyResponseDTO	"Surveys"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/surveys [get]
func (h *SurveyHandler) GetMySurveys(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	surveys, err := h.surveyService.GetMySurveys(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch surveys")
		return
	}

	response := make([]dto.SurveyResponseDTO, len(surveys))
	for i := range surveys {
		response[i] = *toSurveyDTO(&surveys[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetStats godoc
//
//	@Summary		Get survey statistics
//	@Tags			Surveys
//	@Security		BearerAuth
//	@Produce		json
//	@Param			surveyID	path		int							true	"Survey ID"
//	@Success		200			{object}	dto.SurveyStatsResponseDTO	"Statistics"
//	@Failure		401			{object}	utils.Response				"User not authorized"
//	@Failure		404			{object}	utils.Response				"Survey not found"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/surveys/{surveyID}/stats [get]
func (h *SurveyHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	surveyID, err := strconv.Atoi(chi.URLParam(r, "surveyID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	stats, err := h.surveyService.GetStats(r.Context(), surveyID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SurveyStatsResponseDTO{
		TotalResponses:    stats.TotalResponses,
		UniqueRespondents: stats.UniqueRespondents,
		TotalSpent:        stats.TotalSpent,
		ResponsesNeeded:   stats.ResponsesNeeded,
		CompletionRate:    stats.CompletionRate,
	})
}

func toSurveyDTO(survey *domain.Survey) *dto.SurveyResponseDTO {
	var categories []dto.CategoryDTO
	for _, category := range survey.Categories {
		categories = append(categories, dto.CategoryDTO{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
		})
	}
	return &dto.SurveyResponseDTO{
		ID:                  survey.ID,
		AuthorID:            survey.AuthorID,
		Title:               survey.Title,
		Description:         survey.Description,
		FormURL:             survey.FormURL,
		RewardPerResponse:   survey.RewardPerResponse,
		ResponsesNeeded:     survey.ResponsesNeeded,
		MaxResponsesPerUser: survey.MaxResponsesPerUser,
		Status:              survey.Status,
		TotalResponses:      survey.TotalResponses,
		Categories:          categories,
		CreatedAt:           survey.CreatedAt,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrInvalidState):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return def
	}
	return value
}
