package participation

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/felend/felend/internal/apperrors"
	"github.com/felend/felend/internal/domain"
	"github.com/felend/felend/internal/dto"
	"github.com/felend/felend/internal/service/participationservice"
	"github.com/felend/felend/pkg/auth"
	"github.com/felend/felend/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=participation.go -destination=participation_mock.go -package=participation

type Service interface {
	Start(ctx context.Context, surveyID, respondentID int) (*participationservice.StartResult, error)
	VerifyAndReward(ctx context.Context, surveyID, respondentID int) (*participationservice.VerifyResult, error)
	GetStatus(ctx context.Context, surveyID, respondentID int) (*participationservice.Status, error)
	GetUserResponses(ctx context.Context, respondentID int, limit, offset int) ([]domain.Participation, error)
}

type ParticipationHandler struct {
	participationService Service
}

func New(participationService Service) *ParticipationHandler {
	return &ParticipationHandler{
		participationService: participationService,
	}
}

// Start godoc
//
//	@Summary		Start survey participation
//	@Description	Create or resume the respondent's attempt and return the form link and instructions.
//	@Tags			Participation
//	@Security		BearerAuth
//	@Produce		json
//	@Param			surveyID	path		int									true	"Survey ID"
//	@Success		200			{object}	dto.StartParticipationResponseDTO	"Form link and instructions"
//	@Failure		401			{object}	utils.Response						"User not authorized"
//	@Failure		403			{object}	utils.Response						"Author of the survey"
//	@Failure		404			{object}	utils.Response						"Survey not found"
//	@Failure		409			{object}	utils.Response						"Survey not active, capacity or limit reached"
//	@Failure		500			{object}	utils.Response						"Internal server error"
//	@Router			/api/surveys/{surveyID}/participate [post]
func (h *ParticipationHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	surveyID, err := strconv.Atoi(chi.URLParam(r, "surveyID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	result, err := h.participationService.Start(r.Context(), surveyID, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StartParticipationResponseDTO{
		FormURL:        result.FormURL,
		RespondentCode: result.RespondentCode,
		Instructions:   result.Instructions,
	})
}

// Verify godoc
//
//	@Summary		Verify completion and pay the reward
//	@Description	Pay the reward for a completed attempt: credits the respondent, debits the author and writes both ledger entries atomically. Safe to retry; a second call returns 409.
//	@Tags			Participation
//	@Security		BearerAuth
//	@Produce		json
//	@Param			surveyID	path		int									true	"Survey ID"
//	@Success		200			{object}	dto.VerifyParticipationResponseDTO	"Reward details"
//	@Failure		401			{object}	utils.Response						"User not authorized"
//	@Failure		402			{object}	utils.Response						"Author balance too low"
//	@Failure		404			{object}	utils.Response						"Survey not found"
//	@Failure		409			{object}	utils.Response						"Not started or already rewarded"
//	@Failure		500			{object}	utils.Response						"Internal server error"
//	@Router			/api/surveys/{surveyID}/verify [post]
func (h *ParticipationHandler) Verify(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	surveyID, err := strconv.Atoi(chi.URLParam(r, "surveyID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	result, err := h.participationService.VerifyAndReward(r.Context(), surveyID, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyParticipationResponseDTO{
		Verified:     result.Verified,
		RewardEarned: result.RewardEarned,
		NewBalance:   result.NewBalance,
		Message:      result.Message,
	})
}

// GetStatus godoc
//
//	@Summary		Get participation status
//	@Description	NOT_STARTED (with a live eligibility flag), IN_PROGRESS or COMPLETED with the reward earned.
//	@Tags			Participation
//	@Security		BearerAuth
//	@Produce		json
//	@Param			surveyID	path		int									true	"Survey ID"
//	@Success		200			{object}	dto.ParticipationStatusResponseDTO	"Attempt status"
//	@Failure		401			{object}	utils.Response						"User not authorized"
//	@Failure		404			{object}	utils.Response						"Survey not found"
//	@Failure		500			{object}	utils.Response						"Internal server error"
//	@Router			/api/surveys/{surveyID}/status [get]
func (h *ParticipationHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	surveyID, err := strconv.Atoi(chi.URLParam(r, "surveyID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	status, err := h.participationService.GetStatus(r.Context(), surveyID, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ParticipationStatusResponseDTO{
		Status:         status.State,
		CanParticipate: status.CanParticipate,
		RewardEarned:   status.RewardEarned,
		StartedAt:      status.StartedAt,
		CompletedAt:    status.CompletedAt,
	})
}

// GetMyResponses godoc
//
//	@Summary		Get my responses
//	@Description	List the authenticated user's attempts across all surveys, newest first.
//	@Tags			Participation
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int					false	"Page size (default 50)"
//	@Param			offset	query		int					false	"Page offset"
//	@Success		200		{array}		dto.MyResponseDTO	"Attempts"
//	@Success		204		{object}	utils.Response		"No attempts"
//	@Failure		401		{object}	utils.Response		"User not authorized"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/user/responses [get]
func (h *ParticipationHandler) GetMyResponses(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	participations, err := h.participationService.GetUserResponses(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch responses")
		return
	}
	if len(participations) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Responses not found")
		return
	}

	response := make([]dto.MyResponseDTO, len(participations))
	for i, p := range participations {
		response[i] = dto.MyResponseDTO{
			SurveyID:    p.SurveyID,
			IsVerified:  p.IsVerified,
			RewardPaid:  p.RewardPaid,
			StartedAt:   p.StartedAt,
			CompletedAt: p.CompletedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
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
