package balance

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/felend/felend/internal/apperrors"
	"github.com/felend/felend/internal/domain"
	"github.com/felend/felend/internal/dto"
	"github.com/felend/felend/internal/service/balanceservice"
	"github.com/felend/felend/pkg/auth"
	"github.com/felend/felend/pkg/utils"
)

//go:generate mockgen -source=balance.go -destination=balance_mock.go -package=balance

type Service interface {
	GetBalance(ctx context.Context, userID int) (int, error)
	GetTransactions(ctx context.Context, userID int, kind string, limit, offset int) ([]domain.LedgerEntry, error)
	GetSummary(ctx context.Context, userID int) (*balanceservice.Summary, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the current points balance for the authenticated user.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: balance})
}

// GetTransactions godoc
//
//	@Summary		Get ledger history
//	@Description	List the authenticated user's ledger entries, newest first. Filterable by kind.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			kind	query		string							false	"EARNED, SPENT or BONUS"
//	@Param			limit	query		int								false	"Page size (default 50)"
//	@Param			offset	query		int								false	"Page offset"
//	@Success		200		{array}		dto.TransactionResponseDTO		"Ledger entries"
//	@Success		204		{object}	utils.Response					"No entries"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/balance/transactions [get]
func (h *BalanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)
	kind := r.URL.Query().Get("kind")

	entries, err := h.balanceService.GetTransactions(r.Context(), userID, kind, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(entries))
	for i, entry := range entries {
		response[i] = dto.TransactionResponseDTO{
			Kind:         entry.Kind,
			Amount:       entry.Amount,
			BalanceAfter: entry.BalanceAfter,
			Description:  entry.Description,
			SurveyID:     entry.SurveyID,
			CreatedAt:    entry.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetSummary godoc
//
//	@Summary		Get balance summary
//	@Description	Current balance plus earned/spent transaction counts.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceSummaryResponseDTO	"Balance summary"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/user/balance/summary [get]
func (h *BalanceHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	summary, err := h.balanceService.GetSummary(r.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceSummaryResponseDTO{
		CurrentBalance:     summary.CurrentBalance,
		EarnedTransactions: summary.EarnedTransactions,
		SpentTransactions:  summary.SpentTransactions,
	})
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
