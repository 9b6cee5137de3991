package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/felend/felend/internal/domain"
	"github.com/felend/felend/internal/dto"
	"github.com/felend/felend/internal/service/authservice"
	"github.com/felend/felend/pkg/utils"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=auth

type Service interface {
	Register(ctx context.Context, email, password, fullName string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GenerateToken(userID int) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create an account, assign a permanent respondent code and grant the welcome bonus.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Registration payload"
//	@Success		200		{object}	dto.AuthResponseDTO		"JWT token"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		409		{object}	utils.Response			"Email already taken"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.authService.Register(r.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{Token: token})
}

// Login godoc
//
//	@Summary		Authenticate a user
//	@Description	Verify credentials and return a JWT token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login payload"
//	@Success		200		{object}	dto.AuthResponseDTO	"JWT token"
//	@Failure		400		{object}	utils.Response		"Invalid request body"
//	@Failure		401		{object}	utils.Response		"Invalid credentials"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{Token: token})
}
