package handlers

import (
	"net/http"

	_ "github.com/felend/felend/docs"
	authhandlers "github.com/felend/felend/internal/handlers/auth"
	balancehandlers "github.com/felend/felend/internal/handlers/balance"
	categorieshandlers "github.com/felend/felend/internal/handlers/categories"
	participationhandlers "github.com/felend/felend/internal/handlers/participation"
	surveyshandlers "github.com/felend/felend/internal/handlers/surveys"
	"github.com/felend/felend/internal/service"
	"github.com/felend/felend/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type SurveyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetFeed(w http.ResponseWriter, r *http.Request)
	GetMySurveys(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type ParticipationHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
	GetMyResponses(w http.ResponseWriter, r *http.Request)
}

type CategoryHandler interface {
	GetCategories(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler          AuthHandler
	BalanceHandler       BalanceHandler
	SurveyHandler        SurveyHandler
	ParticipationHandler ParticipationHandler
	CategoryHandler      CategoryHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:          authhandlers.New(s.AuthService),
		BalanceHandler:       balancehandlers.New(s.BalanceService),
		SurveyHandler:        surveyshandlers.New(s.SurveyService),
		ParticipationHandler: participationhandlers.New(s.ParticipationService),
		CategoryHandler:      categorieshandlers.New(s.CategoryService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", h.CategoryHandler.GetCategories)

		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Route("/balance", func(r chi.Router) {
					r.Get("/", h.BalanceHandler.GetBalance)
					r.Get("/transactions", h.BalanceHandler.GetTransactions)
					r.Get("/summary", h.BalanceHandler.GetSummary)
				})
				r.Get("/surveys", h.SurveyHandler.GetMySurveys)
				r.Get("/responses", h.ParticipationHandler.GetMyResponses)
			})
		})

		r.Route("/surveys", func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/", h.SurveyHandler.Create)
			r.Get("/", h.SurveyHandler.GetFeed)
			r.Route("/{surveyID}", func(r chi.Router) {
				r.Get("/", h.SurveyHandler.Get)
				r.Delete("/", h.SurveyHandler.Delete)
				r.Patch("/status", h.SurveyHandler.UpdateStatus)
				r.Get("/stats", h.SurveyHandler.GetStats)
				r.Post("/participate", h.ParticipationHandler.Start)
				r.Post("/verify", h.ParticipationHandler.Verify)
				r.Get("/status", h.ParticipationHandler.GetStatus)
			})
		})
	})

	return r
}
