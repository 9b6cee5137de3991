package service

import (
	"github.com/felend/felend/internal/handlers/auth"
	"github.com/felend/felend/internal/handlers/balance"
	"github.com/felend/felend/internal/handlers/categories"
	"github.com/felend/felend/internal/handlers/participation"
	"github.com/felend/felend/internal/handlers/surveys"

	pkgauth "github.com/felend/felend/pkg/auth"

	"github.com/felend/felend/internal/config"
	"github.com/felend/felend/internal/pg"
	"github.com/felend/felend/internal/repo"
	"github.com/felend/felend/internal/service/authservice"
	"github.com/felend/felend/internal/service/balanceservice"
	"github.com/felend/felend/internal/service/categoryservice"
	"github.com/felend/felend/internal/service/participationservice"
	"github.com/felend/felend/internal/service/surveyservice"
)

type Services struct {
	AuthService          auth.Service
	BalanceService       balance.Service
	SurveyService        surveys.Service
	ParticipationService participation.Service
	CategoryService      categories.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager) *Services {
	balanceService := balanceservice.New(repo.UserRepo, repo.LedgerRepo, txManager)
	surveyService := surveyservice.New(repo.SurveyRepo, repo.UserRepo, repo.ParticipationRepo, repo.CategoryRepo)
	participationService := participationservice.New(repo.SurveyRepo, repo.UserRepo, repo.ParticipationRepo, repo.LedgerRepo, txManager)
	authService := authservice.New(repo.UserRepo, balanceService, &pkgauth.HashService{}, &pkgauth.JWTService{}, cfg.WelcomeBonus)
	categoryService := categoryservice.New(repo.CategoryRepo)

	return &Services{
		AuthService:          authService,
		BalanceService:       balanceService,
		SurveyService:        surveyService,
		ParticipationService: participationService,
		CategoryService:      categoryService,
	}
}
