package repo

import (
	"github.com/felend/felend/internal/pg"
	categoryrepo "github.com/felend/felend/internal/repo/category-repo"
	ledgerrepo "github.com/felend/felend/internal/repo/ledger-repo"
	participationrepo "github.com/felend/felend/internal/repo/participation-repo"
	surveyrepo "github.com/felend/felend/internal/repo/survey-repo"
	userrepo "github.com/felend/felend/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo          *userrepo.Repository
	SurveyRepo        *surveyrepo.Repository
	ParticipationRepo *participationrepo.Repository
	LedgerRepo        *ledgerrepo.Repository
	CategoryRepo      *categoryrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:          userrepo.New(conn),
		SurveyRepo:        surveyrepo.New(conn, txManager),
		ParticipationRepo: participationrepo.New(conn, txManager),
		LedgerRepo:        ledgerrepo.New(conn),
		CategoryRepo:      categoryrepo.New(conn, txManager),
	}
}
