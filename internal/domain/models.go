package domain

import "time"

// Survey lifecycle statuses.
const (
	SurveyStatusDraft     string = "DRAFT"
	SurveyStatusActive    string = "ACTIVE"
	SurveyStatusPaused    string = "PAUSED"
	SurveyStatusCompleted string = "COMPLETED"
)

// Ledger entry kinds.
const (
	// EntryKindEarned points received for a verified survey completion.
	EntryKindEarned string = "EARNED"
	// EntryKindSpent points paid out by a survey author for one response.
	EntryKindSpent string = "SPENT"
	// EntryKindBonus single-sided credit, e.g. the welcome bonus.
	EntryKindBonus string = "BONUS"
)

type User struct {
	ID             int       `db:"id"`
	Email          string    `db:"email"`
	PasswordHash   string    `db:"password_hash"`
	FullName       string    `db:"full_name"`
	Balance        int       `db:"balance"`
	RespondentCode string    `db:"respondent_code"`
	CreatedAt      time.Time `db:"created_at"`
}

// Category is a curated survey topic. Categories are seeded by migration;
// inactive ones stay referenced by old surveys but disappear from listings.
type Category struct {
	ID          int       `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
}

type Survey struct {
	ID                  int       `db:"id"`
	AuthorID            int       `db:"author_id"`
	Title               string    `db:"title"`
	Description         string    `db:"description"`
	FormURL             string    `db:"form_url"`
	RewardPerResponse   int       `db:"reward_per_response"`
	ResponsesNeeded     *int      `db:"responses_needed"`
	MaxResponsesPerUser int       `db:"max_responses_per_user"`
	Status              string    `db:"status"`
	TotalResponses      int       `db:"total_responses"`
	CreatedAt           time.Time `db:"created_at"`

	// Categories is filled from survey_categories by the service layer;
	// survey row scans leave it nil.
	Categories []Category `db:"-"`
}

// CapacityReached reports whether the optional response cap is exhausted.
func (s *Survey) CapacityReached() bool {
	return s.ResponsesNeeded != nil && s.TotalResponses >= *s.ResponsesNeeded
}

// Participation is one respondent's attempt lifecycle for one survey,
// unique on (survey, respondent). It is created unverified and unpaid and
// transitions to verified/paid exactly once.
type Participation struct {
	ID           int        `db:"id"`
	SurveyID     int        `db:"survey_id"`
	RespondentID int        `db:"respondent_id"`
	ExternalID   string     `db:"external_id"`
	ExternalAt   *time.Time `db:"external_at"`
	IsVerified   bool       `db:"is_verified"`
	RewardPaid   bool       `db:"reward_paid"`
	StartedAt    time.Time  `db:"started_at"`
	CompletedAt  *time.Time `db:"completed_at"`
}

// LedgerEntry is an immutable signed point movement. BalanceAfter snapshots
// the owning account's balance immediately after the entry was applied.
type LedgerEntry struct {
	ID           int       `db:"id"`
	UserID       int       `db:"user_id"`
	Kind         string    `db:"kind"`
	Amount       int       `db:"amount"`
	BalanceAfter int       `db:"balance_after"`
	Description  string    `db:"description"`
	SurveyID     *int      `db:"survey_id"`
	CreatedAt    time.Time `db:"created_at"`
}
