package dto

import "time"

type BalanceResponseDTO struct {
	Balance int `json:"balance" example:"150"`
}

type TransactionResponseDTO struct {
	Kind         string    `json:"kind" example:"EARNED"`
	Amount       int       `json:"amount" example:"10"`
	BalanceAfter int       `json:"balance_after" example:"20"`
	Description  string    `json:"description,omitempty" example:"Earned 10 points for completing survey: Coffee habits"`
	SurveyID     *int      `json:"survey_id,omitempty" example:"3"`
	CreatedAt    time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}

type BalanceSummaryResponseDTO struct {
	CurrentBalance     int `json:"current_balance" example:"150"`
	EarnedTransactions int `json:"total_earned_transactions" example:"12"`
	SpentTransactions  int `json:"total_spent_transactions" example:"4"`
}
