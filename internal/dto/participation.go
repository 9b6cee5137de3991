package dto

import "time"

type StartParticipationResponseDTO struct {
	FormURL        string `json:"form_url" example:"https://forms.example.com/d/abc123"`
	RespondentCode string `json:"respondent_code" example:"RESP_453007826358"`
	Instructions   string `json:"instructions"`
}

type VerifyParticipationResponseDTO struct {
	Verified     bool   `json:"verified" example:"true"`
	RewardEarned int    `json:"reward_earned" example:"10"`
	NewBalance   int    `json:"new_balance" example:"20"`
	Message      string `json:"message"`
}

type ParticipationStatusResponseDTO struct {
	Status         string     `json:"status" example:"NOT_STARTED"`
	CanParticipate bool       `json:"can_participate" example:"true"`
	RewardEarned   int        `json:"reward_earned" example:"0"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

type MyResponseDTO struct {
	SurveyID    int        `json:"survey_id" example:"3"`
	IsVerified  bool       `json:"is_verified" example:"true"`
	RewardPaid  bool       `json:"reward_paid" example:"true"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
