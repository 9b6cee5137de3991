package dto

import "time"

type CreateSurveyRequestDTO struct {
	Title               string `json:"title" example:"Coffee habits"`
	Description         string `json:"description,omitempty" example:"5 quick questions"`
	FormURL             string `json:"form_url" example:"https://forms.example.com/d/abc123"`
	RewardPerResponse   int    `json:"reward_per_response" example:"10"`
	ResponsesNeeded     *int   `json:"responses_needed,omitempty" example:"100"`
	MaxResponsesPerUser int    `json:"max_responses_per_user,omitempty" example:"1"`
	CategoryIDs         []int  `json:"category_ids,omitempty" example:"2,6"`
}

type UpdateSurveyStatusRequestDTO struct {
	Status string `json:"status" example:"ACTIVE"`
}

type SurveyResponseDTO struct {
	ID                  int           `json:"id" example:"3"`
	AuthorID            int           `json:"author_id" example:"1"`
	Title               string        `json:"title" example:"Coffee habits"`
	Description         string        `json:"description,omitempty" example:"5 quick questions"`
	FormURL             string        `json:"form_url" example:"https://forms.example.com/d/abc123"`
	RewardPerResponse   int           `json:"reward_per_response" example:"10"`
	ResponsesNeeded     *int          `json:"responses_needed,omitempty" example:"100"`
	MaxResponsesPerUser int           `json:"max_responses_per_user" example:"1"`
	Status              string        `json:"status" example:"ACTIVE"`
	TotalResponses      int           `json:"total_responses" example:"42"`
	Categories          []CategoryDTO `json:"categories,omitempty"`
	CreatedAt           time.Time     `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}

type SurveyFeedItemDTO struct {
	SurveyResponseDTO
	CanParticipate bool `json:"can_participate" example:"true"`
	MyResponses    int  `json:"my_responses" example:"0"`
}

type SurveyStatsResponseDTO struct {
	TotalResponses    int     `json:"total_responses" example:"42"`
	UniqueRespondents int     `json:"unique_respondents" example:"40"`
	TotalSpent        int     `json:"total_spent" example:"420"`
	ResponsesNeeded   *int    `json:"responses_needed,omitempty" example:"100"`
	CompletionRate    float64 `json:"completion_rate" example:"42"`
}
