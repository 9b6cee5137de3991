package dto

type RegisterRequestDTO struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"secret"`
	FullName string `json:"full_name" example:"Jane Doe"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"secret"`
}

type AuthResponseDTO struct {
	Token string `json:"token"`
}

type UserResponseDTO struct {
	ID             int    `json:"id" example:"1"`
	Email          string `json:"email" example:"user@example.com"`
	FullName       string `json:"full_name" example:"Jane Doe"`
	Balance        int    `json:"balance" example:"10"`
	RespondentCode string `json:"respondent_code" example:"RESP_453007826358"`
}
