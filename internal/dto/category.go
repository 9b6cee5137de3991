package dto

type CategoryDTO struct {
	ID          int    `json:"id" example:"2"`
	Name        string `json:"name" example:"Education"`
	Description string `json:"description,omitempty" example:"Education, learning and academic life"`
}

type CategoryListResponseDTO struct {
	Categories []CategoryDTO `json:"categories"`
	Total      int           `json:"total" example:"6"`
}
