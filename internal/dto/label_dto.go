package dto

import "time"

type CreateLabelRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type UpdateLabelRequest struct {
	Id    int
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type LabelResponse struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}
