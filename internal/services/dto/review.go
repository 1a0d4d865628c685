package dto

import "time"

type CreateReviewRequest struct {
	BusinessUserID string `json:"business_user" validate:"required"`
	Rating         int    `json:"rating" validate:"required"`
	Description    string `json:"description"`
}

// UpdateReviewRequest is a partial update; rating and description are the
// editable fields.
type UpdateReviewRequest struct {
	Rating      *int    `json:"rating"`
	Description *string `json:"description"`
}

type ReviewResponse struct {
	ID           string    `json:"id"`
	BusinessUser string    `json:"business_user"`
	Reviewer     string    `json:"reviewer"`
	Rating       int       `json:"rating"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ListReviewsParams struct {
	BusinessUserID string
	ReviewerID     string
	Ordering       string
}
