package dto

import "time"

type ProfileResponse struct {
	User         string    `json:"user"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Type         string    `json:"type"`
	Tel          string    `json:"tel"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	WorkingHours string    `json:"working_hours"`
	File         string    `json:"file,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// UpdateProfileRequest enumerates the patchable profile fields explicitly.
// Anything else in the payload is rejected at binding time.
type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Tel          *string `json:"tel"`
	Location     *string `json:"location"`
	Description  *string `json:"description"`
	WorkingHours *string `json:"working_hours"`
	File         *string `json:"file"`
}
