package domain

import "time"

// MBTIResult is a classification saved for a user.
type MBTIResult struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id,omitempty"`
	Type        TypeCode       `json:"type"`
	DisplayType string         `json:"display_type"`
	Tendency    TendencyVector `json:"tendency"`
	CreatedAt   time.Time      `json:"created_at"`
}

// AnswerDraft holds a partially answered questionnaire.
type AnswerDraft struct {
	UserID    string    `json:"user_id"`
	Answers   []Answer  `json:"answers"`
	UpdatedAt time.Time `json:"updated_at"`
}
