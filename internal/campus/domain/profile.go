package domain

import "time"

type Profile struct {
	ID          int64
	Email       string
	Name        string
	Degree      string
	Year        string // cohort, used as the directory filter
	Project     string
	ProjectDate string
	OldProject  string
	ProfilePic  string // blob reference, empty when none uploaded
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserSummary is the small projection shown in page headers.
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (p Profile) Summary() UserSummary {
	return UserSummary{ID: p.ID, Name: p.Name, Email: p.Email}
}
