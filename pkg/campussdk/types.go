package campussdk

import (
	"time"

	"github.com/aussiebroadwan/campus/pkg/httpx"
)

// ErrorResponse is the JSON body of a failed API call.
type ErrorResponse = httpx.ErrorResponse

// MessageResponse is returned by calls that only confirm success.
type MessageResponse = httpx.MessageResponse

type HealthChecks struct {
	Database string `json:"database"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// Profile is a profile row as exposed over HTTP.
type Profile struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
	Project     string `json:"project"`
	ProjectDate string `json:"project_date"`
	OldProject  string `json:"oldproject"`
	ProfilePic  string `json:"profile_pic"`
}

// ProfileResponse is returned by /getProfile and /viewProfile. ImagePath is
// the public path of the picture, or of the default image.
type ProfileResponse struct {
	Profile   Profile `json:"profile"`
	ImagePath string  `json:"imagePath"`
}

// ProfilesByYearResponse lists a cohort. ProfilePic of each entry is
// already a public path.
type ProfilesByYearResponse struct {
	Profiles []Profile `json:"profiles"`
	Message  string    `json:"message,omitempty"`
}

type UserDetails struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Message struct {
	ID            int64     `json:"id"`
	SenderEmail   string    `json:"sender_email"`
	ReceiverEmail string    `json:"receiver_email"`
	Text          string    `json:"text"`
	Image         *string   `json:"image"`
	CreatedAt     time.Time `json:"created_at"`
}

type SendMessageResponse struct {
	Message   string   `json:"message"`
	Receivers []string `json:"receivers"`
}

// ProfileForm holds the profile fields submitted on create and update.
type ProfileForm struct {
	Name        string
	Degree      string
	Year        string
	Project     string
	ProjectDate string
	OldProject  string
}

// File is an upload attached to a multipart request.
type File struct {
	Name    string
	Content []byte
}
