package domain

import "time"

// Message is one delivered copy of a broadcast. Immutable once stored.
type Message struct {
	ID            int64
	SenderEmail   string
	ReceiverEmail string
	Text          string
	Image         string // blob reference, empty when none
	CreatedAt     time.Time
}
