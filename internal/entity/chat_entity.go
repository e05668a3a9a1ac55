package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultMaxTokens is the response-length bound applied when a user has no
// settings row yet, or when resolving one fails mid-request.
const DefaultMaxTokens = 50

type ChatSettings struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	MaxTokens int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ChatEntry struct {
	Id        uint64
	UserId    uuid.UUID
	Message   string
	Response  string
	CreatedAt time.Time
}
