package domain

import "time"

// Subscription is a chat that receives the daily agenda message.
type Subscription struct {
	ChatID    int64
	Title     string
	CreatedAt time.Time
}
