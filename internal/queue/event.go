// Package queue defines message payloads exchanged over the message broker.
package queue

// RatingSubmittedEvent is published after every successful rating upsert.
// It carries enough information for downstream consumers to log, notify,
// or feed analytics without querying the primary database.  Action is
// "created" for a first submission and "updated" for an overwrite.
type RatingSubmittedEvent struct {
    UserID      uint64  `json:"user_id"`
    StoreID     uint64  `json:"store_id"`
    Rating      uint8   `json:"rating"`
    Action      string  `json:"action"`
    AvgRating   float64 `json:"avg_rating"`
    SubmittedAt string  `json:"submitted_at"`
}
