package models

import "time"

const StatusPending = "pending"

// Task field order matches the column order of task selects,
// rows are scanned into it positionally.
type Task struct {
	ID          int64
	Title       string
	Description string
	Status      string
	CreatedAt   time.Time
}
