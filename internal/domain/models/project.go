package models

import "time"

// SavedProject is one history entry: an immutable value snapshot of a
// generated document together with the layout settings it was styled with.
type SavedProject struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Doc       EditorialDocument `json:"doc"`
	Settings  LayoutSettings    `json:"settings"`
}
