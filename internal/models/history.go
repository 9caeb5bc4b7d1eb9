package models

import (
	"time"
)

// VoicingLog records one voiced chord for the history endpoint
type VoicingLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	RequestID string    `gorm:"index" json:"request_id"`
	UserID    string    `gorm:"index" json:"user_id"`
	Key       string    `gorm:"not null" json:"key"`
	Chord     string    `gorm:"not null" json:"chord"`
	Symbol    string    `gorm:"not null" json:"symbol"`
	TopNote   string    `gorm:"not null" json:"top_note"`
	Notes     string    `gorm:"type:text;not null" json:"notes"` // Space-separated, e.g. "C4 E4 G3 B3"
}
