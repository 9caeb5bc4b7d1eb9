package services

import (
	"errors"
	"strings"

	"github.com/Conceptual-Machines/magda-voicer/internal/models"
	"gorm.io/gorm"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// ErrHistoryDisabled is returned by reads when no database is configured
var ErrHistoryDisabled = errors.New("voicing history is disabled")

// HistoryService stores voiced chords. With a nil DB it records nothing.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Enabled reports whether a database is attached
func (s *HistoryService) Enabled() bool {
	return s != nil && s.db != nil
}

// Record stores every chord of a request in one batch
func (s *HistoryService) Record(requestID, userID, key string, chords []models.VoicedChord) error {
	if !s.Enabled() || len(chords) == 0 {
		return nil
	}

	logs := make([]models.VoicingLog, 0, len(chords))
	for _, c := range chords {
		logs = append(logs, models.VoicingLog{
			RequestID: requestID,
			UserID:    userID,
			Key:       key,
			Chord:     c.Chord,
			Symbol:    c.Symbol,
			TopNote:   c.TopNote,
			Notes:     strings.Join(c.Notes, " "),
		})
	}
	return s.db.Create(&logs).Error
}

// Recent returns the newest entries first
func (s *HistoryService) Recent(limit int) ([]models.VoicingLog, error) {
	if !s.Enabled() {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	var logs []models.VoicingLog
	if err := s.db.Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
