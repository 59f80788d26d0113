package awards

import (
	"time"

	"github.com/google/uuid"
)

// EvaluationResult - результат проверки награды, не сохраняется
type EvaluationResult struct {
	Eligible      bool             `json:"eligible"`
	CurrentScore  float64          `json:"current_score"`
	TargetScore   float64          `json:"target_score"`
	AchievedLevel *Threshold       `json:"achieved_level"`
	NextLevel     *Threshold       `json:"next_level,omitempty"`
	ClaimedLevels []string         `json:"claimed_levels"`
	Claimable     bool             `json:"claimable"`
	Thresholds    []Threshold      `json:"thresholds,omitempty"`
	Breakdown     *Breakdown       `json:"breakdown"`
	MatchingQSOs  []map[string]any `json:"matching_qsos,omitempty"`
	Details       Details          `json:"details"`
}

type Details struct {
	Msg string `json:"msg"`
}

// Breakdown - разбивка по списку целей
type Breakdown struct {
	TotalRequired int              `json:"total_required"`
	Achieved      []AchievedTarget `json:"achieved"`
	AchievedKeys  []string         `json:"achieved_keys"`
	Missing       []string         `json:"missing"`
}

type AchievedTarget struct {
	Target string   `json:"target"`
	QSO    *Contact `json:"qso"`
}

// Membership - награда, условиям которой соответствует контакт
type Membership struct {
	AwardID   uuid.UUID `json:"award_id"`
	AwardName string    `json:"award_name"`
}

// Claim - выданный уровень награды
type Claim struct {
	ID            uuid.UUID `json:"id"`
	UserID        string    `json:"user_id"`
	AwardID       uuid.UUID `json:"award_id"`
	Level         string    `json:"level"`
	ScoreSnapshot float64   `json:"score_snapshot"`
	SerialNumber  string    `json:"serial_number"`
	IssuedAt      time.Time `json:"issued_at"`
}

// Complete - весь список целей собран. Без разбивки (нет списка) - false
func (b *Breakdown) Complete() bool {
	return b != nil && len(b.Missing) == 0
}
