package awards

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"time"

	models "github.com/glkeru/hamawards/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var serialLimit = big.NewInt(1e16)

// попыток выдать уровень при совпадении номера
const serialAttempts = 3

// Получение достигнутого уровня награды
func (s *AwardEngineService) Claim(ctx context.Context, userID string, awardID uuid.UUID) (*models.Claim, error) {
	ctx, span := tracer.Start(ctx, "Claim")
	defer span.End()

	// всегда свежий расчет, кэш не используется
	result, err := s.evaluate(ctx, userID, awardID, false, false)
	if err != nil {
		return nil, err
	}
	if !result.Eligible {
		claimsTotal.WithLabelValues("not_eligible").Inc()
		return nil, models.ErrNotEligible
	}
	level := result.AchievedLevel.Name
	if slices.Contains(result.ClaimedLevels, level) {
		claimsTotal.WithLabelValues("already_claimed").Inc()
		return nil, fmt.Errorf("%s: %w", level, models.ErrAlreadyClaimed)
	}

	claim := models.Claim{
		UserID:        userID,
		AwardID:       awardID,
		Level:         level,
		ScoreSnapshot: result.CurrentScore,
	}
	// уникальность (user, award, level) и номера проверяет БД, при совпадении номера - новый номер
	for attempt := 1; ; attempt++ {
		claim.ID = uuid.New()
		claim.SerialNumber, err = NewSerial()
		if err != nil {
			return nil, err
		}
		claim.IssuedAt = time.Now().UTC()

		err = s.claims.InsertClaim(ctx, claim)
		if err == nil {
			break
		}
		if errors.Is(err, models.ErrSerialTaken) && attempt < serialAttempts {
			s.logger.Warn("serial collision", zap.String("serial", claim.SerialNumber), zap.Int("attempt", attempt))
			continue
		}
		if errors.Is(err, models.ErrAlreadyClaimed) {
			claimsTotal.WithLabelValues("already_claimed").Inc()
			return nil, err
		}
		s.Log("Insert claim", "Claim", err)
		return nil, err
	}
	claimsTotal.WithLabelValues("issued").Inc()
	s.logger.Info("claim issued",
		zap.String("user", userID),
		zap.String("award", awardID.String()),
		zap.String("level", level),
	)

	s.invalidate(ctx, userID, "Claim")
	return &claim, nil
}

// NewSerial - 16 случайных цифр
func NewSerial() (string, error) {
	n, err := rand.Int(rand.Reader, serialLimit)
	if err != nil {
		return "", fmt.Errorf("serial: %w", err)
	}
	return fmt.Sprintf("%016d", n), nil
}
