package awards

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	interf "github.com/glkeru/hamawards/internal/interfaces"
	models "github.com/glkeru/hamawards/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Действия аудита
const (
	ActionSubmitted  = "submitted"
	ActionSavedDraft = "saved_draft"
	ActionApprove    = "approve"
	ActionReject     = "reject"
	ActionRecall     = "recall"
)

type AwardCatalogueService struct {
	awards interf.AwardStorage
	cache  interf.CacheStorage // nil - без кэша
	logger *zap.Logger
}

func NewCatalogueService(awards interf.AwardStorage, cache interf.CacheStorage, logger *zap.Logger) *AwardCatalogueService {
	return &AwardCatalogueService{awards, cache, logger}
}

// Создать/обновить награду. Статус - только draft или pending
func (c *AwardCatalogueService) SaveAward(ctx context.Context, award models.Award, actor string) (models.Award, error) {
	now := time.Now().UTC()
	if award.Status != models.StatusPending {
		award.Status = models.StatusDraft
	}
	entry := models.AuditEntry{Time: now, Actor: actor, Action: ActionSavedDraft}
	if award.Status == models.StatusPending {
		entry.Action = ActionSubmitted
	}

	// если ID пустой, значит новая награда
	if award.ID == uuid.Nil {
		tracking, err := NewTrackingID()
		if err != nil {
			return models.Award{}, err
		}
		award.ID = uuid.New()
		award.TrackingID = tracking
		award.CreatorID = actor
		award.CreatedAt = now
		award.RejectReason = ""
		award.AuditLog = []models.AuditEntry{entry}
		if err := c.awards.SaveAward(ctx, award); err != nil {
			return models.Award{}, fmt.Errorf("save award: %w", err)
		}
		return award, nil
	}

	// обновление: служебные поля берутся из сохраненной награды
	old, err := c.awards.GetAward(ctx, award.ID)
	if err != nil {
		return models.Award{}, fmt.Errorf("get award %s: %w", award.ID, err)
	}
	award.TrackingID = old.TrackingID
	award.CreatorID = old.CreatorID
	award.CreatedAt = old.CreatedAt
	award.AuditLog = append(old.AuditLog, entry)
	award.RejectReason = old.RejectReason
	// повторная отправка на проверку очищает причину возврата
	if award.Status == models.StatusPending {
		award.RejectReason = ""
	}
	if err := c.awards.SaveAward(ctx, award); err != nil {
		return models.Award{}, fmt.Errorf("save award: %w", err)
	}
	c.bumpVersion(ctx, award.ID, "SaveAward")
	return award, nil
}

// Проверка награды администратором
func (c *AwardCatalogueService) AuditAward(ctx context.Context, awardID uuid.UUID, action string, reason string, actor string) error {
	reason = strings.TrimSpace(reason)

	var status string
	switch action {
	case ActionApprove:
		status = models.StatusApproved
	case ActionReject, ActionRecall:
		if reason == "" {
			return fmt.Errorf("%s requires a reason: %w", action, models.ErrInvalidAudit)
		}
		status = models.StatusReturned
	default:
		return fmt.Errorf("%q: %w", action, models.ErrInvalidAudit)
	}

	award, err := c.awards.GetAward(ctx, awardID)
	if err != nil {
		return fmt.Errorf("get award %s: %w", awardID, err)
	}
	award.Status = status
	award.RejectReason = reason
	award.AuditLog = append(award.AuditLog, models.AuditEntry{
		Time:   time.Now().UTC(),
		Actor:  actor,
		Action: action,
		Reason: reason,
	})
	if err := c.awards.SaveAward(ctx, award); err != nil {
		return fmt.Errorf("save award: %w", err)
	}
	c.bumpVersion(ctx, awardID, "AuditAward")
	c.logger.Info("award audited",
		zap.String("award", awardID.String()),
		zap.String("action", action),
		zap.String("actor", actor),
	)
	return nil
}

// Удалить свою награду (draft/returned)
func (c *AwardCatalogueService) DeleteAward(ctx context.Context, awardID uuid.UUID, actor string) error {
	if err := c.awards.DeleteAward(ctx, awardID, actor); err != nil {
		return fmt.Errorf("delete award %s: %w", awardID, err)
	}
	c.bumpVersion(ctx, awardID, "DeleteAward")
	return nil
}

// сохраненные проверки по награде больше не читаются
func (c *AwardCatalogueService) bumpVersion(ctx context.Context, awardID uuid.UUID, service string) {
	if c.cache == nil {
		return
	}
	if err := c.cache.BumpAwardVersion(ctx, awardID); err != nil {
		c.logger.Warn("cache version bump", zap.String("service", service), zap.String("award", awardID.String()), zap.Error(err))
	}
}

// NewTrackingID - 8 hex-символов в верхнем регистре
func NewTrackingID() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("tracking id: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}
