package awards

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	interf "github.com/glkeru/hamawards/internal/interfaces"
	models "github.com/glkeru/hamawards/internal/models"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const legacyMsg = "legacy rules are not supported by automatic checking"

var tracer = otel.Tracer("awards")

type AwardEngineService struct {
	awards   interf.AwardStorage
	contacts interf.ContactStorage
	claims   interf.ClaimStorage
	cache    interf.CacheStorage // nil - без кэша
	logger   *zap.Logger
}

func NewAwardService(awards interf.AwardStorage, contacts interf.ContactStorage, claims interf.ClaimStorage, cache interf.CacheStorage, logger *zap.Logger) *AwardEngineService {
	return &AwardEngineService{awards, contacts, claims, cache, logger}
}

// log
func (s *AwardEngineService) Log(msg string, service string, err error) {
	s.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

// Проверка награды для пользователя
func (s *AwardEngineService) Evaluate(ctx context.Context, userID string, awardID uuid.UUID, includeQSOs bool) (*models.EvaluationResult, error) {
	return s.evaluate(ctx, userID, awardID, includeQSOs, true)
}

func (s *AwardEngineService) evaluate(ctx context.Context, userID string, awardID uuid.UUID, includeQSOs bool, useCache bool) (*models.EvaluationResult, error) {
	ctx, span := tracer.Start(ctx, "Evaluate",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("award.id", awardID.String()),
			attribute.Bool("include_qsos", includeQSOs),
		),
	)
	defer span.End()

	// версия читается до награды: изменение после чтения уводит запись под старый ключ
	key, cacheable := "", false
	if useCache {
		key, cacheable = s.cacheKey(ctx, awardID, includeQSOs)
	}
	if cacheable {
		if result, ok := s.fromCache(ctx, userID, key); ok {
			evaluationsTotal.WithLabelValues("cached").Inc()
			return result, nil
		}
	}

	// award, контакты и полученные уровни читаются параллельно
	var (
		award    models.Award
		contacts []models.Contact
		claimed  []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.awards.GetAward(gctx, awardID)
		if err != nil {
			return fmt.Errorf("get award %s: %w", awardID, err)
		}
		award = a
		return nil
	})
	g.Go(func() error {
		c, err := s.contacts.ListContacts(gctx, userID)
		if err != nil {
			return fmt.Errorf("list contacts: %w", err)
		}
		contacts = c
		return nil
	})
	g.Go(func() error {
		c, err := s.claims.ListClaimedTierNames(gctx, userID, awardID)
		if err != nil {
			return fmt.Errorf("list claimed levels: %w", err)
		}
		claimed = c
		return nil
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		evaluationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if doc := award.Rules.Doc; doc != nil && !KnownTargetType(targetType(doc)) {
		s.logger.Warn("unknown target type",
			zap.String("service", "Evaluate"),
			zap.String("award", awardID.String()),
			zap.String("type", doc.Targets.Type),
		)
	}

	result := EvaluateRules(award.Rules, contacts, claimed, includeQSOs)
	span.SetAttributes(
		attribute.Bool("eligible", result.Eligible),
		attribute.Float64("score", result.CurrentScore),
	)
	if result.Eligible {
		evaluationsTotal.WithLabelValues("eligible").Inc()
	} else {
		evaluationsTotal.WithLabelValues("not_eligible").Inc()
	}

	if cacheable {
		s.toCache(ctx, userID, key, result)
	}
	return result, nil
}

// EvaluateRules - расчет без обращения к хранилищам: фильтр -> ограничение целей -> баллы -> уровни
func EvaluateRules(rules models.Rules, contacts []models.Contact, claimed []string, includeQSOs bool) *models.EvaluationResult {
	if claimed == nil {
		claimed = []string{}
	}
	if rules.IsLegacy() {
		return &models.EvaluationResult{
			Eligible:      false,
			CurrentScore:  0,
			TargetScore:   1,
			ClaimedLevels: claimed,
			Details:       models.Details{Msg: legacyMsg},
		}
	}
	doc := rules.Doc

	filtered := FilterContacts(contacts, doc)
	targets := ParseTargetList(doc.Targets.List)
	eligible := RestrictTargets(filtered, targetType(doc), targets)

	score, set := Score(eligible, doc)
	breakdown := BuildBreakdown(targets, set)
	thresholds := SortThresholds(doc.Thresholds)
	achieved, next := ResolveTier(score, thresholds, breakdown)

	result := &models.EvaluationResult{
		Eligible:      achieved != nil,
		CurrentScore:  score,
		TargetScore:   next.Value,
		AchievedLevel: achieved,
		NextLevel:     next,
		ClaimedLevels: claimed,
		Claimable:     achieved != nil && !slices.Contains(claimed, achieved.Name),
		Thresholds:    thresholds,
		Breakdown:     breakdown,
		Details:       models.Details{Msg: statusMessage(score, achieved, next)},
	}
	if includeQSOs {
		result.MatchingQSOs = make([]map[string]any, 0, len(eligible))
		for i := range eligible {
			result.MatchingQSOs = append(result.MatchingQSOs, contactDetail(&eligible[i]))
		}
	}
	return result
}

func statusMessage(score float64, achieved, next *models.Threshold) string {
	if achieved != nil {
		full := ""
		if achieved.FullCollection {
			full = " + Full"
		}
		return fmt.Sprintf("achieved: %s (%s%s)", achieved.Name, formatScore(score), full)
	}
	return fmt.Sprintf("current %s, next target %s (%s)", formatScore(score), formatScore(next.Value), next.Name)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// contactDetail - связь для отображения: основные поля, поверх них все поля ADIF
func contactDetail(c *models.Contact) map[string]any {
	detail := map[string]any{
		"id":   c.ID,
		"call": c.Value(models.FieldCallsign),
		"band": c.Value(models.FieldBand),
		"mode": c.Value(models.FieldMode),
		"date": c.QSODate,
		"grid": c.RawValue(models.FieldGrid),
	}
	for k, v := range c.Raw {
		detail[k] = v
	}
	return detail
}

// кэш

func cacheKey(awardID uuid.UUID, version int64, includeQSOs bool) string {
	return awardID.String() + ":" + strconv.FormatInt(version, 10) + ":" + strconv.FormatBool(includeQSOs)
}

// ключ с текущей версией награды. false - кэш не используется
func (s *AwardEngineService) cacheKey(ctx context.Context, awardID uuid.UUID, includeQSOs bool) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	version, err := s.cache.AwardVersion(ctx, awardID)
	if err != nil {
		s.logger.Warn("cache version", zap.String("service", "Evaluate"), zap.Error(err))
		return "", false
	}
	return cacheKey(awardID, version, includeQSOs), true
}

func (s *AwardEngineService) fromCache(ctx context.Context, userID string, key string) (*models.EvaluationResult, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, err := s.cache.GetEvaluation(ctx, userID, key)
	if err != nil || data == nil {
		return nil, false
	}
	result := &models.EvaluationResult{}
	if err := json.Unmarshal(data, result); err != nil {
		s.Log("Cache unmarshal", "Evaluate", err)
		return nil, false
	}
	return result, true
}

func (s *AwardEngineService) toCache(ctx context.Context, userID string, key string, result *models.EvaluationResult) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		s.Log("Cache marshal", "Evaluate", err)
		return
	}
	if err := s.cache.SetEvaluation(ctx, userID, key, data); err != nil {
		s.logger.Warn("cache set", zap.String("service", "Evaluate"), zap.Error(err))
	}
}

func (s *AwardEngineService) invalidate(ctx context.Context, userID string, service string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateUser(ctx, userID); err != nil {
		s.logger.Warn("cache invalidate", zap.String("service", service), zap.Error(err))
	}
}
