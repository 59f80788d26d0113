package awards

import (
	"strings"

	models "github.com/glkeru/hamawards/internal/models"
)

var defaultScoring = models.Scoring{ModeCW: 1, ModePhone: 1, ModeData: 1}

// TargetSet - уникальные цели в порядке появления и первая связь по каждой цели
type TargetSet struct {
	Keys  []string
	First map[string]*models.Contact
}

func (t *TargetSet) Has(key string) bool {
	_, ok := t.First[key]
	return ok
}

func (t *TargetSet) Len() int {
	return len(t.Keys)
}

// CollectTargets собирает уникальные цели
func CollectTargets(contacts []models.Contact, targetType string) *TargetSet {
	set := &TargetSet{First: make(map[string]*models.Contact)}
	for i := range contacts {
		key, ok := TargetValue(&contacts[i], targetType)
		if !ok || set.Has(key) {
			continue
		}
		set.Keys = append(set.Keys, key)
		set.First[key] = &contacts[i]
	}
	return set
}

// IsCollection - пустая логика означает collection, любое другое значение считается по баллам
func IsCollection(doc *models.RuleDocument) bool {
	return doc.Logic == "" || doc.Logic == models.LogicCollection
}

// Score - баллы и набор уникальных целей. Для баллов набор целей считается отдельно от ключей дедупликации
func Score(contacts []models.Contact, doc *models.RuleDocument) (float64, *TargetSet) {
	targets := CollectTargets(contacts, targetType(doc))
	if !IsCollection(doc) {
		return PointsScore(contacts, doc), targets
	}
	return float64(targets.Len()), targets
}

// PointsScore - сумма весов по категориям режима с дедупликацией
func PointsScore(contacts []models.Contact, doc *models.RuleDocument) float64 {
	scoring := doc.Scoring
	if scoring == nil {
		scoring = defaultScoring
	}
	var score float64
	seen := make(map[string]struct{})
	for i := range contacts {
		c := &contacts[i]
		key := dedupKey(c, doc)
		if key != "" {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
		}
		score += scoring[CategorizeMode(c.Value(models.FieldMode))]
	}
	return score
}

// dedupKey - пустой ключ означает, что связь засчитывается всегда
func dedupKey(c *models.Contact, doc *models.RuleDocument) string {
	call := strings.ToUpper(c.Value(models.FieldCallsign))
	band := strings.ToUpper(c.Value(models.FieldBand))
	mode := strings.ToUpper(c.Value(models.FieldMode))

	switch doc.Deduplication {
	case models.DedupCall:
		return call
	case models.DedupCallBand:
		return call + "-" + band
	case models.DedupSlot:
		return call + "-" + band + "-" + mode
	case models.DedupState:
		return strings.ToUpper(c.Value(models.FieldState))
	case models.DedupCustom:
		field := doc.DeduplicationCustomField
		if field == "" {
			field = string(models.FieldCall)
		}
		return strings.ToUpper(c.Value(models.ParseField(field)))
	}
	return ""
}
