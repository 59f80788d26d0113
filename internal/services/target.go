package awards

import (
	"strings"

	models "github.com/glkeru/hamawards/internal/models"
)

// KnownTargetType - поддерживается ли тип цели
func KnownTargetType(targetType string) bool {
	switch targetType {
	case models.TargetAny, models.TargetCallsign, models.TargetDXCC,
		models.TargetGrid, models.TargetIOTA, models.TargetState:
		return true
	}
	return false
}

// targetType с учетом значения по умолчанию
func targetType(doc *models.RuleDocument) string {
	if doc.Targets.Type == "" {
		return models.TargetAny
	}
	return doc.Targets.Type
}

// TargetValue - идентификатор цели контакта. false - цели нет (в том числе пустое значение)
func TargetValue(c *models.Contact, targetType string) (string, bool) {
	var val string
	switch targetType {
	case models.TargetAny:
		// одна связь = одна цель
		val = c.RawValue(models.FieldCall) + "-" + c.RawValue(models.FieldQSODate) + "-" + c.RawValue(models.FieldTimeOn)
	case models.TargetCallsign:
		val = strings.ToUpper(c.Value(models.FieldCallsign))
	case models.TargetDXCC:
		val = c.Value(models.FieldDXCC)
	case models.TargetGrid:
		grid := c.RawValue(models.FieldGrid)
		if len(grid) > 4 {
			grid = grid[:4]
		}
		val = strings.ToUpper(grid)
	case models.TargetIOTA:
		val = strings.ToUpper(c.RawValue(models.FieldIOTA))
	case models.TargetState:
		val = strings.ToUpper(c.RawValue(models.FieldState))
	default:
		return "", false
	}
	return val, val != ""
}

// ParseTargetList: список через запятую -> верхний регистр, без пустых и повторов, порядок сохраняется
func ParseTargetList(list string) []string {
	var targets []string
	seen := make(map[string]struct{})
	for _, t := range strings.Split(list, ",") {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		targets = append(targets, t)
	}
	return targets
}

// RestrictTargets оставляет контакты, цель которых есть в списке. Пустой список - без ограничений
func RestrictTargets(contacts []models.Contact, targetType string, targets []string) []models.Contact {
	if len(targets) == 0 {
		return contacts
	}
	allowed := targetIndex(targets)
	restricted := make([]models.Contact, 0, len(contacts))
	for i := range contacts {
		if inTargets(&contacts[i], targetType, allowed) {
			restricted = append(restricted, contacts[i])
		}
	}
	return restricted
}

func inTargets(c *models.Contact, targetType string, allowed map[string]struct{}) bool {
	val, ok := TargetValue(c, targetType)
	if !ok {
		return false
	}
	_, ok = allowed[val]
	return ok
}

func targetIndex(targets []string) map[string]struct{} {
	index := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		index[t] = struct{}{}
	}
	return index
}
