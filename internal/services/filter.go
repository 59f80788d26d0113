package awards

import (
	"strings"

	models "github.com/glkeru/hamawards/internal/models"
)

// normalizeDate: YYYYMMDD -> YYYY-MM-DD, остальное без изменений
func normalizeDate(d string) string {
	if len(d) == 8 {
		return d[0:4] + "-" + d[4:6] + "-" + d[6:8]
	}
	return d
}

// FilterContacts оставляет контакты, прошедшие базовые и пользовательские фильтры
func FilterContacts(contacts []models.Contact, doc *models.RuleDocument) []models.Contact {
	filtered := make([]models.Contact, 0, len(contacts))
	for i := range contacts {
		if Accepts(&contacts[i], doc) {
			filtered = append(filtered, contacts[i])
		}
	}
	return filtered
}

// Accepts - проверка одного контакта, до первого несработавшего условия
func Accepts(c *models.Contact, doc *models.RuleDocument) bool {
	if !checkBasic(c, doc.Basic) {
		return false
	}
	return checkFilters(c, doc.Filters)
}

func checkBasic(c *models.Contact, basic models.Basic) bool {
	if basic.StartDate != "" || basic.EndDate != "" {
		date := normalizeDate(c.Value(models.FieldQSODate))
		// обе даты в ISO с ведущими нулями, строковое сравнение корректно
		if basic.StartDate != "" && date < basic.StartDate {
			return false
		}
		if basic.EndDate != "" && date > basic.EndDate {
			return false
		}
	}
	if basic.QSLRequired {
		qsl := strings.EqualFold(c.Value(models.FieldQSLRcvd), "Y")
		lotw := strings.EqualFold(c.Value(models.FieldLoTWRcvd), "Y")
		if !qsl && !lotw {
			return false
		}
	}
	return true
}

func checkFilters(c *models.Contact, filters []models.Filter) bool {
	for _, f := range filters {
		if f.Field == "" || f.Value == "" || f.Value == "ANY" {
			continue
		}
		val := strings.ToUpper(c.Value(models.ParseField(f.Field)))
		target := strings.ToUpper(f.Value)

		switch f.Operator {
		case models.OperatorEq:
			if val != target {
				return false
			}
		case models.OperatorNeq:
			if val == target {
				return false
			}
		case models.OperatorContains:
			if !strings.Contains(val, target) {
				return false
			}
		}
	}
	return true
}
