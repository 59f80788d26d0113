package awards

import (
	"sort"

	models "github.com/glkeru/hamawards/internal/models"
)

// SortThresholds возвращает копию уровней по убыванию value. Пустой список - уровень по умолчанию
func SortThresholds(thresholds models.Thresholds) []models.Threshold {
	if len(thresholds) == 0 {
		return []models.Threshold{models.DefaultThreshold}
	}
	sorted := make([]models.Threshold, len(thresholds))
	copy(sorted, thresholds)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})
	return sorted
}

// ResolveTier: achieved - самый высокий уровень, где набраны баллы и (если нужно) собран весь список.
// next - самый низкий недостигнутый по баллам уровень, иначе самый высокий
func ResolveTier(score float64, sorted []models.Threshold, breakdown *models.Breakdown) (achieved *models.Threshold, next *models.Threshold) {
	for i := range sorted {
		t := sorted[i]
		if score < t.Value {
			continue
		}
		// полная коллекция - отдельное условие, баллы его не заменяют
		if t.FullCollection && !breakdown.Complete() {
			continue
		}
		achieved = &t
		break
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if score < sorted[i].Value {
			t := sorted[i]
			next = &t
			break
		}
	}
	if next == nil && len(sorted) > 0 {
		t := sorted[0]
		next = &t
	}
	return achieved, next
}

// BuildBreakdown - по каждому элементу списка целей: достигнута (с первой связью) или нет
func BuildBreakdown(targets []string, set *TargetSet) *models.Breakdown {
	if len(targets) == 0 {
		return nil
	}
	b := &models.Breakdown{
		TotalRequired: len(targets),
		Achieved:      []models.AchievedTarget{},
		AchievedKeys:  append([]string{}, set.Keys...),
		Missing:       []string{},
	}
	for _, t := range targets {
		if set.Has(t) {
			b.Achieved = append(b.Achieved, models.AchievedTarget{Target: t, QSO: set.First[t]})
		} else {
			b.Missing = append(b.Missing, t)
		}
	}
	return b
}
