// Package adif разбирает журналы связей в формате ADIF.
package adif

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Record - поля одной связи, имена в нижнем регистре
type Record map[string]string

var (
	eorRe   = regexp.MustCompile(`(?i)<eor>`)
	fieldRe = regexp.MustCompile(`<([a-zA-Z0-9_]+):(\d+)(?::[a-zA-Z])?>([^<]*)`)
)

// Parse разбирает текст ADIF. Записи без call или qso_date отбрасываются
func Parse(text string, plan *BandPlan) []Record {
	var records []Record
	for _, part := range eorRe.Split(text, -1) {
		if strings.TrimSpace(part) == "" {
			continue
		}
		rec := parseRecord(part)

		// band по частоте, если не указан
		if rec["band"] == "" && rec["freq"] != "" {
			if band := plan.Band(rec["freq"]); band != "" {
				rec["band"] = band
			}
		}
		// 20 -> 20M
		if isNumeric(rec["band"]) {
			rec["band"] += "M"
		}

		if rec["call"] != "" && rec["qso_date"] != "" {
			records = append(records, rec)
		}
	}
	return records
}

func parseRecord(part string) Record {
	rec := Record{}
	for _, m := range fieldRe.FindAllStringSubmatch(part, -1) {
		name := strings.ToLower(m[1])
		length, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		data := []rune(m[3])
		if length < len(data) {
			data = data[:length]
		}
		rec[name] = strings.TrimSpace(string(data))
	}
	return rec
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
}
