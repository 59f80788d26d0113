package awards

import "strings"

// Категории режимов
const (
	ModeCW    = "cw"
	ModePhone = "phone"
	ModeData  = "data"
)

var (
	cwModes    = map[string]struct{}{"CW": {}, "PCW": {}}
	phoneModes = map[string]struct{}{"SSB": {}, "AM": {}, "FM": {}, "USB": {}, "LSB": {}}
	dataModes  = map[string]struct{}{
		"FT8": {}, "FT4": {}, "RTTY": {}, "RTTYM": {}, "PSK31": {}, "FSK": {},
		"PSK": {}, "JT65": {}, "JS8": {}, "SSTV": {},
	}
)

// CategorizeMode относит режим к cw, phone или data. Все неизвестное - data
func CategorizeMode(mode string) string {
	mode = strings.ToUpper(strings.TrimSpace(mode))
	if _, ok := cwModes[mode]; ok {
		return ModeCW
	}
	if _, ok := phoneModes[mode]; ok {
		return ModePhone
	}
	if _, ok := dataModes[mode]; ok {
		return ModeData
	}
	return ModeData
}
