package awards

import "strings"

// Contact - связь (QSO) из журнала пользователя
type Contact struct {
	ID       int64             `json:"id"`
	UserID   string            `json:"user_id"`
	Callsign string            `json:"callsign"`
	Band     string            `json:"band"`
	Mode     string            `json:"mode"`
	QSODate  string            `json:"qso_date"`
	DXCC     string            `json:"dxcc"`
	Country  string            `json:"country"`
	Raw      map[string]string `json:"adif_raw"` // поля ADIF: имя в нижнем регистре -> значение
}

// Field - имя поля контакта. Известные поля имеют колонку, остальные читаются только из ADIF
type Field string

const (
	FieldCall     Field = "call"
	FieldCallsign Field = "callsign"
	FieldBand     Field = "band"
	FieldMode     Field = "mode"
	FieldQSODate  Field = "qso_date"
	FieldDXCC     Field = "dxcc"
	FieldCountry  Field = "country"
	FieldTimeOn   Field = "time_on"
	FieldGrid     Field = "gridsquare"
	FieldIOTA     Field = "iota"
	FieldState    Field = "state"
	FieldQSLRcvd  Field = "qsl_rcvd"
	FieldLoTWRcvd Field = "lotw_qsl_rcvd"
	FieldFreq     Field = "freq"
)

// ParseField приводит имя поля из правила к Field
func ParseField(name string) Field {
	return Field(strings.ToLower(strings.TrimSpace(name)))
}

// column возвращает значение колонки, если поле известно
func (c *Contact) column(f Field) (string, bool) {
	switch f {
	case FieldCall, FieldCallsign:
		return c.Callsign, true
	case FieldBand:
		return c.Band, true
	case FieldMode:
		return c.Mode, true
	case FieldQSODate:
		return c.QSODate, true
	case FieldDXCC:
		return c.DXCC, true
	case FieldCountry:
		return c.Country, true
	}
	return "", false
}

// Value - значение поля: колонка, затем ADIF, иначе пустая строка
func (c *Contact) Value(f Field) string {
	if v, ok := c.column(f); ok && v != "" {
		return v
	}
	return c.RawValue(f)
}

// RawValue - значение только из ADIF
func (c *Contact) RawValue(f Field) string {
	if c.Raw == nil {
		return ""
	}
	if f == FieldCallsign {
		f = FieldCall
	}
	return c.Raw[strings.ToLower(string(f))]
}
