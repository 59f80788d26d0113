package awards

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Статусы награды
const (
	StatusDraft    = "draft"
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusReturned = "returned"
)

type Award struct {
	ID           uuid.UUID    `bson:"id" json:"id"`
	Name         string       `bson:"name" json:"name"`
	Description  string       `bson:"description" json:"description"`
	CreatorID    string       `bson:"creator_id" json:"creator_id"`
	TrackingID   string       `bson:"tracking_id" json:"tracking_id"`
	Status       string       `bson:"status" json:"status"`
	RejectReason string       `bson:"reject_reason,omitempty" json:"reject_reason,omitempty"`
	AuditLog     []AuditEntry `bson:"audit_log" json:"audit_log"`
	Rules        Rules        `bson:"rules" json:"rules"`
	CreatedAt    time.Time    `bson:"created_at" json:"created_at"`
}

type AuditEntry struct {
	Time   time.Time `bson:"time" json:"time"`
	Actor  string    `bson:"actor" json:"actor"`
	Action string    `bson:"action" json:"action"`
	Reason string    `bson:"reason,omitempty" json:"reason,omitempty"`
}

// Rules - правила награды: либо старый список простых фильтров, либо версионированный документ.
// Вариант определяется один раз при декодировании.
type Rules struct {
	Legacy []Filter
	Doc    *RuleDocument
}

func (r Rules) IsLegacy() bool {
	return r.Doc == nil
}

type RuleDocument struct {
	V2                       bool       `bson:"v2" json:"v2"`
	Basic                    Basic      `bson:"basic" json:"basic"`
	Filters                  []Filter   `bson:"filters" json:"filters"`
	Logic                    string     `bson:"logic" json:"logic"`
	Targets                  Targets    `bson:"targets" json:"targets"`
	Scoring                  Scoring    `bson:"scoring,omitempty" json:"scoring,omitempty"`
	Deduplication            string     `bson:"deduplication" json:"deduplication"`
	DeduplicationCustomField string     `bson:"deduplicationCustomField" json:"deduplicationCustomField"`
	Thresholds               Thresholds `bson:"thresholds" json:"thresholds"`
}

type Basic struct {
	StartDate   string `bson:"startDate" json:"startDate"`
	EndDate     string `bson:"endDate" json:"endDate"`
	QSLRequired bool   `bson:"qslRequired" json:"qslRequired"`
}

type Filter struct {
	Field    string `bson:"field" json:"field"`
	Operator string `bson:"operator" json:"operator"`
	Value    string `bson:"value" json:"value"`
}

type Targets struct {
	Type string `bson:"type" json:"type"`
	List string `bson:"list" json:"list"`
}

// Scoring - вес по категории режима (cw, phone, data). nil - веса по умолчанию,
// категория без веса дает 0. Нечисловые поля (multis из редактора) отбрасываются.
type Scoring map[string]float64

type Threshold struct {
	Name           string  `bson:"name" json:"name"`
	Value          float64 `bson:"value" json:"value"`
	Color          string  `bson:"color,omitempty" json:"color,omitempty"`
	FullCollection bool    `bson:"fullCollection" json:"fullCollection"`
}

// Thresholds принимает как список, так и одиночный объект (награда с одним уровнем)
type Thresholds []Threshold

// Значения по умолчанию
const (
	LogicCollection = "collection"
	LogicPoints     = "points"

	TargetAny      = "any"
	TargetCallsign = "callsign"
	TargetDXCC     = "dxcc"
	TargetGrid     = "grid"
	TargetIOTA     = "iota"
	TargetState    = "state"

	DedupNone     = "none"
	DedupCall     = "call"
	DedupCallBand = "call_band"
	DedupSlot     = "slot"
	DedupState    = "state"
	DedupCustom   = "custom"

	OperatorEq       = "eq"
	OperatorNeq      = "neq"
	OperatorContains = "contains"
)

// DefaultThreshold используется, если уровни не заданы
var DefaultThreshold = Threshold{Name: "Award", Value: 1}

// JSON

func (r *Rules) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Rules{}
		return nil
	}
	if data[0] == '[' {
		var legacy []Filter
		if err := json.Unmarshal(data, &legacy); err != nil {
			return fmt.Errorf("legacy rules: %w", err)
		}
		*r = Rules{Legacy: legacy}
		return nil
	}
	doc := &RuleDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("rules document: %w", err)
	}
	*r = Rules{Doc: doc}
	return nil
}

func (r Rules) MarshalJSON() ([]byte, error) {
	if r.Doc != nil {
		return json.Marshal(r.Doc)
	}
	if r.Legacy == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.Legacy)
}

func (s *Scoring) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	scoring := make(Scoring, len(fields))
	for k, raw := range fields {
		var v float64
		if err := json.Unmarshal(raw, &v); err == nil {
			scoring[k] = v
			continue
		}
		// поле ввода редактора может прислать число строкой
		var str string
		if err := json.Unmarshal(raw, &str); err == nil {
			if v, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
				scoring[k] = v
			}
		}
	}
	*s = scoring
	return nil
}

func (t *Thresholds) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = nil
		return nil
	}
	if data[0] == '{' {
		var single Threshold
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*t = Thresholds{single}
		return nil
	}
	var list []Threshold
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*t = list
	return nil
}

// BSON

func (r *Rules) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeNull, bson.TypeUndefined:
		*r = Rules{}
		return nil
	case bson.TypeArray:
		var legacy []Filter
		if err := raw.Unmarshal(&legacy); err != nil {
			return fmt.Errorf("legacy rules: %w", err)
		}
		*r = Rules{Legacy: legacy}
		return nil
	}
	doc := &RuleDocument{}
	if err := raw.Unmarshal(doc); err != nil {
		return fmt.Errorf("rules document: %w", err)
	}
	*r = Rules{Doc: doc}
	return nil
}

func (r Rules) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if r.Doc != nil {
		return bson.MarshalValue(r.Doc)
	}
	legacy := r.Legacy
	if legacy == nil {
		legacy = []Filter{}
	}
	return bson.MarshalValue(legacy)
}

func (s *Scoring) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bson.TypeNull, bson.TypeUndefined:
		*s = nil
		return nil
	case bson.TypeEmbeddedDocument:
	default:
		return fmt.Errorf("scoring: unexpected BSON type %s", t)
	}
	elems, err := bson.Raw(data).Elements()
	if err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	scoring := make(Scoring, len(elems))
	for _, e := range elems {
		v := e.Value()
		switch v.Type {
		case bson.TypeDouble:
			scoring[e.Key()] = v.Double()
		case bson.TypeInt32:
			scoring[e.Key()] = float64(v.Int32())
		case bson.TypeInt64:
			scoring[e.Key()] = float64(v.Int64())
		case bson.TypeString:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v.StringValue()), 64); err == nil {
				scoring[e.Key()] = f
			}
		}
	}
	*s = scoring
	return nil
}

func (t *Thresholds) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: typ, Value: data}
	switch typ {
	case bson.TypeNull, bson.TypeUndefined:
		*t = nil
		return nil
	case bson.TypeEmbeddedDocument:
		var single Threshold
		if err := raw.Unmarshal(&single); err != nil {
			return err
		}
		*t = Thresholds{single}
		return nil
	}
	var list []Threshold
	if err := raw.Unmarshal(&list); err != nil {
		return err
	}
	*t = list
	return nil
}
