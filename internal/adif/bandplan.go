package adif

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed bandplan.yaml
var defaultBandPlanYAML []byte

// BandRange - диапазон: [LowerMHz, UpperMHz)
type BandRange struct {
	Band     string  `yaml:"band"`
	LowerMHz float64 `yaml:"lower_mhz"`
	UpperMHz float64 `yaml:"upper_mhz"`
}

type bandPlanFile struct {
	Bands []BandRange `yaml:"bands"`
}

// BandPlan - таблица диапазонов, после загрузки не меняется
type BandPlan struct {
	bands []BandRange
}

var (
	defaultPlanOnce sync.Once
	defaultPlan     *BandPlan
)

// DefaultBandPlan - встроенная таблица
func DefaultBandPlan() *BandPlan {
	defaultPlanOnce.Do(func() {
		plan, err := ParseBandPlan(defaultBandPlanYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded band plan: %v", err))
		}
		defaultPlan = plan
	})
	return defaultPlan
}

// LoadBandPlan читает таблицу из файла. Пустой путь - встроенная таблица
func LoadBandPlan(path string) (*BandPlan, error) {
	if path == "" {
		return DefaultBandPlan(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read band plan: %w", err)
	}
	return ParseBandPlan(data)
}

func ParseBandPlan(data []byte) (*BandPlan, error) {
	var file bandPlanFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse band plan: %w", err)
	}
	for _, b := range file.Bands {
		if b.Band == "" || b.UpperMHz <= b.LowerMHz {
			return nil, fmt.Errorf("band plan: invalid range %q [%v, %v)", b.Band, b.LowerMHz, b.UpperMHz)
		}
	}
	return &BandPlan{bands: file.Bands}, nil
}

// Band - диапазон по частоте в МГц. Неизвестная или некорректная частота - ""
func (p *BandPlan) Band(freq string) string {
	if p == nil {
		return ""
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(freq), 64)
	if err != nil {
		return ""
	}
	for _, b := range p.bands {
		if f >= b.LowerMHz && f < b.UpperMHz {
			return b.Band
		}
	}
	return ""
}
