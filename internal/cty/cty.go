// Package cty определяет DXCC-территорию по позывному на основе базы префиксов cty.plist.
// База строится один раз при запуске и дальше только читается.
package cty

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"howett.net/plist"
)

// China - позывные на B всегда относятся к Китаю
const China = "China"

// Entity - запись базы cty.plist
type Entity struct {
	Country       string  `plist:"Country"`
	Prefix        string  `plist:"Prefix"`
	ADIF          int     `plist:"ADIF"`
	CQZone        int     `plist:"CQZone"`
	ITUZone       int     `plist:"ITUZone"`
	Continent     string  `plist:"Continent"`
	Latitude      float64 `plist:"Latitude"`
	Longitude     float64 `plist:"Longitude"`
	ExactCallsign bool    `plist:"ExactCallsign"`
}

type DB struct {
	data   map[string]Entity
	byADIF map[int]string
	trie   trie
}

// Load читает cty.plist
func Load(path string) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cty plist: %w", err)
	}
	defer f.Close()
	return LoadFromReader(f)
}

func LoadFromReader(r io.ReadSeeker) (*DB, error) {
	var raw map[string]Entity
	if err := plist.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode cty plist: %w", err)
	}
	db := &DB{
		data:   make(map[string]Entity, len(raw)),
		byADIF: make(map[int]string),
	}
	keys := make([]string, 0, len(raw))
	for k, v := range raw {
		key := strings.ToUpper(strings.TrimSpace(k))
		if key == "" {
			continue
		}
		db.data[key] = v
		// точные позывные не участвуют в поиске по префиксу
		if !v.ExactCallsign {
			keys = append(keys, key)
		}
		if v.ADIF > 0 && v.Country != "" {
			if _, ok := db.byADIF[v.ADIF]; !ok || !v.ExactCallsign {
				db.byADIF[v.ADIF] = v.Country
			}
		}
	}
	db.trie = buildTrie(keys)
	return db, nil
}

var suffixes = []string{"/QRP", "/MM", "/AM", "/P", "/M"}

func normalizeCallsign(call string) string {
	call = strings.ToUpper(strings.TrimSpace(call))
	for _, suf := range suffixes {
		if strings.HasSuffix(call, suf) {
			return strings.TrimSuffix(call, suf)
		}
	}
	return call
}

// Lookup - запись по точному позывному или самому длинному префиксу
func (db *DB) Lookup(call string) (Entity, bool) {
	if db == nil {
		return Entity{}, false
	}
	call = normalizeCallsign(call)
	if call == "" {
		return Entity{}, false
	}
	if e, ok := db.data[call]; ok {
		return e, true
	}
	if key, ok := db.trie.longestPrefix(call); ok {
		return db.data[key], true
	}
	return Entity{}, false
}

// Country - название территории по позывному, "" если не найдено
func (db *DB) Country(call string) string {
	call = normalizeCallsign(call)
	if strings.HasPrefix(call, "B") {
		return China
	}
	if e, ok := db.Lookup(call); ok {
		return e.Country
	}
	return ""
}

// CountryByCode - название территории по числовому коду DXCC из ADIF ("291", "024")
func (db *DB) CountryByCode(code string) (string, bool) {
	if db == nil {
		return "", false
	}
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil {
		return "", false
	}
	name, ok := db.byADIF[n]
	return name, ok
}

func (db *DB) Len() int {
	if db == nil {
		return 0
	}
	return len(db.data)
}
