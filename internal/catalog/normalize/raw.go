package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Raw is the permissive representation of one vendor payload. Every getter
// tolerates absent keys and wrong types, so adapters read through the same
// accessor instead of repeating nil-guard chains.
type Raw map[string]interface{}

// AsRaw converts a decoded JSON value into a Raw record. Non-object input is
// treated as a record with all fields absent.
func AsRaw(v interface{}) Raw {
	switch m := v.(type) {
	case Raw:
		return m
	case map[string]interface{}:
		return Raw(m)
	default:
		return Raw{}
	}
}

// String returns the first key holding a non-empty string. Numeric values
// are formatted, so identifier fields supplied as numbers still resolve.
func (r Raw) String(keys ...string) string {
	for _, key := range keys {
		if s := asString(r[key]); s != "" {
			return s
		}
	}
	return ""
}

// StringOr is String with a fallback default.
func (r Raw) StringOr(def string, keys ...string) string {
	if s := r.String(keys...); s != "" {
		return s
	}
	return def
}

// Float returns the first key that parses to a non-zero number, mirroring
// the skip-empty fallback chains vendor feeds require. Unparseable and
// negative values resolve to 0.
func (r Raw) Float(keys ...string) float64 {
	for _, key := range keys {
		if f := parseFloat(r[key]); f > 0 {
			return f
		}
	}
	return 0
}

// Int is Float truncated to a non-negative integer.
func (r Raw) Int(keys ...string) int {
	return int(r.Float(keys...))
}

// Bool reports the value of a flag field and whether it was present in a
// recognizable form. Strings "true"/"1"/"yes" and non-zero numbers count
// as true.
func (r Raw) Bool(key string) (value, ok bool) {
	v, present := r[key]
	if !present {
		return false, false
	}
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "1", "yes":
			return true, true
		case "false", "0", "no":
			return false, true
		}
		return false, false
	case float64:
		return b != 0, true
	case int:
		return b != 0, true
	default:
		return false, false
	}
}

// Slice returns the list under key, or nil when the field is absent or not
// a list.
func (r Raw) Slice(key string) []interface{} {
	if items, ok := r[key].([]interface{}); ok {
		return items
	}
	return nil
}

// Map returns the nested record under key; absent or mismatched fields
// yield an empty record so chained reads stay safe.
func (r Raw) Map(key string) Raw {
	return AsRaw(r[key])
}

// Value returns the untyped field for shape-sensitive reads such as image
// normalization.
func (r Raw) Value(key string) interface{} {
	return r[key]
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case json.Number:
		return s.String()
	default:
		return ""
	}
}

// parseFloat resolves heterogeneous numeric fields to a finite float.
// Strings are parsed like a plain parseFloat: leading currency symbols are
// skipped and parsing stops at the first non-numeric rune, so "19,99"
// resolves to 19 (no locale-aware decimal-comma handling) and "$19.99" to
// 19.99. Anything unparseable or negative resolves to 0.
func parseFloat(v interface{}) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		f, _ = n.Float64()
	case string:
		f = parseFloatString(n)
	default:
		return 0
	}
	if f < 0 || f != f {
		return 0
	}
	return f
}

func parseFloatString(s string) float64 {
	s = strings.TrimSpace(s)
	start := strings.IndexFunc(s, func(r rune) bool {
		return r >= '0' && r <= '9' || r == '-' || r == '+'
	})
	if start < 0 {
		return 0
	}
	s = s[start:]

	end := 0
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		if (c == '-' || c == '+') && end == 0 {
			end++
			continue
		}
		break
	}

	f, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return f
}
