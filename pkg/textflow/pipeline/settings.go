package pipeline

// Typed lookups with defaults. All of them are nil-safe and fall back to
// the default on a missing key or a type mismatch, so operations stay
// tolerant of settings written by hand or decoded from YAML.

// Bool returns the boolean setting under key, or def.
func (s Settings) Bool(key string, def bool) bool {
	if v, ok := s[key].(bool); ok {
		return v
	}
	return def
}

// String returns the string setting under key, or def.
func (s Settings) String(key, def string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return def
}

// Int returns the integer setting under key, or def. YAML and JSON
// decoders produce int, int64 or float64; all three are accepted.
func (s Settings) Int(key string, def int) int {
	switch v := s[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

// Float returns the float setting under key, or def.
func (s Settings) Float(key string, def float64) float64 {
	switch v := s[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}
