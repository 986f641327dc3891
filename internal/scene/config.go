package scene

import "strconv"

// IntOption reads an integer key from a factory configuration map,
// falling back to def when missing or malformed.
func IntOption(cfg map[string]string, key string, def int) int {
	raw, ok := cfg[key]
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
