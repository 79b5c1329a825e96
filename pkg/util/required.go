package util

// FirstMissingField returns the name of the first required field whose value
// is absent or falsy, checking names in the given order. Empty strings, nil,
// zero numbers and false all count as missing. That means a legitimately
// zero-valued numeric field would be rejected; callers with such fields must
// not list them as required here.
func FirstMissingField(payload map[string]any, required []string) (string, bool) {
	for _, name := range required {
		val, ok := payload[name]
		if !ok || isFalsy(val) {
			return name, true
		}
	}
	return "", false
}

func isFalsy(val any) bool {
	switch v := val.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case int:
		return v == 0
	case int32:
		return v == 0
	case int64:
		return v == 0
	case float32:
		return v == 0
	case float64:
		return v == 0
	default:
		return false
	}
}
