package validate

import "reflect"

// MaxLength is the longest candidate the engine will evaluate, measured in
// bytes. RFC 5321 caps a complete address at 320 octets (64 for the local
// part, 1 for the @, 255 for the domain), and anything longer is rejected as
// a fault before the grammar ever sees it.
const MaxLength = 320

// checkLength enforces MaxLength. Length is byte length, not rune count, so
// a multibyte candidate can trip the limit with fewer visible characters.
func checkLength(email string) *Error {
	if len(email) > MaxLength {
		return lengthFault()
	}
	return nil
}

// checkString admits only string candidates into the engine.
func checkString(v any) (string, *Error) {
	s, ok := v.(string)
	if !ok {
		return "", typeFault(v)
	}
	return s, nil
}

// checkSequence admits only slices and arrays into batch evaluation and
// flattens whatever it admits to []any. The common cases are handled
// directly; everything else goes through reflection so that callers holding
// a []CustomString or a [3]string are not turned away on a technicality.
func checkSequence(v any) ([]any, *Error) {
	switch vs := v.(type) {
	case []any:
		return vs, nil
	case []string:
		items := make([]any, len(vs))
		for i, s := range vs {
			items[i] = s
		}
		return items, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, sequenceFault(v)
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, nil
}
