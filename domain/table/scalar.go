package table

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Scalar normalizes a cell into a plain JSON-representable value. Every
// component serializes through this one function: nil, NaN, and infinities
// become nil (the absent marker), datetimes become RFC 3339 strings, and
// whole floats stay float64 so they round-trip as JSON numbers.
func Scalar(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil
		}
		return x
	case float32:
		return Scalar(float64(x))
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return v
	}
}

// ScalarFloat normalizes a float into a plain value, mapping NaN/Inf to nil
func ScalarFloat(f float64) any {
	return Scalar(f)
}

// ValueKey renders a cell as the string key used for frequency counting and
// serialized map keys. Floats drop trailing zeros so 1.0 renders as "1".
func ValueKey(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", v)
	}
}
