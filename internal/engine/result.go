package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Result records the outcome of a successful operation
type Result struct {
	Op      string `json:"op"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func result(op string, data any, format string, args ...any) Result {
	return Result{Op: op, Message: fmt.Sprintf(format, args...), Data: data}
}

// FormatNumber renders a number the way script output does: integral values
// without a fractional part, everything else in shortest form.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatValue renders an arbitrary stored value for messages
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case float64:
		return FormatNumber(x)
	case float32:
		return FormatNumber(float64(x))
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

func joinNumbers(values []float64, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatNumber(v)
	}
	return strings.Join(parts, sep)
}

func numbersToAny(values []float64) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
