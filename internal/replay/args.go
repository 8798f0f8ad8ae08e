package replay

import (
	"fmt"
	"math"

	"github.com/GriffinCanCode/dsaviz/internal/utils"
)

// param is the expected type of one operation argument
type param int

const (
	number param = iota
	index
	text
	anyValue
)

func (p param) String() string {
	switch p {
	case number:
		return "number"
	case index:
		return "integer index"
	case text:
		return "string"
	}
	return "value"
}

// args holds the checked arguments of one operation
type args []any

func (a args) num(i int) float64 { return a[i].(float64) }
func (a args) idx(i int) int     { return int(a[i].(float64)) }
func (a args) str(i int) string  { return a[i].(string) }
func (a args) val(i int) any     { return a[i] }

// check validates raw against params, normalizing numbers to float64
func check(op string, params []param, raw []any) (args, error) {
	if len(raw) != len(params) {
		return nil, fmt.Errorf("%w: %s expects %d argument(s), got %d", utils.ErrInvalidInput, op, len(params), len(raw))
	}

	out := make(args, len(raw))
	for i, p := range params {
		v := raw[i]
		if p == anyValue {
			out[i] = normalize(v)
			continue
		}
		if p == text {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s argument %d must be a %s", utils.ErrInvalidInput, op, i+1, p)
			}
			out[i] = s
			continue
		}

		f, ok := toFloat(v)
		if !ok || (p == index && (f != math.Trunc(f) || math.IsInf(f, 0))) {
			return nil, fmt.Errorf("%w: %s argument %d must be a %s", utils.ErrInvalidInput, op, i+1, p)
		}
		out[i] = f
	}
	return out, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func normalize(v any) any {
	if f, ok := toFloat(v); ok {
		return f
	}
	return v
}
