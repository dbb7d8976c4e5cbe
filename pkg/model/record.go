package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// Record exposes typed lookups of numeric fields.
//
// Implementations must not mutate the record on lookup.
type Record interface {
	Int64(field string) (int64, error)
	Int32(field string) (int32, error)
}

var _ Record = Doc(nil)

// Doc is a loosely typed record, as decoded from JSON or YAML
type Doc map[string]interface{}

// Docs is a collection of loosely typed records
type Docs []Doc

// Get the raw value of a field
func (d Doc) Get(field string) (interface{}, bool) {
	v, ok := d[field]
	return v, ok
}

// String value of a field, or the empty string when the field cannot be rendered as a string
func (d Doc) String(field string) string {
	if n, ok := d[field].(json.Number); ok {
		return n.String()
	}
	s, _ := cast.ToStringE(d[field])
	return s
}

// Int64 value of a field.
//
// Integers, json.Number and base 10 numeric strings are accepted. Floating point values are truncated.
func (d Doc) Int64(field string) (int64, error) {
	v, ok := d[field]
	if !ok {
		return 0, fieldError(field, ErrFieldNotFound)
	}
	n, err := toInt64(v)
	if err != nil {
		return 0, fieldError(field, err)
	}
	return n, nil
}

// Int32 value of a field. Values beyond the int32 range are rejected rather than truncated.
func (d Doc) Int32(field string) (int32, error) {
	n, err := d.Int64(field)
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, fieldError(field, errors.WithMessagef(ErrFieldRange, "%d overflows int32", n))
	}
	return int32(n), nil
}

func toInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case nil:
		return 0, ErrFieldNil
	case bool, []interface{}, map[string]interface{}, map[interface{}]interface{}:
		return 0, errors.WithMessagef(ErrFieldType, "unsupported %T", v)
	case json.Number:
		i, err := n.Int64()
		if err == nil {
			return i, nil
		}
		f, erf := n.Float64()
		if erf != nil {
			return 0, errors.WithMessage(ErrFieldType, err.Error())
		}
		return floatToInt64(f)
	case uint64:
		if n > math.MaxInt64 {
			return 0, errors.WithMessagef(ErrFieldRange, "%d overflows int64", n)
		}
		return int64(n), nil
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, errors.WithMessagef(ErrFieldRange, "%d overflows int64", n)
		}
		return int64(n), nil
	case float64:
		return floatToInt64(n)
	case float32:
		return floatToInt64(float64(n))
	case string:
		return parseDecimal(n)
	}

	i, err := cast.ToInt64E(v)
	if err != nil {
		return 0, errors.WithMessage(ErrFieldType, err.Error())
	}
	return i, nil
}

// parseDecimal only accepts base 10 notations: no base prefix, no digit separator
func parseDecimal(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	} else if errors.Is(err, strconv.ErrRange) {
		return 0, errors.WithMessagef(ErrFieldRange, "%q does not fit int64", s)
	}
	if s == "" || strings.IndexFunc(s, notDecimal) >= 0 {
		return 0, errors.WithMessagef(ErrFieldType, "%q is not a decimal number", s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.WithMessagef(ErrFieldType, "%q is not a decimal number", s)
	}
	return floatToInt64(f)
}

func notDecimal(r rune) bool {
	return !strings.ContainsRune("0123456789+-.eE", r)
}

func floatToInt64(f float64) (int64, error) {
	if math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, errors.WithMessagef(ErrFieldRange, "%v does not fit int64", f)
	}
	return int64(f), nil
}
