package sqlq

import (
	"database/sql"
	"fmt"
	"math"
	"time"
)

// Scalar enumerates the value types a fetch can decode to. It mirrors
// what database drivers hand back: SQL integers arrive as int64, floats
// as float64, text as string or []byte.
type Scalar interface {
	int | int32 | int64 | float64 | string | bool | time.Time | []byte
}

// Text layouts accepted when a time.Time is requested from a TEXT column.
// RFC 3339 first (the usual convention for storing timestamps as text),
// then the default layouts of SQLite datetime columns.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
}

// convert decodes a driver value into T.
//
// Integer narrowing follows the driver convention: a 64-bit integer is
// narrowed to int or int32 only when the value fits; an overflow is a
// conversion failure, not a silent truncation. NULL is never convertible
// here; callers that can represent absence check for nil first.
func convert[T Scalar](src any) (T, error) {
	var out T
	if src == nil {
		return out, ErrNullValue
	}
	switch dest := any(&out).(type) {
	case *int:
		v, ok := src.(int64)
		if !ok {
			return out, mismatch[T](src)
		}
		if v > math.MaxInt || v < math.MinInt {
			return out, fmt.Errorf("%w: %d overflows int", ErrTypeMismatch, v)
		}
		*dest = int(v)
	case *int32:
		v, ok := src.(int64)
		if !ok {
			return out, mismatch[T](src)
		}
		if v > math.MaxInt32 || v < math.MinInt32 {
			return out, fmt.Errorf("%w: %d overflows int32", ErrTypeMismatch, v)
		}
		*dest = int32(v)
	case *int64:
		v, ok := src.(int64)
		if !ok {
			return out, mismatch[T](src)
		}
		*dest = v
	case *float64:
		switch v := src.(type) {
		case float64:
			*dest = v
		case int64:
			*dest = float64(v)
		default:
			return out, mismatch[T](src)
		}
	case *string:
		switch v := src.(type) {
		case string:
			*dest = v
		case []byte:
			*dest = string(v)
		default:
			return out, mismatch[T](src)
		}
	case *bool:
		switch v := src.(type) {
		case bool:
			*dest = v
		case int64:
			// SQLite has no boolean storage class; 0 and 1 are the convention.
			switch v {
			case 0:
				*dest = false
			case 1:
				*dest = true
			default:
				return out, fmt.Errorf("%w: %d is not a boolean", ErrTypeMismatch, v)
			}
		default:
			return out, mismatch[T](src)
		}
	case *time.Time:
		switch v := src.(type) {
		case time.Time:
			*dest = v
		case string:
			t, err := parseTime(v)
			if err != nil {
				return out, err
			}
			*dest = t
		case []byte:
			t, err := parseTime(string(v))
			if err != nil {
				return out, err
			}
			*dest = t
		default:
			return out, mismatch[T](src)
		}
	case *[]byte:
		switch v := src.(type) {
		case []byte:
			// Copy so callers never alias the snapshot's backing array.
			*dest = append([]byte(nil), v...)
		case string:
			*dest = []byte(v)
		default:
			return out, mismatch[T](src)
		}
	}
	return out, nil
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a timestamp", ErrTypeMismatch, s)
}

func mismatch[T Scalar](src any) error {
	var want T
	return fmt.Errorf("%w: cannot convert %T to %T", ErrTypeMismatch, src, want)
}

// assign writes a driver value into a Scan destination. The supported
// destinations are pointers to the Scalar types, their sql.Null
// counterparts, and *any for a raw value.
func assign(dest, src any) error {
	switch d := dest.(type) {
	case *int:
		return assignScalar(d, src)
	case *int32:
		return assignScalar(d, src)
	case *int64:
		return assignScalar(d, src)
	case *float64:
		return assignScalar(d, src)
	case *string:
		return assignScalar(d, src)
	case *bool:
		return assignScalar(d, src)
	case *time.Time:
		return assignScalar(d, src)
	case *[]byte:
		return assignScalar(d, src)
	case *sql.Null[int]:
		return assignNull(d, src)
	case *sql.Null[int32]:
		return assignNull(d, src)
	case *sql.Null[int64]:
		return assignNull(d, src)
	case *sql.Null[float64]:
		return assignNull(d, src)
	case *sql.Null[string]:
		return assignNull(d, src)
	case *sql.Null[bool]:
		return assignNull(d, src)
	case *sql.Null[time.Time]:
		return assignNull(d, src)
	case *sql.Null[[]byte]:
		return assignNull(d, src)
	case *any:
		if b, ok := src.([]byte); ok {
			*d = append([]byte(nil), b...)
			return nil
		}
		*d = src
		return nil
	case nil:
		return fmt.Errorf("%w: nil destination", ErrTypeMismatch)
	default:
		return fmt.Errorf("%w: unsupported Scan destination %T", ErrTypeMismatch, dest)
	}
}

func assignScalar[T Scalar](dest *T, src any) error {
	v, err := convert[T](src)
	if err != nil {
		return err
	}
	*dest = v
	return nil
}

func assignNull[T Scalar](dest *sql.Null[T], src any) error {
	if src == nil {
		*dest = sql.Null[T]{}
		return nil
	}
	v, err := convert[T](src)
	if err != nil {
		return err
	}
	*dest = sql.Null[T]{V: v, Valid: true}
	return nil
}
