package logger

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Field aliases zap.Field so callers do not import zap directly
type Field = zap.Field

func String(key, val string) Field {
	return zap.String(key, val)
}

func Strings(key string, val []string) Field {
	return zap.Strings(key, val)
}

func Err(err error) Field {
	return zap.Error(err)
}

// ErrorField is kept for call sites that prefer the longer name
func ErrorField(err error) Field {
	return zap.Error(err)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

func Uint32(key string, val uint32) Field {
	return zap.Uint32(key, val)
}

func Float64(key string, val float64) Field {
	return zap.Float64(key, val)
}

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

func Time(key string, val time.Time) Field {
	return zap.Time(key, val)
}

// UUID logs an id as its canonical string form
func UUID(key string, val uuid.UUID) Field {
	return zap.String(key, val.String())
}

// UUIDs logs a list of ids
func UUIDs(key string, vals []uuid.UUID) Field {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.String()
	}
	return zap.Strings(key, out)
}
