package codec

import (
	"fmt"
	"time"

	argskema "github.com/reoring/argskema"
)

// Kinds registered by Register.
const (
	KindTime     argskema.Kind = "time"
	KindDuration argskema.Kind = "duration"
)

// TimeRFC3339 returns a TypeTag that parses RFC3339 timestamps into
// time.Time. Fractional seconds are optional.
func TimeRFC3339() argskema.TypeTag {
	return argskema.TypeTag{Label: "TIME", Parse: func(s string) (any, error) {
		t, err := parseRFC3339(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", argskema.ErrParse, err)
		}
		return t, nil
	}}
}

// Duration returns a TypeTag for time.ParseDuration strings such as "1m30s".
func Duration() argskema.TypeTag {
	return argskema.TypeTag{Label: "DURATION", Parse: func(s string) (any, error) {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", argskema.ErrParse, err)
		}
		return d, nil
	}}
}

// Register returns a copy of r that also understands KindTime and
// KindDuration.
func Register(r *argskema.Registry) *argskema.Registry {
	if r == nil {
		r = argskema.DefaultRegistry()
	}
	return r.With(KindTime, TimeRFC3339()).With(KindDuration, Duration())
}

// FormatRFC3339 renders t in UTC using RFC3339Nano, which trims trailing
// zeros. It is the inverse of the TimeRFC3339 parser.
func FormatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}
