package describe

import (
	"bytes"
	"fmt"
	"io"
	"time"

	json "github.com/goccy/go-json"

	"github.com/reoring/argskema"
	"github.com/reoring/argskema/codec"
)

// FromJSON decodes a description document. Unknown keys are errors.
func FromJSON(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var d Document
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("describe: %w", err)
	}
	return &d, nil
}

// EncodeJSON writes the option table of s as indented JSON.
func EncodeJSON(w io.Writer, s *argskema.Schema) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(OptionTable(s))
}

// EncodeValues writes vals as one line of JSON: an object in declaration
// order for named fields, an array for tuples. Times are written in UTC
// RFC3339 and durations in time.Duration notation, so both read back with
// their parsers.
func EncodeValues(w io.Writer, vals argskema.Values) error {
	var b bytes.Buffer
	if vals.Tuple() {
		raw, err := json.Marshal(jsonValue(vals.Slice()))
		if err != nil {
			return err
		}
		b.Write(raw)
	} else {
		b.WriteByte('{')
		for i := 0; i < vals.Len(); i++ {
			if i > 0 {
				b.WriteByte(',')
			}
			k, err := json.Marshal(vals.Name(i))
			if err != nil {
				return err
			}
			v, err := json.Marshal(jsonValue(vals.At(i)))
			if err != nil {
				return err
			}
			b.Write(k)
			b.WriteByte(':')
			b.Write(v)
		}
		b.WriteByte('}')
	}
	b.WriteByte('\n')
	_, err := w.Write(b.Bytes())
	return err
}

func jsonValue(v any) any {
	switch x := v.(type) {
	case time.Time:
		return codec.FormatRFC3339(x)
	case time.Duration:
		return x.String()
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = jsonValue(e)
		}
		return out
	}
	return v
}
