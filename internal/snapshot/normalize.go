package snapshot

import (
	"time"

	"github.com/sehaty/sehaty/internal/domain/patient"
)

// Field describes one canonical field of an entity: the key it takes in the
// snapshot and a typed accessor returning its plain value. Accessors unwrap
// pointers (nil becomes an explicit nil value) so that every optional field
// surfaces as a present-but-null key, never as a missing one.
//
// Required marks fields that are never null by business meaning (a
// medication with no name). A nil value there is a data-quality diagnostic,
// logged by the aggregator, never an error.
type Field[T any] struct {
	Name     string
	Required bool
	Value    func(*T) any
}

// Names returns the ordered key set of a field list.
func Names[T any](fields []Field[T]) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// Normalize converts one record into a plain field->value map holding
// exactly the given field set as keys. It is total: a nil record yields
// every field as nil, and a record missing a value yields nil for that
// field. It never fails.
func Normalize[T any](rec *T, fields []Field[T]) map[string]any {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		if rec == nil {
			out[f.Name] = nil
			continue
		}
		out[f.Name] = scalar(f.Value(rec))
	}
	return out
}

// NormalizeAll normalizes a collection. The result is never nil, so an empty
// collection serializes as an empty array rather than null.
func NormalizeAll[T any](recs []*T, fields []Field[T]) []map[string]any {
	out := make([]map[string]any, 0, len(recs))
	for _, rec := range recs {
		out = append(out, Normalize(rec, fields))
	}
	return out
}

// NormalizeMap handles a record that already arrived as a plain mapping
// (e.g. parsed from a JSON export). If the mapping already carries every
// expected key it is returned as-is; otherwise a copy is made with the
// missing keys filled with nil. Keys outside the expected set are preserved.
// Total: a nil mapping yields all keys nil.
func NormalizeMap(rec map[string]any, names []string) map[string]any {
	complete := rec != nil
	for _, name := range names {
		if _, ok := rec[name]; !ok {
			complete = false
			break
		}
	}
	if complete {
		for _, name := range names {
			rec[name] = scalar(rec[name])
		}
		return rec
	}

	out := make(map[string]any, len(names)+len(rec))
	for k, v := range rec {
		out[k] = scalar(v)
	}
	for _, name := range names {
		if _, ok := out[name]; !ok {
			out[name] = nil
		}
	}
	return out
}

// scalar reduces wrapped values to their plain representation: typed
// enumerations become strings and nil pointers become untyped nil. Temporal
// values stay as time.Time for in-process use; conversion to ISO-8601
// strings happens once, at the export boundary.
func scalar(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case patient.Gender:
		return string(x)
	case patient.BloodType:
		return string(x)
	case *time.Time:
		if x == nil {
			return nil
		}
		return *x
	default:
		return v
	}
}

// opt dereferences an optional field, mapping a nil pointer to an explicit
// nil value.
func opt[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
