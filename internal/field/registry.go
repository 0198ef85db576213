package field

import (
	"fmt"

	"github.com/OogleOG/MEUI/internal/logger"
)

// Registry holds the ordered field list and the live configuration map
// derived from field defaults. Structure is append-only: fields are never
// reordered or removed, and a key once present stays present.
type Registry struct {
	fields []Field
	values map[string]Value
	log    *logger.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{
		values: make(map[string]Value),
		log:    log,
	}
}

// Register validates and appends a field descriptor. Keyed fields insert
// key -> default into the configuration map. A duplicate key keeps the
// original field in place in the order but clobbers the stored value with
// the new default; this mirrors long-standing script behavior, so it is
// logged rather than rejected.
func (r *Registry) Register(f Field) error {
	if err := validateDescriptor(f); err != nil {
		return err
	}

	if keyed, ok := f.(Keyed); ok {
		key := keyed.FieldKey()
		if prev, exists := r.values[key]; exists {
			r.log.WithFields(map[string]any{
				"key":      key,
				"previous": prev.Kind().String(),
				"new":      keyed.DefaultValue().Kind().String(),
			}).Warn("duplicate field key clobbers prior default")
		}
		r.values[key] = keyed.DefaultValue()
	}

	r.fields = append(r.fields, f)
	return nil
}

// Fields returns the live ordered field sequence. The slice is the
// authoritative render order; callers must not mutate it.
func (r *Registry) Fields() []Field {
	return r.fields
}

// Len returns the number of registered fields, keyed or not.
func (r *Registry) Len() int {
	return len(r.fields)
}

// Get returns the value for a key and whether the key exists.
func (r *Registry) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// GetBool returns the bool value for a key; false if absent or not a bool.
func (r *Registry) GetBool(key string) bool {
	v, ok := r.values[key]
	if !ok || v.Kind() != KindBool {
		return false
	}
	return v.Bool()
}

// GetInt returns the int value for a key; 0 if absent or not an int.
func (r *Registry) GetInt(key string) int {
	v, ok := r.values[key]
	if !ok || v.Kind() != KindInt {
		return 0
	}
	return v.Int()
}

// GetString returns the string value for a key; "" if absent or not a string.
func (r *Registry) GetString(key string) string {
	v, ok := r.values[key]
	if !ok || v.Kind() != KindString {
		return ""
	}
	return v.Str()
}

// Set overwrites the value for an existing key. A set for an unknown key or
// with a kind differing from the registered default is ignored with a warn;
// the map never gains keys the field list does not declare.
func (r *Registry) Set(key string, v Value) {
	current, ok := r.values[key]
	if !ok {
		r.log.WithFields(map[string]any{"key": key}).Warn("set ignored: key not registered")
		return
	}
	if !current.SameKind(v) {
		r.log.WithFields(map[string]any{
			"key":      key,
			"expected": current.Kind().String(),
			"got":      v.Kind().String(),
		}).Warn("set ignored: kind mismatch")
		return
	}
	r.values[key] = v
}

// Snapshot returns a copy of the configuration map keyed in field order,
// restricted to keys the field list currently declares. This is the
// projection persisted to disk.
func (r *Registry) Snapshot() map[string]Value {
	out := make(map[string]Value)
	for _, f := range r.fields {
		keyed, ok := f.(Keyed)
		if !ok {
			continue
		}
		if v, exists := r.values[keyed.FieldKey()]; exists {
			out[keyed.FieldKey()] = v
		}
	}
	return out
}

// KeyedFields returns the keyed fields in registration order.
func (r *Registry) KeyedFields() []Keyed {
	var out []Keyed
	for _, f := range r.fields {
		if keyed, ok := f.(Keyed); ok {
			out = append(out, keyed)
		}
	}
	return out
}

// Describe returns a short human-readable summary of a field's current
// value for condensed running views.
func (r *Registry) Describe(f Keyed) string {
	v, ok := r.values[f.FieldKey()]
	if !ok {
		return ""
	}
	switch fd := f.(type) {
	case Checkbox:
		if v.Bool() {
			return "on"
		}
		return "off"
	case Slider:
		if fd.Format != "" {
			return fmt.Sprintf(fd.Format, v.Int())
		}
		return fmt.Sprintf("%d", v.Int())
	case Combo:
		if v.Int() >= 0 && v.Int() < len(fd.Options) {
			return fd.Options[v.Int()]
		}
		return ""
	case Input:
		return v.Str()
	default:
		return ""
	}
}
