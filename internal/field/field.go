package field

// Field is the closed set of configuration entry variants. The sealed
// isField method keeps the union fixed: a render or persistence switch over
// these types with a default branch covers every kind there will ever be.
type Field interface {
	isField()
}

// Keyed is implemented by the variants that contribute a configuration
// value (checkbox, slider, combo, input).
type Keyed interface {
	Field
	FieldKey() string
	DefaultValue() Value
}

// Section is a titled group header with optional flavor text.
type Section struct {
	Label string `validate:"required"`
	Desc  string
}

// Separator is a horizontal rule between fields.
type Separator struct{}

// Spacing is an empty vertical gap between fields.
type Spacing struct{}

// Checkbox is a boolean toggle.
type Checkbox struct {
	Key     string `validate:"required,field_key"`
	Label   string `validate:"required"`
	Default bool
	Desc    string
}

// Slider is a bounded integer with a printf-style display format.
type Slider struct {
	Key     string `validate:"required,field_key"`
	Label   string `validate:"required"`
	Default int    `validate:"gtefield=Min,ltefield=Max"`
	Min     int    `validate:"ltfield=Max"`
	Max     int
	Format  string
	Desc    string
}

// Combo is a selection from an ordered option list; Default is a 0-based
// index into Options.
type Combo struct {
	Key     string   `validate:"required,field_key"`
	Label   string   `validate:"required"`
	Default int      `validate:"gte=0"`
	Options []string `validate:"min=1,dive,required"`
	Desc    string
}

// Input is a free-text entry bounded at MaxLen runes.
type Input struct {
	Key     string `validate:"required,field_key"`
	Label   string `validate:"required"`
	Default string
	Desc    string
	MaxLen  int `validate:"gt=0"`
}

func (Section) isField()   {}
func (Separator) isField() {}
func (Spacing) isField()   {}
func (Checkbox) isField()  {}
func (Slider) isField()    {}
func (Combo) isField()     {}
func (Input) isField()     {}

// FieldKey returns the configuration key.
func (f Checkbox) FieldKey() string { return f.Key }

// DefaultValue returns the declared default as a typed value.
func (f Checkbox) DefaultValue() Value { return BoolValue(f.Default) }

// FieldKey returns the configuration key.
func (f Slider) FieldKey() string { return f.Key }

// DefaultValue returns the declared default as a typed value.
func (f Slider) DefaultValue() Value { return IntValue(f.Default) }

// FieldKey returns the configuration key.
func (f Combo) FieldKey() string { return f.Key }

// DefaultValue returns the declared default as a typed value.
func (f Combo) DefaultValue() Value { return IntValue(f.Default) }

// FieldKey returns the configuration key.
func (f Input) FieldKey() string { return f.Key }

// DefaultValue returns the declared default as a typed value.
func (f Input) DefaultValue() Value { return StringValue(f.Default) }
