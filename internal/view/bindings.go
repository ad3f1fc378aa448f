package view

import "errors"

// Field names one of the six text elements the widget renders into.
type Field string

const (
	FieldLocation    Field = "location"
	FieldConditions  Field = "conditions"
	FieldTemperature Field = "temperature"
	FieldFeelsLike   Field = "feelsLike"
	FieldWind        Field = "wind"
	FieldHumidity    Field = "humidity"
)

// Fields lists every text field in render order.
var Fields = []Field{FieldLocation, FieldConditions, FieldTemperature, FieldFeelsLike, FieldWind, FieldHumidity}

// TextElement is a handle on a text node of the display surface.
type TextElement interface {
	Text() string
	SetText(string)
	Visible() bool
	SetVisible(bool)
}

// VideoElement is a handle on the background video.
type VideoElement interface {
	Source() string
	SetSource(string)
	Visible() bool
	SetVisible(bool)
	Play() error
}

// Indicator is the loading indicator.
type Indicator interface {
	Visible() bool
	Show()
	Hide()
}

// InputElement is the location text input.
type InputElement interface {
	Value() string
	SetValue(string)
	Clear()
}

// Bindings is the set of handles the controller renders into. They are
// resolved once, when the controller is built.
type Bindings struct {
	Location    TextElement
	Conditions  TextElement
	Temperature TextElement
	FeelsLike   TextElement
	Wind        TextElement
	Humidity    TextElement

	Background VideoElement
	Loading    Indicator
	Input      InputElement
}

var errMissingBinding = errors.New("view: missing element binding")

// Text returns the handle bound to f.
func (b Bindings) Text(f Field) TextElement {
	switch f {
	case FieldLocation:
		return b.Location
	case FieldConditions:
		return b.Conditions
	case FieldTemperature:
		return b.Temperature
	case FieldFeelsLike:
		return b.FeelsLike
	case FieldWind:
		return b.Wind
	case FieldHumidity:
		return b.Humidity
	default:
		return nil
	}
}

func (b Bindings) validate() error {
	for _, f := range Fields {
		if b.Text(f) == nil {
			return errMissingBinding
		}
	}
	if b.Background == nil || b.Loading == nil || b.Input == nil {
		return errMissingBinding
	}
	return nil
}
