package domain

type Widget string

const (
	WidgetEmail    Widget = "email"
	WidgetDate     Widget = "date"
	WidgetTime     Widget = "time"
	WidgetNumber   Widget = "number"
	WidgetCheckbox Widget = "checkbox"
	WidgetTextarea Widget = "textarea"
	WidgetText     Widget = "text"
)

var _widgets = map[PresentationKind]Widget{
	PresentationEmail:     WidgetEmail,
	PresentationDate:      WidgetDate,
	PresentationTime:      WidgetTime,
	PresentationInteger:   WidgetNumber,
	PresentationBoolean:   WidgetCheckbox,
	PresentationLongText:  WidgetTextarea,
	PresentationShortText: WidgetText,
}

type FieldDescriptor struct {
	Name      string
	Label     string
	Kind      PresentationKind
	Widget    Widget
	Required  bool
	MaxLength int
	Value     string
	Error     string
}

type FormDescriptor struct {
	Fields []FieldDescriptor
}

// BuildForm maps every column name to a field descriptor. It is a pure
// function of the names.
func BuildForm(columns []string) FormDescriptor {
	fields := make([]FieldDescriptor, 0, len(columns))
	for _, column := range columns {
		fields = append(fields, describeField(column))
	}
	return FormDescriptor{Fields: fields}
}

func describeField(column string) FieldDescriptor {
	kind := InferPresentationKind(column)
	field := FieldDescriptor{
		Name:     column,
		Label:    Identifier(column).Label(),
		Kind:     kind,
		Widget:   _widgets[kind],
		Required: kind != PresentationBoolean,
	}
	if kind == PresentationShortText {
		field.MaxLength = DefaultMaxLength
	}
	return field
}

func (d FormDescriptor) Field(name string) (FieldDescriptor, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}

func (d FormDescriptor) FieldNames() []string {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	return names
}

// Prefill returns a copy carrying the submitted values and the error of each
// field, ready to be shown again.
func (d FormDescriptor) Prefill(raw map[string]string, errs ValidationErrors) FormDescriptor {
	fields := make([]FieldDescriptor, len(d.Fields))
	for i, f := range d.Fields {
		f.Value = raw[f.Name]
		f.Error = errs[f.Name]
		fields[i] = f
	}
	return FormDescriptor{Fields: fields}
}
