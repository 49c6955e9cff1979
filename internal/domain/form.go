package domain

// FieldType is the widget type of a form field.
type FieldType string

const (
	FieldTypeSelect FieldType = "select"
	FieldTypeText   FieldType = "text"
)

// SelectOption is a single entry of a select field.
type SelectOption struct {
	Value string
	Label string
}

// FieldOptions fully describes a single form field.
type FieldOptions struct {
	Name            string
	Type            FieldType
	Value           string
	Disabled        FieldDisablePolicy
	Required        bool
	AllowEmpty      bool
	PreserveDefault bool
	Autosubmit      bool
	Label           string
	Description     string
	Requirement     string
	Validators      []string
	MultiOptions    []SelectOption
}

// Form is the resolved user group backend form.
type Form struct {
	Name   string
	Fields []FieldOptions
}

// Field returns the named field or nil.
func (f *Form) Field(name string) *FieldOptions {
	for i := range f.Fields {
		if f.Fields[i].Name == name {
			return &f.Fields[i]
		}
	}
	return nil
}
