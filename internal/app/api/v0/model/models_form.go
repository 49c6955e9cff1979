package model

import (
	"github.com/h44z/groupbackend-portal/internal/domain"
)

type SelectOption struct {
	Value string `json:"Value"`
	Label string `json:"Label"`
}

type FormField struct {
	Name  string `json:"Name"`
	Type  string `json:"Type"`
	Value string `json:"Value"`

	// Disabled is null if the field has no disabled state at all, true if the field is read-only.
	Disabled      domain.FieldDisablePolicy `json:"Disabled"`
	DisablePolicy string                    `json:"DisablePolicy"`

	Required        bool           `json:"Required"`
	AllowEmpty      bool           `json:"AllowEmpty"`
	PreserveDefault bool           `json:"PreserveDefault"`
	Autosubmit      bool           `json:"Autosubmit"`
	Label           string         `json:"Label"`
	Description     string         `json:"Description"`
	Requirement     string         `json:"Requirement,omitempty"`
	Validators      []string       `json:"Validators,omitempty"`
	MultiOptions    []SelectOption `json:"MultiOptions,omitempty"`
}

type Form struct {
	Name   string      `json:"Name"`
	Fields []FormField `json:"Fields"`
}

func NewForm(src *domain.Form) Form {
	form := Form{
		Name:   src.Name,
		Fields: make([]FormField, len(src.Fields)),
	}

	for i, f := range src.Fields {
		var options []SelectOption
		for _, o := range f.MultiOptions {
			options = append(options, SelectOption{Value: o.Value, Label: o.Label})
		}

		form.Fields[i] = FormField{
			Name:            f.Name,
			Type:            string(f.Type),
			Value:           f.Value,
			Disabled:        f.Disabled,
			DisablePolicy:   f.Disabled.String(),
			Required:        f.Required,
			AllowEmpty:      f.AllowEmpty,
			PreserveDefault: f.PreserveDefault,
			Autosubmit:      f.Autosubmit,
			Label:           f.Label,
			Description:     f.Description,
			Requirement:     f.Requirement,
			Validators:      f.Validators,
			MultiOptions:    options,
		}
	}

	return form
}
