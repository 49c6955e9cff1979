package groupbackend

import (
	"github.com/h44z/groupbackend-portal/internal/domain"
)

const FormName = "form_config_usergroupbackend_ldap"

// FilterRequirement is the hint shown next to both filter fields.
const FilterRequirement = "The filter needs to be expressed as standard LDAP expression, without outer parentheses. " +
	"(e.g. &(foo=bar)(bar=foo) or foo=bar)"

// FormInput contains the submitted values that drive the resolution.
type FormInput struct {
	Type        string // ldap or msldap
	Resource    string
	UserBackend string
}

// FormValues contains all submitted values of the user group backend form.
type FormValues struct {
	Type        string `form:"type" json:"type" validate:"required"`
	Resource    string `form:"resource" json:"resource" validate:"required"`
	UserBackend string `form:"user_backend" json:"user_backend" validate:"required"`

	GroupClass           string `form:"group_class" json:"group_class"`
	GroupFilter          string `form:"group_filter" json:"group_filter" validate:"omitempty,ldapfilter_unwrapped,ldapfilter"`
	GroupNameAttribute   string `form:"group_name_attribute" json:"group_name_attribute"`
	GroupMemberAttribute string `form:"group_member_attribute" json:"group_member_attribute"`
	BaseDn               string `form:"base_dn" json:"base_dn" validate:"omitempty,ldapdn"`

	UserClass         string `form:"user_class" json:"user_class"`
	UserFilter        string `form:"user_filter" json:"user_filter" validate:"omitempty,ldapfilter_unwrapped,ldapfilter"`
	UserNameAttribute string `form:"user_name_attribute" json:"user_name_attribute"`
	UserBaseDn        string `form:"user_base_dn" json:"user_base_dn" validate:"omitempty,ldapdn"`
}

func (v FormValues) Input() FormInput {
	return FormInput{
		Type:        v.Type,
		Resource:    v.Resource,
		UserBackend: v.UserBackend,
	}
}

func (v FormValues) Attributes() domain.AttributeDefaults {
	return domain.AttributeDefaults{
		GroupClass:           v.GroupClass,
		GroupFilter:          v.GroupFilter,
		GroupNameAttribute:   v.GroupNameAttribute,
		GroupMemberAttribute: v.GroupMemberAttribute,
		BaseDn:               v.BaseDn,
		UserClass:            v.UserClass,
		UserFilter:           v.UserFilter,
		UserNameAttribute:    v.UserNameAttribute,
		UserBaseDn:           v.UserBaseDn,
	}
}

func (v *FormValues) SetAttributes(a domain.AttributeDefaults) {
	v.GroupClass = a.GroupClass
	v.GroupFilter = a.GroupFilter
	v.GroupNameAttribute = a.GroupNameAttribute
	v.GroupMemberAttribute = a.GroupMemberAttribute
	v.BaseDn = a.BaseDn
	v.UserClass = a.UserClass
	v.UserFilter = a.UserFilter
	v.UserNameAttribute = a.UserNameAttribute
	v.UserBaseDn = a.UserBaseDn
}

type attributeField struct {
	name        string
	label       string
	description string
	filter      bool
}

// attributeFields lists the group fields followed by the user fields, in display order.
var attributeFields = []attributeField{
	{
		name:        domain.FieldGroupClass,
		label:       "LDAP Group Object Class",
		description: "The object class used for storing groups on the LDAP server.",
	},
	{
		name:  domain.FieldGroupFilter,
		label: "LDAP Group Filter",
		description: "An additional filter to use when looking up groups using the specified connection. " +
			"Leave empty to not to use any additional filter rules.",
		filter: true,
	},
	{
		name:        domain.FieldGroupNameAttribute,
		label:       "LDAP Group Name Attribute",
		description: "The attribute name used for storing a group's name on the LDAP server.",
	},
	{
		name:        domain.FieldGroupMemberAttribute,
		label:       "LDAP Group Member Attribute",
		description: "The attribute name used for storing a group's members on the LDAP server.",
	},
	{
		name:  domain.FieldBaseDn,
		label: "LDAP Group Base DN",
		description: "The path where groups can be found on the LDAP server. " +
			"Leave empty to select all users available using the specified connection.",
	},
	{
		name:        domain.FieldUserClass,
		label:       "LDAP User Object Class",
		description: "The object class used for storing users on the LDAP server.",
	},
	{
		name:  domain.FieldUserFilter,
		label: "LDAP User Filter",
		description: "An additional filter to use when looking up users using the specified connection. " +
			"Leave empty to not to use any additional filter rules.",
		filter: true,
	},
	{
		name:        domain.FieldUserNameAttribute,
		label:       "LDAP User Name Attribute",
		description: "The attribute name used for storing a user's name on the LDAP server.",
	},
	{
		name:  domain.FieldUserBaseDn,
		label: "LDAP User Base DN",
		description: "The path where users can be found on the LDAP server. " +
			"Leave empty to select all users available using the specified connection.",
	},
}

// AttributeFieldNames returns the names of all group and user fields.
func AttributeFieldNames() []string {
	names := make([]string, len(attributeFields))
	for i, f := range attributeFields {
		names[i] = f.name
	}
	return names
}

// FormFor converts a resolution into the field options of the form.
func FormFor(res *Resolution, loc Localizer) *domain.Form {
	form := &domain.Form{Name: FormName}

	resourceOptions := make([]domain.SelectOption, len(res.ResourceNames))
	for i, name := range res.ResourceNames {
		resourceOptions[i] = domain.SelectOption{Value: name, Label: name}
	}
	form.Fields = append(form.Fields, domain.FieldOptions{
		Name:         domain.FieldResource,
		Type:         domain.FieldTypeSelect,
		Value:        res.Resource.Name,
		Required:     true,
		Autosubmit:   true,
		Label:        loc.Sprintf("LDAP Connection"),
		Description:  loc.Sprintf("The LDAP connection to use for this backend."),
		MultiOptions: resourceOptions,
	})

	backendOptions := []domain.SelectOption{{Value: domain.NoUserBackend, Label: loc.Sprintf("None")}}
	for _, name := range res.UserBackendNames {
		backendOptions = append(backendOptions, domain.SelectOption{Value: name, Label: name})
	}
	form.Fields = append(form.Fields, domain.FieldOptions{
		Name:         domain.FieldUserBackend,
		Type:         domain.FieldTypeSelect,
		Value:        res.UserBackend,
		Required:     true,
		Autosubmit:   true,
		Label:        loc.Sprintf("User Backend"),
		Description:  loc.Sprintf("The user backend to link with this user group backend."),
		MultiOptions: backendOptions,
	})

	for _, f := range attributeFields {
		field := domain.FieldOptions{
			Name:            f.name,
			Type:            domain.FieldTypeText,
			Value:           res.Defaults.Value(f.name),
			Disabled:        res.Policy,
			PreserveDefault: true,
			Label:           loc.Sprintf(f.label),
			Description:     loc.Sprintf(f.description),
		}
		if f.filter {
			field.AllowEmpty = true
			field.Requirement = loc.Sprintf(FilterRequirement)
			field.Validators = []string{"ldapfilter_unwrapped", "ldapfilter"}
		}
		if f.name == domain.FieldBaseDn || f.name == domain.FieldUserBaseDn {
			field.Validators = []string{"ldapdn"}
		}
		form.Fields = append(form.Fields, field)
	}

	return form
}
