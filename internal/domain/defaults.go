package domain

// Field names of the user group backend form.
const (
	FieldResource             = "resource"
	FieldUserBackend          = "user_backend"
	FieldGroupClass           = "group_class"
	FieldGroupFilter          = "group_filter"
	FieldGroupNameAttribute   = "group_name_attribute"
	FieldGroupMemberAttribute = "group_member_attribute"
	FieldBaseDn               = "base_dn"
	FieldUserClass            = "user_class"
	FieldUserFilter           = "user_filter"
	FieldUserNameAttribute    = "user_name_attribute"
	FieldUserBaseDn           = "user_base_dn"
)

// AttributeDefaults contains the default values of all group and user fields.
type AttributeDefaults struct {
	GroupClass           string `json:"group_class"`
	GroupFilter          string `json:"group_filter"`
	GroupNameAttribute   string `json:"group_name_attribute"`
	GroupMemberAttribute string `json:"group_member_attribute"`
	BaseDn               string `json:"base_dn"`

	UserClass         string `json:"user_class"`
	UserFilter        string `json:"user_filter"`
	UserNameAttribute string `json:"user_name_attribute"`
	UserBaseDn        string `json:"user_base_dn"`
}

// OpenLdapDefaults returns the schema defaults of a generic OpenLDAP server.
func OpenLdapDefaults() AttributeDefaults {
	return AttributeDefaults{
		GroupClass:           "group",
		GroupNameAttribute:   "gid",
		GroupMemberAttribute: "member",
		UserClass:            "inetOrgPerson",
		UserNameAttribute:    "uid",
	}
}

// ActiveDirectoryDefaults returns the fixed schema defaults of Microsoft Active Directory.
func ActiveDirectoryDefaults() AttributeDefaults {
	return AttributeDefaults{
		GroupClass:           "group",
		GroupNameAttribute:   "sAMAccountName",
		GroupMemberAttribute: "member",
		UserClass:            "user",
		UserNameAttribute:    "sAMAccountName",
	}
}

// DefaultsFor returns the baseline defaults of the given flavor.
func DefaultsFor(flavor DirectoryFlavor) AttributeDefaults {
	if flavor == DirectoryFlavorActiveDirectory {
		return ActiveDirectoryDefaults()
	}
	return OpenLdapDefaults()
}

// Merge replaces the user related attributes with the mapping of the given user backend.
// Group attributes and the group base DN are left untouched.
func (d AttributeDefaults) Merge(backend UserBackendRef) AttributeDefaults {
	d.UserBaseDn = backend.BaseDn
	d.UserClass = backend.UserClass
	d.UserNameAttribute = backend.UserNameAttribute
	d.UserFilter = backend.Filter
	return d
}

// Value returns the default of the named field.
func (d AttributeDefaults) Value(field string) string {
	switch field {
	case FieldGroupClass:
		return d.GroupClass
	case FieldGroupFilter:
		return d.GroupFilter
	case FieldGroupNameAttribute:
		return d.GroupNameAttribute
	case FieldGroupMemberAttribute:
		return d.GroupMemberAttribute
	case FieldBaseDn:
		return d.BaseDn
	case FieldUserClass:
		return d.UserClass
	case FieldUserFilter:
		return d.UserFilter
	case FieldUserNameAttribute:
		return d.UserNameAttribute
	case FieldUserBaseDn:
		return d.UserBaseDn
	default:
		return ""
	}
}

// SetValue sets the named field. Unknown fields are ignored.
func (d *AttributeDefaults) SetValue(field, value string) {
	switch field {
	case FieldGroupClass:
		d.GroupClass = value
	case FieldGroupFilter:
		d.GroupFilter = value
	case FieldGroupNameAttribute:
		d.GroupNameAttribute = value
	case FieldGroupMemberAttribute:
		d.GroupMemberAttribute = value
	case FieldBaseDn:
		d.BaseDn = value
	case FieldUserClass:
		d.UserClass = value
	case FieldUserFilter:
		d.UserFilter = value
	case FieldUserNameAttribute:
		d.UserNameAttribute = value
	case FieldUserBaseDn:
		d.UserBaseDn = value
	}
}
