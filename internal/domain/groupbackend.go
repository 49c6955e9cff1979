package domain

import "time"

// UserGroupBackendIdentifier is the unique name of a user group backend.
type UserGroupBackendIdentifier string

// UserGroupBackend tells the system how group memberships are looked up on a directory server.
type UserGroupBackend struct {
	Identifier UserGroupBackendIdentifier `gorm:"primaryKey;column:identifier"`
	CreatedAt  time.Time                  `gorm:"column:created_at"`
	UpdatedAt  time.Time                  `gorm:"column:updated_at"`

	Backend     DirectoryFlavor `gorm:"column:backend"`
	Resource    string          `gorm:"column:resource"`
	UserBackend string          `gorm:"column:user_backend"` // empty if no user backend is linked

	GroupClass           string `gorm:"column:group_class"`
	GroupFilter          string `gorm:"column:group_filter"`
	GroupNameAttribute   string `gorm:"column:group_name_attribute"`
	GroupMemberAttribute string `gorm:"column:group_member_attribute"`
	BaseDn               string `gorm:"column:base_dn"`

	UserClass         string `gorm:"column:user_class"`
	UserFilter        string `gorm:"column:user_filter"`
	UserNameAttribute string `gorm:"column:user_name_attribute"`
	UserBaseDn        string `gorm:"column:user_base_dn"`
}

// LinksUserBackend reports whether a user backend is linked.
func (b *UserGroupBackend) LinksUserBackend() bool {
	return b.UserBackend != "" && b.UserBackend != NoUserBackend
}

// Attributes returns the attribute part of the backend.
func (b *UserGroupBackend) Attributes() AttributeDefaults {
	return AttributeDefaults{
		GroupClass:           b.GroupClass,
		GroupFilter:          b.GroupFilter,
		GroupNameAttribute:   b.GroupNameAttribute,
		GroupMemberAttribute: b.GroupMemberAttribute,
		BaseDn:               b.BaseDn,
		UserClass:            b.UserClass,
		UserFilter:           b.UserFilter,
		UserNameAttribute:    b.UserNameAttribute,
		UserBaseDn:           b.UserBaseDn,
	}
}

// SetAttributes copies all attribute values to the backend.
func (b *UserGroupBackend) SetAttributes(a AttributeDefaults) {
	b.GroupClass = a.GroupClass
	b.GroupFilter = a.GroupFilter
	b.GroupNameAttribute = a.GroupNameAttribute
	b.GroupMemberAttribute = a.GroupMemberAttribute
	b.BaseDn = a.BaseDn
	b.UserClass = a.UserClass
	b.UserFilter = a.UserFilter
	b.UserNameAttribute = a.UserNameAttribute
	b.UserBaseDn = a.UserBaseDn
}
