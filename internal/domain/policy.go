package domain

import "encoding/json"

// FieldDisablePolicy describes whether the group and user fields of the form can be edited.
//
// Unset is not the same as "enabled": the field is rendered without any disabled attribute at all.
type FieldDisablePolicy int

const (
	FieldPolicyUnset FieldDisablePolicy = iota
	FieldPolicyForceDisabled
	FieldPolicyLinkedDisabled
)

// Disabled reports whether fields under this policy are read-only.
func (p FieldDisablePolicy) Disabled() bool {
	return p != FieldPolicyUnset
}

// Precedence returns the policy that wins if both apply. A linked user backend always
// overrides the flavor based state.
func (p FieldDisablePolicy) Precedence(other FieldDisablePolicy) FieldDisablePolicy {
	if other > p {
		return other
	}
	return p
}

func (p FieldDisablePolicy) String() string {
	switch p {
	case FieldPolicyForceDisabled:
		return "force_disabled"
	case FieldPolicyLinkedDisabled:
		return "linked_disabled"
	default:
		return "unset"
	}
}

// MarshalJSON encodes Unset as null and both disabled variants as true.
func (p FieldDisablePolicy) MarshalJSON() ([]byte, error) {
	if p == FieldPolicyUnset {
		return []byte("null"), nil
	}
	return json.Marshal(true)
}
