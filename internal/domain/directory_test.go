package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirectoryFlavor(t *testing.T) {
	tests := []struct {
		input   string
		want    DirectoryFlavor
		wantErr bool
	}{
		{input: "ldap", want: DirectoryFlavorOpenLdap},
		{input: "LDAP", want: DirectoryFlavorOpenLdap},
		{input: " msldap ", want: DirectoryFlavorActiveDirectory},
		{input: "MsLdap", want: DirectoryFlavorActiveDirectory},
		{input: "db", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDirectoryFlavor(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidData)
				assert.False(t, IsDirectoryType(tt.input))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsDirectoryType(tt.input))
		})
	}
}

func TestDirectoryResourceRef_SameServer(t *testing.T) {
	a := DirectoryResourceRef{Name: "dc1", Hostname: "ldap.example.com", Port: 389}
	b := DirectoryResourceRef{Name: "dc1-alias", Hostname: "ldap.example.com", Port: 389}
	c := DirectoryResourceRef{Name: "dc1", Hostname: "ldap.example.com", Port: 636}

	assert.True(t, a.SameServer(b))
	assert.False(t, a.SameServer(c))
	assert.Equal(t, "dc1 (ldap.example.com:389)", a.String())
}

func TestFieldErrors(t *testing.T) {
	errs := FieldErrors{}
	errs.Add(FieldUserFilter, "second")
	errs.Add(FieldGroupFilter, "first")
	errs.Add(FieldGroupFilter, "ignored")

	assert.Len(t, errs, 2)
	assert.Equal(t, "validation failed: group_filter: first; user_filter: second", errs.Error())
}
