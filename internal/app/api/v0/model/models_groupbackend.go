package model

import (
	"time"

	"github.com/h44z/groupbackend-portal/internal/domain"
)

type UserGroupBackend struct {
	Name      string    `json:"Name"`
	CreatedAt time.Time `json:"CreatedAt"`
	UpdatedAt time.Time `json:"UpdatedAt"`

	Type        string `json:"Type"`
	Resource    string `json:"Resource"`
	UserBackend string `json:"UserBackend"`

	Attributes domain.AttributeDefaults `json:"Attributes"`
}

func NewUserGroupBackend(src *domain.UserGroupBackend) UserGroupBackend {
	userBackend := domain.NoUserBackend
	if src.LinksUserBackend() {
		userBackend = src.UserBackend
	}

	return UserGroupBackend{
		Name:        string(src.Identifier),
		CreatedAt:   src.CreatedAt,
		UpdatedAt:   src.UpdatedAt,
		Type:        string(src.Backend),
		Resource:    src.Resource,
		UserBackend: userBackend,
		Attributes:  src.Attributes(),
	}
}

func NewUserGroupBackends(src []domain.UserGroupBackend) []UserGroupBackend {
	results := make([]UserGroupBackend, len(src))
	for i := range src {
		results[i] = NewUserGroupBackend(&src[i])
	}
	return results
}

type ProbeResult struct {
	Resource  string `json:"Resource"`
	Reachable bool   `json:"Reachable"`
	Error     string `json:"Error,omitempty"`
}

func NewProbeResult(src domain.ResourceProbeResult) ProbeResult {
	return ProbeResult{
		Resource:  src.Resource,
		Reachable: src.Reachable,
		Error:     src.Error,
	}
}
