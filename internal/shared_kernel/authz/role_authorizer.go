package authz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const _wildcard = "*"

var _ Authorizer = (*RoleAuthorizer)(nil)

// RoleAuthorizer grants "<Resource>:<action>" permissions per role. A grant of
// "*" allows everything, "Form:*" allows every action on forms.
type RoleAuthorizer struct {
	defaultRole string
	grants      map[string]map[string]bool
}

func NewRoleAuthorizer(defaultRole string, roles map[string][]string) *RoleAuthorizer {
	grants := make(map[string]map[string]bool, len(roles))
	for role, permissions := range roles {
		set := make(map[string]bool, len(permissions))
		for _, permission := range permissions {
			set[strings.TrimSpace(permission)] = true
		}
		grants[strings.ToLower(role)] = set
	}

	return &RoleAuthorizer{
		defaultRole: strings.ToLower(defaultRole),
		grants:      grants,
	}
}

func (a *RoleAuthorizer) Can(_ context.Context, user User, resource Resource, action Action) bool {
	role := strings.ToLower(user.Role)
	if role == "" {
		role = a.defaultRole
	}

	set, ok := a.grants[role]
	if !ok {
		slog.Debug("unknown role", slog.String("role", role), slog.String("user_id", user.ID))
		return false
	}

	allowed := set[_wildcard] ||
		set[fmt.Sprintf("%s:%s", resource, _wildcard)] ||
		set[fmt.Sprintf("%s:%s", resource, action)]
	if !allowed {
		slog.Debug("permission denied",
			slog.String("user_id", user.ID),
			slog.String("role", role),
			slog.String("resource", string(resource)),
			slog.String("action", string(action)),
		)
	}

	return allowed
}

type allowAll struct{}

func (allowAll) Can(context.Context, User, Resource, Action) bool { return true }

// AllowAll is used by tools and tests that run without an identity provider.
func AllowAll() Authorizer {
	return allowAll{}
}
