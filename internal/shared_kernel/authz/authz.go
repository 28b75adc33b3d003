package authz

import (
	"context"
	"errors"
)

//go:generate mockgen -source=authz.go -destination=../../../test/unit/doubles/shared_kernel/authz/authz_mock.go -package=authz -mock_names=Authorizer=MockAuthorizer

type Resource string
type Action string

const (
	ResourceForm Resource = "Form"

	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

var ErrForbidden = errors.New("forbidden")

type User struct {
	ID    string
	Name  string
	Email string
	Role  string
}

func (u User) IsAnonymous() bool {
	return u.ID == ""
}

type Authorizer interface {
	Can(ctx context.Context, user User, resource Resource, action Action) bool
}

// Require checks the user carried by ctx and returns ErrForbidden when the
// authorizer denies the action.
func Require(ctx context.Context, authorizer Authorizer, resource Resource, action Action) error {
	user, _ := UserFromContext(ctx)
	if !authorizer.Can(ctx, user, resource, action) {
		return ErrForbidden
	}
	return nil
}

type userContextKey struct{}

func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

func UserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userContextKey{}).(User)
	return user, ok
}
