package services

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/lumina/internal/client/client"
	"github.com/dmitrijs2005/lumina/internal/client/models"
)

type Users struct {
	api client.Doer
}

func NewUsers(api client.Doer) *Users {
	return &Users{api: api}
}

func (u *Users) User(ctx context.Context, id string) (models.User, error) {
	return client.Get[models.User](ctx, u.api, resource("/api/users", id))
}

// UpdateMe changes the caller's own profile. Nil fields are left as they
// are.
func (u *Users) UpdateMe(ctx context.Context, in models.UserUpdate) (models.User, error) {
	if err := checkInput(in); err != nil {
		return models.User{}, err
	}
	return client.Put[models.User](ctx, u.api, "/api/users/me", in)
}

func (u *Users) List(ctx context.Context, search string, page PageQuery) (models.Page[models.User], error) {
	v := url.Values{}
	setIf(v, "search", search)
	page.apply(v)
	return client.Get[models.Page[models.User]](ctx, u.api, withQuery("/api/users", v))
}
