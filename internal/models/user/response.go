package userModel

import db "github.com/gmaschi/go-recipes-api/internal/services/datastore/postgresql/recipes/sqlc"

type (
	Response struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	TokenResponse struct {
		Token string `json:"token"`
	}
)

// NewResponse hides everything but the public profile of user
func NewResponse(user db.User) Response {
	return Response{
		Email: user.Email,
		Name:  user.Name,
	}
}
