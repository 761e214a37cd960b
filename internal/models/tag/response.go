package tagModel

import db "github.com/gmaschi/go-recipes-api/internal/services/datastore/postgresql/recipes/sqlc"

type Response struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewResponse(tag db.Tag) Response {
	return Response{
		ID:   tag.ID,
		Name: tag.Name,
	}
}
