package ingredientModel

import db "github.com/gmaschi/go-recipes-api/internal/services/datastore/postgresql/recipes/sqlc"

type Response struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewResponse(ingredient db.Ingredient) Response {
	return Response{
		ID:   ingredient.ID,
		Name: ingredient.Name,
	}
}
