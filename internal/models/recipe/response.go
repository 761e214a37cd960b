package recipeModel

import (
	db "github.com/gmaschi/go-recipes-api/internal/services/datastore/postgresql/recipes/sqlc"
)

type (
	NameResponse struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	ListResponse struct {
		ID          int64          `json:"id"`
		Title       string         `json:"title"`
		TimeMinutes int32          `json:"time_minutes"`
		Price       string         `json:"price"`
		Link        string         `json:"link"`
		Tags        []NameResponse `json:"tags"`
		Ingredients []NameResponse `json:"ingredients"`
	}

	DetailResponse struct {
		ListResponse
		Description string  `json:"description"`
		Image       *string `json:"image"`
	}

	ImageResponse struct {
		ID    int64  `json:"id"`
		Image string `json:"image"`
	}
)

// NewListResponse builds the list projection. tags and ingredients may be nil.
func NewListResponse(recipe db.Recipe, tags, ingredients []NameResponse) ListResponse {
	if tags == nil {
		tags = []NameResponse{}
	}
	if ingredients == nil {
		ingredients = []NameResponse{}
	}

	return ListResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price.StringFixed(2),
		Link:        recipe.Link,
		Tags:        tags,
		Ingredients: ingredients,
	}
}

// NewDetailResponse builds the detail projection, imageURL resolves the stored image key
func NewDetailResponse(recipe db.Recipe, tags, ingredients []NameResponse, imageURL func(string) string) DetailResponse {
	res := DetailResponse{
		ListResponse: NewListResponse(recipe, tags, ingredients),
		Description:  recipe.Description,
	}
	if recipe.Image.Valid && recipe.Image.String != "" {
		url := imageURL(recipe.Image.String)
		res.Image = &url
	}
	return res
}

// NewTxDetailResponse builds the detail projection from a transactional write
func NewTxDetailResponse(result db.RecipeTxResult, imageURL func(string) string) DetailResponse {
	return NewDetailResponse(result.Recipe, TagsResponse(result.Tags), IngredientsResponse(result.Ingredients), imageURL)
}

func TagsResponse(tags []db.Tag) []NameResponse {
	res := make([]NameResponse, 0, len(tags))
	for _, tag := range tags {
		res = append(res, NameResponse{ID: tag.ID, Name: tag.Name})
	}
	return res
}

func IngredientsResponse(ingredients []db.Ingredient) []NameResponse {
	res := make([]NameResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		res = append(res, NameResponse{ID: ingredient.ID, Name: ingredient.Name})
	}
	return res
}

// GroupTags indexes tag rows by recipe id
func GroupTags(rows []db.ListTagsForRecipesRow) map[int64][]NameResponse {
	grouped := make(map[int64][]NameResponse)
	for _, row := range rows {
		grouped[row.RecipeID] = append(grouped[row.RecipeID], NameResponse{ID: row.ID, Name: row.Name})
	}
	return grouped
}

// GroupIngredients indexes ingredient rows by recipe id
func GroupIngredients(rows []db.ListIngredientsForRecipesRow) map[int64][]NameResponse {
	grouped := make(map[int64][]NameResponse)
	for _, row := range rows {
		grouped[row.RecipeID] = append(grouped[row.RecipeID], NameResponse{ID: row.ID, Name: row.Name})
	}
	return grouped
}
