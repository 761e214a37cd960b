package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Store provides all queries plus the recipe operations that must run in a transaction
type Store interface {
	Querier
	CreateRecipeTx(ctx context.Context, arg CreateRecipeTxParams) (RecipeTxResult, error)
	UpdateRecipeTx(ctx context.Context, arg UpdateRecipeTxParams) (RecipeTxResult, error)
}

type PostgresqlStore struct {
	db *sql.DB
	*Queries
}

func NewStore(db *sql.DB) Store {
	return &PostgresqlStore{
		db:      db,
		Queries: New(db),
	}
}

// execTx executes fn within a database transaction
func (store *PostgresqlStore) execTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := store.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	q := New(tx)
	err = fn(q)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

type (
	// CreateRecipeTxParams holds the recipe columns plus the tag and ingredient
	// names to get-or-create under the recipe owner.
	CreateRecipeTxParams struct {
		CreateRecipeParams
		TagNames        []string `json:"tag_names"`
		IngredientNames []string `json:"ingredient_names"`
	}

	// UpdateRecipeTxParams holds the new recipe columns. Relations are only
	// replaced when the matching Replace flag is set; an empty name list then clears them.
	UpdateRecipeTxParams struct {
		UpdateRecipeParams
		ReplaceTags        bool     `json:"replace_tags"`
		TagNames           []string `json:"tag_names"`
		ReplaceIngredients bool     `json:"replace_ingredients"`
		IngredientNames    []string `json:"ingredient_names"`
	}

	RecipeTxResult struct {
		Recipe      Recipe       `json:"recipe"`
		Tags        []Tag        `json:"tags"`
		Ingredients []Ingredient `json:"ingredients"`
	}
)

// CreateRecipeTx creates a recipe and links its tags and ingredients in one transaction
func (store *PostgresqlStore) CreateRecipeTx(ctx context.Context, arg CreateRecipeTxParams) (RecipeTxResult, error) {
	var result RecipeTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		result.Recipe, err = q.CreateRecipe(ctx, arg.CreateRecipeParams)
		if err != nil {
			return fmt.Errorf("failed to create recipe: %w", err)
		}

		result.Tags, err = setRecipeTags(ctx, q, result.Recipe, arg.TagNames)
		if err != nil {
			return err
		}

		result.Ingredients, err = setRecipeIngredients(ctx, q, result.Recipe, arg.IngredientNames)
		return err
	})

	return result, err
}

// UpdateRecipeTx updates an owned recipe and, when requested, replaces its relations
func (store *PostgresqlStore) UpdateRecipeTx(ctx context.Context, arg UpdateRecipeTxParams) (RecipeTxResult, error) {
	var result RecipeTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		result.Recipe, err = q.UpdateRecipe(ctx, arg.UpdateRecipeParams)
		if err != nil {
			return fmt.Errorf("failed to update recipe: %w", err)
		}

		if arg.ReplaceTags {
			result.Tags, err = setRecipeTags(ctx, q, result.Recipe, arg.TagNames)
		} else {
			result.Tags, err = recipeTags(ctx, q, result.Recipe.ID)
		}
		if err != nil {
			return err
		}

		if arg.ReplaceIngredients {
			result.Ingredients, err = setRecipeIngredients(ctx, q, result.Recipe, arg.IngredientNames)
		} else {
			result.Ingredients, err = recipeIngredients(ctx, q, result.Recipe.ID)
		}
		return err
	})

	return result, err
}

func setRecipeTags(ctx context.Context, q *Queries, recipe Recipe, names []string) ([]Tag, error) {
	if err := q.ClearRecipeTags(ctx, recipe.ID); err != nil {
		return nil, fmt.Errorf("failed to clear recipe tags: %w", err)
	}

	tags := make([]Tag, 0, len(names))
	for _, name := range uniqueNames(names) {
		tag, err := q.GetOrCreateTag(ctx, GetOrCreateTagParams{UserID: recipe.UserID, Name: name})
		if err != nil {
			return nil, fmt.Errorf("failed to get or create tag %q: %w", name, err)
		}

		err = q.AddRecipeTag(ctx, AddRecipeTagParams{RecipeID: recipe.ID, TagID: tag.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to link tag %q: %w", name, err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func setRecipeIngredients(ctx context.Context, q *Queries, recipe Recipe, names []string) ([]Ingredient, error) {
	if err := q.ClearRecipeIngredients(ctx, recipe.ID); err != nil {
		return nil, fmt.Errorf("failed to clear recipe ingredients: %w", err)
	}

	ingredients := make([]Ingredient, 0, len(names))
	for _, name := range uniqueNames(names) {
		ingredient, err := q.GetOrCreateIngredient(ctx, GetOrCreateIngredientParams{UserID: recipe.UserID, Name: name})
		if err != nil {
			return nil, fmt.Errorf("failed to get or create ingredient %q: %w", name, err)
		}

		err = q.AddRecipeIngredient(ctx, AddRecipeIngredientParams{RecipeID: recipe.ID, IngredientID: ingredient.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to link ingredient %q: %w", name, err)
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, nil
}

func recipeTags(ctx context.Context, q *Queries, recipeID int64) ([]Tag, error) {
	rows, err := q.ListTagsForRecipes(ctx, []int64{recipeID})
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe tags: %w", err)
	}

	tags := make([]Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, Tag{ID: row.ID, UserID: row.UserID, Name: row.Name})
	}
	return tags, nil
}

func recipeIngredients(ctx context.Context, q *Queries, recipeID int64) ([]Ingredient, error) {
	rows, err := q.ListIngredientsForRecipes(ctx, []int64{recipeID})
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe ingredients: %w", err)
	}

	ingredients := make([]Ingredient, 0, len(rows))
	for _, row := range rows {
		ingredients = append(ingredients, Ingredient{ID: row.ID, UserID: row.UserID, Name: row.Name})
	}
	return ingredients, nil
}

// uniqueNames trims names and drops blanks and repeats, keeping first-seen order
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	return unique
}
