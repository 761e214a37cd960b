package recipeController

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	authMiddleware "github.com/gmaschi/go-recipes-api/internal/controllers/middlewares/auth"
	recipeModel "github.com/gmaschi/go-recipes-api/internal/models/recipe"
	db "github.com/gmaschi/go-recipes-api/internal/services/datastore/postgresql/recipes/sqlc"
	"github.com/gmaschi/go-recipes-api/internal/services/imagestore"
	"github.com/gmaschi/go-recipes-api/pkg/tools/parseErrors"
	"github.com/lib/pq"
)

var (
	errRecipeNotFound = errors.New("recipe not found")
	errUserNotFound   = errors.New("user not found")
	errNoImage        = parseErrors.NewFieldError("image", "no file was submitted")
	errImageTooLarge  = parseErrors.NewFieldError("image", "the submitted file is too large")
)

type Controller struct {
	store         db.Store
	images        imagestore.Storer
	maxUploadSize int64
}

// New creates a pointer to a Controller
func New(store db.Store, images imagestore.Storer, maxUploadSize int64) *Controller {
	return &Controller{
		store:         store,
		images:        images,
		maxUploadSize: maxUploadSize,
	}
}

// List handles the request to list the authenticated user's recipes, optionally filtered by tags and ingredients
func (c *Controller) List(ctx *gin.Context) {
	var req recipeModel.ListRequest

	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	tagIDs, err := recipeModel.ParseIDs("tags", req.Tags)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}
	ingredientIDs, err := recipeModel.ParseIDs("ingredients", req.Ingredients)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	payload := authMiddleware.Payload(ctx)
	recipes, err := c.store.ListRecipes(ctx, db.ListRecipesParams{
		UserID:        payload.UserID,
		TagIds:        tagIDs,
		IngredientIds: ingredientIDs,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}

	res := make([]recipeModel.ListResponse, 0, len(recipes))
	if len(recipes) == 0 {
		ctx.JSON(http.StatusOK, res)
		return
	}

	recipeIDs := make([]int64, 0, len(recipes))
	for _, recipe := range recipes {
		recipeIDs = append(recipeIDs, recipe.ID)
	}

	tagRows, err := c.store.ListTagsForRecipes(ctx, recipeIDs)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}
	ingredientRows, err := c.store.ListIngredientsForRecipes(ctx, recipeIDs)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}

	tags := recipeModel.GroupTags(tagRows)
	ingredients := recipeModel.GroupIngredients(ingredientRows)
	for _, recipe := range recipes {
		res = append(res, recipeModel.NewListResponse(recipe, tags[recipe.ID], ingredients[recipe.ID]))
	}

	ctx.JSON(http.StatusOK, res)
}

// Create handles the request to create a new recipe with its tags and ingredients
func (c *Controller) Create(ctx *gin.Context) {
	var req recipeModel.CreateRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	if err := recipeModel.ValidatePrice(*req.Price); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	payload := authMiddleware.Payload(ctx)
	createArgs := db.CreateRecipeTxParams{
		CreateRecipeParams: db.CreateRecipeParams{
			UserID:      payload.UserID,
			Title:       req.Title,
			TimeMinutes: *req.TimeMinutes,
			Price:       *req.Price,
			Description: req.Description,
			Link:        req.Link,
		},
		TagNames:        recipeModel.Names(req.Tags),
		IngredientNames: recipeModel.Names(req.Ingredients),
	}

	result, err := c.store.CreateRecipeTx(ctx, createArgs)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			ctx.JSON(http.StatusUnauthorized, parseErrors.ErrorResponse(errUserNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, recipeModel.NewTxDetailResponse(result, c.images.URL))
}

// Recipe handles the request to get one of the authenticated user's recipes by ID
func (c *Controller) Recipe(ctx *gin.Context) {
	var req recipeModel.GetRequest

	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	recipe, ok := c.ownedRecipe(ctx, req.ID)
	if !ok {
		return
	}

	tagRows, err := c.store.ListTagsForRecipes(ctx, []int64{recipe.ID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}
	ingredientRows, err := c.store.ListIngredientsForRecipes(ctx, []int64{recipe.ID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}

	res := recipeModel.NewDetailResponse(
		recipe,
		recipeModel.GroupTags(tagRows)[recipe.ID],
		recipeModel.GroupIngredients(ingredientRows)[recipe.ID],
		c.images.URL,
	)
	ctx.JSON(http.StatusOK, res)
}

// Update handles the request to partially update a recipe
func (c *Controller) Update(ctx *gin.Context) {
	var uri recipeModel.GetRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	var req recipeModel.UpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	recipe, ok := c.ownedRecipe(ctx, uri.ID)
	if !ok {
		return
	}

	updateArgs := db.UpdateRecipeTxParams{
		UpdateRecipeParams: db.UpdateRecipeParams{
			ID:          recipe.ID,
			UserID:      recipe.UserID,
			Title:       recipe.Title,
			TimeMinutes: recipe.TimeMinutes,
			Price:       recipe.Price,
			Description: recipe.Description,
			Link:        recipe.Link,
			UpdatedAt:   time.Now().UTC(),
		},
	}

	if req.Title != nil {
		updateArgs.Title = *req.Title
	}
	if req.TimeMinutes != nil {
		updateArgs.TimeMinutes = *req.TimeMinutes
	}
	if req.Price != nil {
		if err := recipeModel.ValidatePrice(*req.Price); err != nil {
			ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
			return
		}
		updateArgs.Price = *req.Price
	}
	if req.Description != nil {
		updateArgs.Description = *req.Description
	}
	if req.Link != nil {
		updateArgs.Link = *req.Link
	}
	if req.Tags != nil {
		updateArgs.ReplaceTags = true
		updateArgs.TagNames = recipeModel.Names(*req.Tags)
	}
	if req.Ingredients != nil {
		updateArgs.ReplaceIngredients = true
		updateArgs.IngredientNames = recipeModel.Names(*req.Ingredients)
	}

	c.updateRecipe(ctx, updateArgs)
}

// Replace handles the request to fully update a recipe
func (c *Controller) Replace(ctx *gin.Context) {
	var uri recipeModel.GetRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	var req recipeModel.ReplaceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	if err := recipeModel.ValidatePrice(*req.Price); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	payload := authMiddleware.Payload(ctx)
	updateArgs := db.UpdateRecipeTxParams{
		UpdateRecipeParams: db.UpdateRecipeParams{
			ID:          uri.ID,
			UserID:      payload.UserID,
			Title:       req.Title,
			TimeMinutes: *req.TimeMinutes,
			Price:       *req.Price,
			Description: req.Description,
			Link:        req.Link,
			UpdatedAt:   time.Now().UTC(),
		},
	}
	if req.Tags != nil {
		updateArgs.ReplaceTags = true
		updateArgs.TagNames = recipeModel.Names(*req.Tags)
	}
	if req.Ingredients != nil {
		updateArgs.ReplaceIngredients = true
		updateArgs.IngredientNames = recipeModel.Names(*req.Ingredients)
	}

	c.updateRecipe(ctx, updateArgs)
}

func (c *Controller) updateRecipe(ctx *gin.Context, updateArgs db.UpdateRecipeTxParams) {
	result, err := c.store.UpdateRecipeTx(ctx, updateArgs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, parseErrors.ErrorResponse(errRecipeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, recipeModel.NewTxDetailResponse(result, c.images.URL))
}

// Delete handles the request to delete a recipe and its image
func (c *Controller) Delete(ctx *gin.Context) {
	var req recipeModel.GetRequest

	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	recipe, ok := c.ownedRecipe(ctx, req.ID)
	if !ok {
		return
	}

	rows, err := c.store.DeleteRecipe(ctx, db.DeleteRecipeParams{ID: recipe.ID, UserID: recipe.UserID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}
	if rows == 0 {
		ctx.JSON(http.StatusNotFound, parseErrors.ErrorResponse(errRecipeNotFound))
		return
	}

	if recipe.Image.Valid {
		c.removeImage(ctx, recipe.Image.String)
	}

	ctx.Status(http.StatusNoContent)
}

// UploadImage handles the multipart upload of a recipe image, replacing the previous one
func (c *Controller) UploadImage(ctx *gin.Context) {
	var req recipeModel.UploadImageRequest

	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	recipe, ok := c.ownedRecipe(ctx, req.ID)
	if !ok {
		return
	}

	if c.maxUploadSize > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxUploadSize)
	}

	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(errImageTooLarge))
			return
		}
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(errNoImage))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}
	defer file.Close()

	key, err := imagestore.Save(ctx, c.images, imagestore.RecipeDir, file)
	if err != nil {
		if errors.Is(err, imagestore.ErrInvalidImage) {
			ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(parseErrors.NewFieldError("image", err.Error())))
			return
		}
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}

	updated, err := c.store.UpdateRecipeImage(ctx, db.UpdateRecipeImageParams{
		ID:        recipe.ID,
		UserID:    recipe.UserID,
		Image:     sql.NullString{String: key, Valid: true},
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		c.removeImage(ctx, key)
		if errors.Is(err, sql.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, parseErrors.ErrorResponse(errRecipeNotFound))
			return
		}
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}

	if recipe.Image.Valid && recipe.Image.String != key {
		c.removeImage(ctx, recipe.Image.String)
	}

	ctx.JSON(http.StatusOK, recipeModel.ImageResponse{
		ID:    updated.ID,
		Image: c.images.URL(updated.Image.String),
	})
}

// ownedRecipe loads a recipe of the authenticated user, writing the error response when it cannot
func (c *Controller) ownedRecipe(ctx *gin.Context, id int64) (db.Recipe, bool) {
	payload := authMiddleware.Payload(ctx)

	recipe, err := c.store.GetRecipe(ctx, db.GetRecipeParams{ID: id, UserID: payload.UserID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, parseErrors.ErrorResponse(errRecipeNotFound))
			return db.Recipe{}, false
		}
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return db.Recipe{}, false
	}
	return recipe, true
}

// removeImage deletes a stored image. Failures are logged and otherwise ignored.
func (c *Controller) removeImage(ctx *gin.Context, key string) {
	if err := c.images.Delete(ctx, key); err != nil {
		slog.WarnContext(ctx, "failed to remove recipe image", slog.String("key", key), slog.String("error", err.Error()))
	}
}
