package ingredientController

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authMiddleware "github.com/gmaschi/go-recipes-api/internal/controllers/middlewares/auth"
	ingredientModel "github.com/gmaschi/go-recipes-api/internal/models/ingredient"
	db "github.com/gmaschi/go-recipes-api/internal/services/datastore/postgresql/recipes/sqlc"
	"github.com/gmaschi/go-recipes-api/pkg/tools/parseErrors"
	"github.com/lib/pq"
)

var (
	errIngredientNotFound  = errors.New("ingredient not found")
	errDuplicateIngredient = parseErrors.NewFieldError("name", "an ingredient with this name already exists")
)

type Controller struct {
	store db.Store
}

// New creates a pointer to a Controller
func New(store db.Store) *Controller {
	return &Controller{
		store: store,
	}
}

// List handles the request to list the authenticated user's ingredients
func (c *Controller) List(ctx *gin.Context) {
	var req ingredientModel.ListRequest

	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	payload := authMiddleware.Payload(ctx)
	ingredients, err := c.store.ListIngredients(ctx, db.ListIngredientsParams{
		UserID:       payload.UserID,
		AssignedOnly: req.AssignedOnly != 0,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}

	res := make([]ingredientModel.Response, 0, len(ingredients))
	for _, ingredient := range ingredients {
		res = append(res, ingredientModel.NewResponse(ingredient))
	}

	ctx.JSON(http.StatusOK, res)
}

// Create handles the request to create a new ingredient
func (c *Controller) Create(ctx *gin.Context) {
	var req ingredientModel.CreateRequest

	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}
	if err := req.Normalize(); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	payload := authMiddleware.Payload(ctx)
	ingredient, err := c.store.CreateIngredient(ctx, db.CreateIngredientParams{
		UserID: payload.UserID,
		Name:   req.Name,
	})
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, ingredientModel.NewResponse(ingredient))
}

// Ingredient handles the request to get an ingredient by ID
func (c *Controller) Ingredient(ctx *gin.Context) {
	var req ingredientModel.GetRequest

	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	payload := authMiddleware.Payload(ctx)
	ingredient, err := c.store.GetIngredient(ctx, db.GetIngredientParams{ID: req.ID, UserID: payload.UserID})
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ingredientModel.NewResponse(ingredient))
}

// Update handles the request to partially update an ingredient
func (c *Controller) Update(ctx *gin.Context) {
	var uri ingredientModel.GetRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	var req ingredientModel.UpdateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}
	if err := req.Normalize(); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	payload := authMiddleware.Payload(ctx)
	ingredient, err := c.store.GetIngredient(ctx, db.GetIngredientParams{ID: uri.ID, UserID: payload.UserID})
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	if req.Name == nil || *req.Name == ingredient.Name {
		ctx.JSON(http.StatusOK, ingredientModel.NewResponse(ingredient))
		return
	}

	c.rename(ctx, db.UpdateIngredientParams{ID: ingredient.ID, UserID: ingredient.UserID, Name: *req.Name})
}

// Replace handles the request to fully update an ingredient
func (c *Controller) Replace(ctx *gin.Context) {
	var uri ingredientModel.GetRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	var req ingredientModel.CreateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}
	if err := req.Normalize(); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	payload := authMiddleware.Payload(ctx)
	c.rename(ctx, db.UpdateIngredientParams{ID: uri.ID, UserID: payload.UserID, Name: req.Name})
}

func (c *Controller) rename(ctx *gin.Context, arg db.UpdateIngredientParams) {
	ingredient, err := c.store.UpdateIngredient(ctx, arg)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ingredientModel.NewResponse(ingredient))
}

// Delete handles the request to delete an ingredient
func (c *Controller) Delete(ctx *gin.Context) {
	var req ingredientModel.GetRequest

	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	payload := authMiddleware.Payload(ctx)
	rows, err := c.store.DeleteIngredient(ctx, db.DeleteIngredientParams{ID: req.ID, UserID: payload.UserID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}
	if rows == 0 {
		ctx.JSON(http.StatusNotFound, parseErrors.ErrorResponse(errIngredientNotFound))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *Controller) writeError(ctx *gin.Context, err error) {
	if errors.Is(err, sql.ErrNoRows) {
		ctx.JSON(http.StatusNotFound, parseErrors.ErrorResponse(errIngredientNotFound))
		return
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code.Name() {
		case "unique_violation":
			ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(errDuplicateIngredient))
			return
		case "foreign_key_violation":
			ctx.JSON(http.StatusUnauthorized, parseErrors.ErrorResponse(errors.New("user not found")))
			return
		}
	}
	ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
}
