package tagController

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authMiddleware "github.com/gmaschi/go-recipes-api/internal/controllers/middlewares/auth"
	tagModel "github.com/gmaschi/go-recipes-api/internal/models/tag"
	db "github.com/gmaschi/go-recipes-api/internal/services/datastore/postgresql/recipes/sqlc"
	"github.com/gmaschi/go-recipes-api/pkg/tools/parseErrors"
	"github.com/lib/pq"
)

var (
	errTagNotFound  = errors.New("tag not found")
	errDuplicateTag = parseErrors.NewFieldError("name", "a tag with this name already exists")
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

// List handles the request to list the authenticated user's tags
func (c *Controller) List(ctx *gin.Context) {
	var req tagModel.ListRequest

	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	payload := authMiddleware.Payload(ctx)
	tags, err := c.store.ListTags(ctx, db.ListTagsParams{
		UserID:       payload.UserID,
		AssignedOnly: req.AssignedOnly != 0,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}

	res := make([]tagModel.Response, 0, len(tags))
	for _, tag := range tags {
		res = append(res, tagModel.NewResponse(tag))
	}

	ctx.JSON(http.StatusOK, res)
}

// Create handles the request to create a new tag
func (c *Controller) Create(ctx *gin.Context) {
	var req tagModel.CreateRequest

	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}
	if err := req.Normalize(); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	payload := authMiddleware.Payload(ctx)
	tag, err := c.store.CreateTag(ctx, db.CreateTagParams{
		UserID: payload.UserID,
		Name:   req.Name,
	})
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, tagModel.NewResponse(tag))
}

// Tag handles the request to get a tag by ID
func (c *Controller) Tag(ctx *gin.Context) {
	var req tagModel.GetRequest

	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	payload := authMiddleware.Payload(ctx)
	tag, err := c.store.GetTag(ctx, db.GetTagParams{ID: req.ID, UserID: payload.UserID})
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tagModel.NewResponse(tag))
}

// Update handles the request to partially update a tag
func (c *Controller) Update(ctx *gin.Context) {
	var uri tagModel.GetRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	var req tagModel.UpdateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}
	if err := req.Normalize(); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	payload := authMiddleware.Payload(ctx)
	tag, err := c.store.GetTag(ctx, db.GetTagParams{ID: uri.ID, UserID: payload.UserID})
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	if req.Name == nil || *req.Name == tag.Name {
		ctx.JSON(http.StatusOK, tagModel.NewResponse(tag))
		return
	}

	c.rename(ctx, db.UpdateTagParams{ID: tag.ID, UserID: tag.UserID, Name: *req.Name})
}

// Replace handles the request to fully update a tag
func (c *Controller) Replace(ctx *gin.Context) {
	var uri tagModel.GetRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	var req tagModel.CreateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}
	if err := req.Normalize(); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	payload := authMiddleware.Payload(ctx)
	c.rename(ctx, db.UpdateTagParams{ID: uri.ID, UserID: payload.UserID, Name: req.Name})
}

func (c *Controller) rename(ctx *gin.Context, arg db.UpdateTagParams) {
	tag, err := c.store.UpdateTag(ctx, arg)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tagModel.NewResponse(tag))
}

// Delete handles the request to delete a tag
func (c *Controller) Delete(ctx *gin.Context) {
	var req tagModel.GetRequest

	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	payload := authMiddleware.Payload(ctx)
	rows, err := c.store.DeleteTag(ctx, db.DeleteTagParams{ID: req.ID, UserID: payload.UserID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}
	if rows == 0 {
		ctx.JSON(http.StatusNotFound, parseErrors.ErrorResponse(errTagNotFound))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *Controller) writeError(ctx *gin.Context, err error) {
	if errors.Is(err, sql.ErrNoRows) {
		ctx.JSON(http.StatusNotFound, parseErrors.ErrorResponse(errTagNotFound))
		return
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code.Name() {
		case "unique_violation":
			ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(errDuplicateTag))
			return
		case "foreign_key_violation":
			ctx.JSON(http.StatusUnauthorized, parseErrors.ErrorResponse(errors.New("user not found")))
			return
		}
	}
	ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
}
