package userController

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	authMiddleware "github.com/gmaschi/go-recipes-api/internal/controllers/middlewares/auth"
	userModel "github.com/gmaschi/go-recipes-api/internal/models/user"
	db "github.com/gmaschi/go-recipes-api/internal/services/datastore/postgresql/recipes/sqlc"
	"github.com/gmaschi/go-recipes-api/pkg/auth/tokenAuth"
	"github.com/gmaschi/go-recipes-api/pkg/tools/parseErrors"
	"github.com/gmaschi/go-recipes-api/pkg/tools/password"
	"github.com/gmaschi/go-recipes-api/pkg/tools/validators"
	"github.com/lib/pq"
)

var (
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")

	errUserNotFound   = errors.New("user not found")
	errDuplicateEmail = parseErrors.NewFieldError("email", "user with this email already exists")
	errInvalidEmail   = parseErrors.NewFieldError("email", "enter a valid email address")
	errInvalidPass    = parseErrors.NewFieldError("password", "ensure this field has at least 5 characters")
)

type Controller struct {
	store         db.Store
	tokenMaker    tokenAuth.Maker
	tokenDuration time.Duration
}

// New creates a pointer to a Controller
func New(store db.Store, tokenMaker tokenAuth.Maker, tokenDuration time.Duration) *Controller {
	return &Controller{
		store:         store,
		tokenMaker:    tokenMaker,
		tokenDuration: tokenDuration,
	}
}

// Create handles the request to register a new user
func (c *Controller) Create(ctx *gin.Context) {
	var req userModel.CreateRequest

	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	hashedPassword, err := password.HashPassword(req.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}

	createArgs := db.CreateUserParams{
		Email:          validators.NormalizeEmail(req.Email),
		HashedPassword: hashedPassword,
		Name:           req.Name,
	}

	user, err := c.store.CreateUser(ctx, createArgs)
	if err != nil {
		if pqError, ok := err.(*pq.Error); ok {
			switch pqError.Code.Name() {
			case "unique_violation":
				ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(errDuplicateEmail))
				return
			}
		}
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, userModel.NewResponse(user))
}

// Token handles the request to issue an access token for valid credentials.
// Every failure reports the same error so callers cannot tell which factor was wrong.
func (c *Controller) Token(ctx *gin.Context) {
	var req userModel.TokenRequest

	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(ErrInvalidCredentials))
		return
	}

	user, err := c.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(ErrInvalidCredentials))
			return
		}
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}

	if !user.IsActive || password.CheckPassword(req.Password, user.HashedPassword) != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(ErrInvalidCredentials))
		return
	}

	token, err := c.tokenMaker.CreateToken(user.ID, user.Email, c.tokenDuration)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, userModel.TokenResponse{Token: token})
}

// Me handles the request to get the authenticated user's profile
func (c *Controller) Me(ctx *gin.Context) {
	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, userModel.NewResponse(user))
}

// UpdateMe handles the request to update the authenticated user's name, email and/or password
func (c *Controller) UpdateMe(ctx *gin.Context) {
	var req userModel.UpdateRequest

	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	updateArgs := db.UpdateUserParams{
		ID:             user.ID,
		Email:          user.Email,
		HashedPassword: user.HashedPassword,
		Name:           user.Name,
		UpdatedAt:      time.Now().UTC(),
	}

	if req.Email != nil {
		trimmedEmail := strings.TrimSpace(*req.Email)
		if !validators.Email(trimmedEmail) {
			ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(errInvalidEmail))
			return
		}
		updateArgs.Email = validators.NormalizeEmail(trimmedEmail)
	}
	if req.Password != nil {
		if !validators.Password(*req.Password) {
			ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(errInvalidPass))
			return
		}
		hashedPassword, err := password.HashPassword(*req.Password)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
			return
		}
		updateArgs.HashedPassword = hashedPassword
	}
	if req.Name != nil {
		updateArgs.Name = *req.Name
	}

	c.updateUser(ctx, updateArgs)
}

// ReplaceMe handles the request to replace the authenticated user's name, email and password
func (c *Controller) ReplaceMe(ctx *gin.Context) {
	var req userModel.ReplaceRequest

	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	hashedPassword, err := password.HashPassword(req.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}

	payload := authMiddleware.Payload(ctx)
	c.updateUser(ctx, db.UpdateUserParams{
		ID:             payload.UserID,
		Email:          validators.NormalizeEmail(req.Email),
		HashedPassword: hashedPassword,
		Name:           req.Name,
		UpdatedAt:      time.Now().UTC(),
	})
}

func (c *Controller) updateUser(ctx *gin.Context, updateArgs db.UpdateUserParams) {
	updatedUser, err := c.store.UpdateUser(ctx, updateArgs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ctx.JSON(http.StatusUnauthorized, parseErrors.ErrorResponse(errUserNotFound))
			return
		}
		if pqError, ok := err.(*pq.Error); ok {
			switch pqError.Code.Name() {
			case "unique_violation":
				ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(errDuplicateEmail))
				return
			}
		}
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, userModel.NewResponse(updatedUser))
}

// currentUser loads the user the token was issued to. A token for a removed
// or deactivated user is treated as unauthenticated.
func (c *Controller) currentUser(ctx *gin.Context) (db.User, bool) {
	payload := authMiddleware.Payload(ctx)

	user, err := c.store.GetUser(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ctx.JSON(http.StatusUnauthorized, parseErrors.ErrorResponse(errUserNotFound))
			return db.User{}, false
		}
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(err))
		return db.User{}, false
	}
	if !user.IsActive {
		ctx.JSON(http.StatusUnauthorized, parseErrors.ErrorResponse(errUserNotFound))
		return db.User{}, false
	}
	return user, true
}
