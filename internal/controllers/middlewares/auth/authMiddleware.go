package authMiddleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gmaschi/go-recipes-api/pkg/auth/tokenAuth"
	"github.com/gmaschi/go-recipes-api/pkg/tools/parseErrors"
)

const (
	AuthorizationHeaderKey  = "authorization"
	AuthorizationTypeBearer = "bearer"
	AuthorizationTypeToken  = "token"
	AuthorizationPayloadKey = "authorization_payload"
)

func AuthMiddleware(tokenMaker tokenAuth.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authorizationHeader := ctx.GetHeader(AuthorizationHeaderKey)
		if len(authorizationHeader) == 0 {
			err := errors.New("authentication credentials were not provided")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, parseErrors.ErrorResponse(err))
			return
		}

		fields := strings.Fields(authorizationHeader)
		if len(fields) != 2 {
			err := errors.New("invalid authorization header format")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, parseErrors.ErrorResponse(err))
			return
		}

		authorizationType := strings.ToLower(fields[0])
		if authorizationType != AuthorizationTypeBearer && authorizationType != AuthorizationTypeToken {
			err := fmt.Errorf("unsupported authorization format %s", authorizationType)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, parseErrors.ErrorResponse(err))
			return
		}

		accessToken := fields[1]

		payload, err := tokenMaker.VerifyToken(accessToken)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, parseErrors.ErrorResponse(err))
			return
		}

		ctx.Set(AuthorizationPayloadKey, payload)
		ctx.Next()
	}
}

// Payload returns the token payload stored by AuthMiddleware.
// It panics when called on a route that is not behind the middleware.
func Payload(ctx *gin.Context) *tokenAuth.Payload {
	return ctx.MustGet(AuthorizationPayloadKey).(*tokenAuth.Payload)
}
