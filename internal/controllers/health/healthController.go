package healthController

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Controller struct{}

// New creates a pointer to a Controller
func New() *Controller {
	return &Controller{}
}

// Check reports that the service is up
func (c *Controller) Check(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"health": true})
}
