package tagModel

import (
	"strings"

	"github.com/gmaschi/go-recipes-api/pkg/tools/parseErrors"
)

var errBlankName = parseErrors.NewFieldError("name", "this field may not be blank")

type (
	CreateRequest struct {
		Name string `json:"name" form:"name" binding:"required,max=255"`
	}

	GetRequest struct {
		ID int64 `uri:"id" binding:"required,min=1"`
	}

	UpdateRequest struct {
		Name *string `json:"name" form:"name" binding:"omitempty,min=1,max=255"`
	}

	// ListRequest filters tags. Any non-zero AssignedOnly keeps only tags linked to a recipe.
	ListRequest struct {
		AssignedOnly int `form:"assigned_only"`
	}
)

// Normalize trims the name and rejects names that are blank once trimmed
func (r *CreateRequest) Normalize() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return errBlankName
	}
	return nil
}

// Normalize trims the name when present
func (r *UpdateRequest) Normalize() error {
	if r.Name == nil {
		return nil
	}
	name := strings.TrimSpace(*r.Name)
	if name == "" {
		return errBlankName
	}
	r.Name = &name
	return nil
}
