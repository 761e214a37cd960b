package recipeModel

import (
	"strconv"
	"strings"

	"github.com/gmaschi/go-recipes-api/pkg/tools/parseErrors"
	"github.com/shopspring/decimal"
)

// maxPrice is the first value that does not fit NUMERIC(5,2)
var maxPrice = decimal.NewFromInt(1000)

type (
	NameRequest struct {
		Name string `json:"name" binding:"required,max=255"`
	}

	CreateRequest struct {
		Title       string           `json:"title" binding:"required,max=255"`
		TimeMinutes *int32           `json:"time_minutes" binding:"required,gte=0"`
		Price       *decimal.Decimal `json:"price" binding:"required"`
		Description string           `json:"description"`
		Link        string           `json:"link" binding:"omitempty,max=255"`
		Tags        []NameRequest    `json:"tags" binding:"omitempty,dive"`
		Ingredients []NameRequest    `json:"ingredients" binding:"omitempty,dive"`
	}

	// UpdateRequest is a partial update. Nil fields are left untouched while a
	// non-nil Tags or Ingredients replaces the whole relation, an empty list clears it.
	UpdateRequest struct {
		Title       *string          `json:"title" binding:"omitempty,min=1,max=255"`
		TimeMinutes *int32           `json:"time_minutes" binding:"omitempty,gte=0"`
		Price       *decimal.Decimal `json:"price"`
		Description *string          `json:"description"`
		Link        *string          `json:"link" binding:"omitempty,max=255"`
		Tags        *[]NameRequest   `json:"tags" binding:"omitempty,dive"`
		Ingredients *[]NameRequest   `json:"ingredients" binding:"omitempty,dive"`
	}

	// ReplaceRequest is a full update. Relations follow the UpdateRequest rules.
	ReplaceRequest struct {
		Title       string           `json:"title" binding:"required,max=255"`
		TimeMinutes *int32           `json:"time_minutes" binding:"required,gte=0"`
		Price       *decimal.Decimal `json:"price" binding:"required"`
		Description string           `json:"description"`
		Link        string           `json:"link" binding:"omitempty,max=255"`
		Tags        *[]NameRequest   `json:"tags" binding:"omitempty,dive"`
		Ingredients *[]NameRequest   `json:"ingredients" binding:"omitempty,dive"`
	}

	GetRequest struct {
		ID int64 `uri:"id" binding:"required,min=1"`
	}

	// ListRequest filters by comma separated tag and ingredient ids
	ListRequest struct {
		Tags        string `form:"tags"`
		Ingredients string `form:"ingredients"`
	}

	UploadImageRequest struct {
		ID int64 `uri:"id" binding:"required,min=1"`
	}
)

// ValidatePrice reports prices that do not fit NUMERIC(5,2)
func ValidatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return parseErrors.NewFieldError("price", "ensure this value is greater than or equal to 0")
	}
	if !price.Equal(price.Round(2)) {
		return parseErrors.NewFieldError("price", "ensure that there are no more than 2 decimal places")
	}
	if price.GreaterThanOrEqual(maxPrice) {
		return parseErrors.NewFieldError("price", "ensure that there are no more than 5 digits in total")
	}
	return nil
}

// ParseIDs splits a comma separated list of ids. An empty string yields no ids.
func ParseIDs(field, raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, parseErrors.NewFieldError(field, "enter a comma separated list of ids")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Names flattens nested name payloads
func Names(items []NameRequest) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}
