package userModel

type (
	CreateRequest struct {
		Email    string `json:"email" form:"email" binding:"required,email,max=255"`
		Password string `json:"password" form:"password" binding:"required,min=5,max=128"`
		Name     string `json:"name" form:"name" binding:"required,max=255"`
	}

	// TokenRequest is validated by the controller so that every failure
	// yields the same credentials error.
	TokenRequest struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}

	// UpdateRequest is a partial update, nil fields are left untouched.
	// Email and password are checked by the controller after trimming.
	UpdateRequest struct {
		Email    *string `json:"email" form:"email"`
		Password *string `json:"password" form:"password"`
		Name     *string `json:"name" form:"name" binding:"omitempty,max=255"`
	}

	// ReplaceRequest is a full update
	ReplaceRequest struct {
		Email    string `json:"email" form:"email" binding:"required,email,max=255"`
		Password string `json:"password" form:"password" binding:"required,min=5,max=128"`
		Name     string `json:"name" form:"name" binding:"required,max=255"`
	}
)
