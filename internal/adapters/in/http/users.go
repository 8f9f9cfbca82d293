package http

import (
	"net/http"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/views"

	"github.com/labstack/echo/v4"
)

// NewUserRequest is the body of POST /users/. An empty Role means customer.
type NewUserRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Role     string `json:"role"`
}

// UserPatchRequest is the body of PATCH /users/:id. Nil fields are left unchanged.
type UserPatchRequest struct {
	Role     *string `json:"role"`
	Disabled *bool   `json:"disabled"`
}

// CreateUser handles POST /users/.
func (s *Server) CreateUser(ctx echo.Context) error {
	var req NewUserRequest
	if err := bindBody(ctx, &req); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCreateUserCommand(actor(ctx), req.Username, req.Role)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.handlers.UserCommands.Create(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, created)
}

// GetCurrentUser handles GET /users/me.
func (s *Server) GetCurrentUser(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, views.SerializeUser(actor(ctx)))
}

// UpdateUser handles PATCH /users/:id.
func (s *Server) UpdateUser(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req UserPatchRequest
	if err = bindBody(ctx, &req); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateUserCommand(actor(ctx), id, req.Role, req.Disabled)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.handlers.UserCommands.Update(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updated)
}
