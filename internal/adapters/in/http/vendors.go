package http

import (
	"net/http"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/vendor"

	"github.com/labstack/echo/v4"
)

// VendorRequest is the body of POST /vendors/ and PUT /vendors/:id.
// Updates replace every contact field.
type VendorRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// contact converts the payload into the domain contact value.
func (r VendorRequest) contact() vendor.Contact {
	return vendor.Contact{Name: r.Name, Email: r.Email, Phone: r.Phone, Address: r.Address}
}

// CreateVendor handles POST /vendors/.
func (s *Server) CreateVendor(ctx echo.Context) error {
	var req VendorRequest
	if err := bindBody(ctx, &req); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCreateVendorCommand(actor(ctx), req.contact())
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.handlers.VendorCommands.Create(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, created)
}

// ListVendors handles GET /vendors/.
func (s *Server) ListVendors(ctx echo.Context) error {
	query, err := queries.NewListVendorsQuery(actor(ctx))
	if err != nil {
		return s.writeError(ctx, err)
	}

	vendors, err := s.handlers.VendorQueries.List(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vendors)
}

// GetVendor handles GET /vendors/:id.
func (s *Server) GetVendor(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetVendorQuery(actor(ctx), id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	found, err := s.handlers.VendorQueries.Get(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, found)
}

// UpdateVendor handles PUT /vendors/:id.
func (s *Server) UpdateVendor(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req VendorRequest
	if err = bindBody(ctx, &req); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateVendorCommand(actor(ctx), id, req.contact())
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.handlers.VendorCommands.Update(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updated)
}

// DeleteVendor handles DELETE /vendors/:id. Orders referencing the vendor
// are left as they are.
func (s *Server) DeleteVendor(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteVendorCommand(actor(ctx), id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.VendorCommands.Delete(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Message{Message: "Vendor deleted successfully"})
}
