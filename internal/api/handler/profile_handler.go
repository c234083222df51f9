package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sessionhub/booking-system/internal/core/ports"
)

// ProfileHandler handles the authenticated user's own profile.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetMe handles GET /me.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileEnvelope
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /me [get]
func (h *ProfileHandler) GetMe(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.service.GetSelf(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileEnvelope{User: toProfileResponse(user)})
}

// UpdateMe handles PUT /me — a partial merge of the allowed profile fields.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  profileEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /me [put]
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.service.UpdateSelf(c.Request().Context(), identity, ports.ProfilePatch{
		Name:            req.Name,
		Bio:             req.Bio,
		PricePerSession: req.PricePerSession,
		Languages:       req.Languages,
		Timezone:        req.Timezone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileEnvelope{User: toProfileResponse(user)})
}
