package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PortalHandler serves the client dashboard payload: the single external
// document folder link plus the display fields around it. There is no file
// listing; the portal only holds the one stored URL.
type PortalHandler struct{}

func NewPortalHandler() *PortalHandler {
	return &PortalHandler{}
}

// Dashboard handles GET /v1/portal.
//
// @Summary      Client dashboard
// @Tags         portal
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  portalResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/portal [get]
func (h *PortalHandler) Dashboard(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, portalResponse{
		FullName:    session.Client.FullName,
		CompanyName: session.Client.CompanyName,
		OneDriveURL: session.Client.OneDriveURL,
	})
}
