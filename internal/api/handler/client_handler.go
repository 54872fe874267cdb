package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assoimpresa360/client-portal/internal/core/domain"
	"github.com/assoimpresa360/client-portal/internal/core/ports"
)

// ClientHandler exposes the administrator CRUD panel over client records.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /v1/clients.
//
// @Summary      List client records
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  clientListResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clientListResponse{Clients: emptyIfNil(clients), Count: len(clients)})
}

// Create handles POST /v1/clients.
//
// @Summary      Create a client record
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      clientRequest  true  "New client record"
// @Success      201   {object}  clientMutationResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	req, err := bindClientRequest(c)
	if err != nil {
		return err
	}

	result, err := h.service.Create(c.Request().Context(), toClientInput(req))
	if err != nil {
		return saveError(err)
	}
	return c.JSON(http.StatusCreated, toMutationResponse(result))
}

// Update handles PUT /v1/clients/:id — full-record replace.
//
// @Summary      Update a client record
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Record identifier"
// @Param        body  body      clientRequest  true  "Full replacement field set"
// @Success      200   {object}  clientMutationResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	req, err := bindClientRequest(c)
	if err != nil {
		return err
	}

	result, err := h.service.Update(c.Request().Context(), c.Param("id"), toClientInput(req))
	if err != nil {
		return saveError(err)
	}
	return c.JSON(http.StatusOK, toMutationResponse(result))
}

// Delete handles DELETE /v1/clients/:id. Confirmation happens in the view;
// by the time this endpoint is called the decision is final.
//
// @Summary      Delete a client record
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "Record identifier"
// @Success      200   {object}  clientListResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	clients, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return err
		}
		return echo.NewHTTPError(http.StatusBadGateway, "Errore durante l'eliminazione")
	}
	return c.JSON(http.StatusOK, clientListResponse{Clients: emptyIfNil(clients), Count: len(clients)})
}

func bindClientRequest(c echo.Context) (clientRequest, error) {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return req, nil
}

// saveError keeps store failure detail out of responses: anything that is
// not a known domain error collapses into the generic save-failed message.
func saveError(err error) error {
	if errors.Is(err, domain.ErrUsernameTaken) || errors.Is(err, domain.ErrClientNotFound) {
		return err
	}
	return echo.NewHTTPError(http.StatusBadGateway, "Errore durante il salvataggio. Assicurati che lo username sia unico.")
}

func toClientInput(req clientRequest) ports.ClientInput {
	return ports.ClientInput{
		Username:    req.Username,
		Password:    req.Password,
		FullName:    req.FullName,
		CompanyName: req.CompanyName,
		OneDriveURL: req.OneDriveURL,
	}
}

func toMutationResponse(r *ports.MutationResult) clientMutationResponse {
	return clientMutationResponse{
		Client:  r.Client,
		Clients: emptyIfNil(r.Clients),
		Count:   len(r.Clients),
	}
}

func emptyIfNil(clients []domain.Client) []domain.Client {
	if clients == nil {
		return []domain.Client{}
	}
	return clients
}
