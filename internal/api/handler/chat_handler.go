package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/assoimpresa360/client-portal/internal/core/ports"
)

// ChatHandler exposes the dashboard chat widget backend.
type ChatHandler struct {
	service ports.ChatService
}

func NewChatHandler(service ports.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Messages handles GET /v1/chat/messages.
//
// @Summary      Chat transcript for the current session
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  chatMessagesResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/chat/messages [get]
func (h *ChatHandler) Messages(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	messages, err := h.service.Messages(c.Request().Context(), session)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chatMessagesResponse{Messages: messages})
}

// Send handles POST /v1/chat/messages. The reply is always present: gateway
// failures come back as fallback text, not as errors.
//
// @Summary      Send a chat message
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      chatSendRequest  true  "User message"
// @Success      200   {object}  chatExchangeResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/chat/messages [post]
func (h *ChatHandler) Send(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req chatSendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	exchange, err := h.service.Send(c.Request().Context(), session, req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chatExchangeResponse{User: exchange.User, Reply: exchange.Reply})
}
