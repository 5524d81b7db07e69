package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopstack/storefront-api/internal/core/ports"
)

// ChatHandler proxies a single message to the chat-completion provider.
type ChatHandler struct {
	service ports.ChatService
}

func NewChatHandler(service ports.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chat handles POST /api/v1/chat.
//
// @Summary      Chat completion proxy
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Message"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/v1/chat [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "message field is required")
	}

	reply, err := h.service.Reply(c.Request().Context(), req.Message)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, chatResponse{Reply: reply})
}
