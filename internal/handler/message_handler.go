package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pedalmarket/backend/internal/model"
	"github.com/pedalmarket/backend/internal/service"
)

type MessageHandler struct {
	svc service.MessageService
}

func NewMessageHandler(svc service.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

type SendMessageRequest struct {
	ReceiverID uint64 `json:"receiverId" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

type MessageResponse struct {
	ID         uint64 `json:"id"`
	SenderID   uint64 `json:"senderId"`
	ReceiverID uint64 `json:"receiverId"`
	BikeID     uint64 `json:"bikeId"`
	Content    string `json:"content"`
	SentAt     string `json:"sentAt"`
}

type ConversationResponse struct {
	OtherUser UserResponse      `json:"otherUser"`
	Bike      BikeResponse      `json:"bike"`
	Messages  []MessageResponse `json:"messages"`
}

func (h *MessageHandler) Send(c echo.Context) error {
	uid, _ := c.Get("uid").(uint64)
	if uid == 0 {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	bikeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid bike id"))
	}
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request"))
	}
	msg, err := h.svc.Send(c.Request().Context(), uid, req.ReceiverID, bikeID, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "message content is empty"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to send message"))
	}
	return c.JSON(http.StatusCreated, toMessageResponse(msg))
}

func (h *MessageHandler) ListConversations(c echo.Context) error {
	uid, _ := c.Get("uid").(uint64)
	if uid == 0 {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	convs, err := h.svc.Conversations(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch conversations"))
	}
	resp := make([]ConversationResponse, 0, len(convs))
	for i := range convs {
		resp = append(resp, toConversationResponse(&convs[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func toMessageResponse(msg *model.Message) MessageResponse {
	return MessageResponse{
		ID:         msg.ID,
		SenderID:   msg.SenderID,
		ReceiverID: msg.ReceiverID,
		BikeID:     msg.BikeID,
		Content:    msg.Content,
		SentAt:     msg.SentAt.Format(time.RFC3339),
	}
}

func toConversationResponse(conv *model.Conversation) ConversationResponse {
	resp := ConversationResponse{
		OtherUser: toUserResponse(&conv.OtherUser),
		Bike:      toBikeResponse(&conv.Bike),
		Messages:  make([]MessageResponse, 0, len(conv.Messages)),
	}
	for i := range conv.Messages {
		resp.Messages = append(resp.Messages, toMessageResponse(&conv.Messages[i]))
	}
	return resp
}
