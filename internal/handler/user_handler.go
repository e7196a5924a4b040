package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pedalmarket/backend/internal/model"
	"github.com/pedalmarket/backend/internal/service"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

type UserResponse struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request"))
	}
	user, err := h.svc.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, NewErrorResponse("conflict", "email already registered"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to register"))
	}
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

func (h *UserHandler) GetWishlist(c echo.Context) error {
	uid, _ := c.Get("uid").(uint64)
	if uid == 0 {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	user, err := h.svc.Get(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch wishlist"))
	}
	return c.JSON(http.StatusOK, toBikeListResponse(user.Wishlist))
}

func (h *UserHandler) AddToWishlist(c echo.Context) error {
	uid, _ := c.Get("uid").(uint64)
	if uid == 0 {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	bikeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid bike id"))
	}
	if err := h.svc.AddToWishlist(c.Request().Context(), uid, bikeID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user or bike not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to update wishlist"))
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *UserHandler) RemoveFromWishlist(c echo.Context) error {
	uid, _ := c.Get("uid").(uint64)
	if uid == 0 {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	bikeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid bike id"))
	}
	if err := h.svc.RemoveFromWishlist(c.Request().Context(), uid, bikeID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "user not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to update wishlist"))
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func toUserResponse(user *model.User) UserResponse {
	return UserResponse{ID: user.ID, Email: user.Email, Name: user.Name}
}
