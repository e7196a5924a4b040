package handler

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pedalmarket/backend/internal/model"
	"github.com/pedalmarket/backend/internal/service"
)

type BikeHandler struct {
	svc service.BikeService
}

func NewBikeHandler(svc service.BikeService) *BikeHandler {
	return &BikeHandler{svc: svc}
}

type BikeResponse struct {
	ID          uint64  `json:"id"`
	Type        string  `json:"type"`
	Brand       string  `json:"brand"`
	Size        string  `json:"size"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Place       string  `json:"place"`
	ImagePath   string  `json:"imagePath"`
	UserID      uint64  `json:"userId"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type BikeListResponse struct {
	Bikes []BikeResponse `json:"bikes"`
}

type CreateBikeRequest struct {
	Type        string  `json:"type" validate:"required"`
	Brand       string  `json:"brand" validate:"required"`
	Size        string  `json:"size" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Place       string  `json:"place"`
	// Image is the raw file content, base64-encoded by the client.
	Image string `json:"image"`
}

type UpdateBikeRequest struct {
	Brand       string  `json:"brand" validate:"required"`
	Size        string  `json:"size" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Place       string  `json:"place"`
}

func (h *BikeHandler) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(uint64)
	if uid == 0 {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	var req CreateBikeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request"))
	}
	var image []byte
	if req.Image != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "image must be base64"))
		}
		image = decoded
	}
	bike, err := h.svc.Create(c.Request().Context(), req.Type, req.Brand, req.Size, req.Description, req.Price, req.Place, image, uid)
	if err != nil {
		if errors.Is(err, model.ErrUnsupportedBikeType) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to create bike"))
	}
	return c.JSON(http.StatusCreated, toBikeResponse(bike))
}

func (h *BikeHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid id"))
	}
	bike, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "bike not found"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch bike"))
	}
	return c.JSON(http.StatusOK, toBikeResponse(bike))
}

// Search doubles as the plain listing endpoint: with no query parameters every
// bike comes back price-ascending.
func (h *BikeHandler) Search(c echo.Context) error {
	filters := service.SearchFilters{
		Size:     c.QueryParam("size"),
		Brand:    c.QueryParam("brand"),
		BikeType: c.QueryParam("type"),
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid maxPrice"))
		}
		filters.MaxPrice = &maxPrice
	}
	dir := service.PriceAscending
	if c.QueryParam("sort") == string(service.PriceDescending) {
		dir = service.PriceDescending
	}
	bikes, err := h.svc.Search(c.Request().Context(), filters, dir)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to search bikes"))
	}
	return c.JSON(http.StatusOK, toBikeListResponse(bikes))
}

func (h *BikeHandler) ListMine(c echo.Context) error {
	uid, _ := c.Get("uid").(uint64)
	if uid == 0 {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	bikes, err := h.svc.ListByOwner(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch bikes"))
	}
	return c.JSON(http.StatusOK, toBikeListResponse(bikes))
}

func (h *BikeHandler) Update(c echo.Context) error {
	uid, _ := c.Get("uid").(uint64)
	if uid == 0 {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid id"))
	}
	var req UpdateBikeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid request"))
	}
	bike, err := h.svc.Update(c.Request().Context(), id, uid, service.BikeUpdate{
		Brand:       req.Brand,
		Size:        req.Size,
		Description: req.Description,
		Price:       req.Price,
		Place:       req.Place,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "bike not found"))
		case errors.Is(err, service.ErrForbidden):
			return c.JSON(http.StatusForbidden, NewErrorResponse("forbidden", "not the owner"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to update bike"))
	}
	return c.JSON(http.StatusOK, toBikeResponse(bike))
}

func (h *BikeHandler) Delete(c echo.Context) error {
	uid, _ := c.Get("uid").(uint64)
	if uid == 0 {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid id"))
	}
	if err := h.svc.Delete(c.Request().Context(), id, uid); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "bike not found"))
		case errors.Is(err, service.ErrForbidden):
			return c.JSON(http.StatusForbidden, NewErrorResponse("forbidden", "not the owner"))
		}
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to delete bike"))
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func toBikeResponse(bike *model.Bike) BikeResponse {
	return BikeResponse{
		ID:          bike.ID,
		Type:        string(bike.Type),
		Brand:       bike.Brand,
		Size:        bike.Size,
		Description: bike.Description,
		Price:       bike.Price,
		Place:       bike.Place,
		ImagePath:   bike.ImagePath,
		UserID:      bike.UserID,
		CreatedAt:   bike.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   bike.UpdatedAt.Format(time.RFC3339),
	}
}

func toBikeListResponse(bikes []model.Bike) BikeListResponse {
	resp := BikeListResponse{Bikes: make([]BikeResponse, 0, len(bikes))}
	for i := range bikes {
		resp.Bikes = append(resp.Bikes, toBikeResponse(&bikes[i]))
	}
	return resp
}
