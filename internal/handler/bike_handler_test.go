package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pedalmarket/backend/internal/model"
	"github.com/pedalmarket/backend/internal/repository"
	"github.com/pedalmarket/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newHandlerFixture(t *testing.T) (*echo.Echo, *BikeHandler, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:hdl_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Bike{}, &model.Message{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	e := echo.New()
	e.Validator = NewValidator()

	svc := service.NewBikeService(
		repository.NewBikeRepository(db),
		repository.NewUserRepository(db),
		repository.NewMessageRepository(db),
	)
	return e, NewBikeHandler(svc), db
}

func TestBikeHandler_Get_NotFound(t *testing.T) {
	e, h, _ := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/bikes/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/bikes/:id")
	c.SetParamNames("id")
	c.SetParamValues("999")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Error.Code)
}

func TestBikeHandler_Create(t *testing.T) {
	e, h, db := newHandlerFixture(t)
	require.NoError(t, db.Create(&model.User{Email: "a@example.com", Password: "x", Name: "Ada"}).Error)

	body := `{"type":"road","brand":"Trek","size":"M","description":"nice","price":500,"place":"Trento"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bikes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", uint64(1))

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BikeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Road", resp.Type)
	assert.Equal(t, uint64(1), resp.UserID)
}

func TestBikeHandler_Create_UnsupportedType(t *testing.T) {
	e, h, _ := newHandlerFixture(t)

	body := `{"type":"unicycle","brand":"Trek","size":"M","price":500}`
	req := httptest.NewRequest(http.MethodPost, "/api/bikes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", uint64(1))

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBikeHandler_Search_FiltersAndSorts(t *testing.T) {
	e, h, db := newHandlerFixture(t)
	require.NoError(t, db.Create(&model.User{Email: "a@example.com", Password: "x", Name: "Ada"}).Error)
	for _, b := range []struct {
		brand string
		price float64
	}{{"Trek", 500}, {"Giant", 300}, {"Giant", 300}} {
		bike, err := model.NewBike("road", b.brand, "M", "", b.price, "Padova", 1)
		require.NoError(t, err)
		require.NoError(t, db.Create(bike).Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bikes?brand=Giant", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/bikes")

	require.NoError(t, h.Search(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BikeListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Bikes, 2)
	assert.Equal(t, "Giant", resp.Bikes[0].Brand)
	assert.Less(t, resp.Bikes[0].ID, resp.Bikes[1].ID, "equal prices keep listing order")
}
