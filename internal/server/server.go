package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pedalmarket/backend/internal/auth"
	"github.com/pedalmarket/backend/internal/config"
	"github.com/pedalmarket/backend/internal/handler"
	appmw "github.com/pedalmarket/backend/internal/middleware"
	"github.com/pedalmarket/backend/internal/repository"
	"github.com/pedalmarket/backend/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type Server struct {
	e        *echo.Echo
	userRepo repository.UserRepository
	bikeRepo repository.BikeRepository
	msgRepo  repository.MessageRepository
	sha      string
	build    string
}

func New(db *gorm.DB, cfg *config.Config, sha, buildTime string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(appmw.Metrics)
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false, nil
			}
			return u.Scheme == "https", nil
		},
	}))

	userRepo := repository.NewUserRepository(db)
	bikeRepo := repository.NewBikeRepository(db)
	msgRepo := repository.NewMessageRepository(db)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	authMw := appmw.NewAuthMiddleware(tokens)

	userSvc := service.NewUserService(userRepo, bikeRepo)
	bikeSvc := service.NewBikeService(bikeRepo, userRepo, msgRepo)
	msgSvc := service.NewMessageService(msgRepo)
	authSvc := service.NewAuthService(userRepo, tokens)

	userHandler := handler.NewUserHandler(userSvc)
	bikeHandler := handler.NewBikeHandler(bikeSvc)
	msgHandler := handler.NewMessageHandler(msgSvc)
	authHandler := handler.NewAuthHandler(authSvc)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"ok":         "true",
			"git_sha":    sha,
			"build_time": buildTime,
		})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.POST("/register", userHandler.Register)
	api.POST("/login", authHandler.Login)

	api.GET("/bikes", bikeHandler.Search)
	api.GET("/bikes/:id", bikeHandler.Get)
	api.POST("/bikes", bikeHandler.Create, authMw.RequireAuth)
	api.PUT("/bikes/:id", bikeHandler.Update, authMw.RequireAuth)
	api.DELETE("/bikes/:id", bikeHandler.Delete, authMw.RequireAuth)
	api.GET("/me/bikes", bikeHandler.ListMine, authMw.RequireAuth)

	api.GET("/me/wishlist", userHandler.GetWishlist, authMw.RequireAuth)
	api.POST("/bikes/:id/wishlist", userHandler.AddToWishlist, authMw.RequireAuth)
	api.DELETE("/bikes/:id/wishlist", userHandler.RemoveFromWishlist, authMw.RequireAuth)

	api.POST("/bikes/:id/messages", msgHandler.Send, authMw.RequireAuth)
	api.GET("/me/conversations", msgHandler.ListConversations, authMw.RequireAuth)

	return &Server{e: e, userRepo: userRepo, bikeRepo: bikeRepo, msgRepo: msgRepo, sha: sha, build: buildTime}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// SetDB injects the database once it is reachable; until then repositories
// answer ErrDBNotReady.
func (s *Server) SetDB(db *gorm.DB) {
	s.userRepo.SetDB(db)
	s.bikeRepo.SetDB(db)
	s.msgRepo.SetDB(db)
}
