package routes

import (
	"context"
	"errors"
	_ "heritage_gold/docs"
	"heritage_gold/internal/adapter/http/handlers"
	"heritage_gold/internal/logging"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Pricing   *handlers.PricingHandler
	Catalogue *handlers.CatalogueHandler
	Guided    *handlers.GuidedHandler
	Lead      *handlers.LeadHandler
	Cart      *handlers.CartHandler
	Info      *handlers.InfoHandler
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 API.
func NewRouter(allowOrigins []string, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, allowOrigins)

	router.GET("/health", h.Info.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	v1.GET("/health", h.Info.Health)
	addPricingRoutes(v1, h.Pricing)
	addCatalogueRoutes(v1, h.Catalogue, h.Guided)
	addLeadRoutes(v1, h.Lead, h.Cart)
	addInfoRoutes(v1, h.Info)

	return router
}

// Run serves router on port until ctx is cancelled, then drains in-flight
// requests.
func Run(ctx context.Context, port int, router *gin.Engine) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("[http] listening", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine, allowOrigins []string) {
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.Error("[http] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", handlers.SessionHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowOrigins) == 0 || (len(allowOrigins) == 1 && allowOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowOrigins
		corsCfg.AllowCredentials = true
	}
	router.Use(cors.New(corsCfg))
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			logging.Error("[http] request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			logging.Warn("[http] request", fields...)
		default:
			logging.Debug("[http] request", fields...)
		}
	}
}
