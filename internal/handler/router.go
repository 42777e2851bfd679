package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shopify-qrcode-app/internal/handler/api"
	"shopify-qrcode-app/internal/handler/middleware"
	"shopify-qrcode-app/internal/pkg/config"
	"shopify-qrcode-app/internal/pkg/errs"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	QRCodeHandler   *api.QRCodeHandler
	AuthMiddleware  *middleware.AuthMiddleware
	ScanRateLimiter gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, p RouterParams) error {
	// the scan limiter keys on ClientIP, so forwarded headers are only honored from known proxies
	if err := engine.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return errs.Wrap(err, "invalid trusted proxies")
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, p)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, p RouterParams) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Public pages reached by customers scanning a printed code
	public := engine.Group("/qrcodes")
	{
		addRoutes(public, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: p.QRCodeHandler.Detail},
			{Method: http.MethodGet, Path: "/:id/scan", Handler: p.QRCodeHandler.Scan, Mw: []gin.HandlerFunc{p.ScanRateLimiter}},
		})
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(p.AuthMiddleware.RequireSession())
	{
		qrcodes := apiGroup.Group("/qrcodes")
		addRoutes(qrcodes, []route{
			{Method: http.MethodGet, Path: "", Handler: p.QRCodeHandler.List},
			{Method: http.MethodPost, Path: "", Handler: p.QRCodeHandler.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: p.QRCodeHandler.Get},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// Route middleware is registered in the gin chain so that c.Next() inside it
// reaches the handler.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		hs := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, hs...)
		case http.MethodPost:
			g.POST(r.Path, hs...)
		default:
			g.Handle(r.Method, r.Path, hs...)
		}
	}
}
