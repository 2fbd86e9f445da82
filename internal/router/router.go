package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/auth"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/config"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/handler"
	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
)

// Handlers bundles everything Register wires up.
type Handlers struct {
	Auth       *handler.AuthHandler
	Church     *handler.ChurchHandler
	Member     *handler.MemberHandler
	Minister   *handler.MinisterHandler
	Rank       *handler.MinistryRankHandler
	Skill      *handler.MinistrySkillHandler
	Event      *handler.ChurchEventHandler
	CoverPhoto *handler.CoverPhotoHandler
	Contact    *handler.ContactHandler
	Upload     *handler.UploadHandler
	Proxy      *handler.ProxyHandler
	Export     *handler.ExportHandler
}

// Register wires routes and middleware. Public routes cover the visitor
// site: church directory, event calendar, cover photos, the contact form,
// and the image proxy. Everything else sits behind the admin guard.
func Register(e *echo.Echo, cfg *config.Config, resolver *auth.Resolver, h Handlers) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = handler.NewValidator()

	// Upload rate limiting keys on the client IP. Forwarded headers are
	// trusted only behind a proxy that strips client-supplied values,
	// mirroring the auth resolver's trust switch.
	if cfg.TrustProxyHeaders {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	} else {
		e.IPExtractor = echo.ExtractIPDirect()
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Admin dashboard pages: unauthenticated browsers are redirected to
	// sign-in, not handed a 401.
	admin := e.Group("/admin", auth.RequireAdminPage(resolver, "/auth/sign-in"))
	admin.Static("/", cfg.AdminUIDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/logout", h.Auth.Logout)
	api.GET("/auth/me", h.Auth.Me)

	api.GET("/churches", h.Church.List)
	api.GET("/churches/:id", h.Church.Get)
	api.GET("/church-events", h.Event.List)
	api.GET("/church-events/:id", h.Event.Get)
	api.GET("/church-cover-photos", h.CoverPhoto.List)
	api.GET("/church-cover-photos/:id", h.CoverPhoto.Get)
	api.POST("/contact-us", h.Contact.Create)
	api.GET("/proxy-image", h.Proxy.Image)

	// Secured routes (require an admin session cookie)
	secured := api.Group("", auth.JWTMiddleware(cfg.JWTSecret), auth.RequireRole(model.RoleAdmin))

	secured.POST("/churches", h.Church.Create)
	secured.PUT("/churches/:id", h.Church.Update)
	secured.DELETE("/churches/:id", h.Church.Delete)

	secured.GET("/members", h.Member.List)
	secured.GET("/members/export", h.Export.Members)
	secured.GET("/members/resolve", h.Member.Resolve)
	secured.GET("/members/:id", h.Member.Get)
	secured.GET("/members/:id/qr", h.Member.QRCard)
	secured.POST("/members", h.Member.Create)
	secured.PUT("/members/:id", h.Member.Update)
	secured.DELETE("/members/:id", h.Member.Delete)

	secured.GET("/ministers", h.Minister.List)
	secured.GET("/ministers/export", h.Export.Ministers)
	secured.GET("/ministers/:id", h.Minister.Get)
	secured.POST("/ministers", h.Minister.Create)
	secured.PUT("/ministers/:id", h.Minister.Update)
	secured.DELETE("/ministers/:id", h.Minister.Delete)

	secured.GET("/ministry-ranks", h.Rank.List)
	secured.GET("/ministry-ranks/:id", h.Rank.Get)
	secured.POST("/ministry-ranks", h.Rank.Create)
	secured.PUT("/ministry-ranks/:id", h.Rank.Update)
	secured.DELETE("/ministry-ranks/:id", h.Rank.Delete)

	secured.GET("/ministry-skills", h.Skill.List)
	secured.GET("/ministry-skills/:id", h.Skill.Get)
	secured.POST("/ministry-skills", h.Skill.Create)
	secured.PUT("/ministry-skills/:id", h.Skill.Update)
	secured.DELETE("/ministry-skills/:id", h.Skill.Delete)

	secured.POST("/church-events", h.Event.Create)
	secured.PUT("/church-events/:id", h.Event.Update)
	secured.DELETE("/church-events/:id", h.Event.Delete)

	secured.POST("/church-cover-photos", h.CoverPhoto.Create)
	secured.PUT("/church-cover-photos/:id", h.CoverPhoto.Update)
	secured.DELETE("/church-cover-photos/:id", h.CoverPhoto.Delete)

	secured.GET("/contact-us", h.Contact.List)
	secured.GET("/contact-us/:id", h.Contact.Get)
	secured.DELETE("/contact-us/:id", h.Contact.Delete)

	secured.POST("/upload/presign", h.Upload.Presign)
	secured.GET("/upload/download-url", h.Upload.DownloadURL)
	secured.DELETE("/upload", h.Upload.Delete)
}
