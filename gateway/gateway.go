// Package gateway is the HTTP surface of the admin console: one route per
// screen action, backed by the list-view controllers and the session store.
package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/example/martadmin/pkg/api"
	"github.com/example/martadmin/pkg/audit"
	"github.com/example/martadmin/pkg/config"
	"github.com/example/martadmin/pkg/dashboard"
	"github.com/example/martadmin/pkg/listview"
	"github.com/example/martadmin/pkg/session"
	"github.com/example/martadmin/pkg/theme"
	"github.com/example/martadmin/pkg/validate"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Controllers bundles one list-view controller per resource screen plus the
// dashboard aggregator.
type Controllers struct {
	Categories   *listview.Categories
	Products     *listview.Products
	Stores       *listview.Stores
	DeliveryBoys *listview.DeliveryBoys
	Orders       *listview.Orders
	OfferTexts   *listview.OfferTexts
	OfferImages  *listview.OfferImages
	Sliders      *listview.Sliders
	AppVersions  *listview.AppVersions
	Dashboard    *dashboard.Aggregator
}

// NewControllers wires every resource controller against one upstream client.
func NewControllers(client *api.Client, logger *zap.Logger, notify listview.Notifier, auditor listview.Auditor) *Controllers {
	return &Controllers{
		Categories:   listview.NewCategories(client, logger, notify, auditor),
		Products:     listview.NewProducts(client, logger, notify, auditor),
		Stores:       listview.NewStores(client, logger, notify, auditor),
		DeliveryBoys: listview.NewDeliveryBoys(client, logger, notify, auditor),
		Orders:       listview.NewOrders(client, logger, notify, auditor),
		OfferTexts:   listview.NewOfferTexts(client, logger, notify, auditor),
		OfferImages:  listview.NewOfferImages(client, logger, notify, auditor),
		Sliders:      listview.NewSliders(client, logger, notify, auditor),
		AppVersions:  listview.NewAppVersions(client, logger, notify, auditor),
		Dashboard:    dashboard.NewAggregator(client, logger, notify),
	}
}

type Gateway struct {
	config  *config.Config
	logger  *zap.Logger
	router  *gin.Engine
	client  *api.Client
	session *session.Store
	theme   *theme.Store
	audit   *audit.Recorder
	ctrl    *Controllers
}

func NewGateway(cfg *config.Config, logger *zap.Logger, client *api.Client, sess *session.Store, th *theme.Store, auditor *audit.Recorder, ctrl *Controllers) *Gateway {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))
	if len(cfg.Gateway.AllowOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Gateway.AllowOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	return &Gateway{
		config:  cfg,
		logger:  logger,
		router:  router,
		client:  client,
		session: sess,
		theme:   th,
		audit:   auditor,
		ctrl:    ctrl,
	}
}

func (g *Gateway) SetupRoutes() {
	g.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	g.router.POST("/admin/login", g.login)

	admin := g.router.Group("/admin", g.requireSession)
	{
		admin.POST("/logout", g.logout)
		admin.GET("/session", g.sessionInfo)
		admin.GET("/theme", g.getTheme)
		admin.PUT("/theme", g.setTheme)
		admin.GET("/dashboard", g.dashboardView)
		admin.GET("/audit/:resource", g.auditTrail)

		g.categoryRoutes(admin)
		g.productRoutes(admin)
		g.storeRoutes(admin)
		g.deliveryBoyRoutes(admin)
		g.orderRoutes(admin)
		g.offerTextRoutes(admin)
		g.offerImageRoutes(admin)
		g.sliderRoutes(admin)
		g.appVersionRoutes(admin)
	}
}

func (g *Gateway) Start() error {
	addr := fmt.Sprintf("%s:%d", g.config.Gateway.Host, g.config.Gateway.Port)
	g.logger.Info("Admin gateway starting", zap.String("address", addr))
	return g.router.Run(addr)
}

// Router exposes the underlying engine for tests.
func (g *Gateway) Router() *gin.Engine {
	return g.router
}

// requireSession rejects requests once the session has expired or was never
// established.
func (g *Gateway) requireSession(c *gin.Context) {
	if !g.session.IsLoggedIn() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	c.Next()
}

func (g *Gateway) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := g.client.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := g.session.Login(c.Request.Context(), res.Admin, res.Token); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": res.Admin, "message": res.Message})
}

func (g *Gateway) logout(c *gin.Context) {
	g.session.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (g *Gateway) sessionInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"loggedIn": g.session.IsLoggedIn(),
		"admin":    g.session.Admin(),
	})
}

func (g *Gateway) getTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"mode": g.theme.Mode(), "palette": g.theme.Palette()})
}

func (g *Gateway) setTheme(c *gin.Context) {
	var req struct {
		Mode    string `json:"mode"`
		Palette string `json:"palette"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Mode != "" {
		if err := g.theme.SetMode(c.Request.Context(), req.Mode); err != nil {
			writeError(c, err)
			return
		}
	}
	if req.Palette != "" {
		if err := g.theme.SetPalette(c.Request.Context(), req.Palette); err != nil {
			writeError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"mode": g.theme.Mode(), "palette": g.theme.Palette()})
}

// auditTrail lists the latest recorded mutations for one resource. Empty
// when auditing is not configured.
func (g *Gateway) auditTrail(c *gin.Context) {
	if g.audit == nil {
		c.JSON(http.StatusOK, gin.H{"entries": []audit.Entry{}})
		return
	}
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 20
	}
	entries, err := g.audit.Recent(c.Request.Context(), c.Param("resource"), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (g *Gateway) dashboardView(c *gin.Context) {
	period := c.DefaultQuery("period", dashboard.DefaultPeriod)
	view, err := g.ctrl.Dashboard.Refresh(c.Request.Context(), period)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// writeError maps flow errors onto responses: validation failures and
// unreadable uploads are 400s, upstream errors keep their status, anything
// else is a bad gateway.
func writeError(c *gin.Context, err error) {
	var vErr *validate.Error
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "fields": vErr.Fields})
		return
	}
	var upErr *uploadError
	if errors.As(err, &upErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": upErr.Error()})
		return
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": api.UserMessage(err, "request failed")})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
