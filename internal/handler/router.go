package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"medilocate/internal/handler/api"
	"medilocate/internal/handler/middleware"
	"medilocate/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	searchHandler *api.SearchHandler,
	shopHandler *api.ShopHandler,
	medicineHandler *api.MedicineHandler,
	reservationHandler *api.ReservationHandler,
	inventoryHandler *api.InventoryHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, searchHandler, shopHandler, medicineHandler, reservationHandler, inventoryHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	searchHandler *api.SearchHandler,
	shopHandler *api.ShopHandler,
	medicineHandler *api.MedicineHandler,
	reservationHandler *api.ReservationHandler,
	inventoryHandler *api.InventoryHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		medicines := apiGroup.Group("/medicines")
		{
			addRoutes(medicines, []route{
				{Method: http.MethodGet, Path: "/search", Handler: searchHandler.SearchMedicine},
				{Method: http.MethodGet, Path: "", Handler: medicineHandler.ListMedicines},
				{Method: http.MethodGet, Path: "/:id", Handler: medicineHandler.GetMedicine},
				{Method: http.MethodPost, Path: "", Handler: medicineHandler.CreateMedicine},
			})
		}

		shops := apiGroup.Group("/shops")
		{
			addRoutes(shops, []route{
				{Method: http.MethodGet, Path: "", Handler: shopHandler.ListShops},
				{Method: http.MethodPost, Path: "", Handler: shopHandler.CreateShop},
				{Method: http.MethodGet, Path: "/:id/medicines", Handler: shopHandler.GetShopInventory},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPut, Path: "/:id/status", Handler: reservationHandler.UpdateReservationStatus},
			})
		}

		pharmacies := apiGroup.Group("/pharmacies")
		{
			addRoutes(pharmacies, []route{
				{Method: http.MethodPost, Path: "/:id/inventory", Handler: inventoryHandler.CreateLine},
				{Method: http.MethodPut, Path: "/:id/inventory/:lineId", Handler: inventoryHandler.UpdateLine},
				{Method: http.MethodDelete, Path: "/:id/inventory/:lineId", Handler: inventoryHandler.DeleteLine},
			})
		}
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

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
