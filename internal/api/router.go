package api

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	docs "github.com/japb1998/atelier/docs"
	"github.com/japb1998/atelier/internal/controller"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

var (
	routerHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "api")})
	routerLogger  = slog.New(routerHandler)
)

const (
	ScopeName = "github.com/japb1998/atelier/internal/api"
)

const welcomePage = "<h1>Bienvenue sur Atelier Réparation</h1><p>Logiciel de gestion en ligne</p>"

// InitRoutes builds the router. controller.Init or controller.Setup must run first.
func InitRoutes() *gin.Engine {
	routerLogger.Info("Gin cold start")
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			routerLogger.Error("failed to register notblank validation", slog.String("error", err.Error()))
		}
	}
	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"*"}
	corsConfig.AddAllowMethods("OPTIONS", "GET", "POST", "PATCH", "DELETE")

	r.Use(otelgin.Middleware(ScopeName))

	r.Use(cors.New(corsConfig))

	r.Use(requestIdMiddleware())

	// SWAGGER
	docs.SwaggerInfo.BasePath = ""
	{
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
	}

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(welcomePage))
	})

	//CLIENT ROUTER
	clients := r.Group("/clients")
	{
		clients.GET("", controller.GetClients)
		clients.POST("", controller.CreateClient)
		clients.GET("/:id", controller.GetClientByID)
		clients.PATCH("/:id", controller.UpdateClient)
		clients.DELETE("/:id", controller.DeleteClient)
		clients.POST("/:id/factures/:factureId/envoyer", controller.SendInvoice)
	}

	// INVOICE ROUTER
	r.POST("/factures", controller.CreateInvoice)

	// REPAIR ROUTER
	r.POST("/reparations", controller.CreateRepairTicket)

	return r
}
