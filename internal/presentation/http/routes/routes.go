package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pilotapp/crm-console/internal/application/service"
	"github.com/pilotapp/crm-console/internal/config"
	"github.com/pilotapp/crm-console/internal/presentation/http/handler"
	"github.com/pilotapp/crm-console/internal/presentation/http/middleware"
	"github.com/pilotapp/crm-console/pkg/logger"
	"github.com/pilotapp/crm-console/pkg/metrics"
)

// Services bundles the application services the router needs
type Services struct {
	Wizard    *service.WizardService
	Dashboard *service.DashboardService
	Question  *service.QuestionService
}

// SetupRoutes wires the full console API
func SetupRoutes(cfg *config.Config, log logger.Logger, m *metrics.Metrics, svcs Services) *gin.Engine {
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.MetricsMiddleware(m))
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": cfg.App.Name})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	sessionHandler := handler.NewSessionHandler(svcs.Wizard, svcs.Dashboard)
	wizardHandler := handler.NewWizardHandler(svcs.Wizard)
	dashboardHandler := handler.NewDashboardHandler(svcs.Dashboard)
	questionHandler := handler.NewQuestionHandler(svcs.Question)

	rateLimiter := middleware.NewSessionRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   cfg.Session.CleanupInterval,
		EntryTTL:          cfg.Session.TTL,
	})
	idempotencyStore := middleware.NewIdempotencyStore()

	v1 := router.Group("/api/v1")
	{
		v1.POST("/sessions", sessionHandler.Create)

		// everything below requires a session
		scoped := v1.Group("")
		scoped.Use(middleware.SessionMiddleware())
		scoped.Use(rateLimiter.Middleware())
		{
			scoped.DELETE("/sessions", sessionHandler.End)

			wizard := scoped.Group("/wizard")
			{
				wizard.GET("/state", wizardHandler.State)
				wizard.GET("/steps/:step/navigation", wizardHandler.Navigation)
				wizard.POST("/cancel", wizardHandler.Cancel)
				wizard.POST("/steps/:step/skip", wizardHandler.Skip)
				wizard.GET("/checklist/form", questionHandler.Form)

				wizard.PUT("/contacts/:index", wizardHandler.UpdateContact)
				wizard.DELETE("/contacts/:index", wizardHandler.RemoveContact)

				// the save buttons; idempotency guards double submits
				submits := wizard.Group("")
				submits.Use(middleware.Idempotency(idempotencyStore))
				{
					submits.POST("/steps/customer", wizardHandler.SubmitCustomer)
					submits.POST("/steps/contact", wizardHandler.SubmitContacts)
					submits.POST("/steps/afrdata", wizardHandler.SubmitAFRData)
					submits.POST("/steps/checklist", wizardHandler.SubmitChecklist)
				}
			}

			scoped.GET("/customers", dashboardHandler.Customers)
			scoped.GET("/customers/options", dashboardHandler.CustomerOptions)
			scoped.GET("/contacts", dashboardHandler.Contacts)
			scoped.GET("/afrdata", dashboardHandler.AFRData)
			scoped.GET("/checklists", dashboardHandler.Checklists)

			questions := scoped.Group("/questions")
			{
				questions.GET("", questionHandler.List)
				questions.POST("", middleware.Idempotency(idempotencyStore), questionHandler.Add)
				questions.POST("/refresh", questionHandler.Refresh)
			}
		}
	}

	return router
}
