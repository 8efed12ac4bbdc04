package main

import (
	"github.com/pilotapp/crm-console/internal/application/service"
	"github.com/pilotapp/crm-console/internal/config"
	"github.com/pilotapp/crm-console/internal/infrastructure/gateway"
	"github.com/pilotapp/crm-console/internal/presentation/http/routes"
	"github.com/pilotapp/crm-console/pkg/logger"
	"github.com/pilotapp/crm-console/pkg/metrics"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.NewLogger(cfg.App.Debug)
	m := metrics.NewMetrics("crm_console")

	// Gateways to the upstream CRUD backend
	client := gateway.NewClient(&cfg.Upstream, log, m)
	customerGateway := gateway.NewCustomerGateway(client)
	contactGateway := gateway.NewContactGateway(client)
	afrDataGateway := gateway.NewAFRDataGateway(client)
	checklistGateway := gateway.NewChecklistGateway(client)
	questionGateway := gateway.NewQuestionGateway(client)

	// Session-scoped flow state
	flowStore := service.NewFlowStore(cfg.Session.TTL, cfg.Session.CleanupInterval)

	// Application services
	questionService := service.NewQuestionService(questionGateway, flowStore, log)
	wizardService := service.NewWizardService(
		customerGateway, contactGateway, afrDataGateway, checklistGateway,
		questionService, flowStore, log, m,
	)
	dashboardService := service.NewDashboardService(
		customerGateway, contactGateway, afrDataGateway, checklistGateway, log,
	)

	router := routes.SetupRoutes(cfg, log, m, routes.Services{
		Wizard:    wizardService,
		Dashboard: dashboardService,
		Question:  questionService,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info("starting server",
		"service", cfg.App.Name,
		"port", port,
		"env", cfg.App.Env,
		"upstream", cfg.Upstream.BaseURL,
	)

	if err := router.Run(":" + port); err != nil {
		log.Fatal("server exited", "error", err)
	}
}
