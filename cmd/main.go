package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createQuoteHandler "github.com/repasseautors/lead-service/internal/api/handlers/create_quote"
	getAvailabilityHandler "github.com/repasseautors/lead-service/internal/api/handlers/get_availability"
	scheduleVisitHandler "github.com/repasseautors/lead-service/internal/api/handlers/schedule_visit"
	"github.com/repasseautors/lead-service/internal/api/middleware"
	"github.com/repasseautors/lead-service/internal/config"
	fipeClient "github.com/repasseautors/lead-service/internal/integrations/fipeapi"
	calendarClient "github.com/repasseautors/lead-service/internal/integrations/googlecalendar"
	pricingService "github.com/repasseautors/lead-service/internal/service/pricing"
	createQuoteUC "github.com/repasseautors/lead-service/internal/usecase/create_quote"
	getAvailabilityUC "github.com/repasseautors/lead-service/internal/usecase/get_availability"
	scheduleVisitUC "github.com/repasseautors/lead-service/internal/usecase/schedule_visit"
	"github.com/repasseautors/lead-service/pkg/metrics"

	"github.com/repasseautors/lead-service/pkg/logger"
)

func main() {
	// Load static configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting lead-service...")
	log.Info("Configuration loaded from config.toml")

	// Load credentials from the environment (.env in development)
	creds, err := config.LoadCredentials()
	if err != nil {
		log.Fatal("Failed to load credentials: %v", err)
	}

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Schedule configuration
	workHours := cfg.Schedule.WorkHours()
	blockedDates, err := cfg.Schedule.BlockedDateSet()
	if err != nil {
		log.Fatal("Failed to parse blocked dates: %v", err)
	}
	log.Info("Schedule configured: morning %02d-%02d, afternoon %02d-%02d, visit=%dmin, buffer=%dmin, %d blocked dates",
		workHours.Morning.StartHour, workHours.Morning.EndHour,
		workHours.Afternoon.StartHour, workHours.Afternoon.EndHour,
		workHours.VisitDurationMinutes, workHours.BufferMinutes, len(cfg.Schedule.BlockedDates))

	// Initialize the Google Calendar client. Missing credentials are a
	// supported degraded mode; a malformed private key is a fatal
	// configuration error.
	var gcal *calendarClient.Client
	if creds.CalendarConfigured() {
		gcal, err = calendarClient.NewClient(
			creds.GoogleServiceAccountEmail,
			creds.GooglePrivateKey,
			creds.GoogleCalendarID,
			time.Duration(cfg.Calendar.TimeoutSeconds)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to initialize Google Calendar client: %v", err)
		}
		if metricsCollector != nil {
			gcal = gcal.WithMetrics(metricsCollector)
		}
		log.Info("Google Calendar client initialized (calendar=%s, timeout=%ds)",
			creds.GoogleCalendarID, cfg.Calendar.TimeoutSeconds)
	} else {
		log.Warn("Google Calendar credentials not configured, availability and scheduling run in mock mode")
	}

	// Initialize the FIPE valuation client
	var fipe *fipeClient.Client
	if creds.FipeConfigured() {
		fipe = fipeClient.NewClient(
			cfg.Fipe.URL,
			creds.FipeAPIKey,
			time.Duration(cfg.Fipe.TimeoutSeconds)*time.Second,
			log,
		)
		if metricsCollector != nil {
			fipe = fipe.WithMetrics(metricsCollector)
		}
		log.Info("FIPE client initialized (url=%s, timeout=%ds)", cfg.Fipe.URL, cfg.Fipe.TimeoutSeconds)
	} else {
		log.Warn("FIPE_API_KEY not configured, quotes run in mock mode")
	}

	// Initialize services
	pricingSvc := pricingService.NewService(cfg.Pricing.DiscountRate)

	// Initialize use cases. Unconfigured clients are passed as literal nil
	// interfaces so the use cases see their mock mode.
	var availabilityUseCase *getAvailabilityUC.UseCase
	var scheduleUseCase *scheduleVisitUC.UseCase
	if gcal != nil {
		availabilityUseCase = getAvailabilityUC.NewUseCase(gcal, workHours, blockedDates,
			cfg.Schedule.HorizonDays, cfg.Schedule.FallbackHorizonDays, log)
		scheduleUseCase = scheduleVisitUC.NewUseCase(gcal, workHours, log)
	} else {
		availabilityUseCase = getAvailabilityUC.NewUseCase(nil, workHours, blockedDates,
			cfg.Schedule.HorizonDays, cfg.Schedule.FallbackHorizonDays, log)
		scheduleUseCase = scheduleVisitUC.NewUseCase(nil, workHours, log)
	}

	var quoteUseCase *createQuoteUC.UseCase
	if fipe != nil {
		quoteUseCase = createQuoteUC.NewUseCase(fipe, pricingSvc, log)
	} else {
		quoteUseCase = createQuoteUC.NewUseCase(nil, pricingSvc, log)
	}

	// Initialize handlers
	debug := cfg.Server.IsDevelopment()
	getAvailability := getAvailabilityHandler.NewHandler(availabilityUseCase, log)
	createQuote := createQuoteHandler.NewHandler(quoteUseCase, debug, log)
	scheduleVisit := scheduleVisitHandler.NewHandler(scheduleUseCase, debug, log)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(cfg.Server.AllowedOrigin))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/quote", createQuote.Handle).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/schedule", scheduleVisit.Handle).Methods(http.MethodPost, http.MethodOptions)

	// HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
