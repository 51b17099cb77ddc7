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

	confirmPaymentHandler "github.com/espacohub/StudioBookingService/internal/api/handlers/confirm_payment"
	confirmReservationHandler "github.com/espacohub/StudioBookingService/internal/api/handlers/confirm_reservation"
	getBookingsHandler "github.com/espacohub/StudioBookingService/internal/api/handlers/get_bookings"
	getDaySlotsHandler "github.com/espacohub/StudioBookingService/internal/api/handlers/get_day_slots"
	getFlowHandler "github.com/espacohub/StudioBookingService/internal/api/handlers/get_flow"
	quotePriceHandler "github.com/espacohub/StudioBookingService/internal/api/handlers/quote_price"
	selectSlotHandler "github.com/espacohub/StudioBookingService/internal/api/handlers/select_slot"
	submitPromptHandler "github.com/espacohub/StudioBookingService/internal/api/handlers/submit_prompt"
	validateSlotHandler "github.com/espacohub/StudioBookingService/internal/api/handlers/validate_slot"
	"github.com/espacohub/StudioBookingService/internal/api/middleware"
	"github.com/espacohub/StudioBookingService/internal/config"
	"github.com/espacohub/StudioBookingService/internal/flow"
	bookingRepo "github.com/espacohub/StudioBookingService/internal/infra/storage/booking"
	bookingsService "github.com/espacohub/StudioBookingService/internal/service/bookings"
	paymentsService "github.com/espacohub/StudioBookingService/internal/service/payments"
	schedulerService "github.com/espacohub/StudioBookingService/internal/service/scheduler"
	getDaySlotsUC "github.com/espacohub/StudioBookingService/internal/usecase/get_day_slots"
	"github.com/espacohub/StudioBookingService/pkg/logger"
	"github.com/espacohub/StudioBookingService/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting StudioBookingService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Booking store (in-memory, session-scoped: the schedule lives and dies
	// with the process)
	repository := bookingRepo.NewRepository()

	// Scheduling rules
	blackoutDays, err := cfg.BlackoutWeekdays()
	if err != nil {
		log.Fatal("Failed to parse blackout weekdays: %v", err)
	}
	rules := schedulerService.Rules{
		HalfHourRate:     cfg.Studio.HalfHourRate,
		MinLeadTime:      cfg.MinLeadTime(),
		BlackoutWeekdays: blackoutDays,
	}
	log.Info("Studio rules: rate=%.2f/half-hour, lead=%s, blackout=%v",
		rules.HalfHourRate, rules.MinLeadTime, cfg.Studio.BlackoutWeekdays)

	// Services
	var schedulerMetrics schedulerService.Metrics
	if cfg.Metrics.Enabled {
		schedulerMetrics = metricsCollector
	}
	scheduler := schedulerService.NewService(repository, rules, schedulerMetrics, log)
	bookingSvc := bookingsService.NewService(repository, log)
	paymentSvc := paymentsService.NewService(log)

	// Seed bookings ("Reservado" placeholders)
	seeds, err := cfg.Seeds()
	if err != nil {
		log.Fatal("Failed to parse seed bookings: %v", err)
	}
	if len(seeds) > 0 {
		seedList := make([]bookingsService.Seed, len(seeds))
		for i, s := range seeds {
			seedList[i] = bookingsService.Seed{Title: s.Title, Interval: s.Interval}
		}
		if err := bookingSvc.LoadSeeds(context.Background(), seedList); err != nil {
			log.Fatal("Failed to load seed bookings: %v", err)
		}
		log.Info("Loaded %d seed bookings", len(seeds))
	}

	// Use cases
	hours := getDaySlotsUC.Hours{
		OpenTime:    cfg.Studio.OpenTime,
		CloseTime:   cfg.Studio.CloseTime,
		StepMinutes: cfg.Studio.SlotStepMinutes,
	}
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(repository, scheduler, hours, log)

	// Booking flow state machines, one per tenant session
	flowManager := flow.NewManager(scheduler, log)

	// Handlers
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	validateSlot := validateSlotHandler.NewHandler(scheduler, log)
	quotePrice := quotePriceHandler.NewHandler(scheduler, log)
	getFlow := getFlowHandler.NewHandler(flowManager, log)
	selectSlot := selectSlotHandler.NewHandler(flowManager, log)
	submitPrompt := submitPromptHandler.NewHandler(flowManager, log)
	confirmReservation := confirmReservationHandler.NewHandler(flowManager, cfg.Studio.PaymentPath, log)
	confirmPayment := confirmPaymentHandler.NewHandler(paymentSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: calendar data and pure scheduler queries
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/day-slots", getDaySlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/validate", validateSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/slots/quote", quotePrice.Handle).Methods(http.MethodGet)
	api.HandleFunc("/payments", confirmPayment.Handle).Methods(http.MethodPost)

	// Session routes: the booking flow (require X-Session-ID header)
	flowRoutes := api.PathPrefix("/flow").Subrouter()
	flowRoutes.Use(middleware.Session)
	flowRoutes.HandleFunc("", getFlow.Handle).Methods(http.MethodGet)
	flowRoutes.HandleFunc("/select", selectSlot.Handle).Methods(http.MethodPost)
	flowRoutes.HandleFunc("/prompt", submitPrompt.Handle).Methods(http.MethodPost)
	flowRoutes.HandleFunc("/confirm", confirmReservation.Handle).Methods(http.MethodPost)

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
