package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizzeria-orders/internal/cache"
	"pizzeria-orders/internal/catalog"
	"pizzeria-orders/internal/config"
	"pizzeria-orders/internal/database"
	"pizzeria-orders/internal/logger"
	"pizzeria-orders/internal/messaging"
	"pizzeria-orders/internal/models"
	"pizzeria-orders/internal/orders"
	"pizzeria-orders/internal/services/ordering"
)

func main() {
	var (
		mode   = flag.String("mode", "", "Service mode (order-service, cancel-pending-orders)")
		port   = flag.Int("port", 3000, "HTTP port")
		reason = flag.String("reason", "", "Cancellation reason (cancel-pending-orders mode)")
	)
	flag.Parse()

	if *mode == "" {
		fmt.Fprintf(os.Stderr, "Error: --mode flag is required\n")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(*mode)
	requestID := logger.GenerateRequestID()

	log.Info("service_started", fmt.Sprintf("Starting %s", *mode), requestID, map[string]interface{}{
		"mode": *mode,
		"port": *port,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("graceful_shutdown", "Received shutdown signal", requestID, nil)
		cancel()
	}()

	switch *mode {
	case "order-service":
		if err := runOrderService(ctx, cfg, log, *port); err != nil {
			log.Error("service_failed", "Order service failed", requestID, err, nil)
			os.Exit(1)
		}
	case "cancel-pending-orders":
		if err := runCancelPendingOrders(ctx, cfg, log, *reason); err != nil {
			log.Error("service_failed", "Cancel pending orders failed", requestID, err, nil)
			os.Exit(1)
		}
	default:
		log.Error("validation_failed", fmt.Sprintf("Unknown mode: %s", *mode), requestID, nil, nil)
		os.Exit(1)
	}

	log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
}

// runOrderService serves the order HTTP API.
func runOrderService(ctx context.Context, cfg *config.Config, log *logger.Logger, port int) error {
	requestID := logger.GenerateRequestID()

	db, err := database.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("db_connected", "Connected to PostgreSQL database", requestID, nil)

	if err := db.RunMigrations(ctx, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	conn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}
	defer conn.Close()

	log.Info("rabbitmq_connected", "Connected to RabbitMQ", requestID, nil)

	selector := newSelector(cfg, db, messaging.NewPublisher(conn, log), log)
	handler := ordering.NewHandler(selector, log, func(ctx context.Context) bool {
		return db.Ping(ctx) == nil
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: handler.Routes(),
	}

	go func() {
		log.Info("service_started", fmt.Sprintf("Order Service started on port %d", port), requestID, map[string]interface{}{
			"port": port,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server_failed", "HTTP server failed", requestID, err, nil)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return server.Shutdown(shutdownCtx)
}

// runCancelPendingOrders cancels every pending order and exits.
func runCancelPendingOrders(ctx context.Context, cfg *config.Config, log *logger.Logger, reason string) error {
	requestID := logger.GenerateRequestID()

	db, err := database.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.RunMigrations(ctx, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	conn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}
	defer conn.Close()

	selector := newSelector(cfg, db, messaging.NewPublisher(conn, log), log)

	// The batch path is policy-neutral; any service instance will do.
	service, err := selector.ByServiceType(models.DineIn)
	if err != nil {
		return err
	}

	var reasonArg *string
	if reason != "" {
		reasonArg = &reason
	}

	cancelled, err := service.CancelPendingOrders(ctx, ordering.DemoRequester(), reasonArg)
	if err != nil {
		return fmt.Errorf("failed to cancel pending orders: %w", err)
	}

	if len(cancelled) == 0 {
		log.Info("no_pending_orders", "No pending orders found to cancel", requestID, nil)
		return nil
	}

	log.Info("pending_orders_cancelled", fmt.Sprintf("Cancelled %d pending orders", len(cancelled)), requestID, map[string]interface{}{
		"count": len(cancelled),
	})
	return nil
}

func newSelector(cfg *config.Config, db *database.DB, publisher *messaging.Publisher, log *logger.Logger) *ordering.Selector {
	catalogCache := cache.NewRedisCache(cfg.RedisAddr(), "pizzeria-orders")
	lookup := catalog.NewCachedLookup(catalog.NewPostgresLookup(db), catalogCache, log)
	repo := orders.NewPostgresRepository(db)
	uow := orders.NewPgUnitOfWork(db)

	return ordering.NewSelector(lookup, repo, uow, publisher, log)
}
