// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/unclebandit/customer-viewer/internal/config"
	"github.com/unclebandit/customer-viewer/internal/controller"
	"github.com/unclebandit/customer-viewer/internal/db"
	"github.com/unclebandit/customer-viewer/internal/handler"
	"github.com/unclebandit/customer-viewer/internal/queue"
	"github.com/unclebandit/customer-viewer/internal/repository"
	"github.com/unclebandit/customer-viewer/internal/service"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	mode, err := service.ParseFilterMode(cfg.FilterMode)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB
	dialect, err := db.ParseDialect(cfg.DBDriver)
	if err != nil {
		log.Fatal(err)
	}
	conn, err := db.Open(ctx, dialect, cfg.DSN())
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	defer conn.Close()

	if cfg.DBAutoMigrate {
		if err := db.RunMigrations(conn, dialect); err != nil {
			log.Fatalf("failed to migrate DB: %v", err)
		}
		log.Println("✅ Migrations complete")
	}

	customerRepo := &repository.CustomerRepository{DB: conn, Dialect: dialect}

	if cfg.SeedEnabled {
		seedOnStart(ctx, customerRepo, cfg.AMQPURL)
	}

	customerService := &service.CustomerService{
		CustomerRepo: customerRepo,
		Mode:         mode,
	}

	customerController := &controller.CustomerController{
		CustomerService: customerService,
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler.NewRouter(customerController, conn),
	}

	go func() {
		log.Printf("🚀 Server is running on port %s (filter mode %s)\n", cfg.Port, mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("⚠️ Shutdown error:", err)
	}
}

// seedOnStart inserts the dummy batch before serving. Without RabbitMQ the
// seed event stays in process and is only logged.
func seedOnStart(ctx context.Context, repo repository.CustomerRepositoryInterface, amqpURL string) {
	seeder := &service.SeedService{CustomerRepo: repo}

	events, closeEvents, err := queue.Connect(amqpURL)
	if err != nil {
		log.Println("⚠️ Seed event will not be published:", err)
	} else {
		defer closeEvents()
		seeder.Queue = events
		if amqpURL == "" {
			_ = events.Subscribe(queue.TopicCustomersSeeded, queue.SeedEventHandler(func(ev queue.SeedEvent) {
				log.Printf("📩 %d customers seeded at %s\n", ev.Inserted, ev.SeededAt.Format(time.RFC3339))
			}))
		}
	}

	n, err := seeder.Seed(ctx)
	if err != nil {
		log.Println("⚠️ Startup seed failed:", err)
		return
	}
	log.Printf("🌱 Seeded %d customers\n", n)
}
