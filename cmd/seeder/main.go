// cmd/seeder/main.go
package main

import (
	"context"
	"flag"
	"log"

	"github.com/unclebandit/customer-viewer/internal/config"
	"github.com/unclebandit/customer-viewer/internal/db"
	"github.com/unclebandit/customer-viewer/internal/queue"
	"github.com/unclebandit/customer-viewer/internal/repository"
	"github.com/unclebandit/customer-viewer/internal/service"
)

func main() {
	confirm := flag.Bool("confirm", false, "insert the dummy batch even when SEED_ENABLED is not set")
	flag.Parse()

	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if !cfg.SeedEnabled && !*confirm {
		log.Println("Seeding is disabled. Set SEED_ENABLED=true or pass -confirm to insert dummy records.")
		return
	}

	ctx := context.Background()

	dialect, err := db.ParseDialect(cfg.DBDriver)
	if err != nil {
		log.Fatal(err)
	}
	conn, err := db.Open(ctx, dialect, cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if cfg.DBAutoMigrate {
		if err := db.RunMigrations(conn, dialect); err != nil {
			log.Fatalf("failed to migrate DB: %v", err)
		}
	}

	seeder := &service.SeedService{
		CustomerRepo: &repository.CustomerRepository{DB: conn, Dialect: dialect},
	}

	if cfg.AMQPURL != "" {
		q, err := queue.DialAMQP(cfg.AMQPURL)
		if err != nil {
			log.Println("⚠️ Seed event will not be published:", err)
		} else {
			defer q.Close()
			seeder.Queue = q
		}
	}

	n, err := seeder.Seed(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Database seeding completed successfully! (%d customers)\n", n)
}
