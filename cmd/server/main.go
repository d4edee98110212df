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

	"github.com/edava/student-records-api/internal/config"
	"github.com/edava/student-records-api/internal/entity"
	"github.com/edava/student-records-api/internal/server"
	"github.com/edava/student-records-api/pkg/database"
	"github.com/edava/student-records-api/pkg/response"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	response.Debug = cfg.IsDevelopment()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	srv := server.New(cfg, db)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("server listening at %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server exited with error: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown failed: %v", err)
	}
	if err := database.Close(db); err != nil {
		log.Printf("error closing database: %v", err)
	} else {
		log.Println("database connection closed")
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Student{},
		&entity.Course{},
		&entity.Result{},
	)
}
