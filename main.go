package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sponsorship_backend/internals/configs"
	"sponsorship_backend/internals/container"
	routes "sponsorship_backend/internals/route"
)

func main() {
	cfg := configs.LoadEnv()

	ac, err := container.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("[ERROR] startup: %v", err)
	}

	if err := ac.StartBackgroundJobs(); err != nil {
		ac.Close()
		log.Fatalf("[ERROR] scheduler: %v", err)
	}

	app := routes.NewApp(ac)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Printf("[INFO] Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("[WARN] shutdown: %v", err)
	}
	ac.Close()
}
