package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "resume-match/docs" // Swagger docs
	"resume-match/internal/api"
	"resume-match/internal/config"
)

// @title Resume Match API
// @version 1.0
// @description Resume-to-job matching with lexical + semantic scoring, AI resume analysis and GitHub developer reports

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	cfg := config.LoadConfig()

	apiSrv, err := api.NewAPI(context.Background(), cfg)
	if err != nil {
		log.Fatal("api init:", err)
	}
	defer apiSrv.Close()

	router := api.NewRouter(apiSrv)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,  // File uploads
		WriteTimeout: 5 * time.Minute,   // OCR + embedding + report generation
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Println("server shutdown:", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("API server listening on :%s\n", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}

	<-idleConnsClosed
}
