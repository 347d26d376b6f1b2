// Command depthgate serves the depth frame quality assessment API:
// POST depth PNGs to /api/assess, browse stored assessments, and render
// batch quality reports.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fathom-robotics/depthgate/internal/api"
	"github.com/fathom-robotics/depthgate/internal/depth"
	"github.com/fathom-robotics/depthgate/internal/depthdb"
	"github.com/fathom-robotics/depthgate/internal/version"
)

var (
	listen     = flag.String("listen", ":8080", "Listen address")
	dbFile     = flag.String("db", "assessments.db", "Assessment database path")
	tuningFile = flag.String("tuning", "", "Optional tuning JSON file")
)

func main() {
	flag.Parse()

	if *listen == "" {
		log.Fatal("Listen address is required")
	}

	var tuning *depth.Tuning
	if *tuningFile != "" {
		var err error
		tuning, err = depth.LoadTuning(*tuningFile)
		if err != nil {
			log.Fatalf("failed to load tuning: %v", err)
		}
		log.Printf("loaded tuning from %s", *tuningFile)
	}

	db, err := depthdb.NewDB(*dbFile)
	if err != nil {
		log.Fatalf("failed to open assessment database: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    *listen,
		Handler: api.LoggingMiddleware(api.NewServer(db, tuning).ServeMux()),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("server shutdown: %v", err)
		}
	}()

	log.Printf("depthgate %s listening on %s (db=%s)", version.Version, *listen, *dbFile)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
