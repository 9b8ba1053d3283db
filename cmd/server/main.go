package main

import (
	"database/sql"
	"log"
	"magvar-service/internal/adapters/querylog"
	"magvar-service/internal/adapters/repositories"
	"magvar-service/internal/api"
	"magvar-service/internal/config"
	"magvar-service/internal/geomag"
	"magvar-service/internal/platform/db"
	"magvar-service/internal/platform/metrics"
	"magvar-service/internal/ports"
	"magvar-service/internal/services"
	"net/http"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres) behind ports and starts the HTTP server.
func main() {
	config.Load()
	cfg := config.FromEnv()

	model := geomag.WMM2025()
	if err := model.Validate(); err != nil {
		log.Fatalf("coefficient table invalid: %v", err)
	}

	conn, dialect, err := db.OpenFromEnv(cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Initialize schema and seed reference stations on startup for local runs.
	if err := initAndSeed(conn, dialect, cfg.SeedPath); err != nil {
		log.Fatal(err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc := services.NewFieldService(model, newQueryLog(conn, dialect), metrics.New(reg))
	router := api.NewRouter(api.RouterConfig{
		Service:        svc,
		Stations:       repositories.NewSQLStationRepository(conn),
		StationWorkers: cfg.StationWorkers,
		HistoryLimit:   cfg.HistoryLimit,
		Gatherer:       reg,
	})

	log.Printf("Server listening addr=:%s model=%q dialect=%s", cfg.Port, model.Label(), dialect)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func newQueryLog(conn *sql.DB, dialect db.Dialect) ports.QueryLog {
	if dialect == db.Postgres {
		return querylog.NewSQLQueryLog(conn)
	}
	return querylog.NewSqliteQueryLog(conn)
}

func initAndSeed(conn *sql.DB, dialect db.Dialect, seedPath string) error {
	if err := repositories.InitSchema(conn, dialect); err != nil {
		return err
	}

	if _, err := os.Stat(seedPath); err != nil {
		log.Printf("Skipping station seed path=%s err=%v", seedPath, err)
		return nil
	}

	if err := repositories.SeedStations(conn, dialect, seedPath); err != nil {
		return err
	}

	return nil
}
