package api

import (
	"magvar-service/internal/api/handlers"
	"magvar-service/internal/ports"
	"magvar-service/internal/services"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	Service        *services.FieldService
	Stations       ports.StationRepository
	StationWorkers int
	HistoryLimit   int
	Gatherer       prometheus.Gatherer
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	fieldHandler := &handlers.FieldHandler{
		Service:      cfg.Service,
		HistoryLimit: cfg.HistoryLimit,
	}
	stationHandler := &handlers.StationHandler{
		Repo:    cfg.Stations,
		Model:   cfg.Service.Model,
		Workers: cfg.StationWorkers,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/model", fieldHandler.Model)
	mux.HandleFunc("/field", fieldHandler.Field)
	mux.HandleFunc("/variation", fieldHandler.Variation)
	mux.HandleFunc("/heading", fieldHandler.Heading)
	mux.HandleFunc("/compass-error", fieldHandler.CompassError)
	mux.HandleFunc("/history", fieldHandler.History)
	if cfg.Stations != nil {
		mux.HandleFunc("/stations", stationHandler.List)
	}
	if cfg.Gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	return requestIDMiddleware(loggingMiddleware(mux))
}
