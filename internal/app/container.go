package app

import (
	"context"
	"net/http"

	"github.com/timharek/wcarbon/internal/application/query"
	"github.com/timharek/wcarbon/internal/infrastructure/carbon"
	"github.com/timharek/wcarbon/internal/pkg/logger"
	"github.com/timharek/wcarbon/internal/ports"
)

// Settings carries the few knobs the container needs.
type Settings struct {
	Verbose    bool
	BaseURL    string
	HTTPClient *http.Client
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	QueryService *query.Service
	CarbonAPI    ports.CarbonAPI
	Logger       ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(_ context.Context, settings Settings) (*Container, error) {
	log := logger.New(settings.Verbose)

	api := carbon.NewClient(settings.BaseURL, settings.HTTPClient, log)

	return &Container{
		QueryService: &query.Service{API: api, Logger: log},
		CarbonAPI:    api,
		Logger:       log,
	}, nil
}
