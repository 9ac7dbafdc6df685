package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/umesh576/servicehub-cli/internal/adapters/api"
	"github.com/umesh576/servicehub-cli/internal/adapters/config"
	credfile "github.com/umesh576/servicehub-cli/internal/adapters/credentials/file"
	"github.com/umesh576/servicehub-cli/internal/application"
	"github.com/umesh576/servicehub-cli/internal/ports"
)

type app struct {
	cfg       config.Config
	creds     *credfile.Store
	client    *api.Client
	validator *application.SessionValidator
	resolver  *application.Resolver
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	creds := credfile.NewStore(cfg.CredentialPath)
	client := api.NewClient(cfg.BaseURL, &http.Client{Timeout: 30 * time.Second}, log)
	validator := application.NewSessionValidator(creds, client, ports.SystemClock{})
	resolver := application.NewResolver(validator, client, client, client)

	return &app{
		cfg:       cfg,
		creds:     creds,
		client:    client,
		validator: validator,
		resolver:  resolver,
	}, nil
}

func (a *app) newOrchestrator(entry application.EntryPoint) *application.Orchestrator {
	return application.NewOrchestrator(entry, a.resolver, a.validator, a.client, ports.SystemClock{})
}
