package main

import (
	"context"
	"flag"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/go-chi/chi/v5"
	"github.com/huertapp/plant-mgmt/internal/pkg/application"
	"github.com/huertapp/plant-mgmt/internal/pkg/application/events"
	"github.com/huertapp/plant-mgmt/internal/pkg/infrastructure/metrics"
	"github.com/huertapp/plant-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/huertapp/plant-mgmt/internal/pkg/infrastructure/router"
	"github.com/huertapp/plant-mgmt/internal/pkg/presentation/api"
	"github.com/huertapp/plant-mgmt/internal/pkg/presentation/api/auth"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const serviceName string = "plant-mgmt"

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",
		jwtSecret:     "",

		configurationFile: "/opt/huertapp/config/plant-mgmt.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "plantas",
		dbSSLMode:  "disable",

		devmode: "false",
	}
}

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, logger, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	flags := parseExternalConfig(logger, defaultFlags())

	if flags[jwtSecret] == "" && flags[devmode] != "true" {
		fatal(logger, nil, "JWT_SECRET must be set")
	}

	db, err := database.Open(ctx, newConnector(logger, flags))
	if err != nil {
		fatal(logger, err, "could not create or connect to database")
	}

	cfgFile, err := os.Open(flags[configurationFile])
	if err != nil {
		fatal(logger, err, "could not open configuration file")
	}

	cfg, err := loadConfiguration(cfgFile)
	if err != nil {
		fatal(logger, err, "could not load configuration")
	}

	err = application.Seed(ctx, db, cfg)
	if err != nil {
		fatal(logger, err, "failed to seed reference data")
	}

	var messenger events.EventSender
	msgCtx, err := messaging.Initialize(messaging.LoadConfiguration(serviceName, logger))
	if err != nil {
		logger.Warn().Err(err).Msg("failed to init messenger, domain events will only reach http subscribers")
	} else {
		defer msgCtx.Close()
		messenger = msgCtx
	}

	sender := events.New(cfg.Events(), messenger)

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	r := setupRouter(ctx, db, sender, flags[jwtSecret], registry, m)

	addr := flags[listenAddress] + ":" + flags[servicePort]
	logger.Info().Str("addr", addr).Msg("starting to listen for connections")

	err = http.ListenAndServe(addr, r)
	if err != nil {
		fatal(logger, err, "failed to start request router")
	}
}

func setupRouter(ctx context.Context, db *gorm.DB, sender events.EventSender, secret string, gatherer prometheus.Gatherer, m *metrics.Metrics) *chi.Mux {
	app := application.New(db, sender)
	r := router.New(serviceName, gatherer)
	return api.RegisterHandlers(ctx, r, auth.NewAuthenticator(secret), app, m)
}

func newConnector(logger zerolog.Logger, flags flagMap) database.ConnectorFunc {
	if flags[devmode] == "true" {
		logger.Info().Msg("devmode enabled, using an in-memory database")
		return database.NewSQLiteConnector(logger)
	}

	return database.NewPostgreSQLConnector(logger, database.ConnectorConfig{
		Host:     flags[dbHost],
		Port:     flags[dbPort],
		Username: flags[dbUser],
		DbName:   flags[dbName],
		Password: flags[dbPassword],
		SslMode:  flags[dbSSLMode],
	})
}

func loadConfiguration(cfgFile io.ReadCloser) (*application.Config, error) {
	defer cfgFile.Close()
	return application.LoadConfiguration(cfgFile)
}

func parseExternalConfig(logger zerolog.Logger, flags flagMap) flagMap {
	// Allow environment variables to override certain defaults
	envOrDef := func(name, def string) string {
		return env.GetVariableOrDefault(logger, name, def)
	}

	flags[listenAddress] = envOrDef("LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef("SERVICE_PORT", flags[servicePort])
	flags[jwtSecret] = envOrDef("JWT_SECRET", flags[jwtSecret])
	flags[configurationFile] = envOrDef("PLANT_MGMT_CONFIG", flags[configurationFile])

	flags[dbHost] = envOrDef("POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef("POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef("POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef("POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef("POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef("POSTGRES_SSLMODE", flags[dbSSLMode])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("config", "plant management configuration file", apply(configurationFile))
	flag.Func("devmode", "enable dev mode", apply(devmode))
	flag.Parse()

	return flags
}

func fatal(logger zerolog.Logger, err error, msg string) {
	logger.Error().Err(err).Msg(msg)
	time.Sleep(2 * time.Second)
	os.Exit(1)
}
