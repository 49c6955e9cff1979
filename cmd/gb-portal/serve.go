package main

import (
	"context"
	"log/slog"
	"syscall"

	"github.com/spf13/cobra"
	evbus "github.com/vardius/message-bus"

	"github.com/h44z/groupbackend-portal/internal"
	"github.com/h44z/groupbackend-portal/internal/adapters"
	"github.com/h44z/groupbackend-portal/internal/app/api/core"
	handlersV0 "github.com/h44z/groupbackend-portal/internal/app/api/v0/handlers"
	"github.com/h44z/groupbackend-portal/internal/app/audit"
	"github.com/h44z/groupbackend-portal/internal/app/groupbackend"
	"github.com/h44z/groupbackend-portal/internal/app/i18n"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web portal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(parent context.Context) error {
	ctx := internal.SignalAwareContext(parent, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	slog.Info("starting group backend portal", "version", internal.Version)

	rawDb, err := adapters.NewDatabase(cfg.Database)
	if err != nil {
		return err
	}

	database, err := adapters.NewSqlRepository(rawDb)
	if err != nil {
		return err
	}

	directory := adapters.NewDirectoryRepository(&cfg.Directory, cfg.Advanced.ProbeTimeout)

	metricsServer := adapters.NewMetricsServer(cfg.Metrics.ListeningAddress)
	if cfg.Metrics.Enabled {
		go metricsServer.Run(ctx)
	}

	queueSize := 100
	eventBus := evbus.New(queueSize)

	_, err = audit.NewAuditRecorder(cfg.Advanced.AuditEnabled, eventBus, database)
	if err != nil {
		return err
	}
	auditManager := audit.NewManager(database)

	resolver := groupbackend.NewResolver(directory, directory, directory)
	manager := groupbackend.NewManager(resolver, directory, database, eventBus, metricsServer)
	manager.StartupCheck(ctx)

	session := handlersV0.NewSessionWrapper(cfg)
	translator := i18n.NewTranslator(cfg.Web.DefaultLanguage)

	apiV0 := handlersV0.NewRestApi(
		session,
		handlersV0.NewHealthEndpoint(),
		handlersV0.NewNotificationEndpoint(session),
		handlersV0.NewUserGroupBackendEndpoint(cfg, manager, session, translator),
		handlersV0.NewResourceEndpoint(manager),
		handlersV0.NewAuditEndpoint(auditManager),
	)

	webSrv, err := core.NewServer(cfg, apiV0)
	if err != nil {
		return err
	}

	go webSrv.Run(ctx, cfg.Web.ListeningAddress)

	// wait until context gets cancelled
	<-ctx.Done()

	slog.Info("stopped group backend portal")

	return nil
}
