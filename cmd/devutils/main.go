package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/MKhiriev/go-dev-utils/internal/config"
	"github.com/MKhiriev/go-dev-utils/internal/logger"
	"github.com/MKhiriev/go-dev-utils/internal/service"
	"github.com/MKhiriev/go-dev-utils/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const appRole = "devutils"

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("devutils"),
		kong.Description("Base64, JWT and JSON utilities in a terminal window."),
		kong.UsageOnError(),
	)

	cfg, err := config.GetStructuredConfig(cli.Flags)
	if err != nil {
		logger.NewLogger(appRole).Fatal().Err(err).Msg("error getting configs")
	}

	// the terminal belongs to the UI, so logs go to a file
	log := logger.NewClientLogger(appRole, cfg.Logger.File).WithLevel(cfg.Logger.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	rt := &runtime{
		ctx:      log.WithContext(ctx),
		cfg:      cfg,
		services: service.NewServices(cfg, info, log),
		info:     info,
		logger:   log,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}

	err = kctx.Run(rt)
	if errors.Is(err, errTransformFailed) {
		stop()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "devutils: %v\n", err)
		log.Fatal().Err(err).Str("command", kctx.Command()).Msg("run error")
	}
}
