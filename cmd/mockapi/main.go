package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/youpv/personal-trainer/internal/config"
	"github.com/youpv/personal-trainer/internal/logging"
	"github.com/youpv/personal-trainer/internal/mockapi"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting mock api ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	host := flag.String("host", "localhost", "host to bind to")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "trainer-mock-api",
	})

	log.Warnf("---->> running in [%s] environment", *env)
	log.Debugf("using port: %d, metrics port: %d", cfg.MockApiPort, cfg.MetricsPort)

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := mockapi.NewServer(mockapi.NewServerParams{
		SeedCustomers: cfg.SeedCustomers,
		SeedTrainings: cfg.SeedTrainings,
	})
	server.Serve(ctx, *host, cfg.MockApiPort, cfg.MetricsPort)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, shutting down ...", receivedSig)
	cancel()

	if err := server.GracefulShutdown(); err != nil {
		log.Errorf("graceful shutdown: %s", err)
	}
}
