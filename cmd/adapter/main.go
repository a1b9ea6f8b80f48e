// cmd/adapter/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/opsbridge/snbridge/pkg/adapter"
	"github.com/opsbridge/snbridge/pkg/api"
	"github.com/opsbridge/snbridge/pkg/config"
	"github.com/opsbridge/snbridge/pkg/db"
	"github.com/opsbridge/snbridge/pkg/events"
	"github.com/opsbridge/snbridge/pkg/lifecycle"
	"github.com/opsbridge/snbridge/pkg/logger"
	"github.com/opsbridge/snbridge/pkg/servicenow"
)

const (
	defaultListenAddr = ":8090"
	defaultGRPCAddr   = ":50055"
)

func main() {
	configPath := flag.String("config", "/etc/snbridge/adapter.json", "Path to adapter config file")
	flag.Parse()

	var cfg config.AdapterConfig
	if err := config.LoadAndValidate(*configPath, &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}

	if cfg.GRPCAddr == "" {
		cfg.GRPCAddr = defaultGRPCAddr
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}

	lg := logger.New(os.Stderr, level)
	bus := events.NewBus()
	client := servicenow.NewClient(cfg.ServiceNow)

	opts := []adapter.Option{
		adapter.WithPollInterval(time.Duration(cfg.PollInterval)),
	}

	var history api.HistoryProvider

	if cfg.DBPath != "" {
		store, err := db.New(cfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to open history database: %v", err)
		}
		defer func() { _ = store.Close() }()

		opts = append(opts, adapter.WithHistoryStore(store))
		history = store
	}

	a := adapter.New(cfg.AdapterID, client, bus, lg, opts...)
	apiServer := api.NewAPIServer(a, history, lg)

	err = lifecycle.RunServer(context.Background(), &lifecycle.ServerOptions{
		HTTPAddr:    cfg.ListenAddr,
		GRPCAddr:    cfg.GRPCAddr,
		ServiceName: cfg.AdapterID,
		Service:     a,
		HTTPHandler: apiServer,
		Bus:         bus,
		Log:         lg,
	})
	if err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
