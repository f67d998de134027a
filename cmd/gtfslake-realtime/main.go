package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/theoremus-urban-solutions/gtfslake-realtime/config"
	"github.com/theoremus-urban-solutions/gtfslake-realtime/internal"
	"github.com/theoremus-urban-solutions/gtfslake-realtime/lake"
	"github.com/theoremus-urban-solutions/gtfslake-realtime/listener"
	"github.com/theoremus-urban-solutions/gtfslake-realtime/server"
)

func main() {
	mode := flag.String("mode", "serve", "serve|load|remove|export")
	database := flag.String("database", "gtfslake.db", "lake database file")
	configPath := flag.String("config", "", "config file (serve mode); defaults apply when absent")
	input := flag.String("i", "", "GTFS static ZIP file to load (load mode)")
	output := flag.String("o", "", "export destination directory or ZIP file (export mode)")
	agencies := flag.String("agencies", "", "comma-separated agency_id LIKE patterns to remove")
	routes := flag.String("routes", "", "comma-separated route_id LIKE patterns to remove")
	trips := flag.String("trips", "", "comma-separated trip_id LIKE patterns to remove")
	flag.Parse()

	internal.InitLogging()

	lk, err := lake.Open(*database)
	if err != nil {
		log.Fatalf("open lake: %v", err)
	}
	defer func() { _ = lk.Close() }()

	ctx := context.Background()

	switch *mode {
	case "serve":
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		var lst *listener.Listener
		if cfg.Notifications.BrokerURL != "" {
			lst = listener.New(cfg.Notifications.BrokerURL, cfg.Notifications.Topic)
			lst.Start()
		}
		srv := server.New(cfg, lk)
		srv.Start()
		srv.HandleGracefulShutdown()
		if lst != nil {
			lst.Stop()
		}
	case "load":
		if *input == "" {
			log.Fatalf("load mode requires -i <gtfs.zip>")
		}
		if err := lk.LoadStatic(ctx, *input); err != nil {
			log.Fatalf("load static: %v", err)
		}
	case "remove":
		for _, pattern := range splitPatterns(*agencies) {
			if err := lk.RemoveAgencies(ctx, pattern, false); err != nil {
				log.Fatalf("remove agencies: %v", err)
			}
		}
		for _, pattern := range splitPatterns(*routes) {
			if err := lk.RemoveRoutes(ctx, pattern, false); err != nil {
				log.Fatalf("remove routes: %v", err)
			}
		}
		for _, pattern := range splitPatterns(*trips) {
			if err := lk.RemoveTrips(ctx, pattern, false); err != nil {
				log.Fatalf("remove trips: %v", err)
			}
		}
		if err := lk.RemoveDependentObjects(ctx); err != nil {
			log.Fatalf("remove dependent objects: %v", err)
		}
	case "export":
		if *output == "" {
			log.Fatalf("export mode requires -o <dir or .zip>")
		}
		if err := lk.ExportStatic(ctx, *output); err != nil {
			log.Fatalf("export static: %v", err)
		}
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func splitPatterns(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
