package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/discovery-engine/api"
	"github.com/campusconnect/discovery-engine/config"
	"github.com/campusconnect/discovery-engine/internal/engine"
	"github.com/campusconnect/discovery-engine/internal/metrics"
	"github.com/campusconnect/discovery-engine/store"
)

func main() {
	// Define command-line flags
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		configPath = flag.String("config", "", "Path to YAML config file (overrides DISCOVERY_CONFIG)")
		addr       = flag.String("addr", "", "HTTP listen address (overrides config)")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Campus Discovery Engine - prefix search and personalized ranking for career events\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nConfiguration can also come from a YAML file (DISCOVERY_CONFIG)\n")
		fmt.Printf("and DISCOVERY_-prefixed environment variables, e.g. DISCOVERY_ADDR.\n")
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Campus Discovery Engine v1.0.0\n")
		return
	}

	path := *configPath
	if path == "" {
		path = os.Getenv("DISCOVERY_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	metricsCollector := metrics.New(nil)
	recordStore := store.NewRecordStore()

	searchEngine, err := engine.NewEngine(recordStore, cfg.RebuildWorkers, metricsCollector)
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}
	defer searchEngine.Stop()

	// Initialize Gin router
	router := gin.Default()

	apiHandler, err := api.NewAPI(searchEngine, recordStore, cfg, metricsCollector)
	if err != nil {
		log.Fatalf("Failed to initialize API: %v", err)
	}
	api.SetupRoutes(router, apiHandler)

	// Start the server
	log.Printf("Starting server on %s...", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
