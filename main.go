package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"v8e.it/flotta/config"
	"v8e.it/flotta/handlers"
	"v8e.it/flotta/routes"
)

var (
	Version   = "dev"
	BuildTime = ""
)

func main() {

	versionFlag := flag.Bool("version", false, "Print version info and exit")
	arcaConfigPath := flag.String("arca-config", "arca.yaml", "Path to the Arca sync configuration file")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("Version:   %s\n", Version)
		fmt.Printf("BuildTime: %s\n", BuildTime)
		os.Exit(0)
	}
	config.Connect()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Run migrations
	if err := config.Migrations(config.DB); err != nil {
		log.Fatalf("could not run migrations: %v", err)
	}

	// Seed the initial admin account (skips if users already exist)
	if err := config.SeedAdminUser(); err != nil {
		log.Printf("Warning: seeding encountered issues: %v", err)
	}

	// Start the Arca document synchronization schedule if configured.
	// A missing config file disables the sync but never blocks the server.
	if arcaCfg, err := config.LoadArca(*arcaConfigPath); err != nil {
		log.Printf("Arca sync disabled: %v", err)
	} else {
		syncer := handlers.NewArcaSyncer(arcaCfg)
		if err := syncer.StartSchedule(); err != nil {
			log.Fatalf("could not start Arca sync schedule: %v", err)
		}
	}

	handler := routes.RegisterRoutes()
	handlerWithCORS := enableCORS(handler)
	log.Println("Server starting at port", port)
	log.Fatal(http.ListenAndServe(":"+port, handlerWithCORS))
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		// Handle preflight (OPTIONS)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
