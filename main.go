package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"agromate_be/config"
	"agromate_be/middleware"
	"agromate_be/pkg/forecast"
	"agromate_be/routes"
)

var (
	Version   = "dev"
	BuildTime = ""
)

func main() {

	versionFlag := flag.Bool("version", false, "Print version info and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("Version:   %s\n", Version)
		fmt.Printf("BuildTime: %s\n", BuildTime)
		os.Exit(0)
	}

	cfg := config.Load()
	config.Connect(cfg)

	// Maintenance commands run before serving and exit.
	if cmd := flag.Arg(0); cmd != "" {
		switch cmd {
		case "db:create":
			// Connect already ran the migrations.
			log.Println("database created")
		case "db:drop":
			if err := config.DropAll(config.DB); err != nil {
				log.Fatalf("could not drop tables: %v", err)
			}
			log.Println("database dropped")
		case "db:seed":
			if err := config.RunAllSeeding(); err != nil {
				log.Fatalf("could not seed database: %v", err)
			}
			log.Println("database seeded")
		default:
			log.Fatalf("unknown command %q", cmd)
		}
		return
	}

	// The forecast model is process-wide read-only state; serving without
	// it would leave /predict dead, so a load failure is fatal.
	model, err := forecast.Load(cfg.ModelPath)
	if err != nil {
		log.Fatalf("could not load forecast model: %v", err)
	}

	handler := routes.RegisterRoutes(model)
	handler = middleware.RequestLogger(handler)
	handlerWithCORS := enableCORS(handler)
	log.Println("Server starting at port", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handlerWithCORS))
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Required CORS headers
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
