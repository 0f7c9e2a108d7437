package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/chuckfs/fileintel/app"
	webapp "github.com/chuckfs/fileintel/web/run"
	"github.com/chuckfs/fileintel/version"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	listenAddr := flag.String("listen", "", "Address to listen on (overrides config)")
	flag.Parse()

	cfg := app.DefaultConfig()
	if *configPath != "" {
		loaded, err := app.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	web := webapp.NewWebApp(cfg)
	defer web.Close()

	addr := web.GetListenAddr()
	if *listenAddr != "" {
		addr = *listenAddr
	}

	log.Printf("Starting fileintel %s on %s", version.Version, addr)
	if err := http.ListenAndServe(addr, web.GetRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
