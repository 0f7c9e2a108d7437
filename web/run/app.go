package webapp

import (
	"fmt"
	"log"
	"net/http"

	"github.com/chuckfs/fileintel/app"
	"github.com/chuckfs/fileintel/models"
)

// WebApp wires the engine components behind the JSON API. The history
// store is optional; without it searches are not remembered and insights
// fall back to the static defaults.
type WebApp struct {
	Router    http.Handler
	AppConfig *models.AppConfig
	Searcher  *app.Searcher
	Analyzer  *app.Analyzer
	Organizer *app.Organizer
	History   *app.History
}

func NewWebApp(cfg *models.AppConfig) *WebApp {
	history, err := app.NewHistory(cfg.History.DBPath)
	if err != nil {
		log.Printf("History store unavailable, continuing without it: %v", err)
		history = nil
	}

	webapp := &WebApp{
		AppConfig: cfg,
		Searcher:  app.NewSearcher(cfg, history),
		Analyzer:  app.NewAnalyzer(cfg, history),
		Organizer: app.NewOrganizer(cfg),
		History:   history,
	}
	webapp.Router = router(webapp)
	return webapp
}

func (webapp *WebApp) Close() {
	if webapp.History != nil {
		webapp.History.Close()
	}
}

func (webapp *WebApp) GetListenAddr() string {
	port := 8080
	if webapp.AppConfig != nil && webapp.AppConfig.Server.Port > 0 {
		port = webapp.AppConfig.Server.Port
	}
	return fmt.Sprintf(":%d", port)
}

func (webapp *WebApp) GetRouter() http.Handler {
	return webapp.Router
}
