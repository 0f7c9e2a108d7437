package webapp

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/chuckfs/fileintel/app"
)

type searchRequest struct {
	Query      string   `json:"query"`
	Paths      []string `json:"paths,omitempty"`
	MaxResults int      `json:"max_results,omitempty"`
}

func (webapp *WebApp) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

func (webapp *WebApp) search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		resp, err := webapp.Searcher.Search(r.Context(), req.Query, req.Paths, req.MaxResults)
		if err != nil {
			log.Printf("Search failed: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func (webapp *WebApp) analyze() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Query().Get("path")

		report, err := webapp.Analyzer.Analyze(path)
		if err != nil {
			log.Printf("Analysis failed: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func (webapp *WebApp) insights() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		insights, err := app.GetInsights(webapp.History)
		if err != nil {
			log.Printf("Insights failed: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"insights":     insights,
			"generated_at": time.Now().Format(time.RFC3339),
		})
	}
}

func (webapp *WebApp) organize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Query().Get("path")
		dryRun := r.URL.Query().Get("dry_run") != "false"

		plan, err := webapp.Organizer.Plan(path)
		if err != nil {
			log.Printf("Organize planning failed: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		action := "dry_run"
		applied := 0
		if !dryRun {
			applied, err = webapp.Organizer.Apply(plan)
			if err != nil {
				log.Printf("Organize apply failed: %v", err)
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			action = "organized"
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"action":  action,
			"applied": applied,
			"results": plan,
		})
	}
}
