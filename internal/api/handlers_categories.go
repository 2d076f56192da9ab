package api

import (
	"encoding/json"
	"net/http"

	"github.com/SuryaBeeraka/mental-health-dashboard/internal/render"
	"github.com/SuryaBeeraka/mental-health-dashboard/internal/view"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	v := view.Resolve(s.store, "", "")
	writeJSON(w, http.StatusOK, map[string]any{
		"view":       v.Kind,
		"categories": v.Categories,
	})
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	q := r.URL.Query().Get("q")

	v := view.Resolve(s.store, category, "")
	if v.Kind == view.KindInvalidCategory {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"view":     v.Kind,
			"category": v.Category,
			"recover":  "/api/categories",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"view":     v.Kind,
		"category": v.Category,
		"topics":   view.Filter(v.Topics, q),
		"query":    q,
	})
}

func (s *Server) handleTopic(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	subtopic := chi.URLParam(r, "subtopic")

	v := view.Resolve(s.store, category, subtopic)
	if v.Kind == view.KindInvalidCategory {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"view":     v.Kind,
			"category": v.Category,
			"recover":  "/api/categories",
		})
		return
	}

	// An unknown subtopic degrades to the unselected detail view.
	if v.Topic == "" {
		writeJSON(w, http.StatusOK, map[string]any{
			"view":     v.Kind,
			"category": v.Category,
			"topics":   v.Topics,
		})
		return
	}

	html, err := render.Markdown(v.Content)
	if err != nil {
		s.log.Error("render topic", "category", v.Category, "topic", v.Topic, "error", err)
		jsonError(w, "failed to render topic", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"view":         v.Kind,
		"category":     v.Category,
		"topic":        v.Topic,
		"content":      v.Content,
		"content_html": string(html),
	})
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
