package api

import "net/http"

func (s *Server) handleExtractorStats(w http.ResponseWriter, r *http.Request) {
	if s.extractor == nil || s.extractor.Stats == nil {
		jsonError(w, "extractor stats unavailable", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"stats": s.extractor.Stats.Snapshot(),
	})
}
