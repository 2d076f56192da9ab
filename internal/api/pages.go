package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"github.com/SuryaBeeraka/mental-health-dashboard/internal/render"
	"github.com/SuryaBeeraka/mental-health-dashboard/internal/view"
	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(
	template.New("").Funcs(template.FuncMap{
		"pathEscape": url.PathEscape,
	}).ParseFS(templateFS, "templates/*.html"),
)

type indexPage struct {
	Categories []string
}

type categoryPage struct {
	Category string
	Topics   []string
	Query    string

	// Selected subtopic, empty when none is selected (including the
	// unknown-subtopic downgrade).
	Topic       string
	ContentHTML template.HTML
}

type invalidPage struct {
	Category string
}

type uploadPage struct {
	Error    string
	Filename string
	Preview  string
	Blocks   *render.RecordBlocks
}

func (s *Server) renderPage(w http.ResponseWriter, code int, name string, data any) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		s.log.Error("render page", "template", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	w.Write(buf.Bytes())
}

func (s *Server) handleIndexPage(w http.ResponseWriter, r *http.Request) {
	v := view.Resolve(s.store, "", "")
	s.renderPage(w, http.StatusOK, "index.html", indexPage{Categories: v.Categories})
}

func (s *Server) handleCategoryPage(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	q := r.URL.Query().Get("q")

	v := view.Resolve(s.store, category, "")
	if v.Kind == view.KindInvalidCategory {
		s.renderPage(w, http.StatusNotFound, "invalid.html", invalidPage{Category: v.Category})
		return
	}

	s.renderPage(w, http.StatusOK, "category.html", categoryPage{
		Category: v.Category,
		Topics:   view.Filter(v.Topics, q),
		Query:    q,
	})
}

func (s *Server) handleTopicPage(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	subtopic := chi.URLParam(r, "subtopic")

	v := view.Resolve(s.store, category, subtopic)
	if v.Kind == view.KindInvalidCategory {
		s.renderPage(w, http.StatusNotFound, "invalid.html", invalidPage{Category: v.Category})
		return
	}

	page := categoryPage{
		Category: v.Category,
		Topics:   v.Topics,
	}
	if v.Topic != "" {
		html, err := render.Markdown(v.Content)
		if err != nil {
			s.log.Error("render topic", "category", v.Category, "topic", v.Topic, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		page.Topic = v.Topic
		page.ContentHTML = html
	}
	s.renderPage(w, http.StatusOK, "category.html", page)
}

func (s *Server) handleUploadPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, "upload.html", uploadPage{})
}

func (s *Server) handleUploadSubmit(w http.ResponseWriter, r *http.Request) {
	filename, data, errMsg, code := s.readUpload(w, r)
	if errMsg != "" {
		s.renderPage(w, code, "upload.html", uploadPage{Error: errMsg})
		return
	}

	previewText := s.previewNote(filename, data)

	rec, err := s.extractor.Extract(r.Context(), filename, bytes.NewReader(data))
	if err != nil {
		msg, code := extractErrorStatus(err)
		s.renderPage(w, code, "upload.html", uploadPage{
			Error:    msg,
			Filename: filename,
			Preview:  previewText,
		})
		return
	}

	blocks := render.Blocks(rec)
	s.renderPage(w, http.StatusOK, "upload.html", uploadPage{
		Filename: filename,
		Preview:  previewText,
		Blocks:   &blocks,
	})
}
