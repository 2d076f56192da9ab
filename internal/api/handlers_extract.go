package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/SuryaBeeraka/mental-health-dashboard/internal/extractor"
	"github.com/SuryaBeeraka/mental-health-dashboard/internal/preview"
	"github.com/SuryaBeeraka/mental-health-dashboard/internal/render"
)

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	filename, data, errMsg, code := s.readUpload(w, r)
	if errMsg != "" {
		jsonError(w, errMsg, code)
		return
	}

	previewText := s.previewNote(filename, data)

	rec, err := s.extractor.Extract(r.Context(), filename, bytes.NewReader(data))
	if err != nil {
		msg, code := extractErrorStatus(err)
		jsonError(w, msg, code)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"record":  rec,
		"blocks":  render.Blocks(rec),
		"preview": previewText,
	})
}

// readUpload pulls the note file out of the multipart form. A missing file
// is the NoFileSelected case and never reaches the network.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (filename string, data []byte, errMsg string, code int) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return "", nil, "invalid multipart form: " + err.Error(), http.StatusBadRequest
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, extractor.ErrNoFileSelected.Error(), http.StatusBadRequest
	}
	defer file.Close()

	filename = sanitizeFilename(header.Filename)
	if !preview.IsSupportedExtension(filename) {
		return "", nil, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest
	}

	data, err = io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return "", nil, "failed to read file", http.StatusInternalServerError
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return "", nil, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge
	}
	if len(data) == 0 {
		return "", nil, "uploaded file is empty", http.StatusBadRequest
	}

	return filename, data, "", 0
}

// previewNote converts the note to display text. Preview failure never
// blocks extraction.
func (s *Server) previewNote(filename string, data []byte) string {
	p, err := preview.ForFile(filename)
	if err != nil {
		return ""
	}
	text, err := p.Preview(bytes.NewReader(data), filename)
	if err != nil {
		s.log.Warn("note preview failed", "filename", filename, "error", err)
		return ""
	}
	return text
}

// extractErrorStatus maps the extraction error taxonomy onto HTTP responses.
// Server and network failures surface the best-effort message inline.
func extractErrorStatus(err error) (msg string, code int) {
	var srvErr *extractor.ServerError
	var netErr *extractor.NetworkError
	switch {
	case errors.Is(err, extractor.ErrNoFileSelected):
		return err.Error(), http.StatusBadRequest
	case errors.As(err, &srvErr):
		return srvErr.Message, http.StatusBadGateway
	case errors.As(err, &netErr):
		return "extraction service unreachable", http.StatusBadGateway
	default:
		return "extraction failed: " + err.Error(), http.StatusInternalServerError
	}
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
