// Package preview turns uploaded note files into plain text so the
// dashboard can show what was submitted alongside the extraction result.
// Extraction itself happens remotely; this is display-only.
package preview

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Previewer converts raw note bytes into display text.
type Previewer interface {
	Preview(r io.Reader, filename string) (string, error)
}

// SupportedExtensions lists note file types the dashboard accepts.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".pdf":  true,
	".docx": true,
	".html": true,
	".htm":  true,
}

// ForFile returns the previewer for a filename. Unknown extensions are
// rejected so the upload never reaches the extraction service.
func ForFile(filename string) (Previewer, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", "":
		return &TextPreviewer{}, nil
	case ".pdf":
		return &PDFPreviewer{}, nil
	case ".docx":
		return &DOCXPreviewer{}, nil
	case ".html", ".htm":
		return &HTMLPreviewer{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks whether a filename can be previewed and
// uploaded. Extensionless files are treated as plain text.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == "" || SupportedExtensions[ext]
}
