package preview

import (
	"testing"
)

func TestForFile_Dispatch(t *testing.T) {
	tests := []struct {
		filename string
		want     any
	}{
		{"note.txt", &TextPreviewer{}},
		{"note.TXT", &TextPreviewer{}},
		{"note", &TextPreviewer{}},
		{"scan.pdf", &PDFPreviewer{}},
		{"visit.docx", &DOCXPreviewer{}},
		{"export.html", &HTMLPreviewer{}},
		{"export.htm", &HTMLPreviewer{}},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			p, err := ForFile(tt.filename)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			switch tt.want.(type) {
			case *TextPreviewer:
				if _, ok := p.(*TextPreviewer); !ok {
					t.Errorf("expected TextPreviewer, got %T", p)
				}
			case *PDFPreviewer:
				if _, ok := p.(*PDFPreviewer); !ok {
					t.Errorf("expected PDFPreviewer, got %T", p)
				}
			case *DOCXPreviewer:
				if _, ok := p.(*DOCXPreviewer); !ok {
					t.Errorf("expected DOCXPreviewer, got %T", p)
				}
			case *HTMLPreviewer:
				if _, ok := p.(*HTMLPreviewer); !ok {
					t.Errorf("expected HTMLPreviewer, got %T", p)
				}
			}
		})
	}
}

func TestForFile_Unsupported(t *testing.T) {
	for _, name := range []string{"image.png", "sheet.xlsx", "archive.zip"} {
		if _, err := ForFile(name); err == nil {
			t.Errorf("expected error for %q", name)
		}
	}
}

func TestIsSupportedExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"note.txt", true},
		{"note.pdf", true},
		{"note.docx", true},
		{"note.html", true},
		{"note", true},
		{"note.png", false},
		{"note.exe", false},
	}
	for _, tt := range tests {
		if got := IsSupportedExtension(tt.filename); got != tt.want {
			t.Errorf("IsSupportedExtension(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}
