package render

import (
	"strings"
	"testing"
)

func TestMarkdown_Basic(t *testing.T) {
	html, err := Markdown("# Panic Disorder\n\nRecurrent panic attacks.\n\n- Racing heart\n- Shortness of breath")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := string(html)
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "Panic Disorder") {
		t.Errorf("expected rendered heading, got %s", out)
	}
	if !strings.Contains(out, "<li>Racing heart</li>") {
		t.Errorf("expected rendered list item, got %s", out)
	}
}

func TestMarkdown_Empty(t *testing.T) {
	html, err := Markdown("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(string(html)) != "" {
		t.Errorf("expected empty output, got %q", html)
	}
}
