package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/SuryaBeeraka/mental-health-dashboard/internal/extractor"
)

func str(s string) *string { return &s }

func intp(n int) *int { return &n }

func TestBlocks_AllFieldsAbsent(t *testing.T) {
	b := Blocks(&extractor.Record{})

	if b.Name != "N/A" {
		t.Errorf("expected name placeholder, got %q", b.Name)
	}
	if b.Age != "N/A" {
		t.Errorf("expected age placeholder, got %q", b.Age)
	}
	if b.PastHistory != "—" {
		t.Errorf("expected past history placeholder, got %q", b.PastHistory)
	}
	if b.MentalIllnesses == nil || len(b.MentalIllnesses) != 0 {
		t.Errorf("expected empty illnesses list, got %v", b.MentalIllnesses)
	}
	if b.Medications == nil || len(b.Medications) != 0 {
		t.Errorf("expected empty medications list, got %v", b.Medications)
	}
	if b.Diagnoses == nil || len(b.Diagnoses) != 0 {
		t.Errorf("expected empty diagnoses list, got %v", b.Diagnoses)
	}
	if b.RawJSON == "" {
		t.Error("expected raw JSON to always be populated")
	}
}

func TestBlocks_NilRecord(t *testing.T) {
	b := Blocks(nil)
	if b.Name != "N/A" || b.Age != "N/A" || b.PastHistory != "—" {
		t.Errorf("expected placeholder blocks for nil record, got %+v", b)
	}
}

func TestBlocks_AgeZeroIsPresent(t *testing.T) {
	b := Blocks(&extractor.Record{Age: intp(0)})
	if b.Age != "0" {
		t.Errorf("expected age 0 to render literally, got %q", b.Age)
	}
}

func TestBlocks_ScalarValues(t *testing.T) {
	b := Blocks(&extractor.Record{
		Name:        str("Jane"),
		Age:         intp(34),
		PastHistory: str("Treated for GAD in 2019."),
	})
	if b.Name != "Jane" {
		t.Errorf("expected Jane, got %q", b.Name)
	}
	if b.Age != "34" {
		t.Errorf("expected 34, got %q", b.Age)
	}
	if b.PastHistory != "Treated for GAD in 2019." {
		t.Errorf("unexpected past history %q", b.PastHistory)
	}
}

func TestBlocks_BlankPastHistoryFallsBack(t *testing.T) {
	// The extraction service returns "" rather than omitting the field.
	b := Blocks(&extractor.Record{PastHistory: str("  ")})
	if b.PastHistory != "—" {
		t.Errorf("expected placeholder for blank history, got %q", b.PastHistory)
	}
}

func TestBlocks_MedicationLine(t *testing.T) {
	tests := []struct {
		name string
		med  extractor.Medication
		want string
	}{
		{
			name: "name and dose only",
			med:  extractor.Medication{Name: str("Sertraline"), Dose: str("50mg")},
			want: "Sertraline • 50mg",
		},
		{
			name: "all fields",
			med: extractor.Medication{
				Name:      str("Sertraline"),
				Dose:      str("50mg"),
				Route:     str("oral"),
				Frequency: str("daily"),
				Duration:  str("6 months"),
				Reason:    str("anxiety"),
			},
			want: "Sertraline • 50mg • oral • daily • 6 months — anxiety",
		},
		{
			name: "gaps keep fixed order without empty separators",
			med: extractor.Medication{
				Name:      str("Quetiapine"),
				Frequency: str("nightly"),
				Reason:    str("sleep"),
			},
			want: "Quetiapine • nightly — sleep",
		},
		{
			name: "name only",
			med:  extractor.Medication{Name: str("Lorazepam")},
			want: "Lorazepam",
		},
		{
			name: "reason only",
			med:  extractor.Medication{Name: str("Lorazepam"), Reason: str("acute panic")},
			want: "Lorazepam — acute panic",
		},
		{
			name: "no name",
			med:  extractor.Medication{Dose: str("10mg"), Route: str("oral")},
			want: "10mg • oral",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Blocks(&extractor.Record{MedicationsTaken: []extractor.Medication{tt.med}})
			if len(b.Medications) != 1 {
				t.Fatalf("expected 1 medication block, got %d", len(b.Medications))
			}
			if got := b.Medications[0].Line; got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBlocks_MedicationNameRestSplit(t *testing.T) {
	b := Blocks(&extractor.Record{MedicationsTaken: []extractor.Medication{
		{Name: str("Sertraline"), Dose: str("50mg")},
	}})
	m := b.Medications[0]
	if m.Name != "Sertraline" {
		t.Errorf("expected name Sertraline, got %q", m.Name)
	}
	if m.Rest != " • 50mg" {
		t.Errorf("expected rest %q, got %q", " • 50mg", m.Rest)
	}
	if m.Name+m.Rest != m.Line {
		t.Errorf("name+rest should equal line: %q + %q != %q", m.Name, m.Rest, m.Line)
	}
}

func TestBlocks_DiagnosisLines(t *testing.T) {
	tests := []struct {
		name string
		diag extractor.Diagnosis
		want string
	}{
		{
			name: "all parts",
			diag: extractor.Diagnosis{Label: str("Generalized anxiety disorder"), Code: str("F41.1"), Priority: str("high")},
			want: "Generalized anxiety disorder (F41.1) • high",
		},
		{
			name: "label only",
			diag: extractor.Diagnosis{Label: str("Insomnia")},
			want: "Insomnia",
		},
		{
			name: "label and priority",
			diag: extractor.Diagnosis{Label: str("Insomnia"), Priority: str("low")},
			want: "Insomnia • low",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Blocks(&extractor.Record{Diagnoses: []extractor.Diagnosis{tt.diag}})
			if len(b.Diagnoses) != 1 {
				t.Fatalf("expected 1 diagnosis, got %d", len(b.Diagnoses))
			}
			if b.Diagnoses[0] != tt.want {
				t.Errorf("expected %q, got %q", tt.want, b.Diagnoses[0])
			}
		})
	}
}

func TestBlocks_EmptyDiagnosisDropped(t *testing.T) {
	b := Blocks(&extractor.Record{Diagnoses: []extractor.Diagnosis{{}}})
	if len(b.Diagnoses) != 0 {
		t.Errorf("expected fully-absent diagnosis to contribute nothing, got %v", b.Diagnoses)
	}
}

func TestBlocks_RawJSONRoundTrips(t *testing.T) {
	rec := &extractor.Record{
		Name:            str("Jane"),
		MentalIllnesses: []string{"Anxiety"},
	}
	b := Blocks(rec)

	var back extractor.Record
	if err := json.Unmarshal([]byte(b.RawJSON), &back); err != nil {
		t.Fatalf("raw json should be valid: %v", err)
	}
	if back.Name == nil || *back.Name != "Jane" {
		t.Errorf("expected raw json to carry the record, got %s", b.RawJSON)
	}
	if !strings.Contains(b.RawJSON, "mental_illnesses") {
		t.Errorf("expected wire field names in raw json, got %s", b.RawJSON)
	}
}
