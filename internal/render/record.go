package render

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/SuryaBeeraka/mental-health-dashboard/internal/extractor"
)

// Placeholders for absent scalar fields.
const (
	placeholderNA   = "N/A"
	placeholderDash = "—"
)

// RecordBlocks is the display form of an extraction record. Every block is
// safe against absent fields: scalars fall back to placeholders, sequences
// stay empty.
type RecordBlocks struct {
	Name            string            `json:"name"`
	Age             string            `json:"age"`
	MentalIllnesses []string          `json:"mental_illnesses"`
	Medications     []MedicationBlock `json:"medications"`
	PastHistory     string            `json:"past_history"`
	Diagnoses       []string          `json:"diagnoses"`

	// RawJSON is the serialized record, always populated. The UI shows it
	// collapsed by default.
	RawJSON string `json:"raw_json"`
}

// MedicationBlock is one formatted medication entry. Name is kept separate
// so the UI can emphasize it; Rest is everything after the name including
// its separators, and Line is the complete formatted entry.
type MedicationBlock struct {
	Name string `json:"name"`
	Rest string `json:"rest"`
	Line string `json:"line"`
}

// Blocks maps a record onto its display blocks. A nil record renders the
// same as a record with every field absent.
func Blocks(rec *extractor.Record) RecordBlocks {
	if rec == nil {
		rec = &extractor.Record{}
	}

	b := RecordBlocks{
		Name:            placeholderNA,
		Age:             placeholderNA,
		MentalIllnesses: []string{},
		Medications:     []MedicationBlock{},
		PastHistory:     placeholderDash,
		Diagnoses:       []string{},
	}

	if rec.Name != nil {
		b.Name = *rec.Name
	}
	if rec.Age != nil {
		b.Age = strconv.Itoa(*rec.Age)
	}
	b.MentalIllnesses = append(b.MentalIllnesses, rec.MentalIllnesses...)
	for _, m := range rec.MedicationsTaken {
		b.Medications = append(b.Medications, medicationBlock(m))
	}
	if rec.PastHistory != nil && strings.TrimSpace(*rec.PastHistory) != "" {
		b.PastHistory = *rec.PastHistory
	}
	for _, d := range rec.Diagnoses {
		if line := diagnosisLine(d); line != "" {
			b.Diagnoses = append(b.Diagnoses, line)
		}
	}

	raw, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		raw = []byte("{}")
	}
	b.RawJSON = string(raw)

	return b
}

// medicationBlock joins the present fields in the fixed order dose, route,
// frequency, duration with bullet separators, then appends the reason after
// an em-dash. Absent fields contribute nothing, including their separators.
func medicationBlock(m extractor.Medication) MedicationBlock {
	var parts []string
	for _, f := range []*string{m.Dose, m.Route, m.Frequency, m.Duration} {
		if f != nil && *f != "" {
			parts = append(parts, *f)
		}
	}
	detail := strings.Join(parts, " • ")

	name := ""
	if m.Name != nil {
		name = *m.Name
	}

	rest := ""
	if detail != "" {
		if name != "" {
			rest = " • "
		}
		rest += detail
	}
	if m.Reason != nil && *m.Reason != "" {
		rest += " — " + *m.Reason
	}

	return MedicationBlock{Name: name, Rest: rest, Line: name + rest}
}

// diagnosisLine renders "Label (code) • priority" with present-only parts.
func diagnosisLine(d extractor.Diagnosis) string {
	var sb strings.Builder
	if d.Label != nil {
		sb.WriteString(*d.Label)
	}
	if d.Code != nil && *d.Code != "" {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("(" + *d.Code + ")")
	}
	if d.Priority != nil && *d.Priority != "" {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("• " + *d.Priority)
	}
	return sb.String()
}
