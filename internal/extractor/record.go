package extractor

// Record is the structured result returned by the remote note-extraction
// service. Every field is optional: the extractor may omit any of them, and
// pointer fields keep "absent" distinct from zero values (an age of 0 is a
// present value, not a missing one).
type Record struct {
	Name             *string      `json:"name"`
	Age              *int         `json:"age"`
	MentalIllnesses  []string     `json:"mental_illnesses"`
	MedicationsTaken []Medication `json:"medications_taken"`
	PastHistory      *string      `json:"past_history"`
	Diagnoses        []Diagnosis  `json:"diagnoses"`
}

// Medication is a single entry from the extracted medication list.
type Medication struct {
	Name      *string `json:"name"`
	Dose      *string `json:"dose"`
	Route     *string `json:"route"`
	Frequency *string `json:"frequency"`
	Duration  *string `json:"duration"`
	Reason    *string `json:"reason"`
}

// Diagnosis is a single extracted diagnosis with an optional ICD/DSM code
// and an optional priority (high/medium/low).
type Diagnosis struct {
	Label    *string `json:"label"`
	Code     *string `json:"code"`
	Priority *string `json:"priority"`
}
