package model

// PromptKind selects the text generation template
type PromptKind string

const (
	PromptCarDescription PromptKind = "car_description"
	PromptLeadEmail      PromptKind = "lead_email"
)

// PromptArgs carries the structured values interpolated into a prompt.
// Only the fields relevant to the kind are read.
type PromptArgs struct {
	Make     string `json:"make"`
	Model    string `json:"model"`
	Year     int    `json:"year"`
	Features string `json:"features"`

	LeadName   string `json:"lead_name"`
	CarDetails string `json:"car_details"`
	Status     string `json:"status"`
}

// GenerationDraft is the latest generated text applied for a subject
type GenerationDraft struct {
	Key      string `json:"key"`
	Sequence uint64 `json:"sequence"`
	Text     string `json:"text"`
	Pending  bool   `json:"pending"`
}
