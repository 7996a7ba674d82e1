package domain

// ActionBlock is one authored potential-action block. ActionType picks the
// projection shape: search actions keep Target as a literal template string,
// every other type wraps Target in an EntryPoint. ExtraJSON, when set, must
// hold a JSON object whose top-level keys are overlaid onto the projected
// action, last write wins.
type ActionBlock struct {
	ActionType string `json:"action_type"`
	Target     string `json:"target"`
	Query      string `json:"query,omitempty"`
	Language   string `json:"language,omitempty"`
	ResultType string `json:"result_type,omitempty"`
	ResultName string `json:"result_name,omitempty"`
	ExtraJSON  string `json:"extra_json,omitempty"`
}
