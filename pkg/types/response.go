package types

// ErrorResponse is the wire shape for every non-2xx body. Fields carries
// per-field validation messages and NeedsSetup flags pharmacy users who have
// not finished onboarding.
type ErrorResponse struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	NeedsSetup bool              `json:"needsSetup,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
}
