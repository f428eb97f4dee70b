package dto

// CreateRecordResponse carries the identifier assigned to a newly
// persisted document.
type CreateRecordResponse struct {
	ID string `json:"id"`
}

type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
