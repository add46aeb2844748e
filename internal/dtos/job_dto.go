package dtos

type JobCreationRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`

	// Optional fields
	Salary       *int64 `json:"salary"`
	Duration     string `json:"duration"`
	ContractType string `json:"contractType"`
	// requirements/meta arrive pre-stringified by the client (JSON-encoded
	// nested objects); stored verbatim.
	Requirements string `json:"requirements"`
	Meta         string `json:"meta"`
}

type JobUpdateRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Salary       *int64  `json:"salary"`
	Duration     *string `json:"duration"`
	ContractType *string `json:"contractType"`
	Requirements *string `json:"requirements"`
	Meta         *string `json:"meta"`
}

type JobStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=OPEN CLOSED FILLED"`
}
