package dtos

type HeadhuntCreationRequest struct {
	// Job details for the private posting backing the request.
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Salary       *int64 `json:"salary"`
	Duration     string `json:"duration"`
	ContractType string `json:"contractType" binding:"required"`
	Requirements string `json:"requirements"`
	Meta         string `json:"meta"`

	// Request details.
	CompanyName            string `json:"companyName" binding:"required"`
	ContactEmail           string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone           string `json:"contactPhone"`
	OtherContacts          string `json:"otherContacts"`
	Urgency                string `json:"urgency" binding:"omitempty,oneof=LOW MEDIUM HIGH ASAP"`
	PreferredContactMethod string `json:"preferredContactMethod" binding:"omitempty,oneof=EMAIL PHONE OTHER"`
	Notes                  string `json:"notes"`
}

type HeadhuntAssignRequest struct {
	AssignedTo string `json:"assignedTo" binding:"required"`
}

type HeadhuntFulfillRequest struct {
	ApplicationID string `json:"applicationId"`
	CandidateName string `json:"candidateName"`
	Notes         string `json:"notes"`
}
