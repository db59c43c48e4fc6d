package justification

// CreateRequest is the employee-facing payload for requesting a
// justification. TargetDate uses the 2006-01-02 wire format; Type is
// optional and defaults to TARDANZA.
type CreateRequest struct {
	TargetDate string `json:"target_date"`
	Type       string `json:"type"`
	Reason     string `json:"reason"`
}

type RequestResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	TargetDate  string `json:"target_date"`
	Type        string `json:"type"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
}

// AdminResponse adds the owner's full name for the review listing.
type AdminResponse struct {
	RequestResponse
	FullName string `json:"full_name"`
}

// ToResponse maps the entity to its response shape; the submission
// timestamp is rendered day-month-year hour:minute.
func (r *Request) ToResponse() RequestResponse {
	username := "N/A"
	if r.Username != nil {
		username = *r.Username
	}
	return RequestResponse{
		ID:          r.ID,
		Username:    username,
		TargetDate:  r.TargetDate.Format("2006-01-02"),
		Type:        string(r.Type),
		Reason:      r.Reason,
		Status:      string(r.Status),
		SubmittedAt: r.SubmittedAt.Format("02-01-2006 15:04"),
	}
}

// ToAdminResponse maps the entity for the administrator review listing.
func (r *Request) ToAdminResponse() AdminResponse {
	fullName := "N/A"
	if r.FullName != nil {
		fullName = *r.FullName
	}
	return AdminResponse{
		RequestResponse: r.ToResponse(),
		FullName:        fullName,
	}
}
