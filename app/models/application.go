package models

// Application represents a student request that an admin approves or
// rejects: leave, a bonafide certificate, a profile-detail change, or a
// free-form request. The status transitions once and is never reopened.
type Application struct {
	ID              int               `json:"id"`
	StudentID       int               `json:"student_id"`
	Type            ApplicationType   `json:"type"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Data            *StudentPatch     `json:"data,omitempty"` // ProfileUpdate proposals only
	Status          ApplicationStatus `json:"status"`
	RejectionReason *string           `json:"rejection_reason,omitempty"`
	ProofURL        *string           `json:"proof_url,omitempty"` // leave/medical attachment
	Date            string            `json:"date"`
}
