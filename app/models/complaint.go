package models

// Complaint represents a student grievance. Complaints are created Pending,
// move to Resolved exactly once, and are never reopened or deleted.
type Complaint struct {
	ID          int               `json:"id"`
	StudentID   int               `json:"student_id"`
	Category    ComplaintCategory `json:"category"`
	Subcategory string            `json:"subcategory"`
	Description string            `json:"description"`
	Status      ComplaintStatus   `json:"status"`
	Date        string            `json:"date"` // creation date, immutable
}
