package store

import "github.com/iamkd2000/Hostel-Management/app/models"

// AddComplaint files a complaint with a fresh ID, status Pending, and
// today's date, and prepends it so reads stay most-recent-first.
func (s *Store) AddComplaint(data models.Complaint) models.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := data
	c.ID = s.nextComplaintID
	s.nextComplaintID++
	c.Status = models.ComplaintPending
	c.Date = today()

	s.complaints = append([]*models.Complaint{&c}, s.complaints...)
	return c
}

// ResolveComplaint marks the complaint Resolved. The transition is
// irreversible; unknown IDs are a no-op.
func (s *Store) ResolveComplaint(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.complaints {
		if c.ID == id {
			c.Status = models.ComplaintResolved
			return
		}
	}
}
