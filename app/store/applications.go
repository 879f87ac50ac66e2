package store

import "github.com/iamkd2000/Hostel-Management/app/models"

// SubmitApplication files an application with a fresh ID, status Pending,
// and today's date, and prepends it so reads stay most-recent-first.
func (s *Store) SubmitApplication(data models.Application) models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := data
	a.ID = s.nextApplicationID
	s.nextApplicationID++
	a.Status = models.ApplicationPending
	a.RejectionReason = nil
	a.Date = today()

	s.applications = append([]*models.Application{&a}, s.applications...)
	return a
}

// UpdateApplicationStatus moves the application to Approved or Rejected.
// Approving a ProfileUpdate application applies its proposed field changes
// to the referenced student in the same critical section as the status
// change. Rejection records the reason; approval clears any prior one.
// Unknown IDs are a no-op.
func (s *Store) UpdateApplicationStatus(id int, status models.ApplicationStatus, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var app *models.Application
	for _, a := range s.applications {
		if a.ID == id {
			app = a
			break
		}
	}
	if app == nil {
		return
	}

	if status == models.ApplicationApproved && app.Type == models.ApplicationProfileUpdate && app.Data != nil {
		if st := s.findStudent(app.StudentID); st != nil {
			app.Data.Apply(st)
		}
	}

	app.Status = status
	if status == models.ApplicationRejected {
		app.RejectionReason = &reason
	} else {
		app.RejectionReason = nil
	}
}
