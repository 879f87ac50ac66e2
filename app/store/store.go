package store

import (
	"errors"
	"sync"
	"time"

	"github.com/iamkd2000/Hostel-Management/app/models"
)

// ErrDuplicateTransaction is returned when a submitted transaction ID is
// already attached to a different payment record. It is the only error the
// store surfaces; every other operation on an unknown ID is a silent no-op.
var ErrDuplicateTransaction = errors.New("transaction ID already used by another payment")

// Store is the single source of truth for the five hostel collections. All
// mutations funnel through it so the cross-entity invariants (room occupancy
// matching assignments, one payment per billing tuple, unique transaction
// IDs) cannot be bypassed.
//
// Students and rooms are kept in insertion order; complaints and
// applications are kept most-recent-first. Each exported operation is one
// critical section, so consumers observe every mutation atomically.
type Store struct {
	mu sync.RWMutex

	students     []*models.Student
	rooms        []*models.Room
	payments     []*models.Payment
	complaints   []*models.Complaint
	applications []*models.Application

	nextStudentID     int
	nextPaymentID     int
	nextComplaintID   int
	nextApplicationID int
}

// New returns an empty store. Rooms are seeded separately so tests can
// instantiate isolated stores with whatever layout they need.
func New() *Store {
	return &Store{
		nextStudentID:     1,
		nextPaymentID:     1,
		nextComplaintID:   1,
		nextApplicationID: 1,
	}
}

// today is the creation-date stamp used for complaints and applications.
func today() string {
	return time.Now().Format("2006-01-02")
}

// Students returns the student collection in insertion order.
func (s *Store) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Student, 0, len(s.students))
	for _, st := range s.students {
		out = append(out, *st)
	}
	return out
}

// StudentByID returns a copy of the student with the given ID.
func (s *Store) StudentByID(id int) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if st := s.findStudent(id); st != nil {
		return *st, true
	}
	return models.Student{}, false
}

// Rooms returns the room collection in insertion order.
func (s *Store) Rooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, *r)
	}
	return out
}

// RoomByNumber returns a copy of the room with the given number.
func (s *Store) RoomByNumber(roomNumber string) (models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r := s.findRoom(roomNumber); r != nil {
		return *r, true
	}
	return models.Room{}, false
}

// Payments returns the payment collection in insertion order.
func (s *Store) Payments() []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		out = append(out, *p)
	}
	return out
}

// PaymentByID returns a copy of the payment with the given ID.
func (s *Store) PaymentByID(id int) (models.Payment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p := s.findPayment(id); p != nil {
		return *p, true
	}
	return models.Payment{}, false
}

// PaymentsForStudent returns the student's payments in insertion order.
func (s *Store) PaymentsForStudent(studentID int) []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Payment
	for _, p := range s.payments {
		if p.StudentID == studentID {
			out = append(out, *p)
		}
	}
	return out
}

// Complaints returns the complaint collection, most recent first.
func (s *Store) Complaints() []models.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Complaint, 0, len(s.complaints))
	for _, c := range s.complaints {
		out = append(out, *c)
	}
	return out
}

// ComplaintsForStudent returns the student's complaints, most recent first.
func (s *Store) ComplaintsForStudent(studentID int) []models.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Complaint
	for _, c := range s.complaints {
		if c.StudentID == studentID {
			out = append(out, *c)
		}
	}
	return out
}

// Applications returns the application collection, most recent first.
func (s *Store) Applications() []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Application, 0, len(s.applications))
	for _, a := range s.applications {
		out = append(out, *a)
	}
	return out
}

// ApplicationsForStudent returns the student's applications, most recent first.
func (s *Store) ApplicationsForStudent(studentID int) []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Application
	for _, a := range s.applications {
		if a.StudentID == studentID {
			out = append(out, *a)
		}
	}
	return out
}

// lookup helpers; callers must hold the lock.

func (s *Store) findStudent(id int) *models.Student {
	for _, st := range s.students {
		if st.ID == id {
			return st
		}
	}
	return nil
}

func (s *Store) findRoom(roomNumber string) *models.Room {
	for _, r := range s.rooms {
		if r.RoomNumber == roomNumber {
			return r
		}
	}
	return nil
}

func (s *Store) findPayment(id int) *models.Payment {
	for _, p := range s.payments {
		if p.ID == id {
			return p
		}
	}
	return nil
}
