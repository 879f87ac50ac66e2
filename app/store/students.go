package store

import "github.com/iamkd2000/Hostel-Management/app/models"

// AddStudent registers a student with a fresh ID and returns the stored
// record. If the input already names a room, the allocation side effect is
// applied immediately. Capacity and building-gender fit are checked by the
// caller before registration, not here.
func (s *Store) AddStudent(data models.Student) models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := data
	st.ID = s.nextStudentID
	s.nextStudentID++

	roomNumber := st.RoomNumber
	st.RoomNumber = nil
	s.students = append(s.students, &st)

	if roomNumber != nil {
		s.allocate(st.ID, *roomNumber)
	}
	return st
}

// DeleteStudent removes the student from the collection, releasing any held
// room first. Unknown IDs are a no-op. Payments, complaints, and
// applications referencing the student are kept for historical reporting.
func (s *Store) DeleteStudent(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.findStudent(id)
	if st == nil {
		return
	}

	if st.RoomNumber != nil {
		s.releaseRoom(*st.RoomNumber)
	}

	for i, cur := range s.students {
		if cur.ID == id {
			s.students = append(s.students[:i], s.students[i+1:]...)
			break
		}
	}
}

// AllocateRoom binds the student to the room and bumps its occupied
// counter. A room the student previously held is released first, so moving
// a student never inflates occupancy. Unknown student IDs are a no-op; the
// store does not reject a full room or a cross-building move, that check
// belongs to the caller.
func (s *Store) AllocateRoom(studentID int, roomNumber string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.allocate(studentID, roomNumber)
}

// allocate is the unexported allocation step shared with AddStudent;
// the caller must hold the lock.
func (s *Store) allocate(studentID int, roomNumber string) {
	st := s.findStudent(studentID)
	if st == nil {
		return
	}

	if st.RoomNumber != nil {
		s.releaseRoom(*st.RoomNumber)
	}

	st.RoomNumber = &roomNumber
	if r := s.findRoom(roomNumber); r != nil {
		r.Occupied++
	}
}

// releaseRoom decrements the room's occupied counter, floored at zero;
// the caller must hold the lock.
func (s *Store) releaseRoom(roomNumber string) {
	r := s.findRoom(roomNumber)
	if r == nil {
		return
	}
	if r.Occupied > 0 {
		r.Occupied--
	}
}
