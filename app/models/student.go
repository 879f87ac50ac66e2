package models

// Student represents a hostel resident. IDs are assigned by the store and
// never change after registration.
type Student struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Gender           Gender  `json:"gender"`
	Branch           string  `json:"branch"`
	Year             string  `json:"year"`
	BloodGroup       string  `json:"blood_group"`
	Caste            string  `json:"caste"`
	Contact          string  `json:"contact"`
	Email            string  `json:"email"`
	PermanentAddress string  `json:"permanent_address"`
	TemporaryAddress string  `json:"temporary_address"`
	ParentName       string  `json:"parent_name"`
	ParentContact    string  `json:"parent_contact"`
	RoomNumber       *string `json:"room_number"` // nil while unallocated
	AdmissionDate    string  `json:"admission_date"`
	ProfilePhoto     *string `json:"profile_photo,omitempty"` // URL or data URL
}

// StudentPatch is a set of proposed changes to a student's mutable personal
// details. Nil fields are left untouched when the patch is applied. It is the
// payload of a ProfileUpdate application.
type StudentPatch struct {
	Name             *string `json:"name,omitempty"`
	Branch           *string `json:"branch,omitempty"`
	Year             *string `json:"year,omitempty"`
	BloodGroup       *string `json:"blood_group,omitempty"`
	Caste            *string `json:"caste,omitempty"`
	Contact          *string `json:"contact,omitempty"`
	Email            *string `json:"email,omitempty"`
	PermanentAddress *string `json:"permanent_address,omitempty"`
	TemporaryAddress *string `json:"temporary_address,omitempty"`
	ParentName       *string `json:"parent_name,omitempty"`
	ParentContact    *string `json:"parent_contact,omitempty"`
	ProfilePhoto     *string `json:"profile_photo,omitempty"`
}

// Apply merges the non-nil patch fields into the student record.
func (p *StudentPatch) Apply(s *Student) {
	if p == nil {
		return
	}
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Branch != nil {
		s.Branch = *p.Branch
	}
	if p.Year != nil {
		s.Year = *p.Year
	}
	if p.BloodGroup != nil {
		s.BloodGroup = *p.BloodGroup
	}
	if p.Caste != nil {
		s.Caste = *p.Caste
	}
	if p.Contact != nil {
		s.Contact = *p.Contact
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.PermanentAddress != nil {
		s.PermanentAddress = *p.PermanentAddress
	}
	if p.TemporaryAddress != nil {
		s.TemporaryAddress = *p.TemporaryAddress
	}
	if p.ParentName != nil {
		s.ParentName = *p.ParentName
	}
	if p.ParentContact != nil {
		s.ParentContact = *p.ParentContact
	}
	if p.ProfilePhoto != nil {
		s.ProfilePhoto = p.ProfilePhoto
	}
}
