package models

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type Building string

const (
	BuildingBoys  Building = "Boys Hostel"
	BuildingGirls Building = "Girls Hostel"
)

// BuildingForGender returns the hostel building a student of the given
// gender belongs to.
func BuildingForGender(g Gender) Building {
	if g == GenderFemale {
		return BuildingGirls
	}
	return BuildingBoys
}

type RoomType string

const (
	RoomTypeAC    RoomType = "AC"
	RoomTypeNonAC RoomType = "Non-AC"
)

type FeeType string

const (
	FeeTypeMess   FeeType = "Mess"   // billed monthly, month key YYYY-MM
	FeeTypeHostel FeeType = "Hostel" // billed annually, month key YYYY
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRejected PaymentStatus = "Rejected"
)

type PaymentMethod string

const (
	PaymentOnline PaymentMethod = "Online"
	PaymentCash   PaymentMethod = "Cash"
)

type ComplaintCategory string

const (
	ComplaintMaintenance ComplaintCategory = "Maintenance"
	ComplaintFood        ComplaintCategory = "Food"
	ComplaintDiscipline  ComplaintCategory = "Discipline"
	ComplaintOther       ComplaintCategory = "Other"
)

type ComplaintStatus string

const (
	ComplaintPending  ComplaintStatus = "Pending"
	ComplaintResolved ComplaintStatus = "Resolved"
)

type ApplicationType string

const (
	ApplicationLeave         ApplicationType = "Leave"
	ApplicationBonafide      ApplicationType = "Bonafide"
	ApplicationOther         ApplicationType = "Other"
	ApplicationProfileUpdate ApplicationType = "ProfileUpdate"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationApproved ApplicationStatus = "Approved"
	ApplicationRejected ApplicationStatus = "Rejected"
)
