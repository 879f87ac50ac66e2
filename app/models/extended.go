package models

// BuildingStats summarises occupancy for one hostel building.
type BuildingStats struct {
	Rooms     int `json:"rooms"`
	Capacity  int `json:"capacity"`
	Occupied  int `json:"occupied"`
	Available int `json:"available"`
}

// DashboardStats carries the aggregate figures shown on the admin dashboard.
type DashboardStats struct {
	TotalStudents        int           `json:"total_students"`
	BoysHostel           BuildingStats `json:"boys_hostel"`
	GirlsHostel          BuildingStats `json:"girls_hostel"`
	TotalCapacity        int           `json:"total_capacity"`
	TotalOccupied        int           `json:"total_occupied"`
	TotalAvailable       int           `json:"total_available"`
	PendingComplaints    int           `json:"pending_complaints"`
	PendingApplications  int           `json:"pending_applications"`
	PendingVerifications int           `json:"pending_verifications"`
	TotalCollection      float64       `json:"total_collection"`
	PendingFeeStudents   int           `json:"pending_fee_students"`
	FeeCollectionRate    float64       `json:"fee_collection_rate"`
}
