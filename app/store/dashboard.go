package store

import (
	"math"

	"github.com/iamkd2000/Hostel-Management/app/models"
)

// DashboardStats aggregates the figures the admin dashboard shows: hostel
// occupancy per building, pending workloads, and fee collection totals.
func (s *Store) DashboardStats() models.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats models.DashboardStats
	stats.TotalStudents = len(s.students)

	for _, r := range s.rooms {
		b := &stats.BoysHostel
		if r.Building == models.BuildingGirls {
			b = &stats.GirlsHostel
		}
		b.Rooms++
		b.Capacity += r.Capacity
		b.Occupied += r.Occupied
	}
	stats.BoysHostel.Available = stats.BoysHostel.Capacity - stats.BoysHostel.Occupied
	stats.GirlsHostel.Available = stats.GirlsHostel.Capacity - stats.GirlsHostel.Occupied
	stats.TotalCapacity = stats.BoysHostel.Capacity + stats.GirlsHostel.Capacity
	stats.TotalOccupied = stats.BoysHostel.Occupied + stats.GirlsHostel.Occupied
	stats.TotalAvailable = stats.TotalCapacity - stats.TotalOccupied

	for _, c := range s.complaints {
		if c.Status == models.ComplaintPending {
			stats.PendingComplaints++
		}
	}
	for _, a := range s.applications {
		if a.Status == models.ApplicationPending {
			stats.PendingApplications++
		}
	}

	paid := 0
	for _, p := range s.payments {
		switch p.Status {
		case models.PaymentPaid:
			paid++
			stats.TotalCollection += p.Amount
		case models.PaymentPending:
			if p.TransactionID != nil || p.ProofURL != nil {
				stats.PendingVerifications++
			}
		}
	}

	if n := stats.TotalStudents - paid; n > 0 {
		stats.PendingFeeStudents = n
	}
	if stats.TotalStudents > 0 {
		rate := float64(paid) / float64(stats.TotalStudents) * 100
		stats.FeeCollectionRate = math.Round(rate)
	}

	return stats
}
