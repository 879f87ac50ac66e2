package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamkd2000/Hostel-Management/app/models"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

func TestDashboardStatsAggregation(t *testing.T) {
	s := store.New()
	s.SeedRooms()

	boy := s.AddStudent(models.Student{Name: "Aarav Sharma", Gender: models.GenderMale})
	girl := s.AddStudent(models.Student{Name: "Diya Reddy", Gender: models.GenderFemale})
	s.AllocateRoom(boy.ID, "B-G01")
	s.AllocateRoom(girl.ID, "G-G01")

	_, err := s.RecordPayment(models.Payment{
		StudentID: boy.ID, Amount: 2500, FeeType: models.FeeTypeMess, Month: "2024-03",
		Status: models.PaymentPaid,
	})
	require.NoError(t, err)

	txn := "TXN777"
	_, err = s.RecordPayment(models.Payment{
		StudentID: girl.ID, Amount: 2500, FeeType: models.FeeTypeMess, Month: "2024-03",
		Status: models.PaymentPending, TransactionID: &txn,
	})
	require.NoError(t, err)

	s.AddComplaint(models.Complaint{StudentID: boy.ID, Category: models.ComplaintMaintenance, Subcategory: "Fan", Description: "Noisy fan"})
	s.SubmitApplication(models.Application{StudentID: girl.ID, Type: models.ApplicationLeave, Title: "Weekend leave"})

	stats := s.DashboardStats()

	assert.Equal(t, 2, stats.TotalStudents)
	assert.Equal(t, 184, stats.BoysHostel.Capacity)
	assert.Equal(t, 98, stats.GirlsHostel.Capacity)
	assert.Equal(t, 1, stats.BoysHostel.Occupied)
	assert.Equal(t, 1, stats.GirlsHostel.Occupied)
	assert.Equal(t, 282, stats.TotalCapacity)
	assert.Equal(t, 280, stats.TotalAvailable)

	assert.Equal(t, 1, stats.PendingComplaints)
	assert.Equal(t, 1, stats.PendingApplications)
	assert.Equal(t, 1, stats.PendingVerifications, "pending claim with a transaction ID awaits verification")

	assert.Equal(t, 2500.0, stats.TotalCollection)
	assert.Equal(t, 1, stats.PendingFeeStudents)
	assert.Equal(t, 50.0, stats.FeeCollectionRate)
}
