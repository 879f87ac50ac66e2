package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamkd2000/Hostel-Management/app/models"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

func TestComplaintLifecycle(t *testing.T) {
	s := store.New()

	c := s.AddComplaint(models.Complaint{
		StudentID:   1,
		Category:    models.ComplaintFood,
		Subcategory: "Hygiene",
		Description: "Too much oil in dal",
	})

	assert.Equal(t, models.ComplaintPending, c.Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), c.Date)

	s.ResolveComplaint(c.ID)

	complaints := s.Complaints()
	require.Len(t, complaints, 1)
	assert.Equal(t, models.ComplaintResolved, complaints[0].Status)

	// Resolved is terminal; resolving again changes nothing.
	s.ResolveComplaint(c.ID)
	assert.Equal(t, models.ComplaintResolved, s.Complaints()[0].Status)
}

func TestResolveComplaintUnknownIDIsNoop(t *testing.T) {
	s := store.New()
	s.AddComplaint(models.Complaint{StudentID: 1, Category: models.ComplaintOther, Description: "Wi-Fi down"})

	s.ResolveComplaint(99)

	assert.Equal(t, models.ComplaintPending, s.Complaints()[0].Status)
}

func TestComplaintsAreMostRecentFirst(t *testing.T) {
	s := store.New()
	first := s.AddComplaint(models.Complaint{StudentID: 1, Category: models.ComplaintMaintenance, Subcategory: "Fan", Description: "Fan rattles"})
	second := s.AddComplaint(models.Complaint{StudentID: 2, Category: models.ComplaintFood, Subcategory: "Timings", Description: "Late dinner"})

	complaints := s.Complaints()
	require.Len(t, complaints, 2)
	assert.Equal(t, second.ID, complaints[0].ID)
	assert.Equal(t, first.ID, complaints[1].ID)
}
