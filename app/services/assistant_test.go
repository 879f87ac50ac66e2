package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iamkd2000/Hostel-Management/app/models"
	"github.com/iamkd2000/Hostel-Management/app/services"
)

func TestBuildAssistantPrompt(t *testing.T) {
	room := "B-G01"
	students := []models.Student{
		{ID: 1, Name: "Rahul Sharma", RoomNumber: &room},
		{ID: 2, Name: "Priya Patel"},
	}
	rooms := []models.Room{
		{RoomNumber: "B-G01", Capacity: 2, Occupied: 2},
		{RoomNumber: "B-G02", Capacity: 2, Occupied: 1},
		{RoomNumber: "B-G03", Capacity: 2, Occupied: 0},
	}
	complaints := []models.Complaint{
		{ID: 1, StudentID: 1, Category: models.ComplaintMaintenance, Subcategory: "Fan", Description: "Fan broken", Status: models.ComplaintPending, Date: "2026-08-30"},
	}

	prompt := services.BuildAssistantPrompt(students, rooms, complaints, "What is the curfew for boys?")

	assert.Contains(t, prompt, "Government College of Engineering, Nagpur")
	assert.Contains(t, prompt, "Boys: 10:30 PM")
	assert.Contains(t, prompt, `{"id":1,"name":"Rahul Sharma","room":"B-G01"}`)
	assert.Contains(t, prompt, `{"id":2,"name":"Priya Patel","room":null}`)
	// Only fully occupied rooms count toward the summary.
	assert.Contains(t, prompt, "Rooms Summary: Total 3, Occupied 1.")
	assert.Contains(t, prompt, `"Fan broken"`)
	assert.Contains(t, prompt, "User Question: What is the curfew for boys?")
}

func TestBuildAssistantPromptEmptyStore(t *testing.T) {
	prompt := services.BuildAssistantPrompt(nil, nil, nil, "Hello")

	assert.Contains(t, prompt, "Rooms Summary: Total 0, Occupied 0.")
	assert.Contains(t, prompt, "User Question: Hello")
}
