package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iamkd2000/Hostel-Management/app/models"
)

// HostelPolicyContext is the official GCOEN hostel policy the assistant
// answers from.
const HostelPolicyContext = `
  Institution: Government College of Engineering, Nagpur (GCOEN).
  Location: New Khapri, Nagpur.

  Hostel Structure:
  - Boys' Hostel: G+6 Floors, Capacity 184.
  - Girls' Hostel: G+3 Floors, Capacity 98.
  - Occupancy: Double occupancy (2 students per room).

  Rules & Regulations:
  - Silence Hours: 9:00 PM to 6:00 AM daily.
  - Curfew (In-Time):
    - Boys: 10:30 PM (Biometric at 10:00 PM).
    - Girls: 7:30 PM (Biometric at 7:30 PM).
  - Visitors: 8:00 AM - 8:00 PM (Designated areas only, no room entry).
  - Prohibited: Electrical appliances (heaters, irons), pets, ragging (Zero Tolerance).

  Governance (HAC):
  - Chairperson: Principal
  - Members: Rector, Wardens, Student Council (21 members).
`

// AssistantFallbackReply is shown in the chat whenever the
// text-generation call fails; the failure never escapes the widget.
const AssistantFallbackReply = "Sorry, I'm having trouble connecting to the AI service right now. Please check your API Key."

// BuildAssistantPrompt assembles the context-rich prompt for the policy
// assistant: the official policy, a snapshot of the live dataset, the
// answering instructions, and the user's question.
func BuildAssistantPrompt(students []models.Student, rooms []models.Room, complaints []models.Complaint, question string) string {
	type studentSummary struct {
		ID   int     `json:"id"`
		Name string  `json:"name"`
		Room *string `json:"room"`
	}

	summaries := make([]studentSummary, 0, len(students))
	for _, st := range students {
		summaries = append(summaries, studentSummary{ID: st.ID, Name: st.Name, Room: st.RoomNumber})
	}
	studentsJSON, _ := json.Marshal(summaries)

	full := 0
	for _, r := range rooms {
		if r.Occupied >= r.Capacity {
			full++
		}
	}
	complaintsJSON, _ := json.Marshal(complaints)

	var b strings.Builder
	b.WriteString("You are the AI Assistant for Government College of Engineering, Nagpur (GCOEN) Hostels.\n\n")
	b.WriteString("OFFICIAL HOSTEL POLICY & RULES:\n")
	b.WriteString(HostelPolicyContext)
	b.WriteString("\n\nREAL-TIME DATABASE:\n")
	fmt.Fprintf(&b, "Students: %s\n", studentsJSON)
	fmt.Fprintf(&b, "Rooms Summary: Total %d, Occupied %d.\n", len(rooms), full)
	fmt.Fprintf(&b, "Complaints: %s\n", complaintsJSON)
	b.WriteString("\nINSTRUCTIONS:\n")
	b.WriteString("- Answer based STRICTLY on the GCOEN policy and database.\n")
	b.WriteString("- If asked about curfew, quote the 10:30 PM (Boys) / 7:30 PM (Girls) rules.\n")
	b.WriteString("- Be polite and professional.\n")
	b.WriteString("\nUser Question: ")
	b.WriteString(question)

	return b.String()
}
