package store

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/iamkd2000/Hostel-Management/app/models"
)

// standardFacilities is the furnishing of every double-occupancy room.
var standardFacilities = []string{"2 Beds", "2 Tables", "2 Chairs", "2 Almirahs", "1 Fan"}

// SeedRooms creates the GCOEN room grid: Boys Hostel G+6 (92 rooms,
// capacity 184) and Girls Hostel G+3 (49 rooms, capacity 98), double
// occupancy throughout. Room numbers look like B-G01 or G-203: building
// prefix, floor (G for ground), two-digit room index. Every fifth room on
// a floor is AC. Rooms are seeded once at startup and never change after.
func (s *Store) SeedRooms() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seedBuilding("B", models.BuildingBoys, 6, 14, 13, 92)
	s.seedBuilding("G", models.BuildingGirls, 3, 13, 12, 49)
}

// seedBuilding fills one building floor by floor until target rooms exist;
// the caller must hold the lock.
func (s *Store) seedBuilding(prefix string, building models.Building, topFloor, groundRooms, upperRooms, target int) {
	count := 0
	for f := 0; f <= topFloor && count < target; f++ {
		floorPrefix := "G"
		if f > 0 {
			floorPrefix = fmt.Sprintf("%d", f)
		}
		perFloor := upperRooms
		if f == 0 {
			perFloor = groundRooms
		}
		for r := 1; r <= perFloor && count < target; r++ {
			roomType := models.RoomTypeNonAC
			if r%5 == 0 {
				roomType = models.RoomTypeAC
			}
			s.rooms = append(s.rooms, &models.Room{
				RoomNumber: fmt.Sprintf("%s-%s%02d", prefix, floorPrefix, r),
				Building:   building,
				Capacity:   2,
				Occupied:   0,
				Type:       roomType,
				Facilities: standardFacilities,
			})
			count++
		}
	}
}

var (
	seedBranches    = []string{"CSE", "ECE", "ME", "CE", "EE"}
	seedBloodGroups = []string{"A+", "B+", "O+", "AB+", "O-", "B-"}
	seedCastes      = []string{"General", "OBC", "SC", "ST", "NT", "VJ", "SBC"}
	seedYears       = []string{"1st", "2nd", "3rd", "4th"}
	seedLocalities  = []string{"Civil Lines", "Sadar", "Manish Nagar", "Sitabuldi", "Dharampeth"}

	seedMaleNames = []string{"Aarav", "Vivaan", "Aditya", "Vihaan", "Arjun", "Sai", "Reyansh", "Ayaan",
		"Krishna", "Ishaan", "Shaurya", "Atharva", "Rohan", "Mohan", "Suresh", "Pranav", "Kabir", "Dhruv", "Rudra"}
	seedFemaleNames = []string{"Saanvi", "Anya", "Aadhya", "Pari", "Diya", "Ananya", "Myra", "Riya",
		"Meera", "Ishita", "Kavya", "Aditi", "Priya", "Sneha", "Tanvi", "Shruti", "Pooja", "Neha"}
	seedLastNames = []string{"Sharma", "Verma", "Gupta", "Patil", "Deshmukh", "Singh", "Kumar", "Joshi",
		"Mehta", "Das", "Chopra", "Wagh", "Kale", "Raut", "Thakre", "Bose", "Iyer", "Reddy"}
)

// SeedDemoData loads a demonstration dataset: count generated students
// packed into rooms floor by floor, a month of mess payments in mixed
// states, a spread of complaints, and a couple of applications (including
// a pending ProfileUpdate carrying a contact change). Intended for demo
// deployments; production processes start from the bare room grid.
func (s *Store) SeedDemoData(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var boysRooms, girlsRooms []*models.Room
	for _, r := range s.rooms {
		if r.Building == models.BuildingBoys {
			boysRooms = append(boysRooms, r)
		} else {
			girlsRooms = append(girlsRooms, r)
		}
	}

	bIdx, gIdx := 0, 0
	for i := 1; i <= count; i++ {
		// Roughly 65% male to match the 184/98 capacity split.
		isMale := rand.Float64() > 0.35
		gender := models.GenderMale
		first := seedMaleNames[rand.Intn(len(seedMaleNames))]
		if !isMale {
			gender = models.GenderFemale
			first = seedFemaleNames[rand.Intn(len(seedFemaleNames))]
		}
		last := seedLastNames[rand.Intn(len(seedLastNames))]

		var roomNumber *string
		pool, idx := boysRooms, &bIdx
		if !isMale {
			pool, idx = girlsRooms, &gIdx
		}
		for *idx < len(pool) && pool[*idx].Occupied >= pool[*idx].Capacity {
			*idx++
		}
		if *idx < len(pool) {
			r := pool[*idx]
			roomNumber = &r.RoomNumber
			r.Occupied++
		}

		tempAddress := "Unallocated"
		if roomNumber != nil {
			hostel := "Boys"
			if !isMale {
				hostel = "Girls"
			}
			tempAddress = fmt.Sprintf("Room %s, %s Hostel", *roomNumber, hostel)
		}

		photo := fmt.Sprintf("https://ui-avatars.com/api/?name=%s+%s&background=random&size=128", first, last)
		s.students = append(s.students, &models.Student{
			ID:               s.nextStudentID,
			Name:             first + " " + last,
			Gender:           gender,
			Branch:           seedBranches[rand.Intn(len(seedBranches))],
			Year:             seedYears[rand.Intn(len(seedYears))],
			BloodGroup:       seedBloodGroups[rand.Intn(len(seedBloodGroups))],
			Caste:            seedCastes[rand.Intn(len(seedCastes))],
			Contact:          fmt.Sprintf("9%09d", rand.Intn(1000000000)),
			Email:            fmt.Sprintf("%s.%s%d@gcoen.ac.in", strings.ToLower(first), strings.ToLower(last), i),
			PermanentAddress: fmt.Sprintf("%d, %s, Nagpur", rand.Intn(100)+1, seedLocalities[rand.Intn(len(seedLocalities))]),
			TemporaryAddress: tempAddress,
			ParentName:       "Mr. " + last,
			ParentContact:    fmt.Sprintf("8%09d", rand.Intn(1000000000)),
			RoomNumber:       roomNumber,
			AdmissionDate:    fmt.Sprintf("2024-06-%02d", rand.Intn(28)+1),
			ProfilePhoto:     &photo,
		})
		s.nextStudentID++
	}

	s.seedPayments(count)
	s.seedComplaints(count)
	s.seedApplications()
}

// seedPayments loads March-2024 mess payments: a handful of fixed records
// followed by a random spread; the caller must hold the lock.
func (s *Store) seedPayments(studentCount int) {
	addPayment := func(studentID int, status models.PaymentStatus, method models.PaymentMethod, date, txn string) {
		p := &models.Payment{
			ID:        s.nextPaymentID,
			StudentID: studentID,
			Amount:    2500,
			FeeType:   models.FeeTypeMess,
			Month:     "2024-03",
			Status:    status,
		}
		s.nextPaymentID++
		if status == models.PaymentPaid {
			p.PaymentMethod = method
			p.Date = date
		}
		if txn != "" {
			p.TransactionID = &txn
		}
		s.payments = append(s.payments, p)
	}

	addPayment(1, models.PaymentPaid, models.PaymentOnline, "2024-03-05", "TXN123456")
	addPayment(2, models.PaymentPaid, models.PaymentCash, "2024-03-06", "")
	addPayment(3, models.PaymentPending, "", "", "")
	addPayment(4, models.PaymentPaid, models.PaymentOnline, "2024-03-02", "TXN998877")
	addPayment(5, models.PaymentPending, "", "", "")
	addPayment(6, models.PaymentPaid, models.PaymentOnline, "2024-03-12", "TXN554433")

	seen := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true, 6: true}
	for i := 0; i < 50 && studentCount > 7; i++ {
		id := rand.Intn(studentCount-7) + 7
		if seen[id] {
			continue
		}
		seen[id] = true
		status := models.PaymentPending
		if rand.Float64() > 0.5 {
			status = models.PaymentPaid
		}
		addPayment(id, status, models.PaymentOnline, "2024-03-15", fmt.Sprintf("TXN%06d", s.nextPaymentID*97+rand.Intn(90)))
	}
}

// seedComplaints loads a complaint history in mixed states, most recent
// first; the caller must hold the lock.
func (s *Store) seedComplaints(studentCount int) {
	add := func(studentID int, cat models.ComplaintCategory, sub, desc string, status models.ComplaintStatus, date string) {
		c := &models.Complaint{
			ID:          s.nextComplaintID,
			StudentID:   studentID,
			Category:    cat,
			Subcategory: sub,
			Description: desc,
			Status:      status,
			Date:        date,
		}
		s.nextComplaintID++
		s.complaints = append([]*models.Complaint{c}, s.complaints...)
	}

	add(1, models.ComplaintMaintenance, "Fan", "Ceiling fan making loud noise in Room G01.", models.ComplaintResolved, "2024-02-20")
	add(4, models.ComplaintFood, "Quality/Taste", "Dinner was served cold yesterday.", models.ComplaintPending, "2024-03-10")
	add(6, models.ComplaintDiscipline, "Noise", "Loud music during silence hours (after 9 PM).", models.ComplaintPending, "2024-03-11")
	add(2, models.ComplaintFood, "Hygiene", "Too much oil in dal", models.ComplaintResolved, "2024-03-12")
	add(7, models.ComplaintMaintenance, "Plumbing/Water", "Tap leaking in bathroom", models.ComplaintPending, "2024-03-14")
	add(8, models.ComplaintDiscipline, "Fighting", "Fighting in corridor", models.ComplaintResolved, "2024-03-01")

	categories := []models.ComplaintCategory{
		models.ComplaintMaintenance, models.ComplaintFood, models.ComplaintDiscipline, models.ComplaintOther,
	}
	for i := 0; i < 20 && studentCount > 1; i++ {
		status := models.ComplaintResolved
		if rand.Float64() > 0.7 {
			status = models.ComplaintPending
		}
		add(rand.Intn(studentCount)+1, categories[rand.Intn(len(categories))], "Miscellaneous",
			"General complaint raised from the hostel floor.", status, fmt.Sprintf("2024-03-%02d", rand.Intn(20)+1))
	}
}

// seedApplications loads the sample applications: an approved sick leave
// and a pending ProfileUpdate proposing a contact change; the caller must
// hold the lock.
func (s *Store) seedApplications() {
	proof := "doctor_cert.pdf"
	leave := &models.Application{
		ID:          s.nextApplicationID,
		StudentID:   2,
		Type:        models.ApplicationLeave,
		Title:       "Sick Leave",
		Description: "Going home to Wardha for medical treatment for 3 days.",
		Status:      models.ApplicationApproved,
		ProofURL:    &proof,
		Date:        "2024-02-01",
	}
	s.nextApplicationID++

	contact := "9999900000"
	update := &models.Application{
		ID:          s.nextApplicationID,
		StudentID:   3,
		Type:        models.ApplicationProfileUpdate,
		Title:       "Update Phone Number",
		Description: "Lost my old SIM, updating new number.",
		Data:        &models.StudentPatch{Contact: &contact},
		Status:      models.ApplicationPending,
		Date:        "2024-03-18",
	}
	s.nextApplicationID++

	s.applications = append([]*models.Application{update, leave}, s.applications...)
}
