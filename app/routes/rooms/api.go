package rooms

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iamkd2000/Hostel-Management/app/models"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

// GetRoomsAPI returns the room grid with optional building and availability
// filters.
func GetRoomsAPI(c *fiber.Ctx, s *store.Store) error {
	building := c.Query("building")
	availableOnly := c.Query("available") == "true"

	var filtered []models.Room
	for _, r := range s.Rooms() {
		if building != "" && string(r.Building) != building {
			continue
		}
		if availableOnly && !r.Available() {
			continue
		}
		filtered = append(filtered, r)
	}

	return c.JSON(fiber.Map{
		"rooms": filtered,
		"count": len(filtered),
	})
}

func GetRoomByNumberAPI(c *fiber.Ctx, s *store.Store) error {
	room, ok := s.RoomByNumber(c.Params("room_number"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Room not found"})
	}
	return c.JSON(fiber.Map{"room": room})
}

// GetRoomsStatsAPI returns per-building occupancy totals for the rooms page.
func GetRoomsStatsAPI(c *fiber.Ctx, s *store.Store) error {
	var boys, girls models.BuildingStats
	for _, r := range s.Rooms() {
		b := &boys
		if r.Building == models.BuildingGirls {
			b = &girls
		}
		b.Rooms++
		b.Capacity += r.Capacity
		b.Occupied += r.Occupied
	}
	boys.Available = boys.Capacity - boys.Occupied
	girls.Available = girls.Capacity - girls.Occupied

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"boys_hostel":  boys,
			"girls_hostel": girls,
		},
	})
}
