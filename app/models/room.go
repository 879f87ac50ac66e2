package models

// Room represents one hostel room. Rooms are seeded once at startup and the
// set never changes at runtime; only the occupied counter moves.
type Room struct {
	RoomNumber string   `json:"room_number"`
	Building   Building `json:"building"`
	Capacity   int      `json:"capacity"`
	Occupied   int      `json:"occupied"`
	Type       RoomType `json:"type"`
	Facilities []string `json:"facilities"`
}

// Available reports whether the room still has free beds.
func (r *Room) Available() bool {
	return r.Occupied < r.Capacity
}
