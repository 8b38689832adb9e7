package domain

type Seat struct {
	ID       int64  `json:"id"`
	ShowID   int64  `json:"show_id"`
	Number   string `json:"number"`
	Occupied bool   `json:"occupied"`
	Version  int    `json:"version"`
}

func (s *Seat) IsAvailable() bool {
	return !s.Occupied
}

// CountAvailable returns how many of seats are free.
func CountAvailable(seats []Seat) int {
	n := 0
	for i := range seats {
		if seats[i].IsAvailable() {
			n++
		}
	}
	return n
}
