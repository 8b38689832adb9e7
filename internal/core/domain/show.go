package domain

import "time"

// Show is a screening of a movie on a screen at a given time.
type Show struct {
	ID       int64
	MovieID  int64
	ScreenID int64
	StartsAt time.Time
}

type User struct {
	ID    int64
	Name  string
	Email string
}
