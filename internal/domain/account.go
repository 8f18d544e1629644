package domain

// Account is the persisted record for one user. The username doubles as the
// map key in the store file, so it is not serialized into the value.
type Account struct {
	Username string    `json:"-"`
	Password string    `json:"password"`
	Bookings []Booking `json:"bookings"`
}

// Session tracks the single logged-in user. Bookings is a working copy of the
// account's list; every successful mutation must be written back into the
// store so the two views never diverge.
type Session struct {
	Username string
	Bookings []Booking
}
