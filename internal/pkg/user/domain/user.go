package user

import (
	"strings"
	"time"
)

// User is the account record. Location fields are all optional and
// independently settable; Rating is the running reputation score shown in
// match results.
type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password"`
	Bio          string    `db:"bio"`
	Rating       float64   `db:"rating"`
	Latitude     *float64  `db:"latitude"`
	Longitude    *float64  `db:"longitude"`
	City         *string   `db:"city"`
	Country      *string   `db:"country"`
	CreatedAt    time.Time `db:"created_at"`
}

// HasCoordinates reports whether both latitude and longitude are set.
func (u *User) HasCoordinates() bool {
	return u != nil && u.Latitude != nil && u.Longitude != nil
}

// ProfileUpdate carries the independently settable profile fields. Nil means
// "leave unchanged".
type ProfileUpdate struct {
	Bio       *string
	Latitude  *float64
	Longitude *float64
	City      *string
	Country   *string
}

// Empty reports whether the update would change nothing.
func (p ProfileUpdate) Empty() bool {
	return p.Bio == nil && p.Latitude == nil && p.Longitude == nil && p.City == nil && p.Country == nil
}

// NormalizeIdentifier trims the username-or-email login identifier.
func NormalizeIdentifier(s string) string {
	return strings.TrimSpace(s)
}
