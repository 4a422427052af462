package match

import "fmt"

// Session modality suggested from geographic distance.
const (
	ModeOnline   = "online"
	ModeInPerson = "in-person"
)

// Candidate is one qualifying counterpart for a requester. Teaches is a skill
// the candidate teaches that the requester wants to learn; Learns is a skill
// the candidate wants to learn that the requester teaches. Either may be empty
// when that direction has no overlap, never both. DistanceKm is set only when
// both parties have coordinates.
type Candidate struct {
	UserID        int64   `json:"id"`
	Username      string  `json:"username"`
	Bio           string  `json:"bio"`
	Rating        float64 `json:"rating"`
	Teaches       string  `json:"teaches,omitempty"`
	Learns        string  `json:"learns,omitempty"`
	City          *string `json:"city,omitempty"`
	Country       *string `json:"country,omitempty"`
	DistanceKm    *int    `json:"distance_km,omitempty"`
	SuggestedMode string  `json:"suggested_mode"`
}

// Coordinates is a resolved (latitude, longitude) pair.
type Coordinates struct {
	Lat float64
	Lon float64
}

// CacheKey is the cache slot holding a user's serialized match results. Skill
// mutations delete it so the owner sees inventory changes immediately;
// counterparts converge within the cache TTL.
func CacheKey(userID int64) string {
	return fmt.Sprintf("matches:%d", userID)
}
