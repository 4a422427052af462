package skill

import (
	"strings"
	"time"
)

// Direction tags a skill as something the owner can teach or wants to learn.
type Direction string

const (
	DirectionTeach Direction = "teach"
	DirectionLearn Direction = "learn"
)

// ParseDirection validates the direction tag from client input.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case DirectionTeach, DirectionLearn:
		return Direction(s), true
	default:
		return "", false
	}
}

// Skill belongs to exactly one user. Name matching for the match engine is
// exact-string and case-sensitive; (user, name, direction) is unique.
type Skill struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	Name        string    `db:"skill_name"`
	Direction   Direction `db:"direction"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// NewSkill validates and normalizes a skill before persistence. The name is
// whitespace-trimmed but otherwise preserved exactly.
func NewSkill(userID int64, name string, direction string, description string) (*Skill, bool) {
	name = strings.TrimSpace(name)
	dir, ok := ParseDirection(direction)
	if name == "" || !ok || userID == 0 {
		return nil, false
	}
	return &Skill{
		UserID:      userID,
		Name:        name,
		Direction:   dir,
		Description: description,
	}, true
}
