package entity

import "time"

type Note struct {
	Id        uint
	Title     string
	Content   string
	UserId    uint
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// OwnedBy reports whether the note belongs to the given user.
// Every non-list note operation is gated on this check.
func (n *Note) OwnedBy(userId uint) bool {
	return n.UserId == userId
}
