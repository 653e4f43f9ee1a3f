package specification

import "gorm.io/gorm"

// NoteOwnedByUser restricts a note query to a single owner.
// List endpoints filter through this rather than checking rows one by one.
type NoteOwnedByUser struct {
	UserID uint
}

func (s NoteOwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
