package model

import "time"

type Note struct {
	Id        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text"`
	UserId    uint      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	// Set by the service on edit only, so an untouched note keeps a zero value
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (Note) TableName() string {
	return "notes"
}
