package model

import "time"

type Person struct {
	ID          string `gorm:"default:(-)"`
	OrcidID     string
	Name        string
	Email       string
	Institution string
	Department  string
	IsAdmin     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName keeps gorm on the same table name the original schema uses.
func (Person) TableName() string {
	return "people"
}
