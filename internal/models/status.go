package models

// Status is the publication state lookup table (seeded at migration time)
type Status struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Status string `json:"status" gorm:"size:30;uniqueIndex;not null"`
}

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)
