package models

import "time"

// Comment is an append-only note on a campaign. Comments are never
// edited or deleted; display order is created_at ascending with id as
// tie-break.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	CampaignID uint   `gorm:"index;not null" json:"campaign_id"`
	Author     string `gorm:"size:255;not null" json:"author"`
	Content    string `gorm:"type:text;not null" json:"content"`
}
