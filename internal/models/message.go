package models

import "time"

// Message is one entry of a campaign's chat thread. Same shape as
// Comment plus a sender role tag; kept in its own table because the
// chat and the comment thread are distinct surfaces.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	CampaignID uint   `gorm:"index;not null" json:"campaign_id"`
	Sender     string `gorm:"size:20;not null" json:"sender"` // "admin" / "client"
	Content    string `gorm:"type:text;not null" json:"content"`
}
