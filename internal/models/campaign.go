package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type CampaignStatus string

// The single canonical status set. Display labels live in DisplayName,
// never in comparisons.
const (
	StatusPending      CampaignStatus = "pending"
	StatusInProduction CampaignStatus = "in_production"
	StatusDelivered    CampaignStatus = "delivered"
)

// ParseStatus rejects anything outside the canonical set.
func ParseStatus(s string) (CampaignStatus, error) {
	switch CampaignStatus(s) {
	case StatusPending, StatusInProduction, StatusDelivered:
		return CampaignStatus(s), nil
	}
	return "", fmt.Errorf("unknown campaign status %q", s)
}

func (s CampaignStatus) DisplayName() string {
	switch s {
	case StatusPending:
		return "En attente"
	case StatusInProduction:
		return "En production"
	case StatusDelivered:
		return "Livré"
	}
	return string(s)
}

// Progress is display-only and derived from status alone.
func (s CampaignStatus) Progress() int {
	switch s {
	case StatusInProduction:
		return 50
	case StatusDelivered:
		return 100
	}
	return 0
}

type Campaign struct {
	gorm.Model
	Name   string         `gorm:"size:255;not null" json:"name"`
	Status CampaignStatus `gorm:"type:varchar(30);not null" json:"status"`

	TargetVolume       int  `gorm:"not null" json:"target_volume"`
	ProspectsGenerated *int `json:"prospects_generated"`

	Sector       string    `gorm:"size:255" json:"sector"`
	Zone         string    `gorm:"size:255" json:"zone"`
	DeliveryDate time.Time `gorm:"type:date;not null" json:"delivery_date"`
	Amount       float64   `gorm:"not null" json:"amount"`

	AdminNotes     string `gorm:"type:text" json:"admin_notes"`
	InternalStatus string `gorm:"size:100" json:"internal_status"`

	FormQuestions QuestionList `gorm:"type:jsonb" json:"form_questions"`

	// Nullable for legacy rows created before ownership was tracked.
	OwnerID *uint `gorm:"index" json:"owner_id"`
	Owner   *User `json:"-"`

	// Bumped on every partial update; stale writers get a conflict.
	Version int `gorm:"not null;default:1" json:"version"`
}

// EffectiveDelivered is the prospect count a campaign contributes to
// dashboard totals: the full target once delivered, otherwise whatever
// has been generated so far.
func (c *Campaign) EffectiveDelivered() int {
	if c.Status == StatusDelivered {
		return c.TargetVolume
	}
	if c.ProspectsGenerated != nil {
		return *c.ProspectsGenerated
	}
	return 0
}
