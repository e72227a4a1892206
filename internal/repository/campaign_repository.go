package repository

import (
	"errors"

	"prospeo/internal/apperr"
	"prospeo/internal/models"

	"gorm.io/gorm"
)

// CampaignUpdate is the partial field set an admin may change. Nil
// means "leave untouched".
type CampaignUpdate struct {
	Status             *models.CampaignStatus
	InternalStatus     *string
	AdminNotes         *string
	ProspectsGenerated *int
	Amount             *float64
}

// CampaignStats are computed by the storage layer, not by pulling the
// whole table into memory.
type CampaignStats struct {
	Total     int64   `json:"total"`
	Prospects int64   `json:"prospects"`
	Active    int64   `json:"active"`
	Amount    float64 `json:"amount"`
}

type CampaignRepositoryInterface interface {
	Create(c *models.Campaign) error
	GetByID(id uint) (*models.Campaign, error)
	GetOwned(id, ownerID uint) (*models.Campaign, error)
	ListOwned(ownerID uint) ([]models.Campaign, error)
	ListAll(offset, limit int) ([]models.Campaign, int64, error)
	UpdatePartial(id uint, upd CampaignUpdate, expectedVersion int) (*models.Campaign, error)
	StatsOwned(ownerID uint) (CampaignStats, error)
	StatsAll() (CampaignStats, error)
}

type CampaignRepository struct {
	DB *gorm.DB
}

func (r *CampaignRepository) Create(c *models.Campaign) error {
	if c.Status == "" {
		c.Status = models.StatusPending
	}
	if c.Version == 0 {
		c.Version = 1
	}
	return r.DB.Create(c).Error
}

func (r *CampaignRepository) GetByID(id uint) (*models.Campaign, error) {
	var c models.Campaign
	if err := r.DB.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// GetOwned behaves exactly like GetByID for rows the owner cannot see:
// a campaign belonging to someone else is a not-found, not a forbidden.
func (r *CampaignRepository) GetOwned(id, ownerID uint) (*models.Campaign, error) {
	var c models.Campaign
	err := r.DB.Where("id = ? AND owner_id = ?", id, ownerID).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) ListOwned(ownerID uint) ([]models.Campaign, error) {
	campaigns := []models.Campaign{}
	err := r.DB.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&campaigns).Error
	return campaigns, err
}

func (r *CampaignRepository) ListAll(offset, limit int) ([]models.Campaign, int64, error) {
	var total int64
	if err := r.DB.Model(&models.Campaign{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	campaigns := []models.Campaign{}
	err := r.DB.
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&campaigns).Error
	if err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}

// UpdatePartial performs the admin update with an optimistic version
// check: the write only lands when the stored version still matches
// expectedVersion. A stale version surfaces as ErrConflict.
func (r *CampaignRepository) UpdatePartial(id uint, upd CampaignUpdate, expectedVersion int) (*models.Campaign, error) {
	fields := map[string]any{}
	if upd.Status != nil {
		fields["status"] = *upd.Status
	}
	if upd.InternalStatus != nil {
		fields["internal_status"] = *upd.InternalStatus
	}
	if upd.AdminNotes != nil {
		fields["admin_notes"] = *upd.AdminNotes
	}
	if upd.ProspectsGenerated != nil {
		fields["prospects_generated"] = *upd.ProspectsGenerated
	}
	if upd.Amount != nil {
		fields["amount"] = *upd.Amount
	}
	if len(fields) == 0 {
		return r.GetByID(id)
	}
	fields["version"] = gorm.Expr("version + 1")

	res := r.DB.Model(&models.Campaign{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Either the row is gone or the version advanced under us.
		if _, err := r.GetByID(id); err != nil {
			return nil, err
		}
		return nil, apperr.ErrConflict
	}
	return r.GetByID(id)
}

const effectiveDelivered = `CASE WHEN status = 'delivered' THEN target_volume ELSE COALESCE(prospects_generated, 0) END`

func (r *CampaignRepository) statsWhere(query *gorm.DB) (CampaignStats, error) {
	var out struct {
		Total     int64
		Prospects int64
		Active    int64
		Amount    float64
	}
	err := query.
		Select(`COUNT(*) AS total,
			COALESCE(SUM(` + effectiveDelivered + `), 0) AS prospects,
			COALESCE(SUM(CASE WHEN status <> 'delivered' THEN 1 ELSE 0 END), 0) AS active,
			COALESCE(SUM(amount), 0) AS amount`).
		Scan(&out).Error
	if err != nil {
		return CampaignStats{}, err
	}
	return CampaignStats{
		Total:     out.Total,
		Prospects: out.Prospects,
		Active:    out.Active,
		Amount:    out.Amount,
	}, nil
}

func (r *CampaignRepository) StatsOwned(ownerID uint) (CampaignStats, error) {
	return r.statsWhere(r.DB.Model(&models.Campaign{}).Where("owner_id = ?", ownerID))
}

func (r *CampaignRepository) StatsAll() (CampaignStats, error) {
	return r.statsWhere(r.DB.Model(&models.Campaign{}))
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
