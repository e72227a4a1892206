package service

import (
	"strings"
	"time"

	"prospeo/internal/apperr"
	"prospeo/internal/models"
	"prospeo/internal/repository"
)

// UnitPrice is the fixed price per requested prospect, in euros. The
// amount is derived from it at creation time; admins may override the
// amount afterwards.
const UnitPrice = 25.0

type CampaignService struct {
	Repo repository.CampaignRepositoryInterface
}

// CampaignDraft is the creation wizard's final payload.
type CampaignDraft struct {
	Name          string              `json:"name"`
	TargetVolume  int                 `json:"target_volume"`
	Sector        string              `json:"sector"`
	Zone          string              `json:"zone"`
	DeliveryDate  string              `json:"delivery_date"` // YYYY-MM-DD
	FormQuestions models.QuestionList `json:"form_questions"`
}

// AdminUpdate carries the admin detail form. Version is the version
// the admin last saw; a stale value is rejected with a conflict.
type AdminUpdate struct {
	Status             *string  `json:"status"`
	InternalStatus     *string  `json:"internal_status"`
	AdminNotes         *string  `json:"admin_notes"`
	ProspectsGenerated *int     `json:"prospects_generated"`
	Amount             *float64 `json:"amount"`
	Version            int      `json:"version"`
}

func (d *CampaignDraft) validate() (time.Time, error) {
	if strings.TrimSpace(d.Name) == "" {
		return time.Time{}, apperr.NewValidation("le nom de la campagne est requis")
	}
	if d.TargetVolume <= 0 {
		return time.Time{}, apperr.NewValidation("le volume cible doit être un entier positif")
	}
	if strings.TrimSpace(d.Sector) == "" {
		return time.Time{}, apperr.NewValidation("le secteur est requis")
	}
	if strings.TrimSpace(d.Zone) == "" {
		return time.Time{}, apperr.NewValidation("la zone est requise")
	}
	if strings.TrimSpace(d.DeliveryDate) == "" {
		return time.Time{}, apperr.NewValidation("la date de livraison est requise")
	}
	deliveryDate, err := time.Parse("2006-01-02", d.DeliveryDate)
	if err != nil {
		return time.Time{}, apperr.NewValidation("date de livraison invalide: %s", d.DeliveryDate)
	}
	if err := d.FormQuestions.Validate(); err != nil {
		return time.Time{}, apperr.NewValidation("%s", err.Error())
	}
	return deliveryDate, nil
}

// Amount returns the derived price for the draft's target volume. Zero
// when the draft would not validate, never NaN.
func (d *CampaignDraft) Amount() float64 {
	if d.TargetVolume <= 0 {
		return 0
	}
	return float64(d.TargetVolume) * UnitPrice
}

// CreateCampaign validates the wizard payload and persists the new
// campaign with status pending, owned by the caller.
func (s *CampaignService) CreateCampaign(ownerID uint, draft CampaignDraft) (*models.Campaign, error) {
	deliveryDate, err := draft.validate()
	if err != nil {
		return nil, err
	}

	questions := draft.FormQuestions
	if questions == nil {
		questions = models.QuestionList{}
	}

	c := &models.Campaign{
		Name:          strings.TrimSpace(draft.Name),
		Status:        models.StatusPending,
		TargetVolume:  draft.TargetVolume,
		Sector:        strings.TrimSpace(draft.Sector),
		Zone:          strings.TrimSpace(draft.Zone),
		DeliveryDate:  deliveryDate,
		Amount:        draft.Amount(),
		FormQuestions: questions,
		OwnerID:       &ownerID,
	}

	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCampaign applies an admin's partial edit. A transition into
// delivered force-sets prospects_generated to the target volume in the
// same write; nothing guards against leaving the delivered state again.
func (s *CampaignService) UpdateCampaign(id uint, upd AdminUpdate) (*models.Campaign, error) {
	repoUpd := repository.CampaignUpdate{
		InternalStatus:     upd.InternalStatus,
		AdminNotes:         upd.AdminNotes,
		ProspectsGenerated: upd.ProspectsGenerated,
		Amount:             upd.Amount,
	}

	if upd.Amount != nil && *upd.Amount < 0 {
		return nil, apperr.NewValidation("le montant ne peut pas être négatif")
	}
	if upd.ProspectsGenerated != nil && *upd.ProspectsGenerated < 0 {
		return nil, apperr.NewValidation("le nombre de prospects livrés ne peut pas être négatif")
	}

	if upd.Status != nil {
		status, err := models.ParseStatus(*upd.Status)
		if err != nil {
			return nil, apperr.NewValidation("%s", err.Error())
		}
		repoUpd.Status = &status

		if status == models.StatusDelivered {
			current, err := s.Repo.GetByID(id)
			if err != nil {
				return nil, err
			}
			target := current.TargetVolume
			repoUpd.ProspectsGenerated = &target
		}
	}

	return s.Repo.UpdatePartial(id, repoUpd, upd.Version)
}

// Pagination mirrors what list endpoints return next to the rows.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int64 `json:"total_pages"`
}

// ListAll fetches one admin page of campaigns; the whole table is
// never pulled at once.
func (s *CampaignService) ListAll(page, pageSize int) ([]models.Campaign, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	offset := (page - 1) * pageSize

	campaigns, total, err := s.Repo.ListAll(offset, pageSize)
	if err != nil {
		return nil, Pagination{}, err
	}

	pag := Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	return campaigns, pag, nil
}

func (s *CampaignService) ListOwned(ownerID uint) ([]models.Campaign, error) {
	return s.Repo.ListOwned(ownerID)
}

// StatsOwned aggregates the caller's campaigns in the database. It
// answers the same totals the dashboard reduces from its fetched rows,
// without carrying the rows to the application.
func (s *CampaignService) StatsOwned(ownerID uint) (repository.CampaignStats, error) {
	return s.Repo.StatsOwned(ownerID)
}

// GetForViewer resolves a campaign for the caller: admins see any row,
// clients only their own. A foreign campaign is a not-found.
func (s *CampaignService) GetForViewer(id uint, viewer *models.User) (*models.Campaign, error) {
	if viewer.IsAdmin() {
		return s.Repo.GetByID(id)
	}
	return s.Repo.GetOwned(id, viewer.ID)
}
