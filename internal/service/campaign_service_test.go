package service_test

import (
	"testing"

	"prospeo/internal/apperr"
	"prospeo/internal/models"
	"prospeo/internal/repository"
	"prospeo/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fake implementing the repository interface.
type fakeCampaignRepo struct {
	campaigns map[uint]*models.Campaign
	nextID    uint
}

func newFakeRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{campaigns: map[uint]*models.Campaign{}, nextID: 1}
}

func (f *fakeCampaignRepo) Create(c *models.Campaign) error {
	if c.Status == "" {
		c.Status = models.StatusPending
	}
	if c.Version == 0 {
		c.Version = 1
	}
	c.ID = f.nextID
	f.nextID++
	stored := *c
	f.campaigns[c.ID] = &stored
	return nil
}

func (f *fakeCampaignRepo) GetByID(id uint) (*models.Campaign, error) {
	c, ok := f.campaigns[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (f *fakeCampaignRepo) GetOwned(id, ownerID uint) (*models.Campaign, error) {
	c, ok := f.campaigns[id]
	if !ok || c.OwnerID == nil || *c.OwnerID != ownerID {
		return nil, apperr.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (f *fakeCampaignRepo) ListOwned(ownerID uint) ([]models.Campaign, error) {
	out := []models.Campaign{}
	for _, c := range f.campaigns {
		if c.OwnerID != nil && *c.OwnerID == ownerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCampaignRepo) ListAll(offset, limit int) ([]models.Campaign, int64, error) {
	out := []models.Campaign{}
	for _, c := range f.campaigns {
		out = append(out, *c)
	}
	total := int64(len(out))
	if offset > len(out) {
		offset = len(out)
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (f *fakeCampaignRepo) UpdatePartial(id uint, upd repository.CampaignUpdate, expectedVersion int) (*models.Campaign, error) {
	c, ok := f.campaigns[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	if c.Version != expectedVersion {
		return nil, apperr.ErrConflict
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
	if upd.InternalStatus != nil {
		c.InternalStatus = *upd.InternalStatus
	}
	if upd.AdminNotes != nil {
		c.AdminNotes = *upd.AdminNotes
	}
	if upd.ProspectsGenerated != nil {
		v := *upd.ProspectsGenerated
		c.ProspectsGenerated = &v
	}
	if upd.Amount != nil {
		c.Amount = *upd.Amount
	}
	c.Version++
	out := *c
	return &out, nil
}

func (f *fakeCampaignRepo) StatsOwned(ownerID uint) (repository.CampaignStats, error) {
	campaigns, _ := f.ListOwned(ownerID)
	return service.ComputeStats(campaigns), nil
}

func (f *fakeCampaignRepo) StatsAll() (repository.CampaignStats, error) {
	all, _, _ := f.ListAll(0, len(f.campaigns))
	return service.ComputeStats(all), nil
}

var _ repository.CampaignRepositoryInterface = (*fakeCampaignRepo)(nil)

func validDraft() service.CampaignDraft {
	return service.CampaignDraft{
		Name:         "Acme Q1",
		TargetVolume: 100,
		Sector:       "SaaS",
		Zone:         "Île-de-France",
		DeliveryDate: "2026-10-15",
	}
}

func TestCreateCampaignDerivesAmount(t *testing.T) {
	svc := &service.CampaignService{Repo: newFakeRepo()}

	c, err := svc.CreateCampaign(7, validDraft())
	require.NoError(t, err)

	assert.Equal(t, 2500.0, c.Amount) // 100 x 25
	assert.Equal(t, models.StatusPending, c.Status)
	require.NotNil(t, c.OwnerID)
	assert.Equal(t, uint(7), *c.OwnerID)
	assert.Nil(t, c.ProspectsGenerated)
}

func TestCreateCampaignValidation(t *testing.T) {
	svc := &service.CampaignService{Repo: newFakeRepo()}

	cases := []struct {
		name   string
		mutate func(*service.CampaignDraft)
	}{
		{"empty name", func(d *service.CampaignDraft) { d.Name = "  " }},
		{"zero volume", func(d *service.CampaignDraft) { d.TargetVolume = 0 }},
		{"negative volume", func(d *service.CampaignDraft) { d.TargetVolume = -5 }},
		{"empty sector", func(d *service.CampaignDraft) { d.Sector = "" }},
		{"empty zone", func(d *service.CampaignDraft) { d.Zone = "" }},
		{"empty delivery date", func(d *service.CampaignDraft) { d.DeliveryDate = "" }},
		{"garbage delivery date", func(d *service.CampaignDraft) { d.DeliveryDate = "15/10/2026" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(&draft)
			_, err := svc.CreateCampaign(7, draft)
			assert.True(t, apperr.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestDraftAmountNeverNaN(t *testing.T) {
	d := service.CampaignDraft{TargetVolume: 0}
	assert.Equal(t, 0.0, d.Amount())

	d.TargetVolume = -3
	assert.Equal(t, 0.0, d.Amount())

	d.TargetVolume = 100
	assert.Equal(t, 2500.0, d.Amount())
}

func TestCreateCampaignQuestionnaireValidation(t *testing.T) {
	svc := &service.CampaignService{Repo: newFakeRepo()}

	draft := validDraft()
	draft.FormQuestions = models.QuestionList{
		{Type: models.QuestionSelect, Label: "Taille de l'entreprise"},
	}
	_, err := svc.CreateCampaign(7, draft)
	assert.True(t, apperr.IsValidation(err), "select without options must be rejected")

	draft.FormQuestions = models.QuestionList{
		{Type: models.QuestionSelect, Label: "Taille de l'entreprise", Options: []string{"1-10", "11-50", "50+"}},
		{Type: models.QuestionShortText, Label: "Fonction du contact", Required: true},
	}
	_, err = svc.CreateCampaign(7, draft)
	assert.NoError(t, err)
}

func TestDeliveredTransitionSetsProspects(t *testing.T) {
	repo := newFakeRepo()
	svc := &service.CampaignService{Repo: repo}

	draft := validDraft()
	draft.TargetVolume = 50
	created, err := svc.CreateCampaign(7, draft)
	require.NoError(t, err)
	require.Nil(t, created.ProspectsGenerated)

	status := string(models.StatusDelivered)
	updated, err := svc.UpdateCampaign(created.ID, service.AdminUpdate{
		Status:  &status,
		Version: created.Version,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.ProspectsGenerated)
	assert.Equal(t, 50, *updated.ProspectsGenerated)
	assert.Equal(t, models.StatusDelivered, updated.Status)
}

func TestDeliveredTransitionOverridesPriorCount(t *testing.T) {
	repo := newFakeRepo()
	svc := &service.CampaignService{Repo: repo}

	created, err := svc.CreateCampaign(7, validDraft())
	require.NoError(t, err)

	// Admin records partial delivery first.
	partial := 40
	afterPartial, err := svc.UpdateCampaign(created.ID, service.AdminUpdate{
		ProspectsGenerated: &partial,
		Version:            created.Version,
	})
	require.NoError(t, err)
	require.Equal(t, 40, *afterPartial.ProspectsGenerated)

	status := string(models.StatusDelivered)
	delivered, err := svc.UpdateCampaign(created.ID, service.AdminUpdate{
		Status:  &status,
		Version: afterPartial.Version,
	})
	require.NoError(t, err)
	assert.Equal(t, 100, *delivered.ProspectsGenerated)
}

func TestUnknownStatusRejected(t *testing.T) {
	repo := newFakeRepo()
	svc := &service.CampaignService{Repo: repo}

	created, err := svc.CreateCampaign(7, validDraft())
	require.NoError(t, err)

	bogus := "Livré" // display label, not a canonical value
	_, err = svc.UpdateCampaign(created.ID, service.AdminUpdate{
		Status:  &bogus,
		Version: created.Version,
	})
	assert.True(t, apperr.IsValidation(err))
}

func TestStaleVersionConflicts(t *testing.T) {
	repo := newFakeRepo()
	svc := &service.CampaignService{Repo: repo}

	created, err := svc.CreateCampaign(7, validDraft())
	require.NoError(t, err)

	notes := "premier passage"
	_, err = svc.UpdateCampaign(created.ID, service.AdminUpdate{
		AdminNotes: &notes,
		Version:    created.Version,
	})
	require.NoError(t, err)

	// Second writer still holds the original version.
	notes2 := "second passage"
	_, err = svc.UpdateCampaign(created.ID, service.AdminUpdate{
		AdminNotes: &notes2,
		Version:    created.Version,
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestGetForViewerHidesForeignCampaigns(t *testing.T) {
	repo := newFakeRepo()
	svc := &service.CampaignService{Repo: repo}

	created, err := svc.CreateCampaign(7, validDraft())
	require.NoError(t, err)

	owner := &models.User{Role: models.RoleClient}
	owner.ID = 7
	stranger := &models.User{Role: models.RoleClient}
	stranger.ID = 8
	admin := &models.User{Role: models.RoleAdmin}
	admin.ID = 1

	_, err = svc.GetForViewer(created.ID, owner)
	assert.NoError(t, err)

	_, err = svc.GetForViewer(created.ID, stranger)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.GetForViewer(created.ID, admin)
	assert.NoError(t, err)
}

func TestListOwnedEmptyForUnknownOwner(t *testing.T) {
	repo := newFakeRepo()
	svc := &service.CampaignService{Repo: repo}

	_, err := svc.CreateCampaign(7, validDraft())
	require.NoError(t, err)

	campaigns, err := svc.ListOwned(99)
	require.NoError(t, err)
	assert.Empty(t, campaigns)
}

func TestStatsOwnedMatchesDashboardReduction(t *testing.T) {
	repo := newFakeRepo()
	svc := &service.CampaignService{Repo: repo}

	first, err := svc.CreateCampaign(7, validDraft())
	require.NoError(t, err)

	draft := validDraft()
	draft.TargetVolume = 40
	_, err = svc.CreateCampaign(7, draft)
	require.NoError(t, err)

	// Another owner's campaign must not leak into the totals.
	_, err = svc.CreateCampaign(8, validDraft())
	require.NoError(t, err)

	status := string(models.StatusDelivered)
	_, err = svc.UpdateCampaign(first.ID, service.AdminUpdate{
		Status:  &status,
		Version: first.Version,
	})
	require.NoError(t, err)

	stats, err := svc.StatsOwned(7)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(100), stats.Prospects) // delivered counts its target, the other 0
	assert.Equal(t, int64(1), stats.Active)
	assert.Equal(t, 3500.0, stats.Amount) // 2500 + 1000

	owned, err := svc.ListOwned(7)
	require.NoError(t, err)
	assert.Equal(t, stats, service.ComputeStats(owned))
}

func TestListAllClampsPagination(t *testing.T) {
	repo := newFakeRepo()
	svc := &service.CampaignService{Repo: repo}

	for i := 0; i < 3; i++ {
		_, err := svc.CreateCampaign(7, validDraft())
		require.NoError(t, err)
	}

	_, pag, err := svc.ListAll(0, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, pag.Page)
	assert.Equal(t, 20, pag.PageSize)
	assert.Equal(t, int64(3), pag.TotalCount)
	assert.Equal(t, int64(1), pag.TotalPages)
}
