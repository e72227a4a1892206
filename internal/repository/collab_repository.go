package repository

import (
	"prospeo/internal/models"

	"gorm.io/gorm"
)

// The three collaboration tables share one contract: append, then
// re-read the ordered list. Conversational content is ascending,
// file listings descending; id breaks created_at ties either way.

type CommentRepositoryInterface interface {
	ListByCampaign(campaignID uint) ([]models.Comment, error)
	Create(c *models.Comment) error
}

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) ListByCampaign(campaignID uint) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := r.DB.
		Where("campaign_id = ?", campaignID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) Create(c *models.Comment) error {
	return r.DB.Create(c).Error
}

type FileRepositoryInterface interface {
	ListByCampaign(campaignID uint) ([]models.File, error)
	Create(f *models.File) error
}

type FileRepository struct {
	DB *gorm.DB
}

func (r *FileRepository) ListByCampaign(campaignID uint) ([]models.File, error) {
	files := []models.File{}
	err := r.DB.
		Where("campaign_id = ?", campaignID).
		Order("created_at DESC, id DESC").
		Find(&files).Error
	return files, err
}

func (r *FileRepository) Create(f *models.File) error {
	return r.DB.Create(f).Error
}

type MessageRepositoryInterface interface {
	ListByCampaign(campaignID uint) ([]models.Message, error)
	Create(m *models.Message) error
}

type MessageRepository struct {
	DB *gorm.DB
}

func (r *MessageRepository) ListByCampaign(campaignID uint) ([]models.Message, error) {
	messages := []models.Message{}
	err := r.DB.
		Where("campaign_id = ?", campaignID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepository) Create(m *models.Message) error {
	return r.DB.Create(m).Error
}

var (
	_ CommentRepositoryInterface = (*CommentRepository)(nil)
	_ FileRepositoryInterface    = (*FileRepository)(nil)
	_ MessageRepositoryInterface = (*MessageRepository)(nil)
)
