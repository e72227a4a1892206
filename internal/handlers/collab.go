package handlers

import (
	"io"
	"net/http"
	"strings"
	"time"

	"prospeo/internal/metrics"
	"prospeo/internal/middleware"
	"prospeo/internal/models"
	"prospeo/internal/notify"
	"prospeo/internal/repository"
	"prospeo/internal/service"
	"prospeo/internal/storage"

	"github.com/gin-gonic/gin"
)

// CollabHandler serves the per-campaign collaboration surfaces:
// comments, shared files and the chat thread. All three follow the
// same contract: insert, then re-read the ordered list and return it —
// the response always reflects a post-write read.
type CollabHandler struct {
	Service  *service.CampaignService
	Comments repository.CommentRepositoryInterface
	Files    repository.FileRepositoryInterface
	Messages repository.MessageRepositoryInterface
	Store    storage.Uploader
	Hub      *notify.Hub
}

// guard resolves the campaign for the caller; foreign campaigns are
// not-found for clients.
func (h *CollabHandler) guard(c *gin.Context) (*models.Campaign, *models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentification requise"})
		return nil, nil, false
	}
	id, ok := parseID(c)
	if !ok {
		return nil, nil, false
	}
	campaign, err := h.Service.GetForViewer(id, user)
	if err != nil {
		respondErr(c, err)
		return nil, nil, false
	}
	return campaign, user, true
}

func roleTag(user *models.User) string {
	if user.IsAdmin() {
		return "admin"
	}
	return "client"
}

// ====================== Comments ======================

func (h *CollabHandler) ListComments(c *gin.Context) {
	campaign, _, ok := h.guard(c)
	if !ok {
		return
	}
	comments, err := h.Comments.ListByCampaign(campaign.ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

type commentForm struct {
	Content string `json:"content"`
}

func (h *CollabHandler) CreateComment(c *gin.Context) {
	campaign, user, ok := h.guard(c)
	if !ok {
		return
	}

	var form commentForm
	if err := c.ShouldBindJSON(&form); err != nil || strings.TrimSpace(form.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "le commentaire ne peut pas être vide"})
		return
	}

	author := user.Email
	if user.IsAdmin() {
		author = "admin"
	}
	comment := models.Comment{
		CampaignID: campaign.ID,
		Author:     author,
		Content:    strings.TrimSpace(form.Content),
	}
	if err := h.Comments.Create(&comment); err != nil {
		respondErr(c, err)
		return
	}

	h.Hub.BroadcastChange("comments", campaign.ID, "insert")

	comments, err := h.Comments.ListByCampaign(campaign.ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comments": comments})
}

// ====================== Messages ======================

func (h *CollabHandler) ListMessages(c *gin.Context) {
	campaign, _, ok := h.guard(c)
	if !ok {
		return
	}
	messages, err := h.Messages.ListByCampaign(campaign.ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (h *CollabHandler) CreateMessage(c *gin.Context) {
	campaign, user, ok := h.guard(c)
	if !ok {
		return
	}

	var form commentForm
	if err := c.ShouldBindJSON(&form); err != nil || strings.TrimSpace(form.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "le message ne peut pas être vide"})
		return
	}

	message := models.Message{
		CampaignID: campaign.ID,
		Sender:     roleTag(user),
		Content:    strings.TrimSpace(form.Content),
	}
	if err := h.Messages.Create(&message); err != nil {
		respondErr(c, err)
		return
	}

	h.Hub.BroadcastChange("messages", campaign.ID, "insert")

	messages, err := h.Messages.ListByCampaign(campaign.ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"messages": messages})
}

// ====================== Files ======================

func (h *CollabHandler) ListFiles(c *gin.Context) {
	campaign, _, ok := h.guard(c)
	if !ok {
		return
	}
	files, err := h.Files.ListByCampaign(campaign.ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}

// UploadFile is the two-phase write: bytes to object storage first,
// metadata row second. A storage failure stops before any metadata is
// written; a metadata failure after a successful upload leaves the
// object orphaned in the bucket.
func (h *CollabHandler) UploadFile(c *gin.Context) {
	campaign, user, ok := h.guard(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucun fichier fourni"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		respondErr(c, err)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		respondErr(c, err)
		return
	}

	key := storage.StorageKey(campaign.ID, fileHeader.Filename, time.Now())
	url, err := h.Store.Upload(key, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondErr(c, err)
		return
	}

	// The display record keeps the original filename verbatim; only
	// the object key is sanitized.
	file := models.File{
		CampaignID: campaign.ID,
		URL:        url,
		Filename:   fileHeader.Filename,
		UploadedBy: roleTag(user),
	}
	if err := h.Files.Create(&file); err != nil {
		respondErr(c, err)
		return
	}

	metrics.FileUploads.Inc()
	h.Hub.BroadcastChange("files", campaign.ID, "insert")

	files, err := h.Files.ListByCampaign(campaign.ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"files": files})
}
