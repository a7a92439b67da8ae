package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pulse-afisha-api/middleware"
	"pulse-afisha-api/models"
	"pulse-afisha-api/utils"
)

type OrganizerRequestController struct {
	db *gorm.DB
}

func NewOrganizerRequestController(db *gorm.DB) *OrganizerRequestController {
	return &OrganizerRequestController{db: db}
}

type CreateOrganizerRequestRequest struct {
	Message string `json:"message" binding:"required,min=10,max=2000"`
}

type ResolveOrganizerRequestRequest struct {
	Comment *string `json:"comment" binding:"omitempty,max=2000"`
}

// CreateRequest files an application for the organizer role. Users who
// already hold elevated roles, or have a pending application, are refused.
func (oc *OrganizerRequestController) CreateRequest(c *gin.Context) {
	var req CreateOrganizerRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	if user.CanOrganize() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You already have organizer permissions"})
		return
	}

	var pending models.OrganizerRequest
	err := oc.db.Where("user_id = ? AND status = ?", user.ID, models.OrganizerRequestPending).
		First(&pending).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You already have a pending request"})
		return
	}

	request := models.OrganizerRequest{
		ID:      uuid.New().String(),
		UserID:  user.ID,
		Status:  models.OrganizerRequestPending,
		Message: req.Message,
	}

	if err := oc.db.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
		return
	}

	log.Printf("Organizer request %s created by user %s", request.ID, user.ID)
	c.JSON(http.StatusCreated, request)
}

// GetMyRequests lists the caller's own applications, newest first.
func (oc *OrganizerRequestController) GetMyRequests(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var requests []models.OrganizerRequest
	err := oc.db.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&requests).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// ListRequests is the admin view over all applications with a status filter.
func (oc *OrganizerRequestController) ListRequests(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 100
	}
	offset := (page - 1) * limit

	query := oc.db.Model(&models.OrganizerRequest{})

	if status := c.Query("status"); status != "" {
		if !models.ValidOrganizerRequestStatus(models.OrganizerRequestStatus(status)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status filter"})
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var requests []models.OrganizerRequest
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}

	utils.SendPaginated(c, requests, page, limit, total)
}

// ApproveRequest grants the organizer role. The request status and the user
// role are updated together in one transaction.
func (oc *OrganizerRequestController) ApproveRequest(c *gin.Context) {
	var req ResolveOrganizerRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var request models.OrganizerRequest
	if err := oc.db.First(&request, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	if request.Resolved() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only pending requests can be approved"})
		return
	}

	var user models.User
	if err := oc.db.First(&user, "id = ?", request.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Requesting user not found"})
		return
	}

	comment := "Approved by administrator"
	if req.Comment != nil && *req.Comment != "" {
		comment = *req.Comment
	}
	now := time.Now()

	err := oc.db.Transaction(func(tx *gorm.DB) error {
		request.Status = models.OrganizerRequestApproved
		request.AdminComment = &comment
		request.ResolvedAt = &now
		if err := tx.Save(&request).Error; err != nil {
			return err
		}

		// Admins keep their role; everyone else becomes an organizer
		if user.Role == models.RoleUser {
			user.Role = models.RoleOrganizer
			if err := tx.Save(&user).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve request"})
		return
	}

	log.Printf("Organizer request %s approved, user %s is now %s", request.ID, user.ID, user.Role)
	c.JSON(http.StatusOK, request)
}

// RejectRequest declines a pending application with a reason.
func (oc *OrganizerRequestController) RejectRequest(c *gin.Context) {
	var req ResolveOrganizerRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var request models.OrganizerRequest
	if err := oc.db.First(&request, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	if request.Resolved() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only pending requests can be rejected"})
		return
	}

	comment := "Rejected by administrator"
	if req.Comment != nil && *req.Comment != "" {
		comment = *req.Comment
	}
	now := time.Now()

	request.Status = models.OrganizerRequestRejected
	request.AdminComment = &comment
	request.ResolvedAt = &now

	if err := oc.db.Save(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject request"})
		return
	}

	log.Printf("Organizer request %s rejected", request.ID)
	c.JSON(http.StatusOK, request)
}
