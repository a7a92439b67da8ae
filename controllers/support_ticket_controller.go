package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pulse-afisha-api/middleware"
	"pulse-afisha-api/models"
	"pulse-afisha-api/utils"
)

type SupportTicketController struct {
	db *gorm.DB
}

func NewSupportTicketController(db *gorm.DB) *SupportTicketController {
	return &SupportTicketController{db: db}
}

type CreateTicketRequest struct {
	Subject string `json:"subject" binding:"required,min=3,max=255"`
	Message string `json:"message" binding:"required,min=10,max=5000"`
}

type ReplyTicketRequest struct {
	Reply string `json:"reply" binding:"required,min=3,max=5000"`
}

// CreateTicket opens a new support inquiry for the caller.
func (tc *SupportTicketController) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)

	ticket := models.SupportTicket{
		ID:      uuid.New().String(),
		UserID:  user.ID,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.TicketStatusOpen,
	}

	if err := tc.db.Create(&ticket).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ticket"})
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

// GetMyTickets lists the caller's tickets, newest first.
func (tc *SupportTicketController) GetMyTickets(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var tickets []models.SupportTicket
	err := tc.db.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&tickets).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tickets"})
		return
	}

	c.JSON(http.StatusOK, tickets)
}

// ListTickets is the admin queue with an optional status filter.
func (tc *SupportTicketController) ListTickets(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 100
	}
	offset := (page - 1) * limit

	query := tc.db.Model(&models.SupportTicket{})

	if status := c.Query("status"); status != "" {
		if !models.ValidTicketStatus(models.SupportTicketStatus(status)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status filter"})
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var tickets []models.SupportTicket
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&tickets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tickets"})
		return
	}

	utils.SendPaginated(c, tickets, page, limit, total)
}

// ReplyTicket stores the admin answer and marks the ticket answered.
func (tc *SupportTicketController) ReplyTicket(c *gin.Context) {
	var req ReplyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var ticket models.SupportTicket
	if err := tc.db.First(&ticket, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}

	ticket.AdminReply = &req.Reply
	ticket.Status = models.TicketStatusAnswered

	if err := tc.db.Save(&ticket).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reply to ticket"})
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// CloseTicket closes the ticket for good.
func (tc *SupportTicketController) CloseTicket(c *gin.Context) {
	var ticket models.SupportTicket
	if err := tc.db.First(&ticket, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}

	ticket.Status = models.TicketStatusClosed

	if err := tc.db.Save(&ticket).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close ticket"})
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// DeleteTicket removes a ticket entirely. Admin only.
func (tc *SupportTicketController) DeleteTicket(c *gin.Context) {
	var ticket models.SupportTicket
	if err := tc.db.First(&ticket, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}

	if err := tc.db.Delete(&ticket).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ticket"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ticket deleted"})
}
