package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pulse-afisha-api/middleware"
	"pulse-afisha-api/models"
	"pulse-afisha-api/utils"
)

type UserController struct {
	db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

type UpdateProfileRequest struct {
	FullName    *string        `json:"full_name"`
	AvatarURL   *string        `json:"avatar_url"`
	Phone       *string        `json:"phone"`
	Telegram    *string        `json:"telegram"`
	About       *string        `json:"about"`
	Preferences models.JSONMap `json:"preferences"`
}

type UpdateRoleRequest struct {
	Role models.UserRole `json:"role" binding:"required"`
}

type UpdateBlockRequest struct {
	IsBlocked *bool `json:"is_blocked" binding:"required"`
}

// GetProfile returns the authenticated user's own profile.
func (uc *UserController) GetProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, user)
}

// UpdateProfile applies a partial update to the caller's profile fields.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)

	if req.FullName != nil {
		user.FullName = req.FullName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Telegram != nil {
		user.Telegram = req.Telegram
	}
	if req.About != nil {
		user.About = req.About
	}
	if req.Preferences != nil {
		user.Preferences = req.Preferences
	}

	if err := uc.db.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers is the admin user directory with role/blocked/search filters.
func (uc *UserController) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit

	query := uc.db.Model(&models.User{})

	if role := c.Query("role"); role != "" {
		if !models.ValidRole(models.UserRole(role)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role filter"})
			return
		}
		query = query.Where("role = ?", role)
	}

	if blocked := c.Query("is_blocked"); blocked != "" {
		value, err := strconv.ParseBool(blocked)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "is_blocked must be true or false"})
			return
		}
		query = query.Where("is_blocked = ?", value)
	}

	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("email LIKE ? OR full_name LIKE ?", like, like)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	utils.SendPaginated(c, users, page, limit, total)
}

// UpdateUserRole changes a user's role. Admins cannot change their own role.
func (uc *UserController) UpdateUserRole(c *gin.Context) {
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	userID := c.Param("id")
	admin := middleware.CurrentUser(c)
	if admin.ID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot change your own role"})
		return
	}

	var user models.User
	if err := uc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.Role == req.Role {
		c.JSON(http.StatusOK, user)
		return
	}

	oldRole := user.Role
	user.Role = req.Role
	if err := uc.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}

	log.Printf("User %s role changed: %s -> %s", user.ID, oldRole, user.Role)
	c.JSON(http.StatusOK, user)
}

// UpdateUserBlock blocks or unblocks an account.
func (uc *UserController) UpdateUserBlock(c *gin.Context) {
	var req UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.Param("id")
	admin := middleware.CurrentUser(c)
	if admin.ID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot block your own account"})
		return
	}

	var user models.User
	if err := uc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user.IsBlocked = *req.IsBlocked
	if err := uc.db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	log.Printf("User %s block status changed: is_blocked=%v", user.ID, user.IsBlocked)
	c.JSON(http.StatusOK, user)
}
