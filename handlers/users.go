// users.go - Admin user directory: list, create, update, deactivate
// All handlers here sit behind middleware.AdminRequired, which has already
// authenticated the caller and proven the stored admin role.

package handlers // Declares the package name

import ( // Import required packages
	"go-admin-backend/auth"     // Password hashing
	"go-admin-backend/config"   // Project config
	"go-admin-backend/database" // Database connection
	"go-admin-backend/middleware"
	"go-admin-backend/models" // User model
	"net/http"                // HTTP status codes
	"strings"                 // Blank-password check
	"time"                    // Timestamp stamping

	"github.com/gin-gonic/gin" // Gin web framework
)

type CreateUserInput struct { // Struct for user creation input
	Username    string `json:"username" binding:"required"`    // Login handle (required)
	Name        string `json:"name" binding:"required"`        // Full name (required)
	Email       string `json:"email" binding:"required"`       // Email (required)
	Phone       string `json:"phone"`                          // Phone (optional)
	Role        string `json:"role" binding:"required"`        // Role (required)
	Password    string `json:"password" binding:"required"`    // Plaintext password, hashed before storage (required)
	SessionTime int    `json:"sessionTime" binding:"required"` // Token lifetime in minutes (required)
}

// UpdateUserInput uses pointers so only the fields actually supplied in
// the request body are applied; absent fields stay untouched.
type UpdateUserInput struct {
	Username    *string `json:"username"`
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Role        *string `json:"role"`
	Password    *string `json:"password"` // Replaces the hash only when non-blank
	SessionTime *int    `json:"sessionTime"`
	IsActive    *bool   `json:"isActive"`
}

// currentAdmin pulls the acting admin stored by the authorization filter.
func currentAdmin(c *gin.Context) models.User {
	return c.MustGet(middleware.CurrentUserKey).(models.User)
}

// ListUsers - Handler for GET /admin/users
// Returns every account newest-first, excluding the acting admin's own
// record. Deactivated accounts stay visible so admins can see history
// and reactivate via update.
func ListUsers(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := currentAdmin(c)

		var users []models.User
		if err := database.DB.
			Where("id <> ?", admin.ID).
			Order("created_at desc").
			Find(&users).Error; err != nil {
			internalError(c, cfg, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"users":   users, // Password hashes are never serialized
			"currentUser": gin.H{
				"id":    admin.ID,
				"name":  admin.Name,
				"email": admin.Email,
				"role":  admin.Role,
			},
		})
	}
}

// CreateUser - Handler for POST /admin/users
// Email uniqueness is enforced against ACTIVE accounts only: an email
// previously used by a deactivated account may be reused.
func CreateUser(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		// STEP 1: Validate required fields
		var input CreateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}

		// STEP 2: Reject if an active account already holds this email
		var count int64
		database.DB.Model(&models.User{}).
			Where("email = ? AND is_active = ?", input.Email, true).
			Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
			return
		}

		// STEP 3: Hash the password and persist the new account
		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			internalError(c, cfg, err)
			return
		}
		user := models.User{
			Username:    input.Username,
			Name:        input.Name,
			Email:       input.Email,
			Phone:       input.Phone,
			Role:        input.Role,
			Password:    hash,
			SessionTime: input.SessionTime,
			IsActive:    true,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			internalError(c, cfg, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

// UpdateUser - Handler for PUT /admin/users/:id
// Applies exactly the supplied fields. A non-blank password is re-hashed
// and replaces the stored hash; otherwise the hash stays byte-for-byte
// unchanged.
func UpdateUser(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := database.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}

		// Build the update set from supplied fields only. A map is used so
		// zero values (isActive=false, sessionTime=0) are still written.
		updates := map[string]interface{}{"updated_at": time.Now()}
		if input.Username != nil {
			updates["username"] = *input.Username
		}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Email != nil {
			updates["email"] = *input.Email
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}
		if input.Role != nil {
			updates["role"] = *input.Role
		}
		if input.SessionTime != nil {
			updates["session_time"] = *input.SessionTime
		}
		if input.IsActive != nil {
			updates["is_active"] = *input.IsActive
		}
		if input.Password != nil && strings.TrimSpace(*input.Password) != "" {
			hash, err := auth.HashPassword(*input.Password)
			if err != nil {
				internalError(c, cfg, err)
				return
			}
			updates["password"] = hash
		}

		if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
			internalError(c, cfg, err)
			return
		}
		database.DB.First(&user, user.ID) // Re-read so the response reflects the stored record

		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}

// DeactivateUser - Handler for DELETE /admin/users/:id
// Soft delete: flips isActive to false and stamps updatedAt. The record
// and its historical data persist.
func DeactivateUser(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := database.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		if err := database.DB.Model(&user).Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error; err != nil {
			internalError(c, cfg, err)
			return
		}
		database.DB.First(&user, user.ID) // Re-read so the response shows isActive=false

		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	}
}
