package authControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Jayant71/shopscale/auth"
	"github.com/Jayant71/shopscale/models"
	"github.com/Jayant71/shopscale/web"
)

type RegisterInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// isUniqueViolation covers the race where two registrations for the same
// email slip past the pre-check; the unique index catches the loser.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// POST /auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		err := db.Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return models.ErrDuplicateEmail
			}

			hashed, err := auth.HashPassword(input.Password)
			if err != nil {
				return err
			}
			user = models.User{
				FullName:       input.FullName,
				Email:          input.Email,
				HashedPassword: hashed,
				Role:           models.RoleClient,
				IsActive:       true,
			}
			if err := tx.Create(&user).Error; err != nil {
				if isUniqueViolation(err) {
					return models.ErrDuplicateEmail
				}
				return err
			}

			// every account starts with an empty cart
			return tx.Create(&models.Cart{UserID: user.ID}).Error
		})
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// POST /auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "VALIDATION_ERROR", "error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				web.Error(c, models.ErrEmailNotFound)
				return
			}
			web.Error(c, err)
			return
		}
		if !auth.CheckPassword(user.HashedPassword, input.Password) {
			web.Error(c, models.ErrWrongPassword)
			return
		}

		token, err := auth.GenerateToken(user.ID, user.Role)
		if err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
	}
}

// GET /auth/users (admin)
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		users := []models.User{}
		if err := db.
			Where("role = ?", models.RoleClient).
			Order("created_at desc").
			Find(&users).Error; err != nil {
			web.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}
