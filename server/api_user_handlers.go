package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/risk-platform/admin-api/dto"
	"github.com/risk-platform/admin-api/models"
	"github.com/risk-platform/admin-api/store"
)

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return id, true
}

// HandleListUsers returns all users newest-first, each with its role ids.
// ?search= restricts to users whose username or real name contains the term.
func (s *Server) HandleListUsers(c *gin.Context) {
	users, roleIDs, err := s.Users.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		log.Printf("list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	summaries := make([]dto.UserSummary, len(users))
	for i := range users {
		summaries[i] = dto.FromUser(&users[i], roleIDs[users[i].ID])
	}
	c.JSON(http.StatusOK, summaries)
}

// HandleCreateUser is the admin creation path: active user plus role links.
func (s *Server) HandleCreateUser(c *gin.Context) {
	var payload CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid JSON payload"})
		return
	}
	payload.Username = strings.TrimSpace(payload.Username)
	if payload.Username == "" || payload.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("create user: hash password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	id, err := s.Users.Create(c.Request.Context(), payload.Username, string(hash), payload.RealName, payload.RoleIDs)
	if err != nil {
		// Username uniqueness on this path is enforced by the schema; a
		// violation surfaces as a store failure, as it always has.
		log.Printf("create user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "user created", "id": id})
}

// HandleUpdateUser rewrites username/real_name; password and roleIds are
// optional. An omitted roleIds leaves links alone, an empty array clears them.
func (s *Server) HandleUpdateUser(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload UpdateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid JSON payload"})
		return
	}

	upd := store.UserUpdate{
		Username: strings.TrimSpace(payload.Username),
		RealName: payload.RealName,
		RoleIDs:  payload.RoleIDs,
	}
	if payload.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("update user: hash password: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}
		hashStr := string(hash)
		upd.PasswordHash = &hashStr
	}

	if err := s.Users.Update(c.Request.Context(), userID, upd); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}
		log.Printf("update user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated"})
}

// HandleDeleteUser removes the user; role links go with it.
func (s *Server) HandleDeleteUser(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := s.Users.Delete(c.Request.Context(), userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}
		log.Printf("delete user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// HandleSetUserStatus toggles the active flag from a status enum.
func (s *Server) HandleSetUserStatus(c *gin.Context) {
	userID, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload SetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid JSON payload"})
		return
	}
	active, ok := models.ParseStatus(payload.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status must be active or inactive"})
		return
	}
	if err := s.Users.SetActive(c.Request.Context(), userID, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}
		log.Printf("set user status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}
