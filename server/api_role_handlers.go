package server

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/risk-platform/admin-api/dto"
)

// HandleListRoles returns every role with its granted permission ids.
func (s *Server) HandleListRoles(c *gin.Context) {
	roles, permIDs, err := s.Roles.ListWithPermissionIDs(c.Request.Context())
	if err != nil {
		log.Printf("list roles: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.FromRoles(roles, permIDs))
}

// HandleListPermissions returns the full permission catalog.
func (s *Server) HandleListPermissions(c *gin.Context) {
	perms, err := s.Permissions.List(c.Request.Context())
	if err != nil {
		log.Printf("list permissions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, perms)
}

// HandleCreateRole inserts a role with its permission grants.
func (s *Server) HandleCreateRole(c *gin.Context) {
	var payload RoleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid JSON payload"})
		return
	}
	payload.RoleName = strings.TrimSpace(payload.RoleName)
	if payload.RoleName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "role_name is required"})
		return
	}
	id, err := s.Roles.Create(c.Request.Context(), payload.RoleName, payload.Description, payload.PermissionIDs)
	if err != nil {
		log.Printf("create role: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "role created", "id": id})
}

// HandleUpdateRole rewrites the role and always replaces its permission set,
// even when permissionIds is absent or empty.
func (s *Server) HandleUpdateRole(c *gin.Context) {
	roleID, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload RoleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid JSON payload"})
		return
	}
	err := s.Roles.Update(c.Request.Context(), roleID, payload.RoleName, payload.Description, payload.PermissionIDs)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "role not found"})
			return
		}
		log.Printf("update role: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "role updated"})
}

// HandleDeleteRole removes the role and its permission grants. User links
// pointing at the role are not cleaned up here; see the roles store.
func (s *Server) HandleDeleteRole(c *gin.Context) {
	roleID, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := s.Roles.Delete(c.Request.Context(), roleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "role not found"})
			return
		}
		log.Printf("delete role: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "role deleted"})
}
