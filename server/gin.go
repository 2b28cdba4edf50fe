package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewGinEngine builds the router with the admin panel's JSON API.
func NewGinEngine(s *Server) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	api := r.Group("/api")

	api.POST("/auth/login", s.HandleLogin)
	api.POST("/auth/register", s.HandleRegister)

	api.GET("/users", s.HandleListUsers)
	api.POST("/users", s.HandleCreateUser)
	api.PUT("/users/:id", s.HandleUpdateUser)
	api.DELETE("/users/:id", s.HandleDeleteUser)
	api.PATCH("/users/:id/status", s.HandleSetUserStatus)

	api.GET("/roles", s.HandleListRoles)
	api.GET("/permissions", s.HandleListPermissions)
	api.POST("/roles", s.HandleCreateRole)
	api.PUT("/roles/:id", s.HandleUpdateRole)
	api.DELETE("/roles/:id", s.HandleDeleteRole)

	return r
}

// corsMiddleware allows the panel frontend to call from any origin, matching
// the permissive policy this API has always shipped with.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
