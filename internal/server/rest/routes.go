package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(s.requestID(), s.accessLog(), s.recovery(), securityHeaders(), cors())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found."})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	authGroup.POST("/login", s.login)
	authGroup.POST("/signup", s.signup)
	authGroup.GET("/me", s.authGate(), s.me)

	api := r.Group("/", s.authGate())

	users := api.Group("/users")
	users.GET("", s.listUsers)
	users.GET("/:id", s.getUser)
	users.POST("", s.createUser)
	users.PUT("/:id", s.updateUser)
	users.DELETE("/:id", s.deleteUser)
	users.GET("/:id/classes", s.userClasses)

	clients := api.Group("/clients")
	clients.GET("", s.listClients)
	clients.GET("/:id", s.getClient)
	clients.POST("", s.createClient)
	clients.PUT("/:id", s.updateClient)
	clients.DELETE("/:id", s.deleteClient)

	accounts := api.Group("/client-accounts")
	accounts.GET("", s.listClientAccounts)
	accounts.GET("/:clientId/:userId", s.getClientAccount)
	accounts.POST("", s.createClientAccount)
	accounts.DELETE("/:clientId/:userId", s.deleteClientAccount)

	classes := api.Group("/classes")
	classes.GET("", s.listClasses)
	classes.GET("/:id", s.getClass)
	classes.POST("", s.createClass)
	classes.PUT("/:id", s.updateClass)
	classes.DELETE("/:id", s.deleteClass)
	classes.GET("/:id/environments", s.classEnvironments)
	classes.GET("/:id/users", s.classMembers)

	classUsers := api.Group("/class-users")
	classUsers.GET("", s.listClassUsers)
	classUsers.GET("/:classId/:userId", s.getClassUser)
	classUsers.POST("", s.createClassUser)
	classUsers.PUT("/:classId/:userId", s.updateClassUser)
	classUsers.DELETE("/:classId/:userId", s.deleteClassUser)

	envs := api.Group("/environments")
	envs.GET("", s.listEnvironments)
	envs.GET("/:id", s.getEnvironment)
	envs.POST("", s.createEnvironment)
	envs.PUT("/:id", s.updateEnvironment)
	envs.DELETE("/:id", s.deleteEnvironment)

	history := api.Group("/environment-history")
	history.GET("", s.listHistory)
	history.GET("/:environmentId/:userId", s.getConversation)
	history.POST("", s.createHistoryEntry)
	history.DELETE("/:environmentId/:userId", s.deleteConversation)

	return r
}
