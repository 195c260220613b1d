package rest

import (
	"net/http"
	"strings"

	"github.com/eduhub/eduhub/internal/server/models"
	"github.com/gin-gonic/gin"
)

const (
	invalidUserID = "Invalid user ID"
	userNotFound  = "User not found"
)

func (s *Server) listUsers(c *gin.Context) {
	list, err := s.svc.Users.List(c.Request.Context())
	if err != nil {
		s.fail(c, err, userNotFound)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) getUser(c *gin.Context) {
	id, ok := pathID(c, invalidUserID)
	if !ok {
		return
	}
	u, err := s.svc.Users.Get(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err, userNotFound)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Server) createUser(c *gin.Context) {
	var req models.NewUser
	if err := c.ShouldBindJSON(&req); err != nil || !validNewUser(req) {
		badRequest(c, "Missing required fields")
		return
	}
	if len(req.Password) > maxPasswordBytes {
		badRequest(c, "Password must be at most 72 bytes.")
		return
	}

	u, err := s.svc.Users.Create(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err, userNotFound)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// blank reports whether a field was sent but left empty.
func blank(v *string) bool {
	return v != nil && strings.TrimSpace(*v) == ""
}

func (s *Server) updateUser(c *gin.Context) {
	id, ok := pathID(c, invalidUserID)
	if !ok {
		return
	}

	var req models.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if blank(req.FirstName) || blank(req.LastName) || blank(req.Email) {
		badRequest(c, "first_name, last_name and email cannot be empty")
		return
	}
	if req.Password != nil && (*req.Password == "" || len(*req.Password) > maxPasswordBytes) {
		badRequest(c, "Password must be 1 to 72 bytes.")
		return
	}

	u, err := s.svc.Users.Update(c.Request.Context(), id, &req)
	if err != nil {
		s.fail(c, err, userNotFound)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Server) deleteUser(c *gin.Context) {
	id, ok := pathID(c, invalidUserID)
	if !ok {
		return
	}
	u, err := s.svc.Users.Delete(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err, userNotFound)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Server) userClasses(c *gin.Context) {
	id, ok := pathID(c, invalidUserID)
	if !ok {
		return
	}
	list, err := s.svc.Users.Classes(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err, userNotFound)
		return
	}
	c.JSON(http.StatusOK, list)
}
