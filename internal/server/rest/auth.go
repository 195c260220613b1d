package rest

import (
	"errors"
	"net/http"

	"github.com/eduhub/eduhub/internal/common"
	"github.com/eduhub/eduhub/internal/server/auth"
	"github.com/eduhub/eduhub/internal/server/models"
	"github.com/gin-gonic/gin"
)

// bcrypt ignores input past 72 bytes, so longer passwords are refused.
const maxPasswordBytes = 72

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		badRequest(c, "Email and password are required.")
		return
	}

	sess, err := s.svc.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		s.fail(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successful", "user": sess.User, "token": sess.Token})
}

// validNewUser reports whether the fields every identity record needs are set.
func validNewUser(in models.NewUser) bool {
	return in.FirstName != "" && in.LastName != "" && in.Email != "" && in.Password != ""
}

func (s *Server) signup(c *gin.Context) {
	var req models.NewUser
	if err := c.ShouldBindJSON(&req); err != nil || !validNewUser(req) || req.Phone == nil || *req.Phone == "" {
		badRequest(c, "Missing required fields")
		return
	}
	if len(req.Password) > maxPasswordBytes {
		badRequest(c, "Password must be at most 72 bytes.")
		return
	}

	sess, err := s.svc.Auth.Signup(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": sess.User, "token": sess.Token})
}

// me echoes the identity the auth gate attached.
func (s *Server) me(c *gin.Context) {
	id, ok := auth.IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": id})
}
