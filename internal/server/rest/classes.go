package rest

import (
	"net/http"

	"github.com/eduhub/eduhub/internal/server/models"
	"github.com/gin-gonic/gin"
)

const (
	invalidClassID     = "Invalid class ID"
	classNotFound      = "Class not found"
	invalidClassUserID = "Invalid class ID or user ID"
	classUserNotFound  = "Class user not found"
)

func (s *Server) listClasses(c *gin.Context) {
	list, err := s.svc.Classes.List(c.Request.Context())
	if err != nil {
		s.fail(c, err, classNotFound)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) getClass(c *gin.Context) {
	id, ok := pathID(c, invalidClassID)
	if !ok {
		return
	}
	cl, err := s.svc.Classes.Get(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err, classNotFound)
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (s *Server) createClass(c *gin.Context) {
	var req models.Class
	if err := c.ShouldBindJSON(&req); err != nil || req.ClassName == "" {
		badRequest(c, "Missing required fields")
		return
	}

	cl, err := s.svc.Classes.Create(c.Request.Context(), &req)
	if err != nil {
		s.fail(c, err, classNotFound)
		return
	}
	c.JSON(http.StatusCreated, cl)
}

func (s *Server) updateClass(c *gin.Context) {
	id, ok := pathID(c, invalidClassID)
	if !ok {
		return
	}

	var req models.ClassUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	cl, err := s.svc.Classes.Update(c.Request.Context(), id, &req)
	if err != nil {
		s.fail(c, err, classNotFound)
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (s *Server) deleteClass(c *gin.Context) {
	id, ok := pathID(c, invalidClassID)
	if !ok {
		return
	}
	cl, err := s.svc.Classes.Delete(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err, classNotFound)
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (s *Server) classEnvironments(c *gin.Context) {
	id, ok := pathID(c, invalidClassID)
	if !ok {
		return
	}
	list, err := s.svc.Classes.Environments(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err, classNotFound)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) classMembers(c *gin.Context) {
	id, ok := pathID(c, invalidClassID)
	if !ok {
		return
	}
	list, err := s.svc.Classes.Members(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err, classNotFound)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) listClassUsers(c *gin.Context) {
	list, err := s.svc.ClassUsers.List(c.Request.Context())
	if err != nil {
		s.fail(c, err, classUserNotFound)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) getClassUser(c *gin.Context) {
	ids, ok := pathIDs(c, invalidClassUserID, "classId", "userId")
	if !ok {
		return
	}
	cu, err := s.svc.ClassUsers.Get(c.Request.Context(), ids[0], ids[1])
	if err != nil {
		s.fail(c, err, classUserNotFound)
		return
	}
	c.JSON(http.StatusOK, cu)
}

func (s *Server) createClassUser(c *gin.Context) {
	var req models.ClassUser
	if err := c.ShouldBindJSON(&req); err != nil || req.ClassID == 0 || req.UserID == 0 || req.Role == "" {
		badRequest(c, "Missing required fields")
		return
	}
	if !req.Role.Valid() {
		badRequest(c, "Invalid role")
		return
	}

	cu, err := s.svc.ClassUsers.Create(c.Request.Context(), &req)
	if err != nil {
		s.fail(c, err, classUserNotFound)
		return
	}
	c.JSON(http.StatusCreated, cu)
}

func (s *Server) updateClassUser(c *gin.Context) {
	var req struct {
		Role models.Role `json:"role"`
	}
	ids, ok := pathIDs(c, "Invalid class ID, user ID or missing role", "classId", "userId")
	if !ok {
		return
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Role == "" {
		badRequest(c, "Invalid class ID, user ID or missing role")
		return
	}
	if !req.Role.Valid() {
		badRequest(c, "Invalid role")
		return
	}

	cu, err := s.svc.ClassUsers.UpdateRole(c.Request.Context(), ids[0], ids[1], req.Role)
	if err != nil {
		s.fail(c, err, classUserNotFound)
		return
	}
	c.JSON(http.StatusOK, cu)
}

func (s *Server) deleteClassUser(c *gin.Context) {
	ids, ok := pathIDs(c, invalidClassUserID, "classId", "userId")
	if !ok {
		return
	}
	cu, err := s.svc.ClassUsers.Delete(c.Request.Context(), ids[0], ids[1])
	if err != nil {
		s.fail(c, err, classUserNotFound)
		return
	}
	c.JSON(http.StatusOK, cu)
}
