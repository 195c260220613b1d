package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/eduhub/eduhub/internal/server/models"
	"github.com/gin-gonic/gin"
)

const (
	invalidEnvironmentID = "Invalid environment ID"
	environmentNotFound  = "Environment not found"
	invalidHistoryID     = "Invalid environment ID or user ID"
	historyNotFound      = "Environment history not found"
)

type environmentRequest struct {
	ClassID      int64           `json:"class_id"`
	Name         string          `json:"environment_name"`
	Description  string          `json:"environment_description"`
	Settings     json.RawMessage `json:"settings"`
	ActiveStatus *bool           `json:"active_status"`
}

// settingsObject accepts an absent value or a JSON object.
func settingsObject(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return true
	}
	var obj map[string]any
	return json.Unmarshal(raw, &obj) == nil && obj != nil
}

func (s *Server) listEnvironments(c *gin.Context) {
	list, err := s.svc.Environments.List(c.Request.Context())
	if err != nil {
		s.fail(c, err, environmentNotFound)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) getEnvironment(c *gin.Context) {
	id, ok := pathID(c, invalidEnvironmentID)
	if !ok {
		return
	}
	e, err := s.svc.Environments.Get(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err, environmentNotFound)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (s *Server) createEnvironment(c *gin.Context) {
	var req environmentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ClassID == 0 || req.Name == "" || req.Description == "" {
		badRequest(c, "Missing required fields")
		return
	}
	if !settingsObject(req.Settings) {
		badRequest(c, "Settings must be a JSON object")
		return
	}

	env := &models.Environment{
		ClassID:      req.ClassID,
		Name:         req.Name,
		Description:  req.Description,
		Settings:     req.Settings,
		ActiveStatus: req.ActiveStatus == nil || *req.ActiveStatus,
	}

	e, err := s.svc.Environments.Create(c.Request.Context(), env)
	if err != nil {
		s.fail(c, err, environmentNotFound)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (s *Server) updateEnvironment(c *gin.Context) {
	id, ok := pathID(c, invalidEnvironmentID)
	if !ok {
		return
	}

	var req models.EnvironmentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if !settingsObject(req.Settings) {
		badRequest(c, "Settings must be a JSON object")
		return
	}

	e, err := s.svc.Environments.Update(c.Request.Context(), id, &req)
	if err != nil {
		s.fail(c, err, environmentNotFound)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (s *Server) deleteEnvironment(c *gin.Context) {
	id, ok := pathID(c, invalidEnvironmentID)
	if !ok {
		return
	}
	e, err := s.svc.Environments.Delete(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err, environmentNotFound)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (s *Server) listHistory(c *gin.Context) {
	list, err := s.svc.EnvironmentHistory.List(c.Request.Context())
	if err != nil {
		s.fail(c, err, historyNotFound)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) getConversation(c *gin.Context) {
	ids, ok := pathIDs(c, invalidHistoryID, "environmentId", "userId")
	if !ok {
		return
	}
	list, err := s.svc.EnvironmentHistory.Conversation(c.Request.Context(), ids[0], ids[1])
	if err != nil {
		s.fail(c, err, historyNotFound)
		return
	}
	c.JSON(http.StatusOK, list)
}

type historyRequest struct {
	EnvironmentID int64              `json:"environment_id"`
	UserID        int64              `json:"user_id"`
	Timestamp     *time.Time         `json:"timestamp"`
	Message       string             `json:"message"`
	MessageType   models.MessageType `json:"message_type"`
}

func (s *Server) createHistoryEntry(c *gin.Context) {
	var req historyRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.EnvironmentID == 0 || req.UserID == 0 || req.Message == "" || req.MessageType == "" {
		badRequest(c, "Missing required fields")
		return
	}
	if !req.MessageType.Valid() {
		badRequest(c, "Invalid message type")
		return
	}

	entry := &models.HistoryEntry{
		EnvironmentID: req.EnvironmentID,
		UserID:        req.UserID,
		Message:       req.Message,
		MessageType:   req.MessageType,
	}
	if req.Timestamp != nil {
		entry.Timestamp = *req.Timestamp
	}

	h, err := s.svc.EnvironmentHistory.Create(c.Request.Context(), entry)
	if err != nil {
		s.fail(c, err, historyNotFound)
		return
	}
	c.JSON(http.StatusCreated, h)
}

func (s *Server) deleteConversation(c *gin.Context) {
	ids, ok := pathIDs(c, invalidHistoryID, "environmentId", "userId")
	if !ok {
		return
	}
	list, err := s.svc.EnvironmentHistory.DeleteConversation(c.Request.Context(), ids[0], ids[1])
	if err != nil {
		s.fail(c, err, historyNotFound)
		return
	}
	c.JSON(http.StatusOK, list)
}
