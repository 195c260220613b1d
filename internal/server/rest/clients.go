package rest

import (
	"net/http"

	"github.com/eduhub/eduhub/internal/server/models"
	"github.com/gin-gonic/gin"
)

const (
	invalidClientID        = "Invalid client ID"
	clientNotFound         = "Client not found"
	invalidClientAccountID = "Invalid client ID or user ID"
	clientAccountNotFound  = "Client account not found"
)

func (s *Server) listClients(c *gin.Context) {
	list, err := s.svc.Clients.List(c.Request.Context())
	if err != nil {
		s.fail(c, err, clientNotFound)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) getClient(c *gin.Context) {
	id, ok := pathID(c, invalidClientID)
	if !ok {
		return
	}
	cl, err := s.svc.Clients.Get(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err, clientNotFound)
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (s *Server) createClient(c *gin.Context) {
	var req models.Client
	if err := c.ShouldBindJSON(&req); err != nil || req.APIKey == "" || req.SchoolName == "" {
		badRequest(c, "Missing required fields")
		return
	}
	if req.SubscriptionType != "" && !req.SubscriptionType.Valid() {
		badRequest(c, "Invalid subscription type")
		return
	}

	cl, err := s.svc.Clients.Create(c.Request.Context(), &req)
	if err != nil {
		s.fail(c, err, clientNotFound)
		return
	}
	c.JSON(http.StatusCreated, cl)
}

func (s *Server) updateClient(c *gin.Context) {
	id, ok := pathID(c, invalidClientID)
	if !ok {
		return
	}

	var req models.ClientUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if req.SubscriptionType != nil && !req.SubscriptionType.Valid() {
		badRequest(c, "Invalid subscription type")
		return
	}

	cl, err := s.svc.Clients.Update(c.Request.Context(), id, &req)
	if err != nil {
		s.fail(c, err, clientNotFound)
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (s *Server) deleteClient(c *gin.Context) {
	id, ok := pathID(c, invalidClientID)
	if !ok {
		return
	}
	cl, err := s.svc.Clients.Delete(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err, clientNotFound)
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (s *Server) listClientAccounts(c *gin.Context) {
	list, err := s.svc.ClientAccounts.List(c.Request.Context())
	if err != nil {
		s.fail(c, err, clientAccountNotFound)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) getClientAccount(c *gin.Context) {
	ids, ok := pathIDs(c, invalidClientAccountID, "clientId", "userId")
	if !ok {
		return
	}
	a, err := s.svc.ClientAccounts.Get(c.Request.Context(), ids[0], ids[1])
	if err != nil {
		s.fail(c, err, clientAccountNotFound)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (s *Server) createClientAccount(c *gin.Context) {
	var req models.ClientAccount
	if err := c.ShouldBindJSON(&req); err != nil || req.ClientID == 0 || req.UserID == 0 {
		badRequest(c, "Missing required fields")
		return
	}

	a, err := s.svc.ClientAccounts.Create(c.Request.Context(), &req)
	if err != nil {
		s.fail(c, err, clientAccountNotFound)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (s *Server) deleteClientAccount(c *gin.Context) {
	ids, ok := pathIDs(c, invalidClientAccountID, "clientId", "userId")
	if !ok {
		return
	}
	a, err := s.svc.ClientAccounts.Delete(c.Request.Context(), ids[0], ids[1])
	if err != nil {
		s.fail(c, err, clientAccountNotFound)
		return
	}
	c.JSON(http.StatusOK, a)
}
