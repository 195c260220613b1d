// Package rest is the JSON/HTTP boundary of the API: routing, the auth gate,
// request validation and the mapping of service errors to status codes.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/eduhub/eduhub/internal/logging"
	"github.com/eduhub/eduhub/internal/server/models"
	"github.com/eduhub/eduhub/internal/server/services"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

type AuthService interface {
	Login(ctx context.Context, email, password string) (*services.Session, error)
	Signup(ctx context.Context, in models.NewUser) (*services.Session, error)
}

type UserService interface {
	List(ctx context.Context) ([]models.PublicUser, error)
	Get(ctx context.Context, id int64) (*models.PublicUser, error)
	Create(ctx context.Context, in models.NewUser) (*models.PublicUser, error)
	Update(ctx context.Context, id int64, upd *models.UserUpdate) (*models.PublicUser, error)
	Delete(ctx context.Context, id int64) (*models.PublicUser, error)
	Classes(ctx context.Context, id int64) ([]*models.UserClass, error)
}

type ClientService interface {
	List(ctx context.Context) ([]*models.Client, error)
	Get(ctx context.Context, id int64) (*models.Client, error)
	Create(ctx context.Context, c *models.Client) (*models.Client, error)
	Update(ctx context.Context, id int64, upd *models.ClientUpdate) (*models.Client, error)
	Delete(ctx context.Context, id int64) (*models.Client, error)
}

type ClientAccountService interface {
	List(ctx context.Context) ([]*models.ClientAccount, error)
	Get(ctx context.Context, clientID, userID int64) (*models.ClientAccount, error)
	Create(ctx context.Context, a *models.ClientAccount) (*models.ClientAccount, error)
	Delete(ctx context.Context, clientID, userID int64) (*models.ClientAccount, error)
}

type ClassService interface {
	List(ctx context.Context) ([]*models.Class, error)
	Get(ctx context.Context, id int64) (*models.Class, error)
	Create(ctx context.Context, c *models.Class) (*models.Class, error)
	Update(ctx context.Context, id int64, upd *models.ClassUpdate) (*models.Class, error)
	Delete(ctx context.Context, id int64) (*models.Class, error)
	Environments(ctx context.Context, id int64) ([]*models.Environment, error)
	Members(ctx context.Context, id int64) ([]*models.ClassMember, error)
}

type ClassUserService interface {
	List(ctx context.Context) ([]*models.ClassUser, error)
	Get(ctx context.Context, classID, userID int64) (*models.ClassUser, error)
	Create(ctx context.Context, cu *models.ClassUser) (*models.ClassUser, error)
	UpdateRole(ctx context.Context, classID, userID int64, role models.Role) (*models.ClassUser, error)
	Delete(ctx context.Context, classID, userID int64) (*models.ClassUser, error)
}

type EnvironmentService interface {
	List(ctx context.Context) ([]*models.Environment, error)
	Get(ctx context.Context, id int64) (*models.Environment, error)
	Create(ctx context.Context, e *models.Environment) (*models.Environment, error)
	Update(ctx context.Context, id int64, upd *models.EnvironmentUpdate) (*models.Environment, error)
	Delete(ctx context.Context, id int64) (*models.Environment, error)
}

type EnvironmentHistoryService interface {
	List(ctx context.Context) ([]*models.HistoryEntry, error)
	Conversation(ctx context.Context, environmentID, userID int64) ([]*models.HistoryEntry, error)
	Create(ctx context.Context, h *models.HistoryEntry) (*models.HistoryEntry, error)
	DeleteConversation(ctx context.Context, environmentID, userID int64) ([]*models.HistoryEntry, error)
}

// Services bundles the business logic the routes call into.
type Services struct {
	Auth               AuthService
	Users              UserService
	Clients            ClientService
	ClientAccounts     ClientAccountService
	Classes            ClassService
	ClassUsers         ClassUserService
	Environments       EnvironmentService
	EnvironmentHistory EnvironmentHistoryService
}

type Server struct {
	address   string
	logger    logging.Logger
	jwtSecret []byte
	svc       Services
	engine    *gin.Engine
}

func NewServer(address string, l logging.Logger, secretKey string, svc Services) *Server {
	s := &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		jwtSecret: []byte(secretKey),
		svc:       svc,
	}
	s.engine = s.routes()
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully, letting
// in-flight requests finish.
func (s *Server) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-stopped
	return nil
}
