// Package mockserver is the local data source: an in-process HTTP server
// answering mock requests from the APIs stored in the app database.
package mockserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/wailsapp/wails/v2/pkg/logger"

	"eoapi/internal/models"
)

// ApiLookup finds a stored API by its uuid, nil when unknown.
type ApiLookup interface {
	FindByUUID(ctx context.Context, id string) (*models.ApiData, error)
}

type Server struct {
	echo *echo.Echo
	apis ApiLookup
	log  logger.Logger
	port int

	mu      sync.Mutex
	running bool
}

func New(port int, apis ApiLookup, log logger.Logger) *Server {
	if log == nil {
		log = logger.NewDefaultLogger()
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{echo: e, apis: apis, log: log, port: port}
	e.GET("/system/status", s.status)
	e.Any("/mock/*", s.mock)
	return s
}

// Handler exposes the routes without binding a port.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// URL is the base url mock paths are appended to.
func (s *Server) URL() string {
	return fmt.Sprintf("http://127.0.0.1:%d/mock/", s.port)
}

// Start binds the port and serves in the background. It returns once the
// listener is open, so port conflicts surface here.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}

	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", s.port))
	if err != nil {
		return fmt.Errorf("mock server listen: %w", err)
	}
	s.echo.Listener = ln
	s.running = true

	go func() {
		if err := s.echo.Start(""); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error(fmt.Sprintf("mock server stopped: %v", err))
		}
	}()
	s.log.Info("mock server listening on " + s.URL())
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return nil
	}
	s.running = false
	return s.echo.Shutdown(ctx)
}

func (s *Server) status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"statusCode": http.StatusOK})
}

func (s *Server) mock(c echo.Context) error {
	id := c.QueryParam("mockID")
	if id == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"statusCode": http.StatusBadRequest,
			"message":    "mockID is required",
		})
	}

	api, err := s.apis.FindByUUID(c.Request().Context(), id)
	if err != nil {
		s.log.Error(fmt.Sprintf("mock server: lookup %s: %v", id, err))
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"statusCode": http.StatusInternalServerError,
			"message":    "lookup failed",
		})
	}
	if api == nil {
		return c.JSON(http.StatusNotFound, map[string]any{
			"statusCode": http.StatusNotFound,
			"message":    "no mock for " + id,
		})
	}

	status := api.MockStatus
	if status == 0 {
		status = http.StatusOK
	}
	if json.Valid([]byte(api.MockResponse)) {
		return c.Blob(status, echo.MIMEApplicationJSON, []byte(api.MockResponse))
	}
	return c.String(status, api.MockResponse)
}
