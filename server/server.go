package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/victorucama-create/nexasuite-erp/auth"
	"github.com/victorucama-create/nexasuite-erp/erp"
	"github.com/victorucama-create/nexasuite-erp/internal/config"
	"github.com/victorucama-create/nexasuite-erp/token"
	"github.com/victorucama-create/nexasuite-erp/users"
)

const apiVersion = "1.0.0"

type Server struct {
	env    string // Environment (e.g., "development", "production")
	mux    *http.ServeMux
	routes []string
	config config.Config
	auth   *auth.Service
	users  users.Repo
	data   erp.Repos
}

func New(cfg config.Config, userRepo users.Repo, data erp.Repos) (*Server, error) {
	tokenManager := token.New(
		token.NewHMACSigner(cfg.GetAccessTokenSecret()),
		token.NewHMACSigner(cfg.GetRefreshTokenSecret()),
		token.WithTokenExpiry(cfg.GetAccessTokenExpiry(), cfg.GetRefreshTokenExpiry()),
	)

	authService, err := auth.NewService(userRepo, tokenManager)
	if err != nil {
		return nil, errors.Wrap(err, "[Server New] failed to create auth service")
	}

	s := &Server{
		mux:    http.NewServeMux(),
		config: cfg,
		auth:   authService,
		users:  userRepo,
		data:   data,
	}
	s.env = cfg.GetEnv()

	// Bootstrap: ensure the demo admin account exists
	if err := s.initialiseSystem(); err != nil {
		return nil, errors.Wrap(err, "[Server New] failed to initialise the system")
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) isDevelopment() bool {
	return s.env != "production"
}

func (s *Server) logRoutes() {
	if !s.isDevelopment() {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

func nowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
