package server

import (
	"fmt"
	"net/http"
	"time"
)

type healthResponse struct {
	Success     bool   `json:"success"`
	Status      string `json:"status"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// HealthHandler reports API liveness
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Success:     true,
			Status:      "OK",
			Message:     "NexaSuite ERP API está funcionando",
			Timestamp:   nowTimestamp(),
			Version:     apiVersion,
			Environment: s.env,
		})
	}
}

type indexResponse struct {
	Message         string            `json:"message"`
	Version         string            `json:"version"`
	Endpoints       map[string]string `json:"endpoints"`
	DemoCredentials map[string]string `json:"demoCredentials,omitempty"`
}

// IndexHandler serves a development landing document describing the API
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := indexResponse{
			Message: "NexaSuite ERP API Development Server",
			Version: apiVersion,
			Endpoints: map[string]string{
				"auth":       RouteAuthLogin,
				"dashboard":  RouteDashboard,
				"accounting": "/api/accounting/*",
				"crm":        "/api/crm/*",
				"system":     "/api/system/*",
			},
		}
		if s.isDevelopment() {
			body.DemoCredentials = map[string]string{
				"email":    defaultAdminEmail,
				"password": defaultAdminPassword,
			}
		}
		writeJSON(w, http.StatusOK, body)
	}
}

// NotFoundHandler is the JSON fallthrough for unknown routes
func (s *Server) NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, envelope{
			Success: false,
			Message: "Rota não encontrada",
			Path:    r.URL.Path,
		})
	}
}

type uploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
}

// UploadHandler simulates a file upload
func (s *Server) UploadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, envelope{
			Success: true,
			Message: "Arquivo enviado com sucesso",
			Data: uploadResult{
				URL:      fmt.Sprintf("https://api.nexasuite.com/uploads/%d-file.pdf", time.Now().UnixMilli()),
				Filename: "arquivo-upload.pdf",
				Size:     1024 * 1024,
				Type:     "application/pdf",
			},
		})
	}
}

// PlaceholderGetHandler acknowledges demo endpoints that have no data yet
func (s *Server) PlaceholderGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, envelope{
			Success: true,
			Data:    []any{},
			Message: "Endpoint disponível. Dados mockados para demonstração.",
		})
	}
}

// PlaceholderPostHandler echoes the submitted payload back
func (s *Server) PlaceholderPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body any
		decodeJSONBody(r, &body)
		writeJSON(w, http.StatusOK, envelope{
			Success: true,
			Message: "Operação realizada com sucesso",
			Data:    body,
		})
	}
}
