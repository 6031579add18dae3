package server

import "net/http"

func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", s.handleInfo)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /report", s.handleReport)
	mux.HandleFunc("GET /drives", s.handleDrives)
	mux.HandleFunc("GET /summary", s.handleSummary)
	mux.HandleFunc("GET /system", s.handleSystem)

	return mux
}
