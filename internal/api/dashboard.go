package api

import (
	"fmt"
	"log"
	"net/http"

	"taskboard/pkg/dashboard"
	"taskboard/pkg/report"
)

func (s *Server) summary(r *http.Request) (dashboard.Summary, error) {
	tasks, err := s.tasks.List(r.Context())
	if err != nil {
		return dashboard.Summary{}, err
	}
	days := queryInt(r, "days", report.DefaultWindowDays)
	return dashboard.Build(tasks, s.now(), days), nil
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sum, err := s.summary(r)
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}
	writeJSON(w, 200, sum)
}

const pageTemplate = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>Dashboard</title></head>
<body style="max-width: 900px; margin: 2rem auto">
%s</body></html>
`

func (s *Server) handleDashboardPage(w http.ResponseWriter, r *http.Request) {
	sum, err := s.summary(r)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	body, err := dashboard.HTML(sum)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := fmt.Fprintf(w, pageTemplate, body); err != nil {
		log.Printf("write dashboard: %v", err)
	}
}
