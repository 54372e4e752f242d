package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"taskboard/pkg/report"
	"taskboard/pkg/task"
)

func (s *Server) handleTaskList(w http.ResponseWriter, r *http.Request) {
	var key report.SortKey
	if v := r.URL.Query().Get("sort"); v != "" {
		k, ok := report.ParseSortKey(v)
		if !ok {
			writeError(w, 400, "sort must be one of due_date, status, category")
			return
		}
		key = k
	}
	tasks, err := s.tasks.List(r.Context())
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}
	if key != "" {
		tasks = report.SortTasks(tasks, key)
	}
	writeJSON(w, 200, tasks)
}

func (s *Server) handleTaskGet(w http.ResponseWriter, r *http.Request) {
	id := task.ID(r.PathValue("id"))
	t, err := s.tasks.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, 200, t)
}

func (s *Server) handleTaskCreate(w http.ResponseWriter, r *http.Request) {
	var d task.Draft
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		writeError(w, 400, "invalid JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(d.Name) == "" {
		writeError(w, 400, "name is required")
		return
	}
	result, err := s.tasks.Create(r.Context(), d)
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}
	writeJSON(w, 201, result)
}

func (s *Server) handleTaskUpdate(w http.ResponseWriter, r *http.Request) {
	id := task.ID(r.PathValue("id"))
	var updates map[string]any
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		writeError(w, 400, "invalid JSON: "+err.Error())
		return
	}
	if err := task.CheckUpdates(updates); err != nil {
		writeError(w, 400, err.Error())
		return
	}
	if name, ok := updates["name"]; ok {
		if str, _ := name.(string); strings.TrimSpace(str) == "" {
			writeError(w, 400, "name must not be empty")
			return
		}
	}
	t, err := s.tasks.Update(r.Context(), id, updates)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, 200, t)
}

func (s *Server) handleTaskDelete(w http.ResponseWriter, r *http.Request) {
	id := task.ID(r.PathValue("id"))
	if err := s.tasks.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTaskComplete(w http.ResponseWriter, r *http.Request) {
	id := task.ID(r.PathValue("id"))
	t, err := s.tasks.Complete(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, 200, t)
}
