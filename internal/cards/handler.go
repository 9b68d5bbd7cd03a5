package cards

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/qusai-Kagalwala/repo-vista/internal/config"
	"github.com/qusai-Kagalwala/repo-vista/pkg/logger"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, details interface{}) {
	payload := map[string]interface{}{"error": msg}
	if details != nil {
		payload["details"] = details
	}
	writeJSON(w, status, payload)
}

// editRequest is the body for language add/update calls. Percentage is
// raw JSON so both numbers and strings are accepted; the core coerces
// anything non-numeric to 0.
type editRequest struct {
	Name       string          `json:"name"`
	Percentage json.RawMessage `json:"percentage"`
}

func (r editRequest) rawPercentage() string {
	var s string
	if err := json.Unmarshal(r.Percentage, &s); err == nil {
		return s
	}
	return string(r.Percentage)
}

// RegisterRoutes mounts card endpoints onto router
func RegisterRoutes(r *mux.Router, db *sql.DB, cfg *config.Config) {
	r.HandleFunc("/cards/{owner}/{repo}/refresh", func(w http.ResponseWriter, req *http.Request) {
		vars := mux.Vars(req)
		c, err := Refresh(req.Context(), db, cfg, vars["owner"], vars["repo"])
		if err != nil {
			if err == ErrNotFound {
				writeError(w, http.StatusNotFound, "Repository not found", nil)
				return
			}
			if _, ok := err.(ExternalError); ok {
				writeError(w, http.StatusServiceUnavailable, "External data source unavailable", map[string]string{"details": err.Error()})
				return
			}
			if ve, ok := err.(*ValidationError); ok {
				writeError(w, http.StatusBadGateway, "Upstream data failed validation", ve.Errors)
				return
			}
			logger.Error("refresh failed", logger.WithError(err))
			writeError(w, http.StatusInternalServerError, "Internal server error", nil)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}).Methods("POST")

	r.HandleFunc("/cards/{owner}/{repo}", func(w http.ResponseWriter, req *http.Request) {
		vars := mux.Vars(req)
		c, err := GetCard(db, vars["owner"], vars["repo"])
		if err != nil {
			if err == ErrNotFound {
				writeError(w, http.StatusNotFound, "Card not found", nil)
				return
			}
			logger.Error("get card failed", logger.WithError(err))
			writeError(w, http.StatusInternalServerError, "Internal server error", nil)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}).Methods("GET")

	r.HandleFunc("/cards/{owner}/{repo}/image", func(w http.ResponseWriter, req *http.Request) {
		vars := mux.Vars(req)
		path := ImagePath(cfg.CacheDir, vars["owner"], vars["repo"])
		if _, err := os.Stat(path); err != nil {
			writeError(w, http.StatusNotFound, "Card image not found", nil)
			return
		}
		http.ServeFile(w, req, path)
	}).Methods("GET")

	r.HandleFunc("/cards/{owner}/{repo}/languages", func(w http.ResponseWriter, req *http.Request) {
		vars := mux.Vars(req)
		var body editRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Name == "" {
			writeError(w, http.StatusBadRequest, "Body must include a language name", nil)
			return
		}
		pct, _ := strconv.Atoi(body.rawPercentage())
		c, err := AddLanguage(db, cfg, vars["owner"], vars["repo"], body.Name, pct)
		if err != nil {
			respondEditError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}).Methods("POST")

	r.HandleFunc("/cards/{owner}/{repo}/languages/{index}", func(w http.ResponseWriter, req *http.Request) {
		vars := mux.Vars(req)
		index, err := strconv.Atoi(vars["index"])
		if err != nil {
			writeError(w, http.StatusBadRequest, "Index must be an integer", nil)
			return
		}
		var body editRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Body must include a percentage", nil)
			return
		}
		c, err := SetPercentage(db, cfg, vars["owner"], vars["repo"], index, body.rawPercentage())
		if err != nil {
			respondEditError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}).Methods("PATCH")

	r.HandleFunc("/cards/{owner}/{repo}/languages/{index}", func(w http.ResponseWriter, req *http.Request) {
		vars := mux.Vars(req)
		index, err := strconv.Atoi(vars["index"])
		if err != nil {
			writeError(w, http.StatusBadRequest, "Index must be an integer", nil)
			return
		}
		c, err := RemoveLanguage(db, cfg, vars["owner"], vars["repo"], index)
		if err != nil {
			respondEditError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}).Methods("DELETE")

	r.HandleFunc("/cards/{owner}/{repo}", func(w http.ResponseWriter, req *http.Request) {
		vars := mux.Vars(req)
		ok, err := DeleteCard(db, vars["owner"], vars["repo"])
		if err != nil {
			logger.Error("delete card failed", logger.WithError(err))
			writeError(w, http.StatusInternalServerError, "Internal server error", nil)
			return
		}
		if !ok {
			writeError(w, http.StatusNotFound, "Card not found", nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
	}).Methods("DELETE")

	r.HandleFunc("/status", func(w http.ResponseWriter, req *http.Request) {
		total, err := TotalCount(db)
		if err != nil {
			logger.Error("status failed", logger.WithError(err))
			writeError(w, http.StatusInternalServerError, "Internal server error", nil)
			return
		}
		last, err := GetLastRefreshed(db)
		if err != nil {
			logger.Error("status failed", logger.WithError(err))
			writeError(w, http.StatusInternalServerError, "Internal server error", nil)
			return
		}
		var lastStr *string
		if last != nil {
			s := last.UTC().Format(time.RFC3339)
			lastStr = &s
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"total_cards": total, "last_refreshed_at": lastStr})
	}).Methods("GET")
}

func respondEditError(w http.ResponseWriter, err error) {
	if err == ErrNotFound {
		writeError(w, http.StatusNotFound, "Card not found", nil)
		return
	}
	logger.Error("edit languages failed", logger.WithError(err))
	writeError(w, http.StatusInternalServerError, "Internal server error", nil)
}
