package congress

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/EmpoweredVote/EV-Legislators/internal/congressimport"
	"github.com/EmpoweredVote/EV-Legislators/internal/db"
	"github.com/go-chi/chi/v5"
)

func TermsHandler(w http.ResponseWriter, r *http.Request) {
	q := db.DB.Model(&LegislatorTerm{})

	if state := r.URL.Query().Get("state"); state != "" {
		q = q.Where("state = ?", strings.ToUpper(state))
	}
	if chamber := r.URL.Query().Get("chamber"); chamber != "" {
		q = q.Where("chamber = ?", chamber)
	}
	if s := r.URL.Query().Get("session"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "session must be an integer", http.StatusBadRequest)
			return
		}
		q = q.Where("session_id = ?", id)
	}

	var terms []LegislatorTerm
	if err := q.Order("session_id desc, sort_name").Find(&terms).Error; err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(terms); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func LegislatorHandler(w http.ResponseWriter, r *http.Request) {
	bioguide := chi.URLParam(r, "bioguide")

	var terms []LegislatorTerm
	err := db.DB.Order("session_id desc").Find(&terms, "bioguide_id = ?", bioguide).Error
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(terms) == 0 {
		http.Error(w, "No terms found for "+bioguide, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(terms); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

type sessionResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Wikidata  string `json:"wikidata,omitempty"`
	Rows      int64  `json:"rows"`
}

func SessionsHandler(w http.ResponseWriter, r *http.Request) {
	var counts []struct {
		SessionID int
		Rows      int64
	}
	err := db.DB.Model(&LegislatorTerm{}).
		Select("session_id, count(*) as rows").
		Group("session_id").
		Order("session_id desc").
		Find(&counts).Error
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	response := make([]sessionResponse, 0, len(counts))
	for _, c := range counts {
		item := sessionResponse{ID: c.SessionID, Rows: c.Rows}
		if s, ok := congressimport.Lookup(c.SessionID); ok {
			item.Name = s.Name
			item.StartDate = s.StartDate
			item.EndDate = s.EndDate
			item.Wikidata = s.Wikidata
		}
		response = append(response, item)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
