package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ArvinAIEngineer/mdm/internal/match"
	"github.com/ArvinAIEngineer/mdm/internal/models"
	"github.com/ArvinAIEngineer/mdm/internal/store"
)

// AllCustomers: GET /api/v1/customers
func AllCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := Store.ListAll()
	if err != nil {
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"status": "Server_Error", "message": "database error"})
		return
	}
	writeJSONResp(w, http.StatusOK, customers)
}

// CreateCustomer: POST /api/v1/customers
// Inserts a confirmed new customer; the store assigns the id and the record
// starts as pending.
func CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var rec models.ExtractedRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": "invalid JSON body"})
		return
	}
	id, err := Store.Insert(rec)
	if err != nil {
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"status": "Server_Error", "message": "failed to create customer"})
		return
	}
	writeJSONResp(w, http.StatusCreated, map[string]any{
		"id":                  id,
		"verification_status": models.StatusPending,
	})
}

// UpdateCustomerStatus: PATCH /api/v1/customers/{id}/status
func UpdateCustomerStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": "invalid customer id"})
		return
	}
	var body struct {
		Status models.VerificationStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": "invalid JSON body"})
		return
	}
	if body.Status != models.StatusPending && body.Status != models.StatusVerified {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": "status must be pending or verified"})
		return
	}
	if err := Store.UpdateStatus(uint(id), body.Status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONResp(w, http.StatusNotFound, map[string]any{"status": "Not_Found", "message": "customer not found"})
			return
		}
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"status": "Server_Error", "message": "database error"})
		return
	}
	writeJSONResp(w, http.StatusOK, map[string]any{
		"id":                  id,
		"verification_status": body.Status,
	})
}

// SearchCustomers: POST /api/v1/customers/search
// Body carries any subset of the recognized identity fields; the candidates
// are ranked under the strong-field lookup policy.
func SearchCustomers(w http.ResponseWriter, r *http.Request) {
	var rec models.ExtractedRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": "invalid JSON body"})
		return
	}
	customers, err := Store.ListAll()
	if err != nil {
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"status": "Server_Error", "message": "database error"})
		return
	}
	results := match.Rank(rec, customers, match.LookupPolicy())
	if len(results) == 0 {
		writeJSONResp(w, http.StatusOK, map[string]any{
			"status":  "Not_Found",
			"message": "No matching customer record was found.",
		})
		return
	}
	writeJSONResp(w, http.StatusOK, map[string]any{
		"status":  "Match_Found",
		"results": results,
	})
}
