package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ArvinAIEngineer/mdm/internal/session"
	"github.com/ArvinAIEngineer/mdm/internal/store"
)

// Store is the customer record store used by the handlers; set at startup.
var Store store.RecordStore

// Sessions holds onboarding-flow state; set at startup.
var Sessions *session.Store

func writeJSONResp(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
