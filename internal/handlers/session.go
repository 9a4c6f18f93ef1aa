package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ArvinAIEngineer/mdm/internal/match"
	"github.com/ArvinAIEngineer/mdm/internal/models"
	"github.com/ArvinAIEngineer/mdm/internal/session"
)

func newSessionID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// StartSession: POST /api/v1/session/start
// Opens an onboarding-flow session and advances it past init.
func StartSession(w http.ResponseWriter, r *http.Request) {
	sess := session.Session{ID: newSessionID(), State: session.StateInit}
	next, act, err := session.Transition(sess.State, session.EventStart)
	if err != nil {
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"status": "Server_Error", "message": err.Error()})
		return
	}
	sess.State = next
	if err := Sessions.Save(r.Context(), sess); err != nil {
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"status": "Server_Error", "message": "failed to persist session"})
		return
	}
	writeJSONResp(w, http.StatusOK, map[string]any{
		"session_id": sess.ID,
		"state":      sess.State,
		"action":     act,
	})
}

// SessionEvent: POST /api/v1/session/{id}/event
// Body: {"event": "...", "fields": {...}}. Fields accompany fields_entered.
// When the flow reaches processing with manual fields, the lookup runs
// immediately and the session advances to showing_result in the same call.
func SessionEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, err := Sessions.Load(r.Context(), id)
	if errors.Is(err, session.ErrSessionNotFound) {
		writeJSONResp(w, http.StatusNotFound, map[string]any{"status": "Not_Found", "message": "session not found or expired"})
		return
	} else if err != nil {
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"status": "Server_Error", "message": "failed to load session"})
		return
	}

	var body struct {
		Event  session.Event           `json:"event"`
		Fields *models.ExtractedRecord `json:"fields"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": "invalid JSON body"})
		return
	}

	next, act, err := session.Transition(sess.State, body.Event)
	if err != nil {
		writeJSONResp(w, http.StatusConflict, map[string]any{"status": "Invalid_Transition", "message": err.Error(), "state": sess.State})
		return
	}
	sess.State = next
	if body.Fields != nil {
		sess.Fields = *body.Fields
	}

	resp := map[string]any{
		"session_id": sess.ID,
		"state":      next,
		"action":     act,
	}

	if next == session.StateProcessing && body.Event == session.EventFieldsEntered {
		customers, err := Store.ListAll()
		if err != nil {
			writeJSONResp(w, http.StatusInternalServerError, map[string]any{"status": "Server_Error", "message": "database error"})
			return
		}
		results := match.Rank(sess.Fields, customers, match.LookupPolicy())
		next, act, _ = session.Transition(sess.State, session.EventResultReady)
		sess.State = next
		resp["state"] = next
		resp["action"] = act
		resp["results"] = results
		switch {
		case len(results) == 0:
			resp["status"] = "Not_Found"
		case results[0].Verified:
			resp["status"] = "Verified"
		default:
			resp["status"] = "Potential_Match"
		}
	}

	if err := Sessions.Save(r.Context(), sess); err != nil {
		writeJSONResp(w, http.StatusInternalServerError, map[string]any{"status": "Server_Error", "message": "failed to persist session"})
		return
	}
	writeJSONResp(w, http.StatusOK, resp)
}
