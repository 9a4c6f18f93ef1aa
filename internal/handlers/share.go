package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/ArvinAIEngineer/mdm/internal/models"
)

type shareClaims struct {
	CustomerID string `json:"customer_id"`
	jwt.RegisteredClaims
}

type generateShareLinkResp struct {
	ShareableURL string `json:"shareable_url"`
}

func getShareSecret() ([]byte, error) {
	if s := os.Getenv("SHARE_TOKEN_SECRET"); s != "" {
		return []byte(s), nil
	}
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s), nil
	}
	return nil, errors.New("missing SHARE_TOKEN_SECRET/JWT_SECRET")
}

// findCustomer scans the store snapshot for an id. The contract exposes no
// point lookup, and the record sets here are small.
func findCustomer(id uint) (models.Customer, bool, error) {
	customers, err := Store.ListAll()
	if err != nil {
		return models.Customer{}, false, err
	}
	for _, c := range customers {
		if c.ID == id {
			return c, true, nil
		}
	}
	return models.Customer{}, false, nil
}

// GenerateShareLink: POST /api/v1/customers/generate-share-link
// Issues a short-lived signed link to a customer profile, e.g. for the
// customer to confirm their stored details.
func GenerateShareLink(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Be liberal in what we accept from the frontend
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	custID := ""
	if v, ok := payload["customer_id"].(string); ok {
		custID = strings.TrimSpace(v)
	} else if v, ok := payload["customer_id"].(float64); ok {
		custID = strconv.Itoa(int(v))
	} else if v, ok := payload["customerId"].(string); ok { // optional camelCase fallback
		custID = strings.TrimSpace(v)
	}
	if custID == "" {
		http.Error(w, "customer_id is required", http.StatusBadRequest)
		return
	}

	// expires_in_hours may come as number or string, and snake_case or camelCase
	parseHours := func(x any) (int, bool) {
		switch t := x.(type) {
		case float64:
			return int(t), true
		case json.Number:
			if i, err := strconv.Atoi(t.String()); err == nil {
				return i, true
			}
		case string:
			if i, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
				return i, true
			}
		}
		return 0, false
	}
	expires := 0
	for _, k := range []string{"expires_in_hours", "expiresInHours", "duration"} {
		if v, ok := payload[k]; ok {
			if i, ok2 := parseHours(v); ok2 {
				expires = i
				break
			}
		}
	}
	// Enforce 1..168 hours to avoid immediately-expired tokens
	if expires < 1 || expires > 168 {
		http.Error(w, "expires_in_hours must be between 1 and 168", http.StatusBadRequest)
		return
	}

	id, err := strconv.ParseUint(custID, 10, 64)
	if err != nil {
		http.Error(w, "invalid customer_id", http.StatusBadRequest)
		return
	}
	_, found, err := findCustomer(uint(id))
	if err != nil {
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "customer not found", http.StatusNotFound)
		return
	}

	secret, err := getShareSecret()
	if err != nil {
		http.Error(w, "server misconfigured", http.StatusInternalServerError)
		return
	}

	exp := time.Now().Add(time.Duration(expires) * time.Hour)
	claims := shareClaims{
		CustomerID: custID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(secret)
	if err != nil {
		http.Error(w, "failed to sign share token", http.StatusInternalServerError)
		return
	}

	base := os.Getenv("FRONTEND_BASE_URL")
	if base == "" {
		base = "http://localhost:3000"
	}
	url := fmt.Sprintf("%s/customer/%s?token=%s", trimRightSlash(base), custID, signed)
	_ = json.NewEncoder(w).Encode(generateShareLinkResp{ShareableURL: url})
}

// GetCustomerInfo: GET /api/v1/customer-info/{id}?token=...
func GetCustomerInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "This share link is invalid or has expired.", http.StatusUnauthorized)
		return
	}

	secret, err := getShareSecret()
	if err != nil {
		http.Error(w, "server misconfigured", http.StatusInternalServerError)
		return
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &shareClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		http.Error(w, "This share link is invalid or has expired.", http.StatusUnauthorized)
		return
	}
	claims, ok := parsed.Claims.(*shareClaims)
	if !ok || claims.CustomerID == "" || claims.ExpiresAt == nil || time.Now().After(claims.ExpiresAt.Time) {
		http.Error(w, "This share link is invalid or has expired.", http.StatusUnauthorized)
		return
	}
	if claims.CustomerID != id {
		http.Error(w, "forbidden: id mismatch", http.StatusForbidden)
		return
	}

	custID, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	cust, found, err := findCustomer(uint(custID))
	if err != nil {
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "customer not found", http.StatusNotFound)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"customer":    cust,
		"valid_until": claims.ExpiresAt.Time,
	})
}

// GetCustomerQRCode: GET /customer/{id}/qrcode
func GetCustomerQRCode(w http.ResponseWriter, r *http.Request) {
	custID := chi.URLParam(r, "id")
	if custID == "" {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	base := os.Getenv("FRONTEND_BASE_URL")
	if base == "" {
		base = "http://localhost:3000"
	}
	data := trimRightSlash(base) + "/customer/" + custID

	// Generate QR code as PNG
	png, err := qrcode.Encode(data, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func trimRightSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
