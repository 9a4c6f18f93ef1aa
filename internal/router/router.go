package router

import (
	"fmt"
	"net/http"

	"github.com/ArvinAIEngineer/mdm/internal/handlers"
	"github.com/ArvinAIEngineer/mdm/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.LoggingMiddleware)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})

	// customer records
	r.Get("/api/v1/customers", handlers.AllCustomers)
	r.Post("/api/v1/customers", handlers.CreateCustomer)
	r.Patch("/api/v1/customers/{id}/status", handlers.UpdateCustomerStatus)
	r.Post("/api/v1/customers/search", handlers.SearchCustomers)

	// document verification
	r.Post("/api/v1/verify-document", handlers.VerifyDocument)
	r.Post("/api/v1/verify-documents", handlers.VerifyDocuments)

	// share links
	r.Post("/api/v1/customers/generate-share-link", handlers.GenerateShareLink)
	r.Get("/api/v1/customer-info/{id}", handlers.GetCustomerInfo)
	r.Get("/customer/{id}/qrcode", handlers.GetCustomerQRCode)

	// onboarding flow
	r.Post("/api/v1/session/start", handlers.StartSession)
	r.Post("/api/v1/session/{id}/event", handlers.SessionEvent)

	return r
}
