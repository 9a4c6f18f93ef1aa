package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/ArvinAIEngineer/mdm/internal/extract"
	"github.com/ArvinAIEngineer/mdm/internal/match"
	"github.com/ArvinAIEngineer/mdm/internal/models"
	"github.com/ArvinAIEngineer/mdm/internal/ocr"
)

// formFile fetches the first of the given multipart field names that carries
// a file.
func formFile(r *http.Request, names ...string) (multipart.File, error) {
	for _, n := range names {
		if f, _, err := r.FormFile(n); err == nil {
			return f, nil
		}
	}
	return nil, fmt.Errorf("missing file field %q (send multipart/form-data)", names[0])
}

// firstFormFile falls back to whatever file field the client sent.
func firstFormFile(r *http.Request) (multipart.File, bool) {
	if r.MultipartForm == nil || r.MultipartForm.File == nil {
		return nil, false
	}
	for k := range r.MultipartForm.File {
		if f, _, err := r.FormFile(k); err == nil {
			fmt.Println("verify: falling back to first file field:", k)
			return f, true
		}
	}
	return nil, false
}

// extractFromUpload reads, OCRs and field-extracts one uploaded document.
func extractFromUpload(r *http.Request, file multipart.File, docType extract.DocumentType) (models.ExtractedRecord, string, error) {
	defer file.Close()

	imgBytes, err := io.ReadAll(file)
	if err != nil || len(imgBytes) == 0 {
		return models.ExtractedRecord{}, "", fmt.Errorf("failed to read uploaded file")
	}
	raw, err := ocr.Text(r.Context(), imgBytes)
	if err != nil {
		return models.ExtractedRecord{}, "", err
	}
	rec, err := extract.FieldsFromText(r.Context(), raw, docType)
	if err != nil {
		return models.ExtractedRecord{}, "", err
	}
	return rec, raw, nil
}

// VerifyDocument: POST /api/v1/verify-document
// multipart/form-data with file field "document" and optional "document_type"
// (id|bank|generic). OCR + extraction, then a ranked lookup against the
// customer store under the strong-field policy.
func VerifyDocument(w http.ResponseWriter, r *http.Request) {
	// Limit body to 10MB
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": "failed to parse form or file too large"})
		return
	}

	file, err := formFile(r, "document", "file", "upload", "scan", "document[]", "files[]")
	if err != nil {
		var ok bool
		if file, ok = firstFormFile(r); !ok {
			writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": err.Error()})
			return
		}
	}

	docType := extract.DocumentType(r.FormValue("document_type"))
	if docType != extract.DocID && docType != extract.DocBank {
		docType = extract.DocGeneric
	}

	rec, _, err := extractFromUpload(r, file, docType)
	if err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": err.Error()})
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
			"status":    "Not_Found",
			"message":   "No matching customer record was found for the extracted details.",
			"extracted": rec,
		})
		return
	}

	best := results[0]
	status := "Potential_Match"
	if best.Verified {
		status = "Verified"
	}
	writeJSONResp(w, http.StatusOK, map[string]any{
		"status":     status,
		"extracted":  rec,
		"best_match": best,
		"results":    results,
	})
}

// VerifyDocuments: POST /api/v1/verify-documents
// multipart/form-data with file fields "id_document" and "bank_statement".
// The two extractions are reconciled against each other under the
// count-threshold policy: neither document is treated as authoritative.
func VerifyDocuments(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 20<<20)
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": "failed to parse form or files too large"})
		return
	}

	idFile, err := formFile(r, "id_document", "id", "idDocument")
	if err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": err.Error()})
		return
	}
	bankFile, err := formFile(r, "bank_statement", "bank", "bankStatement", "statement")
	if err != nil {
		idFile.Close()
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": err.Error()})
		return
	}

	idRec, _, err := extractFromUpload(r, idFile, extract.DocID)
	if err != nil {
		bankFile.Close()
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": fmt.Sprintf("id document: %s", err)})
		return
	}
	bankRec, _, err := extractFromUpload(r, bankFile, extract.DocBank)
	if err != nil {
		writeJSONResp(w, http.StatusBadRequest, map[string]any{"status": "Bad_Request", "message": fmt.Sprintf("bank statement: %s", err)})
		return
	}

	result := match.CompareDocuments(idRec, bankRec, match.CrossDocumentPolicy())
	status := "Verification_Failed"
	if result.Verified {
		status = "Verified"
	}
	writeJSONResp(w, http.StatusOK, map[string]any{
		"status":         status,
		"id_document":    idRec,
		"bank_statement": bankRec,
		"result":         result,
	})
}
