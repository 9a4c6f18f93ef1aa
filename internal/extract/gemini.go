package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/ArvinAIEngineer/mdm/internal/models"
)

// DocumentType hints the extraction prompt at what kind of document the raw
// text came from.
type DocumentType string

const (
	DocID      DocumentType = "id"
	DocBank    DocumentType = "bank"
	DocGeneric DocumentType = "generic"
)

const basePrompt = `You are an expert data extraction assistant. Extract the following information from the text below and return it as a JSON object:
- name: The full name of the person
- phone: The phone number (if present)
- dob: The date of birth (if present)
- address: The complete address
- email: The email address (if present)
- company: The company or employer name (if present)

Important: Look carefully through the entire text for these details. They might appear anywhere in the document.
The name might be preceded by terms like "Name:", "Customer Name:", etc.
The address might be preceded by "Address:", "Residence:", "Location:", etc.
Phone numbers might be in various formats including +91 prefix or 10 digits.
Date of birth might be in formats like DD/MM/YYYY, MM-DD-YYYY, or written out.

Here are the rules:
1. If a field cannot be found in the text, its value in the JSON must be null.
2. Your entire response must be ONLY the JSON object. Do not include any explanations, apologies, or any text before or after the JSON.
3. Clean the extracted data by removing any unnecessary newline characters or extra whitespace.

Here is the raw text:
"""
[INSERT RAW TEXT HERE]
"""`

func prompt(docType DocumentType, text string) string {
	p := basePrompt
	switch docType {
	case DocID:
		p += "\nNote: This is an ID document. Look for officially stated name, dob, and address."
	case DocBank:
		p += "\nNote: This is a bank statement. Look for account holder details, dob, and registered address."
	}
	return strings.Replace(p, "[INSERT RAW TEXT HERE]", text, 1)
}

// FieldsFromText uses Gemini to pull customer identity fields out of raw
// document text. Unparseable model output degrades to an all-absent record
// rather than an error; only configuration and transport failures error. The
// model is best-effort and occasionally wrong, which the scorer's tolerance
// absorbs downstream.
func FieldsFromText(ctx context.Context, text string, docType DocumentType) (models.ExtractedRecord, error) {
	var out models.ExtractedRecord

	apiKey := os.Getenv("GEMINI_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		return out, errors.New("missing GEMINI_API_KEY")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return out, fmt.Errorf("failed to init Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.0-flash-lite")
	model.GenerationConfig = genai.GenerationConfig{ResponseMIMEType: "application/json"}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt(docType, text)))
	if err != nil {
		return out, fmt.Errorf("gemini generation failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return out, errors.New("empty response from Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		} else {
			sb.WriteString(fmt.Sprint(part))
		}
	}
	return recordFromJSON(sb.String()), nil
}

// recordFromJSON parses the model output into an ExtractedRecord, tolerating
// code fences, surrounding prose and JSON nulls. Anything unparseable maps to
// an all-absent record, never an error the matching engine would see.
func recordFromJSON(raw string) models.ExtractedRecord {
	var out models.ExtractedRecord

	jsonStr := stripCodeFences(strings.TrimSpace(raw))
	if candidate, ok := extractFirstJSON(jsonStr); ok {
		jsonStr = candidate
	}

	var tmp map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &tmp); err != nil {
		log.Println("extract: failed to parse model JSON, treating all fields as absent:", err)
		return out
	}
	get := func(k string) *string {
		v, ok := tmp[k]
		if !ok || v == nil {
			return nil
		}
		s, ok := v.(string)
		if !ok {
			return nil
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		return &s
	}

	out.Name = get("name")
	out.Phone = get("phone")
	out.DOB = get("dob")
	out.Address = get("address")
	out.Email = get("email")
	out.Company = get("company")
	return out
}

// stripCodeFences removes surrounding Markdown code fences like ```json ... ```.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
		// remove a possible language tag at the start of the fence
		if i := strings.IndexByte(s, '\n'); i != -1 {
			first := strings.TrimSpace(s[:i])
			if len(first) > 0 && len(first) < 20 { // likely a language tag like json
				s = s[i+1:]
			}
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

// extractFirstJSON attempts to extract the first balanced JSON object or array.
func extractFirstJSON(s string) (string, bool) {
	if obj, ok := extractBalanced(s, '{', '}'); ok {
		return obj, true
	}
	if arr, ok := extractBalanced(s, '[', ']'); ok {
		return arr, true
	}
	return "", false
}

func extractBalanced(s string, open, close rune) (string, bool) {
	start := -1
	depth := 0
	for i, r := range s {
		if r == open {
			if depth == 0 {
				start = i
			}
			depth++
		} else if r == close {
			if depth > 0 {
				depth--
				if depth == 0 && start != -1 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}
