package match

import (
	"sort"

	"github.com/ArvinAIEngineer/mdm/internal/models"
)

// MatchResult is the outcome of comparing one extracted record against one
// candidate. It is recomputed per request and never persisted. A field
// appears in Matched or Mismatched only when both sides had a value;
// otherwise it is in Skipped and contributes nothing to the aggregate.
type MatchResult struct {
	CustomerID uint                 `json:"customer_id,omitempty"`
	Matched    []FieldType          `json:"matched"`
	Mismatched []FieldType          `json:"mismatched"`
	Skipped    []FieldType          `json:"skipped"`
	Scores     map[FieldType]int    `json:"scores"`
	Aggregate  float64              `json:"aggregate_score"`
	Verified   bool                 `json:"verified"`
	Details    map[FieldType]string `json:"details"`
}

// Has reports whether ft is in the matched set.
func (r MatchResult) Has(ft FieldType) bool {
	for _, f := range r.Matched {
		if f == ft {
			return true
		}
	}
	return false
}

// matchDetails holds the display strings per field: [matched, mismatched].
var matchDetails = map[FieldType][2]string{
	FieldName:    {"Matched with high confidence", "Names differ significantly"},
	FieldPhone:   {"Phone numbers match", "Phone numbers differ"},
	FieldDOB:     {"Dates of birth match", "Dates of birth differ"},
	FieldAddress: {"Addresses match with high similarity", "Addresses differ significantly"},
	FieldEmail:   {"Email addresses match", "Email addresses differ"},
	FieldCompany: {"Company names match", "Company names differ"},
}

func compare(a, b models.ExtractedRecord, p Policy) MatchResult {
	res := MatchResult{
		Scores:  make(map[FieldType]int),
		Details: make(map[FieldType]string),
	}
	total := 0
	for _, ft := range Fields {
		na, okA := Normalize(ft, a.Field(string(ft)))
		nb, okB := Normalize(ft, b.Field(string(ft)))
		if !okA || !okB {
			res.Skipped = append(res.Skipped, ft)
			continue
		}
		s := p.score(ft, na, nb)
		res.Scores[ft] = s
		total += s
		if s >= p.threshold(ft) {
			res.Matched = append(res.Matched, ft)
			res.Details[ft] = matchDetails[ft][0]
		} else {
			res.Mismatched = append(res.Mismatched, ft)
			res.Details[ft] = matchDetails[ft][1]
		}
	}
	if compared := len(res.Matched) + len(res.Mismatched); compared > 0 {
		res.Aggregate = float64(total) / float64(compared)
	}
	res.Verified = p.decide(res)
	return res
}

// CompareDocuments reconciles two independently extracted records against
// each other, e.g. an ID document and a bank statement.
func CompareDocuments(a, b models.ExtractedRecord, p Policy) MatchResult {
	return compare(a, b, p)
}

// Evaluate reconciles an extracted record against one stored customer.
func Evaluate(extracted models.ExtractedRecord, candidate models.Customer, p Policy) MatchResult {
	res := compare(extracted, candidate.Record(), p)
	res.CustomerID = candidate.ID
	return res
}

// Rank evaluates extracted against every candidate and returns only those
// with at least one matched field, best first: by matched-field count, then
// aggregate score. Candidates that tie on both keep their input order.
func Rank(extracted models.ExtractedRecord, candidates []models.Customer, p Policy) []MatchResult {
	results := make([]MatchResult, 0, len(candidates))
	for _, c := range candidates {
		r := Evaluate(extracted, c, p)
		if len(r.Matched) == 0 {
			continue
		}
		results = append(results, r)
	}
	sort.SliceStable(results, func(i, j int) bool {
		if len(results[i].Matched) != len(results[j].Matched) {
			return len(results[i].Matched) > len(results[j].Matched)
		}
		return results[i].Aggregate > results[j].Aggregate
	})
	return results
}
