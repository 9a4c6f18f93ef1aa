package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArvinAIEngineer/mdm/internal/models"
)

func TestCompareDocumentsCountPolicyVerified(t *testing.T) {
	id := models.ExtractedRecord{
		Name:    strptr("Ravi Kumar"),
		Phone:   strptr("+91 98844 24114"),
		Address: strptr("12 MG Road, Mumbai"),
	}
	bank := models.ExtractedRecord{
		Name:    strptr("ravi kumar"),
		Phone:   strptr("9884424114"),
		Address: strptr("99 Park Avenue, Delhi"),
	}

	res := CompareDocuments(id, bank, CrossDocumentPolicy())

	assert.ElementsMatch(t, []FieldType{FieldName, FieldPhone}, res.Matched)
	assert.ElementsMatch(t, []FieldType{FieldAddress}, res.Mismatched)
	assert.True(t, res.Verified, "two matched fields satisfy the count threshold")
}

func TestCompareDocumentsCountPolicyFailed(t *testing.T) {
	id := models.ExtractedRecord{
		Name:    strptr("Ravi Kumar"),
		Phone:   strptr("9884424114"),
		Address: strptr("12 MG Road, Mumbai"),
	}
	bank := models.ExtractedRecord{
		Name:    strptr("Ravi Kumar"),
		Phone:   strptr("9000000000"),
		Address: strptr("99 Park Avenue, Delhi"),
	}

	res := CompareDocuments(id, bank, CrossDocumentPolicy())

	assert.ElementsMatch(t, []FieldType{FieldName}, res.Matched)
	assert.ElementsMatch(t, []FieldType{FieldPhone, FieldAddress}, res.Mismatched)
	assert.False(t, res.Verified)
}

func TestAbsentFieldsAlwaysSkipped(t *testing.T) {
	a := models.ExtractedRecord{Name: strptr("Ravi Kumar")}
	b := models.ExtractedRecord{Phone: strptr("9884424114")}

	for _, p := range []Policy{CrossDocumentPolicy(), LookupPolicy()} {
		res := CompareDocuments(a, b, p)
		assert.Empty(t, res.Matched)
		assert.Empty(t, res.Mismatched)
		assert.ElementsMatch(t, Fields, res.Skipped)
		assert.Zero(t, res.Aggregate, "no compared fields means aggregate 0")
		assert.False(t, res.Verified)
	}
}

func TestStrongFieldPolicy(t *testing.T) {
	policy := LookupPolicy()

	// email alone verifies, everything else absent
	res := CompareDocuments(
		models.ExtractedRecord{Email: strptr("ravi@example.com")},
		models.ExtractedRecord{Email: strptr("RAVI@example.com")},
		policy,
	)
	assert.ElementsMatch(t, []FieldType{FieldEmail}, res.Matched)
	assert.True(t, res.Verified)

	// phone alone verifies
	res = CompareDocuments(
		models.ExtractedRecord{Phone: strptr("+919884424114")},
		models.ExtractedRecord{Phone: strptr("9884424114")},
		policy,
	)
	assert.True(t, res.Verified)

	// name match with company mismatch does not verify
	res = CompareDocuments(
		models.ExtractedRecord{Name: strptr("Ravi Kumar"), Company: strptr("Apex Industries")},
		models.ExtractedRecord{Name: strptr("Ravi Kumar"), Company: strptr("Bluestone Traders")},
		policy,
	)
	assert.True(t, res.Has(FieldName))
	assert.False(t, res.Has(FieldCompany))
	assert.False(t, res.Verified)

	// name plus company verifies
	res = CompareDocuments(
		models.ExtractedRecord{Name: strptr("Ravi Kumar"), Company: strptr("Apex Industries")},
		models.ExtractedRecord{Name: strptr("Kumar Ravi"), Company: strptr("apex industries")},
		policy,
	)
	assert.True(t, res.Verified)
}

func TestComparatorOverride(t *testing.T) {
	a := models.ExtractedRecord{Email: strptr("ravi.kumar@example.com")}
	b := models.ExtractedRecord{Email: strptr("ravi.kumarr@example.com")}

	res := CompareDocuments(a, b, LookupPolicy())
	assert.False(t, res.Has(FieldEmail), "default email comparator is exact")

	fuzzy := LookupPolicy()
	fuzzy.Comparators = map[FieldType]Comparator{FieldEmail: fuzzyCompare}
	res = CompareDocuments(a, b, fuzzy)
	assert.True(t, res.Has(FieldEmail), "overridden comparator tolerates the extra character")
}

func TestAggregateIsMeanOfComparedFields(t *testing.T) {
	a := models.ExtractedRecord{Name: strptr("Jon Smith"), Phone: strptr("9884424114")}
	b := models.ExtractedRecord{Name: strptr("John Smith"), Phone: strptr("9884424114")}

	res := CompareDocuments(a, b, CrossDocumentPolicy())

	require.Contains(t, res.Scores, FieldName)
	require.Contains(t, res.Scores, FieldPhone)
	want := float64(res.Scores[FieldName]+res.Scores[FieldPhone]) / 2
	assert.InDelta(t, want, res.Aggregate, 0.001)
}

func TestEvaluateCarriesCustomerID(t *testing.T) {
	cand := models.Customer{ID: 42, Phone: strptr("9884424114")}
	res := Evaluate(models.ExtractedRecord{Phone: strptr("+91 98844 24114")}, cand, LookupPolicy())
	assert.Equal(t, uint(42), res.CustomerID)
	assert.True(t, res.Verified)
}

func TestRankOrderingAndFiltering(t *testing.T) {
	extracted := models.ExtractedRecord{
		Name:  strptr("Ravi Kumar"),
		Phone: strptr("9884424114"),
	}
	candidates := []models.Customer{
		{ID: 1, Name: strptr("Anita Desai"), Phone: strptr("9000000000")}, // no matched fields
		{ID: 2, Name: strptr("Ravi Kumar")},                               // one match
		{ID: 3, Name: strptr("Ravi Kumar"), Phone: strptr("9884424114")},  // two matches
	}

	results := Rank(extracted, candidates, LookupPolicy())

	require.Len(t, results, 2)
	assert.Equal(t, uint(3), results[0].CustomerID)
	assert.Equal(t, uint(2), results[1].CustomerID)
}

func TestRankStableOnTies(t *testing.T) {
	extracted := models.ExtractedRecord{Name: strptr("Ravi Kumar")}
	candidates := []models.Customer{
		{ID: 7, Name: strptr("Ravi Kumar")},
		{ID: 8, Name: strptr("Ravi Kumar")},
	}

	results := Rank(extracted, candidates, LookupPolicy())

	require.Len(t, results, 2)
	assert.Equal(t, uint(7), results[0].CustomerID, "earlier-inserted candidate ranks first on ties")
	assert.Equal(t, uint(8), results[1].CustomerID)
}

func TestRankEmptyCandidateSet(t *testing.T) {
	results := Rank(models.ExtractedRecord{Name: strptr("Ravi Kumar")}, nil, LookupPolicy())
	assert.Empty(t, results)
}

func TestEndToEndScenario(t *testing.T) {
	extracted := models.ExtractedRecord{
		Name:  strptr("Ravi Kumar"),
		Phone: strptr("+919884424114"),
	}
	stored := models.Customer{
		ID:      1,
		Name:    strptr("ravi  kumar"),
		Phone:   strptr("9884424114"),
		Address: strptr("12 MG Road"),
	}

	res := Evaluate(extracted, stored, CrossDocumentPolicy())

	assert.ElementsMatch(t, []FieldType{FieldName, FieldPhone}, res.Matched)
	assert.Empty(t, res.Mismatched)
	assert.Contains(t, res.Skipped, FieldAddress)
	assert.InDelta(t, 100.0, res.Aggregate, 0.001)
	assert.True(t, res.Verified)
}
