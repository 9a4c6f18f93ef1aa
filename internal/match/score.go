package match

import (
	"math"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Comparator scores two normalized values of one field type in [0,100].
// Comparators are pure and are only ever invoked with present values; the
// engine's skip rule guards absent sides before this point.
type Comparator func(a, b string) int

var levenshtein = metrics.NewLevenshtein()

func ratio(a, b string) int {
	return int(math.Round(strutil.Similarity(a, b, levenshtein) * 100))
}

func tokenSort(s string) string {
	words := strings.Fields(s)
	sort.Strings(words)
	return strings.Join(words, " ")
}

// fuzzyCompare returns the best of a direct character ratio and a token-sort
// ratio. The direct ratio absorbs OCR character noise, the token-sort ratio
// absorbs word reordering ("Street, City" vs "City, Street").
func fuzzyCompare(a, b string) int {
	direct := ratio(a, b)
	sorted := ratio(tokenSort(a), tokenSort(b))
	if sorted > direct {
		return sorted
	}
	return direct
}

func exactCompare(a, b string) int {
	if a == b {
		return 100
	}
	return 0
}

// comparators maps each field type to its scoring function. Phone, email and
// dob compare exact-only on their normalized forms; the free-text fields are
// fuzzy.
var comparators = map[FieldType]Comparator{
	FieldName:    fuzzyCompare,
	FieldAddress: fuzzyCompare,
	FieldCompany: fuzzyCompare,
	FieldPhone:   exactCompare,
	FieldEmail:   exactCompare,
	FieldDOB:     exactCompare,
}

// Score runs the comparator registered for ft. Unknown field types score 0.
func Score(ft FieldType, normA, normB string) int {
	cmp, ok := comparators[ft]
	if !ok {
		return 0
	}
	return cmp(normA, normB)
}
