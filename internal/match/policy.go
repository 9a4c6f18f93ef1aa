package match

// PolicyMode selects how per-field verdicts roll up into a verification
// verdict.
type PolicyMode string

const (
	// PolicyCountThreshold verifies when at least MinMatches fields match.
	// Used for two-document cross verification, where no single field is
	// trusted as authoritative.
	PolicyCountThreshold PolicyMode = "count_threshold"
	// PolicyStrongField verifies on email, phone, or name+company. Used for
	// record-store lookup, where email and phone act as near-unique keys.
	PolicyStrongField PolicyMode = "strong_field"
)

// Policy carries the decision mode and per-field match thresholds. Callers
// pass it explicitly per evaluation; there is no hidden shared default.
type Policy struct {
	Mode       PolicyMode
	Thresholds map[FieldType]int
	// MinMatches applies to PolicyCountThreshold only. Zero means 2.
	MinMatches int
	// Comparators overrides the default comparator for a field type, e.g. a
	// fuzzy ratio over email local-parts instead of the exact default.
	Comparators map[FieldType]Comparator
}

// DefaultThresholds returns the stock per-field match thresholds. Phone,
// email and dob score binary 100/0, so their thresholds are effectively
// "exact".
func DefaultThresholds() map[FieldType]int {
	return map[FieldType]int{
		FieldName:    80,
		FieldAddress: 80,
		FieldCompany: 80,
		FieldPhone:   90,
		FieldEmail:   90,
		FieldDOB:     100,
	}
}

// CrossDocumentPolicy is the policy for verifying two independently sourced
// documents against each other.
func CrossDocumentPolicy() Policy {
	return Policy{Mode: PolicyCountThreshold, Thresholds: DefaultThresholds(), MinMatches: 2}
}

// LookupPolicy is the policy for matching one document or manual entry
// against the customer record store.
func LookupPolicy() Policy {
	return Policy{Mode: PolicyStrongField, Thresholds: DefaultThresholds()}
}

func (p Policy) score(ft FieldType, a, b string) int {
	if cmp, ok := p.Comparators[ft]; ok {
		return cmp(a, b)
	}
	return Score(ft, a, b)
}

func (p Policy) threshold(ft FieldType) int {
	if t, ok := p.Thresholds[ft]; ok {
		return t
	}
	return 100
}

// decide applies the policy to a completed set of per-field verdicts.
func (p Policy) decide(r MatchResult) bool {
	switch p.Mode {
	case PolicyStrongField:
		return r.Has(FieldEmail) || r.Has(FieldPhone) ||
			(r.Has(FieldName) && r.Has(FieldCompany))
	default:
		need := p.MinMatches
		if need <= 0 {
			need = 2
		}
		return len(r.Matched) >= need
	}
}
