package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorePhoneExact(t *testing.T) {
	a, ok := Normalize(FieldPhone, strptr("+91 98844 24114"))
	require.True(t, ok)
	b, ok := Normalize(FieldPhone, strptr("9884424114"))
	require.True(t, ok)

	assert.Equal(t, 100, Score(FieldPhone, a, b))
	assert.Equal(t, Score(FieldPhone, a, b), Score(FieldPhone, b, a), "phone comparator must be symmetric")

	assert.Equal(t, 0, Score(FieldPhone, "9884424114", "9884424115"))
}

func TestScoreDOB(t *testing.T) {
	forms := []string{"1990/01/05", "1990.01.05", "1990-01-05"}
	for _, x := range forms {
		for _, y := range forms {
			nx, _ := Normalize(FieldDOB, &x)
			ny, _ := Normalize(FieldDOB, &y)
			assert.Equal(t, 100, Score(FieldDOB, nx, ny), "%q vs %q", x, y)
		}
	}

	// zero-padding differences are not reconciled
	a, _ := Normalize(FieldDOB, strptr("1990-1-5"))
	b, _ := Normalize(FieldDOB, strptr("1990-01-05"))
	assert.Equal(t, 0, Score(FieldDOB, a, b))
}

func TestScoreNameFuzzy(t *testing.T) {
	assert.Equal(t, 100, Score(FieldName, "ravi kumar", "ravi kumar"))

	// token sort tolerates reordering
	assert.Equal(t, 100, Score(FieldName, "ravi kumar", "kumar ravi"))

	// direct ratio tolerates minor character noise
	assert.GreaterOrEqual(t, Score(FieldName, "jon smith", "john smith"), 80)

	assert.Less(t, Score(FieldName, "ravi kumar", "anita desai"), 80)
}

func TestScoreAddressReordered(t *testing.T) {
	// "Street, City" vs "City, Street" style reordering
	got := Score(FieldAddress, "12 mg road mumbai", "mumbai 12 mg road")
	assert.Equal(t, 100, got)
}

func TestScoreEmailExact(t *testing.T) {
	a, _ := Normalize(FieldEmail, strptr("Ravi@Example.com"))
	b, _ := Normalize(FieldEmail, strptr("ravi@example.com"))
	assert.Equal(t, 100, Score(FieldEmail, a, b))
	assert.Equal(t, 0, Score(FieldEmail, "ravi@example.com", "ravi@example.org"))
}

func TestScoreUnknownFieldType(t *testing.T) {
	assert.Equal(t, 0, Score(FieldType("passport"), "x", "x"))
}
