package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFromJSONPlain(t *testing.T) {
	rec := recordFromJSON(`{"name": "Ravi Kumar", "phone": "+919884424114", "dob": null, "address": "12 MG Road", "email": null, "company": null}`)
	require.NotNil(t, rec.Name)
	assert.Equal(t, "Ravi Kumar", *rec.Name)
	require.NotNil(t, rec.Phone)
	assert.Equal(t, "+919884424114", *rec.Phone)
	assert.Nil(t, rec.DOB)
	assert.Nil(t, rec.Email)
	assert.Nil(t, rec.Company)
}

func TestRecordFromJSONFenced(t *testing.T) {
	rec := recordFromJSON("```json\n{\"name\": \"Ravi Kumar\"}\n```")
	require.NotNil(t, rec.Name)
	assert.Equal(t, "Ravi Kumar", *rec.Name)
}

func TestRecordFromJSONSurroundingProse(t *testing.T) {
	rec := recordFromJSON(`Here is the extracted data: {"phone": "9884424114"} hope that helps`)
	require.NotNil(t, rec.Phone)
	assert.Equal(t, "9884424114", *rec.Phone)
}

func TestRecordFromJSONMalformed(t *testing.T) {
	rec := recordFromJSON("sorry, I could not parse the document")
	assert.Nil(t, rec.Name)
	assert.Nil(t, rec.Phone)
	assert.Nil(t, rec.DOB)
	assert.Nil(t, rec.Address)
	assert.Nil(t, rec.Email)
	assert.Nil(t, rec.Company)
}

func TestRecordFromJSONWhitespaceIsAbsent(t *testing.T) {
	rec := recordFromJSON(`{"name": "   ", "phone": 12345}`)
	assert.Nil(t, rec.Name, "whitespace-only values are absent")
	assert.Nil(t, rec.Phone, "non-string values are absent")
}
