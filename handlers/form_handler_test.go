package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSubmitContact(t *testing.T) {
	e := newTestServer(t, failingContent())

	rec := doRequest(e, postJSON("/api/contact", `{
		"name": "Joan Carter",
		"email": "joan@example.com",
		"subject": "Green hire",
		"message": "Is the green available for a private booking in October?"
	}`))

	require.Equal(t, http.StatusAccepted, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["id"])
	assert.Len(t, body["reference"], 8)
}

func TestSubmitContact_InvalidBody(t *testing.T) {
	e := newTestServer(t, failingContent())

	rec := doRequest(e, postJSON("/api/contact", `{"name": `))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "Invalid request"}`, rec.Body.String())
}

func TestSubmitContact_ValidationErrors(t *testing.T) {
	e := newTestServer(t, failingContent())

	rec := doRequest(e, postJSON("/api/contact", `{
		"name": "Joan Carter",
		"email": "not-an-email",
		"message": ""
	}`))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Validation failed", body.Error)
	assert.Contains(t, body.Fields, "email")
	assert.Contains(t, body.Fields, "message")
}

func TestSubmitJoin(t *testing.T) {
	e := newTestServer(t, failingContent())

	rec := doRequest(e, postJSON("/api/join", `{
		"name": "Sam Whitfield",
		"email": "sam@example.com",
		"experience": "beginner"
	}`))

	require.Equal(t, http.StatusAccepted, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["reference"])
}

func TestSubmitJoin_UnknownExperience(t *testing.T) {
	e := newTestServer(t, failingContent())

	rec := doRequest(e, postJSON("/api/join", `{
		"name": "Sam Whitfield",
		"email": "sam@example.com",
		"experience": "professional"
	}`))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Fields, "experience")
}
