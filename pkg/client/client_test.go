package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(StaticToken("t123")))
	_, err := c.Jobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer t123", gotAuth)
}

func TestNoTokenMeansNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Jobs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestServerMessageBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"you have already applied to this job"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.JobByID(context.Background(), "j1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "you have already applied to this job", apiErr.Message)
}

func TestNonJSONFailureFallsBackToUnknownError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Jobs(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, UnknownErrorMessage, apiErr.Message)
}

func TestAccessDenied(t *testing.T) {
	err := &APIError{StatusCode: http.StatusForbidden, Message: "employers only"}
	assert.True(t, err.AccessDenied())
	assert.False(t, (&APIError{StatusCode: http.StatusNotFound}).AccessDenied())
}

// The backend expects nested job objects JSON-encoded inside strings, not
// native JSON nesting.
func TestCreateJobDoubleEncodesNestedFields(t *testing.T) {
	var payload map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"j1","title":"Backend Engineer","status":"OPEN"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateJob(context.Background(), CreateJobParams{
		Title:       "Backend Engineer",
		Description: "Build services",
		Requirements: &JobRequirements{
			Skills:     []string{"Go"},
			Education:  "BSc",
			Experience: "3y",
		},
		Meta: &JobMeta{Location: "Nairobi"},
	})
	require.NoError(t, err)

	raw, ok := payload["requirements"].(string)
	require.True(t, ok, "requirements must travel as a string, got %T", payload["requirements"])
	assert.JSONEq(t, `{"skills":["Go"],"education":"BSc","experience":"3y"}`, raw)

	meta, ok := payload["meta"].(string)
	require.True(t, ok, "meta must travel as a string, got %T", payload["meta"])
	assert.JSONEq(t, `{"location":"Nairobi"}`, meta)
}

func TestCreateHeadhuntDoubleEncodesOtherContacts(t *testing.T) {
	var payload map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"ok","request":{"id":"h1"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateHeadhuntRequest(context.Background(), CreateHeadhuntParams{
		Title:        "CTO",
		Description:  "Lead the team",
		ContractType: "FULL_TIME",
		CompanyName:  "Acme",
		OtherContacts: map[string]string{
			"notes": "call after 5pm",
		},
	})
	require.NoError(t, err)

	contacts, ok := payload["otherContacts"].(string)
	require.True(t, ok, "otherContacts must travel as a string")
	assert.JSONEq(t, `{"notes":"call after 5pm"}`, contacts)
}

func TestApplySendsMultipartResume(t *testing.T) {
	var gotName, gotType, gotLetter string
	var gotContent []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		file, header, err := r.FormFile("resume")
		require.NoError(t, err)
		defer file.Close()
		gotName = header.Filename
		gotType = header.Header.Get("Content-Type")
		gotContent, err = io.ReadAll(file)
		require.NoError(t, err)
		gotLetter = r.FormValue("coverLetter")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"ok","application":{"id":"a1","status":"PENDING"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(StaticToken("t1")))
	app, err := c.Apply(context.Background(), "j1", ResumeFile{
		Name:        "cv.pdf",
		ContentType: "application/pdf",
		Content:     []byte("%PDF-1.4"),
	}, "Dear team")
	require.NoError(t, err)
	assert.Equal(t, "a1", app.ID)
	assert.Equal(t, "cv.pdf", gotName)
	assert.Equal(t, "application/pdf", gotType)
	assert.Equal(t, []byte("%PDF-1.4"), gotContent)
	assert.Equal(t, "Dear team", gotLetter)
}

func TestDecodeNestedJobFields(t *testing.T) {
	job := Job{
		Requirements: `{"skills":["Go","SQL"],"education":"BSc","experience":"3y"}`,
		Meta:         `{"location":"Remote","level":"Mid","department":"Data"}`,
	}

	reqs, err := job.DecodeRequirements()
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, reqs.Skills)

	meta, err := job.DecodeMeta()
	require.NoError(t, err)
	assert.Equal(t, "Remote", meta.Location)

	empty := Job{}
	reqs, err = empty.DecodeRequirements()
	require.NoError(t, err)
	assert.Empty(t, reqs.Skills)
}
