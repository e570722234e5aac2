package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal_backend/internal/models"
	"jobportal_backend/test/helpers"
)

// seedApplication applies to a fresh job and returns the stored resume key
// plus the two clients involved.
func seedApplication(t *testing.T, ts *helpers.TestServer) (resume string, seeker, employer *http.Client) {
	t.Helper()

	emp := helpers.CreateUser(t, ts.DB, helpers.UserSpec{
		Username: "acme", Email: "acme@example.com", Password: "password123",
		IsEmployer: true, IsApproved: true,
	})
	job := helpers.CreateJob(t, ts.DB, emp, "Backend Engineer")

	_, seeker = helpers.LoginAs(t, ts, helpers.UserSpec{
		Username: "alice", Email: "alice@example.com", Password: "password123", IsApproved: true,
	})
	res, _ := ts.PostMultipart(t, seeker, "/apply/"+job.ID, "resume", "resume.pdf", pdfContent)
	require.Equal(t, http.StatusSeeOther, res.StatusCode)

	var app models.Application
	require.NoError(t, ts.DB.First(&app, "job_id = ?", job.ID).Error)

	employer = ts.NewClient(t)
	helpers.Login(t, ts, employer, "acme@example.com", "password123")

	return app.Resume, seeker, employer
}

func TestServeUploadRequiresLogin(t *testing.T) {
	ts := helpers.NewTestServer(t)
	resume, _, _ := seedApplication(t, ts)

	anon := ts.NewClient(t)
	res, _ := ts.Get(t, anon, "/uploads/"+resume)
	helpers.RequireRedirect(t, res, "/login", "warning", "Please log in")
}

func TestServeUploadToAuthorizedParties(t *testing.T) {
	ts := helpers.NewTestServer(t)
	resume, seeker, employer := seedApplication(t, ts)

	_, admin := helpers.LoginAs(t, ts, helpers.UserSpec{
		Username: "root", Email: "root@example.com", Password: "password123",
		IsAdmin: true, IsApproved: true,
	})

	for name, client := range map[string]*http.Client{
		"applicant": seeker,
		"employer":  employer,
		"admin":     admin,
	} {
		t.Run(name, func(t *testing.T) {
			res, body := ts.Get(t, client, "/uploads/"+resume)
			require.Equal(t, http.StatusOK, res.StatusCode)
			assert.Equal(t, "application/pdf", res.Header.Get("Content-Type"))
			assert.Contains(t, res.Header.Get("Content-Disposition"), "inline")
			assert.Equal(t, string(pdfContent), body)
		})
	}
}

func TestServeUploadForbiddenForStrangers(t *testing.T) {
	ts := helpers.NewTestServer(t)
	resume, _, _ := seedApplication(t, ts)

	_, stranger := helpers.LoginAs(t, ts, helpers.UserSpec{
		Username: "mallory", Email: "mallory@example.com", Password: "password123", IsApproved: true,
	})

	res, _ := ts.Get(t, stranger, "/uploads/"+resume)
	helpers.RequireRedirect(t, res, "/", "error", "do not have access")
}

func TestServeUploadUnknownFile(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, client := helpers.LoginAs(t, ts, helpers.UserSpec{
		Username: "alice", Email: "alice@example.com", Password: "password123", IsApproved: true,
	})

	res, _ := ts.Get(t, client, "/uploads/nope.pdf")
	helpers.RequireRedirect(t, res, "/", "error", "File not found")
}
