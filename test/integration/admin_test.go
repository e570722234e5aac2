package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal_backend/internal/models"
	"jobportal_backend/test/helpers"
)

func adminSpec(n string) helpers.UserSpec {
	return helpers.UserSpec{
		Username: n, Email: n + "@example.com", Password: "password123",
		IsAdmin: true, IsApproved: true,
	}
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, seeker := helpers.LoginAs(t, ts, helpers.UserSpec{
		Username: "alice", Email: "alice@example.com", Password: "password123", IsApproved: true,
	})
	anon := ts.NewClient(t)

	paths := []string{
		"/admin_dashboard",
		"/change_job_status/some-id/Closed",
		"/admin/change_application_status/some-id/Accepted",
		"/approve/some-id",
		"/revoke/some-id",
	}
	clients := map[string]*http.Client{"anonymous": anon, "seeker": seeker}
	for _, path := range paths {
		for name, client := range clients {
			t.Run(name+" "+path, func(t *testing.T) {
				res, _ := ts.Get(t, client, path)
				helpers.RequireRedirect(t, res, "/login", "error", "Admin access required")
			})
		}
	}
}

func TestAdminDashboardPayload(t *testing.T) {
	ts := helpers.NewTestServer(t)

	employer := helpers.CreateUser(t, ts.DB, helpers.UserSpec{
		Username: "acme", Email: "acme@example.com", Password: "password123",
		IsEmployer: true, IsApproved: true,
	})
	helpers.CreateJob(t, ts.DB, employer, "Backend Engineer")

	_, client := helpers.LoginAs(t, ts, adminSpec("root"))

	res, body := ts.Get(t, client, "/admin_dashboard")
	require.Equal(t, http.StatusOK, res.StatusCode)

	var payload struct {
		Employers    []models.User        `json:"employers"`
		Jobs         []models.Job         `json:"jobs"`
		Applications []models.Application `json:"applications"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.Len(t, payload.Employers, 1)
	assert.Equal(t, "acme", payload.Employers[0].Username)
	require.Len(t, payload.Jobs, 1)
	assert.Empty(t, payload.Applications)
}

func TestApproveAndRevokeEmployer(t *testing.T) {
	ts := helpers.NewTestServer(t)

	employer := helpers.CreateUser(t, ts.DB, helpers.UserSpec{
		Username: "acme", Email: "acme@example.com", Password: "password123",
		IsEmployer: true,
	})
	_, client := helpers.LoginAs(t, ts, adminSpec("root"))

	res, _ := ts.Get(t, client, "/approve/"+employer.ID)
	helpers.RequireRedirect(t, res, "/admin_dashboard", "success", "Employer approved")

	var got models.User
	require.NoError(t, ts.DB.First(&got, "id = ?", employer.ID).Error)
	assert.True(t, got.IsApproved)

	res, _ = ts.Get(t, client, "/revoke/"+employer.ID)
	helpers.RequireRedirect(t, res, "/admin_dashboard", "info", "Employer revoked")

	require.NoError(t, ts.DB.First(&got, "id = ?", employer.ID).Error)
	assert.False(t, got.IsApproved)
}

func TestApproveNonEmployerIsRejected(t *testing.T) {
	ts := helpers.NewTestServer(t)

	seeker := helpers.CreateUser(t, ts.DB, helpers.UserSpec{
		Username: "alice", Email: "alice@example.com", Password: "password123", IsApproved: true,
	})
	_, client := helpers.LoginAs(t, ts, adminSpec("root"))

	res, _ := ts.Get(t, client, "/approve/"+seeker.ID)
	helpers.RequireRedirect(t, res, "/admin_dashboard", "error", "Invalid action")
}

func TestApproveUnknownUser(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, client := helpers.LoginAs(t, ts, adminSpec("root"))

	res, _ := ts.Get(t, client, "/approve/no-such-user")
	helpers.RequireRedirect(t, res, "/admin_dashboard", "error", "User not found")
}

func TestChangeJobStatus(t *testing.T) {
	ts := helpers.NewTestServer(t)

	employer := helpers.CreateUser(t, ts.DB, helpers.UserSpec{
		Username: "acme", Email: "acme@example.com", Password: "password123",
		IsEmployer: true, IsApproved: true,
	})
	job := helpers.CreateJob(t, ts.DB, employer, "Backend Engineer")

	_, client := helpers.LoginAs(t, ts, adminSpec("root"))

	res, _ := ts.Get(t, client, "/change_job_status/"+job.ID+"/Filled")
	helpers.RequireRedirect(t, res, "/admin_dashboard", "success", "Job status changed to Filled")

	var got models.Job
	require.NoError(t, ts.DB.First(&got, "id = ?", job.ID).Error)
	assert.Equal(t, models.JobStatusFilled, got.Status)
}

func TestChangeJobStatusRejectsUnknownStatus(t *testing.T) {
	ts := helpers.NewTestServer(t)

	employer := helpers.CreateUser(t, ts.DB, helpers.UserSpec{
		Username: "acme", Email: "acme@example.com", Password: "password123",
		IsEmployer: true, IsApproved: true,
	})
	job := helpers.CreateJob(t, ts.DB, employer, "Backend Engineer")

	_, client := helpers.LoginAs(t, ts, adminSpec("root"))

	res, _ := ts.Get(t, client, "/change_job_status/"+job.ID+"/Paused")
	helpers.RequireRedirect(t, res, "/admin_dashboard", "error", "Unknown job status")

	var got models.Job
	require.NoError(t, ts.DB.First(&got, "id = ?", job.ID).Error)
	assert.Equal(t, models.JobStatusOpen, got.Status, "status must be unchanged")
}

func TestChangeJobStatusUnknownJob(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, client := helpers.LoginAs(t, ts, adminSpec("root"))

	res, _ := ts.Get(t, client, "/change_job_status/no-such-job/Closed")
	helpers.RequireRedirect(t, res, "/admin_dashboard", "error", "Job not found")
}

func TestChangeApplicationStatus(t *testing.T) {
	ts := helpers.NewTestServer(t)

	employer := helpers.CreateUser(t, ts.DB, helpers.UserSpec{
		Username: "acme", Email: "acme@example.com", Password: "password123",
		IsEmployer: true, IsApproved: true,
	})
	job := helpers.CreateJob(t, ts.DB, employer, "Backend Engineer")

	_, seeker := helpers.LoginAs(t, ts, helpers.UserSpec{
		Username: "alice", Email: "alice@example.com", Password: "password123", IsApproved: true,
	})
	res, _ := ts.PostMultipart(t, seeker, "/apply/"+job.ID, "resume", "resume.pdf", pdfContent)
	require.Equal(t, http.StatusSeeOther, res.StatusCode)

	var app models.Application
	require.NoError(t, ts.DB.First(&app, "job_id = ?", job.ID).Error)

	_, client := helpers.LoginAs(t, ts, adminSpec("root"))

	res, _ = ts.Get(t, client, "/admin/change_application_status/"+app.ID+"/Accepted")
	helpers.RequireRedirect(t, res, "/admin_dashboard", "success", "Application status changed to Accepted")

	require.NoError(t, ts.DB.First(&app, "id = ?", app.ID).Error)
	assert.Equal(t, models.ApplicationStatusAccepted, app.Status)
}

func TestChangeApplicationStatusRejectsUnknownStatus(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, client := helpers.LoginAs(t, ts, adminSpec("root"))

	res, _ := ts.Get(t, client, "/admin/change_application_status/some-id/Shortlisted")
	helpers.RequireRedirect(t, res, "/admin_dashboard", "error", "Unknown application status")
}

func TestChangeApplicationStatusUnknownApplication(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, client := helpers.LoginAs(t, ts, adminSpec("root"))

	res, _ := ts.Get(t, client, "/admin/change_application_status/no-such-app/Rejected")
	helpers.RequireRedirect(t, res, "/admin_dashboard", "error", "Application not found")
}
