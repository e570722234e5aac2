package integration

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal_backend/internal/models"
	"jobportal_backend/test/helpers"
)

func TestRegisterSeekerIsAutoApproved(t *testing.T) {
	ts := helpers.NewTestServer(t)
	client := ts.NewClient(t)

	res, _ := ts.PostForm(t, client, "/register", url.Values{
		"username": {"alice"},
		"email":    {"Alice@Example.com"},
		"password": {"password123"},
	})
	helpers.RequireRedirect(t, res, "/login", "success", "Registered successfully")

	var user models.User
	require.NoError(t, ts.DB.First(&user, "username = ?", "alice").Error)
	assert.Equal(t, "alice@example.com", user.Email, "email should be lowercased")
	assert.False(t, user.IsEmployer)
	assert.True(t, user.IsApproved, "job seekers are approved at registration")
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.True(t, strings.HasPrefix(user.PasswordHash, "$2a$"), "password must be stored as a bcrypt hash")
}

func TestRegisterEmployerStartsUnapproved(t *testing.T) {
	ts := helpers.NewTestServer(t)
	client := ts.NewClient(t)

	res, _ := ts.PostForm(t, client, "/register", url.Values{
		"username":    {"acme"},
		"email":       {"hr@acme.test"},
		"password":    {"password123"},
		"is_employer": {"on"},
		"company":     {"Acme Inc."},
	})
	helpers.RequireRedirect(t, res, "/login", "success", "Registered successfully")

	var user models.User
	require.NoError(t, ts.DB.First(&user, "username = ?", "acme").Error)
	assert.True(t, user.IsEmployer)
	assert.False(t, user.IsApproved, "employers wait for admin approval")
	assert.Equal(t, "Acme Inc.", user.Company)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	ts := helpers.NewTestServer(t)
	helpers.CreateUser(t, ts.DB, helpers.UserSpec{
		Username: "alice", Email: "alice@example.com", Password: "password123", IsApproved: true,
	})

	cases := []struct {
		name string
		form url.Values
	}{
		{"duplicate username", url.Values{
			"username": {"alice"}, "email": {"other@example.com"}, "password": {"password123"},
		}},
		{"duplicate email", url.Values{
			"username": {"alice2"}, "email": {"alice@example.com"}, "password": {"password123"},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := ts.NewClient(t)
			res, _ := ts.PostForm(t, client, "/register", tc.form)
			helpers.RequireRedirect(t, res, "/register", "warning", "already exists")
		})
	}

	var count int64
	ts.DB.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count, "no extra rows after rejected registrations")
}

func TestRegisterRejectsBlankFields(t *testing.T) {
	ts := helpers.NewTestServer(t)
	client := ts.NewClient(t)

	res, _ := ts.PostForm(t, client, "/register", url.Values{
		"username": {"bob"},
		"email":    {"bob@example.com"},
	})
	require.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/register", res.Header.Get("Location"))

	var count int64
	ts.DB.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestLoginInvalidCredentials(t *testing.T) {
	ts := helpers.NewTestServer(t)
	helpers.CreateUser(t, ts.DB, helpers.UserSpec{
		Username: "alice", Email: "alice@example.com", Password: "password123", IsApproved: true,
	})

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown user", "nobody@example.com", "password123"},
		{"wrong password", "alice@example.com", "wrong-password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := ts.NewClient(t)
			res, _ := ts.PostForm(t, client, "/login", url.Values{
				"email": {tc.email}, "password": {tc.password},
			})
			helpers.RequireRedirect(t, res, "/login", "error", "Invalid credentials")
		})
	}
}

func TestLoginLandingPageDependsOnRole(t *testing.T) {
	ts := helpers.NewTestServer(t)

	cases := []struct {
		name     string
		spec     helpers.UserSpec
		location string
	}{
		{"admin", helpers.UserSpec{Username: "root", Email: "root@example.com", Password: "password123", IsAdmin: true, IsApproved: true}, "/admin_dashboard"},
		{"approved employer", helpers.UserSpec{Username: "acme", Email: "acme@example.com", Password: "password123", IsEmployer: true, IsApproved: true}, "/post-job"},
		{"unapproved employer", helpers.UserSpec{Username: "newco", Email: "newco@example.com", Password: "password123", IsEmployer: true}, "/"},
		{"seeker", helpers.UserSpec{Username: "alice", Email: "alice@example.com", Password: "password123", IsApproved: true}, "/"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			helpers.CreateUser(t, ts.DB, tc.spec)
			client := ts.NewClient(t)
			res, _ := ts.PostForm(t, client, "/login", url.Values{
				"email": {tc.spec.Email}, "password": {tc.spec.Password},
			})
			require.Equal(t, http.StatusSeeOther, res.StatusCode)
			assert.Equal(t, tc.location, res.Header.Get("Location"))
		})
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, client := helpers.LoginAs(t, ts, helpers.UserSpec{
		Username: "alice", Email: "alice@example.com", Password: "password123", IsApproved: true,
	})

	res, _ := ts.Get(t, client, "/my-applications")
	require.Equal(t, http.StatusOK, res.StatusCode, "session should be live before logout")

	res, _ = ts.Get(t, client, "/logout")
	helpers.RequireRedirect(t, res, "/", "info", "Logged out successfully")

	res, _ = ts.Get(t, client, "/my-applications")
	require.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/login", res.Header.Get("Location"), "session must be gone after logout")
}
