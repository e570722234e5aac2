package helpers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/flash"
	"jobportal_backend/internal/models"
)

// UserSpec describes a user to seed directly into the database.
type UserSpec struct {
	Username   string
	Email      string
	Password   string
	IsEmployer bool
	IsAdmin    bool
	IsApproved bool
	Company    string
}

// CreateUser inserts a user with a properly hashed password.
func CreateUser(t *testing.T, db *gorm.DB, spec UserSpec) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(spec.Password)
	require.NoError(t, err, "hash password")

	user := &models.User{
		Username:     spec.Username,
		Email:        spec.Email,
		PasswordHash: hash,
		IsEmployer:   spec.IsEmployer,
		IsAdmin:      spec.IsAdmin,
		IsApproved:   spec.IsApproved,
		Company:      spec.Company,
	}
	require.NoError(t, db.Create(user).Error, "create user %s", spec.Email)
	return user
}

// CreateJob inserts a job posted by the given user.
func CreateJob(t *testing.T, db *gorm.DB, poster *models.User, title string) *models.Job {
	t.Helper()

	company := poster.Company
	if company == "" {
		company = poster.Username
	}
	job := &models.Job{
		Title:       title,
		Description: "Test description for " + title,
		Company:     company,
		PostedBy:    poster.ID,
		Status:      models.JobStatusOpen,
	}
	require.NoError(t, db.Create(job).Error, "create job %s", title)
	return job
}

// Login authenticates through the real login route, leaving the session
// cookie in the client's jar.
func Login(t *testing.T, ts *TestServer, client *http.Client, email, password string) {
	t.Helper()

	res, _ := ts.PostForm(t, client, "/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	require.Equal(t, http.StatusSeeOther, res.StatusCode, "login should redirect")
}

// LoginAs seeds a user and logs them in, returning the user and a client
// holding their session.
func LoginAs(t *testing.T, ts *TestServer, spec UserSpec) (*models.User, *http.Client) {
	t.Helper()
	user := CreateUser(t, ts.DB, spec)
	client := ts.NewClient(t)
	Login(t, ts, client, spec.Email, spec.Password)
	return user, client
}

// FlashFrom decodes the flash cookie set on a redirect response, or nil.
func FlashFrom(res *http.Response) *flash.Message {
	for _, cookie := range res.Cookies() {
		if cookie.Name == "flash" && cookie.Value != "" {
			if msg := flash.Decode(cookie.Value); msg != nil {
				return msg
			}
		}
	}
	return nil
}

// RequireRedirect asserts a redirect to location with a flash at the given
// severity containing wantMsg.
func RequireRedirect(t *testing.T, res *http.Response, location, level, wantMsg string) {
	t.Helper()
	require.Equal(t, http.StatusSeeOther, res.StatusCode)
	require.Equal(t, location, res.Header.Get("Location"))

	msg := FlashFrom(res)
	require.NotNil(t, msg, "expected a flash message")
	require.Equal(t, level, msg.Level)
	require.Contains(t, msg.Message, wantMsg)
}
