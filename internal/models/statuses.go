package models

type JobStatus string
type ApplicationStatus string

const (
	JobStatusOpen   JobStatus = "Open"
	JobStatusClosed JobStatus = "Closed"
	JobStatusFilled JobStatus = "Filled"

	ApplicationStatusUnderReview ApplicationStatus = "Under Review"
	ApplicationStatusAccepted    ApplicationStatus = "Accepted"
	ApplicationStatusRejected    ApplicationStatus = "Rejected"
)

// ValidJobStatus reports whether s is one of the accepted job statuses.
// Status values arrive as free-form path parameters, so they are checked
// before anything is persisted.
func ValidJobStatus(s string) bool {
	switch JobStatus(s) {
	case JobStatusOpen, JobStatusClosed, JobStatusFilled:
		return true
	}
	return false
}

// ValidApplicationStatus reports whether s is an accepted application status.
func ValidApplicationStatus(s string) bool {
	switch ApplicationStatus(s) {
	case ApplicationStatusUnderReview, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}
