package employer

import (
	"time"

	"skillbridge/internal/domain/learner"
)

type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
)

type ApplicantStatus string

const (
	ApplicantStatusPending     ApplicantStatus = "pending"
	ApplicantStatusReviewed    ApplicantStatus = "reviewed"
	ApplicantStatusRejected    ApplicantStatus = "rejected"
	ApplicantStatusShortlisted ApplicantStatus = "shortlisted"
)

// Applicant carries a snapshot of the learner's skills taken at apply
// time; later skill edits do not propagate here.
type Applicant struct {
	Name        string          `json:"name" bson:"name"`
	Email       string          `json:"email" bson:"email"`
	ProfileLink string          `json:"profileLink" bson:"profileLink"`
	Skills      []learner.Skill `json:"skills" bson:"skills"`
	AppliedOn   time.Time       `json:"appliedOn" bson:"appliedOn"`
	Status      ApplicantStatus `json:"status" bson:"status"`
}

type Job struct {
	ID              string      `json:"id" bson:"id"`
	Title           string      `json:"title" bson:"title"`
	Description     string      `json:"description" bson:"description"`
	Skills          []string    `json:"skills" bson:"skills"`
	Qualification   string      `json:"qualification" bson:"qualification"`
	Experience      string      `json:"experience" bson:"experience"`
	Salary          string      `json:"salary" bson:"salary"`
	ApplicationLink string      `json:"applicationLink" bson:"applicationLink"`
	Status          JobStatus   `json:"status" bson:"status"`
	PostedDate      time.Time   `json:"postedDate" bson:"postedDate"`
	Applicants      []Applicant `json:"applicants" bson:"applicants"`
}

type Employer struct {
	Email       string    `json:"email" bson:"email"`
	FirstName   string    `json:"firstName" bson:"firstName"`
	LastName    string    `json:"lastName" bson:"lastName"`
	Password    string    `json:"-" bson:"password"`
	DOB         string    `json:"dob" bson:"dob"`
	Gender      string    `json:"gender" bson:"gender"`
	JobPosition string    `json:"jobPosition" bson:"jobPosition"`
	Company     string    `json:"company" bson:"company"`
	Jobs        []Job     `json:"jobs" bson:"jobs"`
	Revision    int64     `json:"-" bson:"revision"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
