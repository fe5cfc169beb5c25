package learner

import "time"

type Skill struct {
	Name        string `json:"name" bson:"name"`
	Proficiency int    `json:"proficiency" bson:"proficiency"`
	Verified    bool   `json:"verified" bson:"verified"`
}

type Certification struct {
	Title    string `json:"title" bson:"title"`
	Issuer   string `json:"issuer" bson:"issuer"`
	Date     string `json:"date" bson:"date"`
	FilePath string `json:"filePath" bson:"filePath"`
}

type Education struct {
	Level       string `json:"level" bson:"level"`
	Institute   string `json:"institute" bson:"institute"`
	YearPassing string `json:"yearPassing" bson:"yearPassing"`
	Percentage  string `json:"percentage" bson:"percentage"`
}

type Language struct {
	Name        string `json:"name" bson:"name"`
	Proficiency string `json:"proficiency" bson:"proficiency"`
}

type Work struct {
	Title       string `json:"title" bson:"title"`
	Company     string `json:"company" bson:"company"`
	Duration    string `json:"duration" bson:"duration"`
	Description string `json:"description" bson:"description"`
}

// AppliedJob is a weak back-reference into an employer's job sequence,
// not an owned sub-entity.
type AppliedJob struct {
	JobID         string `json:"jobId" bson:"jobId"`
	EmployerEmail string `json:"employerEmail" bson:"employerEmail"`
}

type Learner struct {
	Email             string          `json:"email" bson:"email"`
	FirstName         string          `json:"firstName" bson:"firstName"`
	LastName          string          `json:"lastName" bson:"lastName"`
	Password          string          `json:"-" bson:"password"`
	Mobile            string          `json:"mobile" bson:"mobile"`
	DOB               string          `json:"dob" bson:"dob"`
	Gender            string          `json:"gender" bson:"gender"`
	Sector            string          `json:"sector" bson:"sector"`
	YearsOfExperience string          `json:"yearsOfExperience" bson:"yearsOfExperience"`
	About             string          `json:"about" bson:"about"`
	ProfilePic        string          `json:"profilePic" bson:"profilePic"`
	ProfileLink       string          `json:"profileLink" bson:"profileLink"`
	Domains           []string        `json:"domains" bson:"domains"`
	SoftSkills        []string        `json:"softSkills" bson:"softSkills"`
	Education         []Education     `json:"education" bson:"education"`
	Skills            []Skill         `json:"skills" bson:"skills"`
	Certifications    []Certification `json:"certifications" bson:"certifications"`
	Languages         []Language      `json:"languages" bson:"languages"`
	Work              []Work          `json:"work" bson:"work"`
	AppliedJobs       []AppliedJob    `json:"appliedJobs" bson:"appliedJobs"`
	Revision          int64           `json:"-" bson:"revision"`
	CreatedAt         time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt" bson:"updatedAt"`
}
