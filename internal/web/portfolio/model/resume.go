package model

import (
	"time"

	"github.com/Laisky/errors/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PersonalInfo resume header block
type PersonalInfo struct {
	FullName string `bson:"full_name" json:"full_name"`
	Title    string `bson:"title" json:"title"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	Location string `bson:"location,omitempty" json:"location,omitempty"`
	Website  string `bson:"website,omitempty" json:"website,omitempty"`
	Linkedin string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Github   string `bson:"github,omitempty" json:"github,omitempty"`
}

// Experience one work experience entry
type Experience struct {
	Company      string   `bson:"company" json:"company"`
	Position     string   `bson:"position" json:"position"`
	Duration     string   `bson:"duration" json:"duration"`
	Location     string   `bson:"location,omitempty" json:"location,omitempty"`
	Description  string   `bson:"description" json:"description"`
	Achievements []string `bson:"achievements" json:"achievements"`
	Technologies []string `bson:"technologies" json:"technologies"`
}

// Education one education entry
type Education struct {
	Institution string `bson:"institution" json:"institution"`
	Degree      string `bson:"degree" json:"degree"`
	Field       string `bson:"field,omitempty" json:"field,omitempty"`
	Duration    string `bson:"duration" json:"duration"`
	GPA         string `bson:"gpa,omitempty" json:"gpa,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// Certification one certification entry
type Certification struct {
	Name         string `bson:"name" json:"name"`
	Issuer       string `bson:"issuer" json:"issuer"`
	Date         string `bson:"date" json:"date"`
	CredentialID string `bson:"credential_id,omitempty" json:"credential_id,omitempty"`
	URL          string `bson:"url,omitempty" json:"url,omitempty"`
}

// SkillGroup named group of technical skills
type SkillGroup struct {
	Category string   `bson:"category" json:"category"`
	Items    []string `bson:"items" json:"items"`
}

// Skills technical and soft skills
type Skills struct {
	Technical []SkillGroup `bson:"technical" json:"technical"`
	Soft      []string     `bson:"soft" json:"soft"`
}

// Language spoken language with proficiency
type Language struct {
	Name        string `bson:"name" json:"name"`
	Proficiency string `bson:"proficiency" json:"proficiency"`
}

// Resume the current resume. At most one document exists; replacing it
// goes through delete-then-create, updating through upsert.
type Resume struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
	PersonalInfo   PersonalInfo       `bson:"personal_info" json:"personal_info"`
	Summary        string             `bson:"summary" json:"summary"`
	Experience     []Experience       `bson:"experience" json:"experience"`
	Education      []Education        `bson:"education" json:"education"`
	Certifications []Certification    `bson:"certifications" json:"certifications"`
	Skills         Skills             `bson:"skills" json:"skills"`
	Languages      []Language         `bson:"languages" json:"languages"`
	// ResumeFile URL to the downloadable PDF
	ResumeFile string `bson:"resume_file,omitempty" json:"resume_file,omitempty"`
}

// Validate check required fields
func (r *Resume) Validate() error {
	if r.PersonalInfo.FullName == "" {
		return errors.Wrap(ErrInvalid, "personal_info.full_name is required")
	}
	if r.PersonalInfo.Title == "" {
		return errors.Wrap(ErrInvalid, "personal_info.title is required")
	}
	if r.PersonalInfo.Email == "" {
		return errors.Wrap(ErrInvalid, "personal_info.email is required")
	}
	if r.Summary == "" {
		return errors.Wrap(ErrInvalid, "summary is required")
	}

	return nil
}
