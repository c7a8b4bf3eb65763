package dto

// ContactSubmission payload of the public contact form
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// LoginRequest payload of the admin login endpoint
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token issued on a successful login
type LoginResponse struct {
	Token string `json:"token"`
}

// StatsResponse aggregate document counts for the admin dashboard
type StatsResponse struct {
	Blogs        int64 `json:"blogs"`
	Projects     int64 `json:"projects"`
	CaseStudies  int64 `json:"case_studies"`
	Contacts     int64 `json:"contacts"`
	Technologies int64 `json:"technologies"`
	Gallery      int64 `json:"gallery"`
}
