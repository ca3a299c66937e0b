package models

// Job is a single listing returned by the external job-scraping API.
type Job struct {
	Title       string `json:"title"`
	CompanyName string `json:"companyName"`
	Location    string `json:"location"`
	Description string `json:"description"`
	URL         string `json:"url"`
}
