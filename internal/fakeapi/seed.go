package fakeapi

import (
	"time"

	"github.com/dmitrijs2005/jobboard/internal/client/models"
)

const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "demo"
)

// SeedJobs returns a small fixed catalogue for the development server.
func SeedJobs() []models.JobPosting {
	size := 120
	next := time.Now().UTC().AddDate(0, 1, 0)
	deadline := models.NewDate(next.Year(), next.Month(), next.Day())
	return []models.JobPosting{
		{
			Title:               "Senior Go Engineer",
			Type:                "Full-Time",
			Description:         "Build and run the job board API.",
			Location:            "Remote",
			Salary:              140000,
			ExperienceLevel:     "Senior",
			Status:              "open",
			ApplicationDeadline: deadline,
			Company: models.Company{
				Name:         "Gopher Works",
				ContactEmail: "hiring@gopher.works",
				ContactPhone: "555-0101",
				Website:      "https://gopher.works",
				Size:         &size,
			},
		},
		{
			Title:           "Frontend Developer",
			Type:            "Part-Time",
			Description:     "Own the listing and detail pages.",
			Location:        "Riga",
			Salary:          60000,
			ExperienceLevel: "Mid",
			Status:          "open",
			Company: models.Company{
				Name:         "Baltic Pixels",
				ContactEmail: "jobs@balticpixels.test",
				ContactPhone: "555-0102",
			},
		},
	}
}
