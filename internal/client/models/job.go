// Package models defines the job-board records exchanged with the server.
package models

import "encoding/json"

// Company is the employer embedded in every JobPosting.
type Company struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Website      string `json:"website,omitempty"`
	Size         *int   `json:"size,omitempty"`
}

// JobPosting is a single job listing. The server owns it; the client only
// caches it for as long as the view that fetched it is alive.
type JobPosting struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Type                string     `json:"type"`
	Description         string     `json:"description"`
	Location            string     `json:"location"`
	Salary              float64    `json:"salary"`
	ExperienceLevel     string     `json:"experienceLevel"`
	Status              string     `json:"status"`
	ApplicationDeadline Date       `json:"applicationDeadline,omitzero"`
	Company             Company    `json:"company"`
}

// UnmarshalJSON accepts both "id" and the storage-native "_id" key; "id"
// wins when both are present.
func (j *JobPosting) UnmarshalJSON(b []byte) error {
	type plain JobPosting
	var aux struct {
		plain
		MongoID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*j = JobPosting(aux.plain)
	if j.ID == "" {
		j.ID = aux.MongoID
	}
	return nil
}

// Update returns the writable part of the posting.
func (j JobPosting) Update() JobUpdate {
	return JobUpdate{
		Title:               j.Title,
		Type:                j.Type,
		Description:         j.Description,
		Location:            j.Location,
		Salary:              j.Salary,
		ExperienceLevel:     j.ExperienceLevel,
		Status:              j.Status,
		ApplicationDeadline: j.ApplicationDeadline,
		Company:             j.Company,
	}
}

// JobUpdate is the body of an authenticated PUT /api/jobs/{id}.
type JobUpdate struct {
	Title               string     `json:"title"`
	Type                string     `json:"type"`
	Description         string     `json:"description"`
	Location            string     `json:"location"`
	Salary              float64    `json:"salary"`
	ExperienceLevel     string     `json:"experienceLevel"`
	Status              string     `json:"status"`
	ApplicationDeadline Date       `json:"applicationDeadline,omitzero"`
	Company             Company    `json:"company"`
}
