// Package views renders loader states as plain text for the terminal.
package views

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/jobboard/internal/client/loadstate"
	"github.com/dmitrijs2005/jobboard/internal/client/models"
)

const (
	LoadingText = "Loading..."
	NoDataText  = "No job details available."
	EmptyText   = "No jobs found."

	// DeadlineLayout matches a US short date.
	DeadlineLayout = "1/2/2006"
)

// Presentation is what the detail view shows for a given state. Every state
// maps to exactly one.
type Presentation int

const (
	PresentPending Presentation = iota
	PresentError
	PresentEntity
	PresentNoData
)

func (p Presentation) String() string {
	switch p {
	case PresentPending:
		return "pending"
	case PresentError:
		return "error"
	case PresentEntity:
		return "entity"
	case PresentNoData:
		return "no-data"
	}
	return fmt.Sprintf("presentation(%d)", int(p))
}

// DetailPresentationOf classifies the detail state. Idle and Pending both
// show the loading text: nothing has been applied yet.
func DetailPresentationOf(st loadstate.State[*models.JobPosting]) Presentation {
	switch st.Tag() {
	case loadstate.TagFailed:
		return PresentError
	case loadstate.TagLoaded:
		if job, _ := st.Value(); job != nil {
			return PresentEntity
		}
		return PresentNoData
	default:
		return PresentPending
	}
}

// RenderList writes the job collection, one line per job.
func RenderList(w io.Writer, st loadstate.State[[]models.JobPosting]) error {
	if msg, ok := st.Message(); ok {
		_, err := fmt.Fprintln(w, msg)
		return err
	}
	jobs, ok := st.Value()
	if !ok {
		_, err := fmt.Fprintln(w, LoadingText)
		return err
	}
	if len(jobs) == 0 {
		_, err := fmt.Fprintln(w, EmptyText)
		return err
	}
	for _, j := range jobs {
		if _, err := fmt.Fprintf(w, "[%s] %s (%s, %s)\n", j.ID, j.Title, j.Type, j.Location); err != nil {
			return err
		}
	}
	return nil
}

// RenderDetail writes the detail view. Actions are listed only for an
// authenticated session.
func RenderDetail(w io.Writer, st loadstate.State[*models.JobPosting], authenticated bool) error {
	p := &printer{w: w}

	switch DetailPresentationOf(st) {
	case PresentPending:
		p.line(LoadingText)
	case PresentError:
		msg, _ := st.Message()
		p.line(msg)
	case PresentNoData:
		p.line(NoDataText)
	case PresentEntity:
		job, _ := st.Value()
		renderJob(p, job)
		if authenticated {
			p.line("")
			p.linef("Actions: delete %s | edit %s", job.ID, job.ID)
		}
	}
	return p.err
}

func renderJob(p *printer, j *models.JobPosting) {
	p.line(j.Title)
	p.field("Type", j.Type)
	p.field("Description", j.Description)
	p.field("Location", j.Location)
	p.field("Salary", FormatSalary(j.Salary))
	p.field("Experience Level", j.ExperienceLevel)
	p.field("Status", j.Status)
	if !j.ApplicationDeadline.IsZero() {
		p.field("Application Deadline", j.ApplicationDeadline.Format(DeadlineLayout))
	}

	p.line("")
	p.line("Company Info")
	p.field("Name", j.Company.Name)
	p.field("Email", j.Company.ContactEmail)
	p.field("Phone", j.Company.ContactPhone)
	if j.Company.Website != "" {
		p.field("Website", j.Company.Website)
	}
	if j.Company.Size != nil && *j.Company.Size != 0 {
		p.field("Company Size", fmt.Sprintf("%d employees", *j.Company.Size))
	}
}

func FormatSalary(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', -1, 64)
}

// printer keeps the first write error so render code can stay linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) linef(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

func (p *printer) field(name, value string) {
	p.linef("%s: %s", name, value)
}
