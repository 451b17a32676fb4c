package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/jobboard/internal/client/models"
	"github.com/dmitrijs2005/jobboard/internal/client/views"
	"github.com/dmitrijs2005/jobboard/internal/common"
)

const dateLayout = models.DateLayout

var errLoginRequired = errors.New("login required")

// List opens the job list.
func (a *App) List(ctx context.Context) error {
	a.Navigate(common.RouteRoot)
	return a.followNavigation(ctx)
}

// Show opens the detail view of one job.
func (a *App) Show(ctx context.Context, id string) error {
	a.Navigate(common.JobRoute(id))
	return a.followNavigation(ctx)
}

// Delete asks for confirmation and removes the job. Failures are logged by
// the mutator; the current view stays as it is.
func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if err := a.mutator.ConfirmAndDelete(ctx, id, a); err != nil {
		return err
	}
	return a.followNavigation(ctx)
}

// Edit opens the edit form for a job.
func (a *App) Edit(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	a.mutator.EditRequested(id)
	return a.followNavigation(ctx)
}

func (a *App) requireLogin() error {
	if a.isLoggedIn() {
		return nil
	}
	fmt.Fprintln(a.out, "Please log in first.")
	return errLoginRequired
}

// editForm loads the job, prompts for every writable field with the current
// value as default and submits the update.
func (a *App) editForm(ctx context.Context, id string) error {
	a.list.Deactivate()
	a.detail.Close()
	a.detail.SetID(ctx, id)
	st, err := a.detail.Wait(ctx)
	if err != nil {
		return err
	}

	job, ok := st.Value()
	if !ok || job == nil {
		return views.RenderDetail(a.out, st, false)
	}

	update, err := a.promptUpdate(job.Update())
	if err != nil {
		fmt.Fprintf(a.out, "Edit cancelled: %v\n", err)
		return err
	}
	if err := a.mutator.Update(ctx, id, update); err != nil {
		return err
	}
	return a.followNavigation(ctx)
}

func (a *App) promptUpdate(u models.JobUpdate) (models.JobUpdate, error) {
	text := func(label string, dst *string) error {
		v, err := GetWithDefault(a.reader, label, *dst, a.out)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}

	for _, f := range []struct {
		label string
		dst   *string
	}{
		{"Title", &u.Title},
		{"Type", &u.Type},
		{"Description", &u.Description},
		{"Location", &u.Location},
	} {
		if err := text(f.label, f.dst); err != nil {
			return u, err
		}
	}

	salary, err := GetWithDefault(a.reader, "Salary", strconv.FormatFloat(u.Salary, 'f', -1, 64), a.out)
	if err != nil {
		return u, err
	}
	if u.Salary, err = strconv.ParseFloat(salary, 64); err != nil {
		return u, fmt.Errorf("invalid salary %q", salary)
	}

	if err := text("Experience Level", &u.ExperienceLevel); err != nil {
		return u, err
	}
	if err := text("Status", &u.Status); err != nil {
		return u, err
	}

	current := ""
	if !u.ApplicationDeadline.IsZero() {
		current = u.ApplicationDeadline.Format(dateLayout)
	}
	deadline, err := GetWithDefault(a.reader, "Application Deadline (YYYY-MM-DD)", current, a.out)
	if err != nil {
		return u, err
	}
	if deadline != current {
		d, err := models.ParseDate(deadline)
		if err != nil {
			return u, fmt.Errorf("invalid deadline %q", deadline)
		}
		u.ApplicationDeadline = d
	}

	for _, f := range []struct {
		label string
		dst   *string
	}{
		{"Company Name", &u.Company.Name},
		{"Company Email", &u.Company.ContactEmail},
		{"Company Phone", &u.Company.ContactPhone},
		{"Company Website", &u.Company.Website},
	} {
		if err := text(f.label, f.dst); err != nil {
			return u, err
		}
	}
	return u, nil
}
