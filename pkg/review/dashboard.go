// Package review implements the employer's applicant-review dashboard: a
// local mirror of jobs-with-applications kept in sync with the server
// through optimistic updates.
//
// Every mutating action follows one discipline: mutate the local mirror
// first, then confirm with the server; on failure the mirror is discarded
// wholesale and re-fetched (full reconciliation, never a targeted patch).
package review

import (
	"context"
	"strings"
	"sync"

	"github.com/qazimatch/qazimatch/pkg/client"
)

// API is the slice of the REST client the dashboard needs.
type API interface {
	OpenJobsWithApplications(ctx context.Context) ([]client.JobWithApplications, error)
	SelectApplicant(ctx context.Context, jobID, applicationID string) error
	RejectApplicant(ctx context.Context, jobID, applicationID string) error
	ReviewApplicant(ctx context.Context, jobID, applicationID string) error
}

// Notifier surfaces action outcomes to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// Action is one of the three employer moves on an application.
type Action int

const (
	ActionReview Action = iota
	ActionReject
	ActionAccept
)

func (a Action) target() string {
	switch a {
	case ActionAccept:
		return client.ApplicationAccepted
	case ActionReject:
		return client.ApplicationRejected
	default:
		return client.ApplicationReviewed
	}
}

// Dashboard holds the view state. At most one mutating action is in flight
// at a time (a dashboard-wide lock); a second action issued meanwhile is a
// no-op and dispatches nothing.
type Dashboard struct {
	api    API
	notify Notifier

	mu         sync.Mutex
	jobs       []client.JobWithApplications
	processing string // application id of the in-flight action, "" when idle
	loading    bool
	lastErr    string

	// Refresh responses are ordered by sequence number so a slow, stale
	// fetch can never overwrite a fresher one.
	seq     uint64
	applied uint64
}

func NewDashboard(api API, notify Notifier) *Dashboard {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Dashboard{api: api, notify: notify}
}

// Refresh replaces the local mirror with a fresh full fetch. Jobs without
// applicants are dropped; the dashboard only shows jobs with someone to
// review.
func (d *Dashboard) Refresh(ctx context.Context) error {
	d.mu.Lock()
	d.seq++
	seq := d.seq
	d.loading = true
	d.mu.Unlock()

	jobs, err := d.api.OpenJobsWithApplications(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	// Only the newest outstanding fetch settles the spinner; an older
	// response returning first must not hide it while a refresh is still
	// in flight.
	if seq == d.seq {
		d.loading = false
	}
	if seq < d.applied {
		// A later fetch already landed; this response is stale.
		return nil
	}
	d.applied = seq

	if err != nil {
		d.lastErr = errMessage(err)
		return err
	}

	d.lastErr = ""
	d.jobs = d.jobs[:0]
	for _, job := range jobs {
		if len(job.Applications) > 0 {
			d.jobs = append(d.jobs, job)
		}
	}
	return nil
}

// Jobs returns a copy of the current mirror.
func (d *Dashboard) Jobs() []client.JobWithApplications {
	d.mu.Lock()
	defer d.mu.Unlock()
	return copyJobs(d.jobs)
}

// Loading reports whether a refresh is in flight.
func (d *Dashboard) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

// LastError is the persistent error panel text, "" when healthy.
func (d *Dashboard) LastError() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastErr
}

// Processing returns the application id of the in-flight action, "" when
// idle. The UI disables all action buttons while non-empty.
func (d *Dashboard) Processing() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.processing
}

// Accept takes an applicant. Locally the job goes FILLED, the chosen
// application ACCEPTED and every sibling REJECTED, mirroring what the
// server does in its own transaction.
func (d *Dashboard) Accept(ctx context.Context, jobID, applicationID string) error {
	return d.act(ctx, jobID, applicationID, ActionAccept)
}

func (d *Dashboard) Reject(ctx context.Context, jobID, applicationID string) error {
	return d.act(ctx, jobID, applicationID, ActionReject)
}

func (d *Dashboard) Review(ctx context.Context, jobID, applicationID string) error {
	return d.act(ctx, jobID, applicationID, ActionReview)
}

func (d *Dashboard) act(ctx context.Context, jobID, applicationID string, action Action) error {
	d.mu.Lock()
	if d.processing != "" {
		// Another action is in flight; this one is a guarded no-op.
		d.mu.Unlock()
		return nil
	}

	app := d.find(jobID, applicationID)
	if app == nil {
		d.mu.Unlock()
		return nil
	}
	if app.Status == action.target() {
		// Redundant click.
		d.mu.Unlock()
		return nil
	}
	if action == ActionReview && app.Status != client.ApplicationPending {
		d.mu.Unlock()
		return nil
	}

	d.processing = applicationID
	d.applyLocal(jobID, applicationID, action)
	d.mu.Unlock()

	var err error
	switch action {
	case ActionAccept:
		err = d.api.SelectApplicant(ctx, jobID, applicationID)
	case ActionReject:
		err = d.api.RejectApplicant(ctx, jobID, applicationID)
	default:
		err = d.api.ReviewApplicant(ctx, jobID, applicationID)
	}

	d.mu.Lock()
	d.processing = ""
	d.mu.Unlock()

	if err != nil {
		d.notify.Error(errMessage(err))
		// Discard the speculative mirror entirely and reload.
		d.Refresh(ctx)
		return err
	}

	switch action {
	case ActionAccept:
		d.notify.Success("Applicant accepted successfully!")
	case ActionReject:
		d.notify.Success("Applicant rejected successfully!")
	default:
		d.notify.Success("Applicant marked as reviewed successfully!")
	}
	return nil
}

// applyLocal performs the optimistic mutation. Caller holds d.mu.
func (d *Dashboard) applyLocal(jobID, applicationID string, action Action) {
	for i := range d.jobs {
		if d.jobs[i].ID != jobID {
			continue
		}
		if action == ActionAccept {
			d.jobs[i].Status = client.JobFilled
			for j := range d.jobs[i].Applications {
				if d.jobs[i].Applications[j].ID == applicationID {
					d.jobs[i].Applications[j].Status = client.ApplicationAccepted
				} else {
					d.jobs[i].Applications[j].Status = client.ApplicationRejected
				}
			}
		} else {
			for j := range d.jobs[i].Applications {
				if d.jobs[i].Applications[j].ID == applicationID {
					d.jobs[i].Applications[j].Status = action.target()
				}
			}
		}
		return
	}
}

// find returns a pointer into the mirror. Caller holds d.mu.
func (d *Dashboard) find(jobID, applicationID string) *client.Application {
	for i := range d.jobs {
		if d.jobs[i].ID != jobID {
			continue
		}
		for j := range d.jobs[i].Applications {
			if d.jobs[i].Applications[j].ID == applicationID {
				return &d.jobs[i].Applications[j]
			}
		}
	}
	return nil
}

func copyJobs(jobs []client.JobWithApplications) []client.JobWithApplications {
	out := make([]client.JobWithApplications, len(jobs))
	copy(out, jobs)
	for i := range out {
		apps := make([]client.Application, len(out[i].Applications))
		copy(apps, out[i].Applications)
		out[i].Applications = apps
	}
	return out
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return client.UnknownErrorMessage
}

// FormatStatus renders a status constant for display: first letter upper,
// rest lower ("ACCEPTED" -> "Accepted").
func FormatStatus(status string) string {
	if status == "" {
		return ""
	}
	lower := strings.ToLower(status)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
