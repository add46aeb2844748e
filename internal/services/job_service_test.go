package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qazimatch/qazimatch/internal/dtos"
	"github.com/qazimatch/qazimatch/internal/models"
)

func TestListHidesHeadhuntedAndClosedJobs(t *testing.T) {
	db := testDB(t)
	svc := NewJobService(db)
	employer := seedUser(t, db, models.RoleEmployer)

	visible := seedJob(t, db, employer.ID, models.JobOpen)
	seedJob(t, db, employer.ID, models.JobClosed)
	seedJob(t, db, employer.ID, models.JobFilled)

	private := seedJob(t, db, employer.ID, models.JobOpen)
	require.NoError(t, db.Model(private).Update("is_headhunted", true).Error)

	jobs, err := svc.List()
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, visible.ID, jobs[0].ID)
	require.NotNil(t, jobs[0].Employer)
	assert.Equal(t, employer.Email, jobs[0].Employer.Email)
}

func TestMyJobsIncludesEveryStatus(t *testing.T) {
	db := testDB(t)
	svc := NewJobService(db)
	employer := seedUser(t, db, models.RoleEmployer)
	other := seedUser(t, db, models.RoleEmployer)

	seedJob(t, db, employer.ID, models.JobOpen)
	seedJob(t, db, employer.ID, models.JobFilled)
	seedJob(t, db, other.ID, models.JobOpen)

	jobs, err := svc.MyJobs(employer.ID)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func TestCreateStoresRequirementsVerbatim(t *testing.T) {
	db := testDB(t)
	svc := NewJobService(db)
	employer := seedUser(t, db, models.RoleEmployer)

	// Requirements arrive pre-stringified; the service must not reparse or
	// normalize them.
	raw := `{"skills":["Go"],"experience":"3+ years"}`
	job, err := svc.Create(employer.ID, &dtos.JobCreationRequest{
		Title:        "Backend Engineer",
		Description:  "d",
		Requirements: raw,
	})
	require.NoError(t, err)

	var stored models.Job
	require.NoError(t, db.First(&stored, "id = ?", job.ID).Error)
	assert.Equal(t, raw, stored.Requirements)
	assert.Equal(t, models.JobOpen, stored.Status)
}

func TestUpdateDetailsIsPartial(t *testing.T) {
	db := testDB(t)
	svc := NewJobService(db)
	employer := seedUser(t, db, models.RoleEmployer)
	job := seedJob(t, db, employer.ID, models.JobOpen)

	title := "Senior Backend Engineer"
	_, err := svc.UpdateDetails(employer.ID, job.ID, &dtos.JobUpdateRequest{Title: &title})
	require.NoError(t, err)

	var stored models.Job
	require.NoError(t, db.First(&stored, "id = ?", job.ID).Error)
	assert.Equal(t, title, stored.Title)
	assert.Equal(t, job.Description, stored.Description)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	db := testDB(t)
	svc := NewJobService(db)
	employer := seedUser(t, db, models.RoleEmployer)
	job := seedJob(t, db, employer.ID, models.JobOpen)

	_, err := svc.UpdateStatus(employer.ID, job.ID, "PAUSED")
	require.ErrorIs(t, err, ErrInvalid)

	var stored models.Job
	require.NoError(t, db.First(&stored, "id = ?", job.ID).Error)
	assert.Equal(t, models.JobOpen, stored.Status)
}

func TestJobOwnershipIsEnforced(t *testing.T) {
	db := testDB(t)
	svc := NewJobService(db)
	owner := seedUser(t, db, models.RoleEmployer)
	intruder := seedUser(t, db, models.RoleEmployer)
	job := seedJob(t, db, owner.ID, models.JobOpen)

	title := "hijacked"
	_, err := svc.UpdateDetails(intruder.ID, job.ID, &dtos.JobUpdateRequest{Title: &title})
	require.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateStatus(intruder.ID, job.ID, models.JobClosed)
	require.ErrorIs(t, err, ErrForbidden)

	require.ErrorIs(t, svc.Delete(intruder.ID, job.ID), ErrForbidden)
	require.NoError(t, svc.Delete(owner.ID, job.ID))

	_, err = svc.Get(job.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
