package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qazimatch/qazimatch/internal/dtos"
	"github.com/qazimatch/qazimatch/internal/models"
)

func headhuntRequest() *dtos.HeadhuntCreationRequest {
	return &dtos.HeadhuntCreationRequest{
		Title:        "Principal Engineer",
		Description:  "Confidential search",
		ContractType: "FULL_TIME",
		CompanyName:  "Acme Corp",
	}
}

func TestCreateHeadhuntBacksAPrivateJob(t *testing.T) {
	db := testDB(t)
	svc := NewHeadhuntService(db, nil)
	employer := seedUser(t, db, models.RoleEmployer)

	req, err := svc.Create(employer.ID, headhuntRequest())
	require.NoError(t, err)
	assert.Equal(t, models.HeadhuntOpen, req.Status)
	assert.Equal(t, "MEDIUM", req.Urgency)
	assert.Equal(t, "EMAIL", req.PreferredContactMethod)

	var job models.Job
	require.NoError(t, db.First(&job, "id = ?", req.JobID).Error)
	assert.True(t, job.IsHeadhunted)
	assert.Equal(t, models.JobOpen, job.Status)
	assert.Equal(t, employer.ID, job.EmployerID)
}

func TestAssignThenFulfillHeadhunt(t *testing.T) {
	db := testDB(t)
	svc := NewHeadhuntService(db, nil)
	employer := seedUser(t, db, models.RoleEmployer)

	req, err := svc.Create(employer.ID, headhuntRequest())
	require.NoError(t, err)

	_, err = svc.Assign(employer.ID, req.ID, "recruiter-7")
	require.NoError(t, err)

	_, err = svc.Fulfill(employer.ID, req.ID, &dtos.HeadhuntFulfillRequest{CandidateName: "Jordan Doe"})
	require.NoError(t, err)

	var stored models.HeadhuntRequest
	require.NoError(t, db.First(&stored, "id = ?", req.ID).Error)
	assert.Equal(t, models.HeadhuntFulfilled, stored.Status)
	assert.Equal(t, "recruiter-7", stored.AssignedTo)
	assert.Equal(t, "Jordan Doe", stored.CandidateName)

	// A fulfilled request cannot be reassigned.
	_, err = svc.Assign(employer.ID, req.ID, "recruiter-8")
	require.ErrorIs(t, err, ErrConflict)
}

func TestHeadhuntOwnershipIsEnforced(t *testing.T) {
	db := testDB(t)
	svc := NewHeadhuntService(db, nil)
	owner := seedUser(t, db, models.RoleEmployer)
	intruder := seedUser(t, db, models.RoleEmployer)

	req, err := svc.Create(owner.ID, headhuntRequest())
	require.NoError(t, err)

	_, err = svc.Assign(intruder.ID, req.ID, "hijacked-recruiter")
	require.ErrorIs(t, err, ErrForbidden)
	_, err = svc.Fulfill(intruder.ID, req.ID, &dtos.HeadhuntFulfillRequest{CandidateName: "Mallory"})
	require.ErrorIs(t, err, ErrForbidden)

	// The request is untouched.
	var stored models.HeadhuntRequest
	require.NoError(t, db.First(&stored, "id = ?", req.ID).Error)
	assert.Equal(t, models.HeadhuntOpen, stored.Status)
	assert.Empty(t, stored.AssignedTo)
}

func TestMineWithoutMatcherSkipsSuggestions(t *testing.T) {
	db := testDB(t)
	svc := NewHeadhuntService(db, nil)
	employer := seedUser(t, db, models.RoleEmployer)

	req, err := svc.Create(employer.ID, headhuntRequest())
	require.NoError(t, err)
	seedApplication(t, db, req.JobID, seedUser(t, db, models.RoleEmployee).ID, models.ApplicationPending)

	listings, err := svc.Mine(context.Background(), employer.ID)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	require.NotNil(t, listings[0].Job)
	assert.Empty(t, listings[0].SuggestedCandidates)
}
