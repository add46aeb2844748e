package review

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qazimatch/qazimatch/pkg/client"
)

// fakeAPI is an in-memory system of record. Fetch returns a deep copy of
// its state; mutating calls update the state the way the real server does,
// or fail when told to.
type fakeAPI struct {
	mu   sync.Mutex
	jobs []client.JobWithApplications

	failNext error // next mutating call fails with this
	calls    []string

	block   chan struct{} // when set, mutating calls wait on it
	fetches int
}

func newFakeAPI(jobs []client.JobWithApplications) *fakeAPI {
	return &fakeAPI{jobs: jobs}
}

func (f *fakeAPI) OpenJobsWithApplications(ctx context.Context) ([]client.JobWithApplications, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	return copyJobs(f.jobs), nil
}

func (f *fakeAPI) mutate(name, jobID, appID string, apply func(job *client.JobWithApplications)) error {
	f.mu.Lock()
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name+":"+appID)
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	for i := range f.jobs {
		if f.jobs[i].ID == jobID {
			apply(&f.jobs[i])
		}
	}
	return nil
}

func (f *fakeAPI) SelectApplicant(ctx context.Context, jobID, appID string) error {
	return f.mutate("select", jobID, appID, func(job *client.JobWithApplications) {
		job.Status = client.JobFilled
		for i := range job.Applications {
			if job.Applications[i].ID == appID {
				job.Applications[i].Status = client.ApplicationAccepted
			} else {
				job.Applications[i].Status = client.ApplicationRejected
			}
		}
	})
}

func (f *fakeAPI) RejectApplicant(ctx context.Context, jobID, appID string) error {
	return f.mutate("reject", jobID, appID, func(job *client.JobWithApplications) {
		for i := range job.Applications {
			if job.Applications[i].ID == appID {
				job.Applications[i].Status = client.ApplicationRejected
			}
		}
	})
}

func (f *fakeAPI) ReviewApplicant(ctx context.Context, jobID, appID string) error {
	return f.mutate("review", jobID, appID, func(job *client.JobWithApplications) {
		for i := range job.Applications {
			if job.Applications[i].ID == appID {
				job.Applications[i].Status = client.ApplicationReviewed
			}
		}
	})
}

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func dashboardFixture() []client.JobWithApplications {
	return []client.JobWithApplications{
		{
			Job: client.Job{ID: "j1", Title: "Backend Engineer", Status: client.JobOpen},
			Applications: []client.Application{
				{ID: "a1", JobID: "j1", Status: client.ApplicationPending},
				{ID: "a2", JobID: "j1", Status: client.ApplicationReviewed},
				{ID: "a3", JobID: "j1", Status: client.ApplicationPending},
			},
		},
		{
			Job: client.Job{ID: "j2", Title: "Designer", Status: client.JobOpen},
			Applications: []client.Application{
				{ID: "b1", JobID: "j2", Status: client.ApplicationPending},
			},
		},
	}
}

func TestRefreshDropsJobsWithoutApplicants(t *testing.T) {
	jobs := dashboardFixture()
	jobs = append(jobs, client.JobWithApplications{
		Job: client.Job{ID: "j3", Title: "Empty", Status: client.JobOpen},
	})
	api := newFakeAPI(jobs)
	d := NewDashboard(api, nil)

	require.NoError(t, d.Refresh(context.Background()))
	got := d.Jobs()
	require.Len(t, got, 2)
	for _, job := range got {
		assert.NotEmpty(t, job.Applications)
	}
}

func TestAcceptFillsJobAndRejectsSiblings(t *testing.T) {
	api := newFakeAPI(dashboardFixture())
	notify := &recordingNotifier{}
	d := NewDashboard(api, notify)
	require.NoError(t, d.Refresh(context.Background()))

	require.NoError(t, d.Accept(context.Background(), "j1", "a2"))

	jobs := d.Jobs()
	var j1 client.JobWithApplications
	for _, job := range jobs {
		if job.ID == "j1" {
			j1 = job
		}
	}
	assert.Equal(t, client.JobFilled, j1.Status)
	for _, app := range j1.Applications {
		if app.ID == "a2" {
			assert.Equal(t, client.ApplicationAccepted, app.Status)
		} else {
			assert.Equal(t, client.ApplicationRejected, app.Status)
		}
	}
	assert.Equal(t, []string{"Applicant accepted successfully!"}, notify.successes)

	// The local mirror matches what a fresh fetch would return.
	fresh, err := api.OpenJobsWithApplications(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, jobs)
}

func TestFailedActionReconcilesWithFreshFetch(t *testing.T) {
	api := newFakeAPI(dashboardFixture())
	notify := &recordingNotifier{}
	d := NewDashboard(api, notify)
	require.NoError(t, d.Refresh(context.Background()))

	api.failNext = errors.New("server had a bad day")
	err := d.Reject(context.Background(), "j1", "a1")
	require.Error(t, err)

	// The speculative REJECTED status must be gone: the dashboard equals
	// exactly what a fresh fetch returns.
	fresh, ferr := api.OpenJobsWithApplications(context.Background())
	require.NoError(t, ferr)
	assert.Equal(t, fresh, d.Jobs())
	assert.Equal(t, []string{"server had a bad day"}, notify.errors)
}

func TestFailedAcceptAlsoReconciles(t *testing.T) {
	api := newFakeAPI(dashboardFixture())
	d := NewDashboard(api, nil)
	require.NoError(t, d.Refresh(context.Background()))

	api.failNext = errors.New("boom")
	require.Error(t, d.Accept(context.Background(), "j1", "a1"))

	fresh, err := api.OpenJobsWithApplications(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, d.Jobs())
	// Nothing accepted, nothing filled.
	for _, job := range d.Jobs() {
		assert.Equal(t, client.JobOpen, job.Status)
	}
}

func TestSecondActionWhileInFlightIsANoOp(t *testing.T) {
	api := newFakeAPI(dashboardFixture())
	d := NewDashboard(api, nil)
	require.NoError(t, d.Refresh(context.Background()))

	api.block = make(chan struct{})
	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		close(started)
		done <- d.Review(context.Background(), "j1", "a1")
	}()
	<-started
	// Give the goroutine a moment to take the processing slot, then try
	// to act on a different application.
	for d.Processing() == "" {
	}

	require.NoError(t, d.Reject(context.Background(), "j1", "a3"))
	require.NoError(t, d.Accept(context.Background(), "j2", "b1"))

	close(api.block)
	require.NoError(t, <-done)

	// Only the first action ever reached the network.
	assert.Equal(t, []string{"review:a1"}, api.calls)
}

func TestRedundantClicksAreGuarded(t *testing.T) {
	api := newFakeAPI(dashboardFixture())
	d := NewDashboard(api, nil)
	require.NoError(t, d.Refresh(context.Background()))

	// a2 is already REVIEWED: reviewing again dispatches nothing.
	require.NoError(t, d.Review(context.Background(), "j1", "a2"))
	assert.Empty(t, api.calls)

	// Unknown application: also a no-op.
	require.NoError(t, d.Reject(context.Background(), "j1", "nope"))
	assert.Empty(t, api.calls)
}

// slowFirstFetchAPI serves an outdated snapshot to the first fetch and only
// releases it after the second fetch has completed.
type slowFirstFetchAPI struct {
	*fakeAPI
	mu      sync.Mutex
	fetchNo int
	entered chan struct{} // closed once the first fetch has started
	first   chan struct{} // closed when the first fetch may return
	stale   []client.JobWithApplications
}

func (s *slowFirstFetchAPI) OpenJobsWithApplications(ctx context.Context) ([]client.JobWithApplications, error) {
	s.mu.Lock()
	s.fetchNo++
	n := s.fetchNo
	s.mu.Unlock()
	if n == 1 {
		close(s.entered)
		<-s.first
		return copyJobs(s.stale), nil
	}
	return s.fakeAPI.OpenJobsWithApplications(ctx)
}

func TestStaleRefreshResponseIsDiscarded(t *testing.T) {
	current := dashboardFixture()
	stale := []client.JobWithApplications{
		{
			Job: client.Job{ID: "old", Title: "Stale Job", Status: client.JobOpen},
			Applications: []client.Application{
				{ID: "x", JobID: "old", Status: client.ApplicationPending},
			},
		},
	}
	api := &slowFirstFetchAPI{
		fakeAPI: newFakeAPI(current),
		entered: make(chan struct{}),
		first:   make(chan struct{}),
		stale:   stale,
	}
	d := NewDashboard(api, nil)

	firstDone := make(chan error, 1)
	go func() { firstDone <- d.Refresh(context.Background()) }()
	<-api.entered

	// Second refresh starts later but completes first.
	require.NoError(t, d.Refresh(context.Background()))
	fresh := d.Jobs()
	require.Len(t, fresh, 2)

	// Now the slow first response lands, and must be ignored.
	close(api.first)
	require.NoError(t, <-firstDone)
	assert.Equal(t, fresh, d.Jobs())
}

// gatedFetchAPI holds each fetch on its own gate so tests can resolve them
// out of order.
type gatedFetchAPI struct {
	*fakeAPI
	mu      sync.Mutex
	started int
	gates   []chan struct{}
}

func (g *gatedFetchAPI) OpenJobsWithApplications(ctx context.Context) ([]client.JobWithApplications, error) {
	g.mu.Lock()
	idx := g.started
	g.started++
	g.mu.Unlock()
	if idx < len(g.gates) {
		<-g.gates[idx]
	}
	return g.fakeAPI.OpenJobsWithApplications(ctx)
}

func (g *gatedFetchAPI) inFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.started
}

func TestLoadingStaysOnUntilNewestRefreshLands(t *testing.T) {
	api := &gatedFetchAPI{
		fakeAPI: newFakeAPI(dashboardFixture()),
		gates:   []chan struct{}{make(chan struct{}), make(chan struct{})},
	}
	d := NewDashboard(api, nil)

	first := make(chan error, 1)
	go func() { first <- d.Refresh(context.Background()) }()
	for api.inFlight() < 1 {
	}

	second := make(chan error, 1)
	go func() { second <- d.Refresh(context.Background()) }()
	for api.inFlight() < 2 {
	}

	// The older fetch resolves while the newer one is still out; the
	// spinner stays on.
	close(api.gates[0])
	require.NoError(t, <-first)
	assert.True(t, d.Loading())

	close(api.gates[1])
	require.NoError(t, <-second)
	assert.False(t, d.Loading())
}

func TestFormatStatus(t *testing.T) {
	assert.Equal(t, "Accepted", FormatStatus("ACCEPTED"))
	assert.Equal(t, "Pending", FormatStatus("PENDING"))
	assert.Equal(t, "Reviewed", FormatStatus("reviewed"))
	assert.Equal(t, "", FormatStatus(""))
}
