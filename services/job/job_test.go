package job

import (
	"testing"

	"labourmandi/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobStore struct {
	jobs map[uuid.UUID]*models.Job
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: map[uuid.UUID]*models.Job{}}
}

func (f *fakeJobStore) GetByID(id uuid.UUID) (*models.Job, error) { return f.jobs[id], nil }

func (f *fakeJobStore) List() ([]models.Job, error) {
	var out []models.Job
	for _, j := range f.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (f *fakeJobStore) Create(j *models.Job) error {
	j.ID = uuid.New()
	f.jobs[j.ID] = j
	return nil
}

func (f *fakeJobStore) UpdateStatus(id uuid.UUID, status models.JobStatus) (*models.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, nil
	}
	j.Status = status
	return j, nil
}

type fakeBidStore struct {
	bids map[uuid.UUID]*models.Bid
	jobs *fakeJobStore
}

func newFakeBidStore(jobs *fakeJobStore) *fakeBidStore {
	return &fakeBidStore{bids: map[uuid.UUID]*models.Bid{}, jobs: jobs}
}

func (f *fakeBidStore) GetByID(id uuid.UUID) (*models.Bid, error) { return f.bids[id], nil }

func (f *fakeBidStore) ListByJob(jobID uuid.UUID) ([]models.Bid, error) {
	var out []models.Bid
	for _, b := range f.bids {
		if b.JobID == jobID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBidStore) ListByTechnician(technicianID uuid.UUID) ([]models.Bid, error) {
	var out []models.Bid
	for _, b := range f.bids {
		if b.TechnicianID == technicianID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBidStore) Create(b *models.Bid) error {
	b.ID = uuid.New()
	f.bids[b.ID] = b
	return nil
}

func (f *fakeBidStore) Accept(bidID, jobID uuid.UUID) error {
	f.bids[bidID].Status = models.BidStatusAccepted
	f.jobs.jobs[jobID].Status = models.JobStatusInProgress
	for _, b := range f.bids {
		if b.JobID == jobID && b.ID != bidID && b.Status == models.BidStatusPending {
			b.Status = models.BidStatusRejected
		}
	}
	return nil
}

type fakeUserStore struct {
	users map[uuid.UUID]*models.User
}

func (f *fakeUserStore) GetByID(id uuid.UUID) (*models.User, error)    { return f.users[id], nil }
func (f *fakeUserStore) GetByPhone(phone string) (*models.User, error) { return nil, nil }
func (f *fakeUserStore) Create(usr *models.User) error                 { return nil }
func (f *fakeUserStore) List() ([]models.User, error)                  { return nil, nil }
func (f *fakeUserStore) Count() (int64, error)                         { return 0, nil }
func (f *fakeUserStore) Update(id uuid.UUID, cols map[string]any) (*models.User, error) {
	return f.users[id], nil
}

func newJobService() (*DefaultJobService, *fakeJobStore, *fakeBidStore) {
	jobs := newFakeJobStore()
	bids := newFakeBidStore(jobs)
	svc := &DefaultJobService{
		Jobs:               jobs,
		Bids:               bids,
		Users:              &fakeUserStore{users: map[uuid.UUID]*models.User{}},
		AllowClosedJobBids: true,
	}
	return svc, jobs, bids
}

func postJob(t *testing.T, svc *DefaultJobService, customerID uuid.UUID, status models.JobStatus) *models.Job {
	t.Helper()
	j, err := svc.CreateJob(customerID, CreateJobRequest{Title: "Fix bathroom leak", Description: "Leaking pipe under sink"})
	require.NoError(t, err)
	if status != models.JobStatusOpen {
		j.Status = status
	}
	return j
}

func TestCreateJobStartsOpen(t *testing.T) {
	svc, _, _ := newJobService()
	customerID := uuid.New()

	j := postJob(t, svc, customerID, models.JobStatusOpen)
	assert.Equal(t, models.JobStatusOpen, j.Status)
	assert.Equal(t, customerID, j.CustomerID)
}

func TestPlaceBidsSingleAndBatch(t *testing.T) {
	svc, _, _ := newJobService()
	j := postJob(t, svc, uuid.New(), models.JobStatusOpen)
	techID := uuid.New()

	single, err := svc.PlaceBids(techID, PlaceBidRequest{JobID: j.ID, Amount: 2500, DeliveryTime: "2 days"})
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.Equal(t, models.BidStatusPending, single[0].Status)

	batch, err := svc.PlaceBids(techID, PlaceBidRequest{
		JobID: j.ID,
		Options: []BidOption{
			{Amount: 3000, IsDefault: true},
			{Amount: 2000, DeliveryTime: "5 days"},
		},
	})
	require.NoError(t, err)
	require.Len(t, batch, 2)
	assert.True(t, batch[0].IsDefault)
	assert.False(t, batch[1].IsDefault)
}

func TestPlaceBidsValidation(t *testing.T) {
	svc, _, _ := newJobService()
	j := postJob(t, svc, uuid.New(), models.JobStatusOpen)
	techID := uuid.New()

	_, err := svc.PlaceBids(techID, PlaceBidRequest{JobID: uuid.New(), Amount: 100})
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = svc.PlaceBids(techID, PlaceBidRequest{JobID: j.ID, Amount: 0})
	assert.Error(t, err)

	_, err = svc.PlaceBids(techID, PlaceBidRequest{
		JobID: j.ID,
		Options: []BidOption{
			{Amount: 1000, IsDefault: true},
			{Amount: 2000, IsDefault: true},
		},
	})
	assert.Error(t, err)
}

func TestPlaceBidsClosedJobGate(t *testing.T) {
	svc, _, _ := newJobService()
	j := postJob(t, svc, uuid.New(), models.JobStatusCompleted)
	techID := uuid.New()

	// Default behaviour accepts bids regardless of job state.
	_, err := svc.PlaceBids(techID, PlaceBidRequest{JobID: j.ID, Amount: 500})
	require.NoError(t, err)

	svc.AllowClosedJobBids = false
	_, err = svc.PlaceBids(techID, PlaceBidRequest{JobID: j.ID, Amount: 500})
	assert.ErrorIs(t, err, ErrJobClosed)
}

func TestAcceptBidTransition(t *testing.T) {
	svc, jobs, bids := newJobService()
	customerID := uuid.New()
	j := postJob(t, svc, customerID, models.JobStatusOpen)

	placed, err := svc.PlaceBids(uuid.New(), PlaceBidRequest{
		JobID: j.ID,
		Options: []BidOption{
			{Amount: 2500},
			{Amount: 3000},
		},
	})
	require.NoError(t, err)
	settled, err := svc.PlaceBids(uuid.New(), PlaceBidRequest{JobID: j.ID, Amount: 4000})
	require.NoError(t, err)
	// One bid was already settled before the acceptance.
	bids.bids[settled[0].ID].Status = models.BidStatusRejected

	require.NoError(t, svc.AcceptBid(customerID, placed[0].ID))

	assert.Equal(t, models.BidStatusAccepted, bids.bids[placed[0].ID].Status)
	assert.Equal(t, models.BidStatusRejected, bids.bids[placed[1].ID].Status)
	assert.Equal(t, models.BidStatusRejected, bids.bids[settled[0].ID].Status)
	assert.Equal(t, models.JobStatusInProgress, jobs.jobs[j.ID].Status)
}

func TestAcceptBidOwnerOnly(t *testing.T) {
	svc, _, _ := newJobService()
	j := postJob(t, svc, uuid.New(), models.JobStatusOpen)

	placed, err := svc.PlaceBids(uuid.New(), PlaceBidRequest{JobID: j.ID, Amount: 2500})
	require.NoError(t, err)

	err = svc.AcceptBid(uuid.New(), placed[0].ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	err = svc.AcceptBid(uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrBidNotFound)
}

func TestUpdateStatus(t *testing.T) {
	svc, _, _ := newJobService()
	customerID := uuid.New()
	j := postJob(t, svc, customerID, models.JobStatusOpen)

	updated, err := svc.UpdateStatus(customerID, j.ID, models.JobStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, updated.Status)

	_, err = svc.UpdateStatus(uuid.New(), j.ID, models.JobStatusCancelled)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.UpdateStatus(customerID, j.ID, models.JobStatus("archived"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(customerID, uuid.New(), models.JobStatusCancelled)
	assert.ErrorIs(t, err, ErrJobNotFound)
}
