package seed

import (
	"testing"

	"labourmandi/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	users     []*models.User
	profiles  []*models.TechnicianProfile
	portfolio []*models.PortfolioItem
	jobs      []*models.Job
	bids      []*models.Bid
}

func (f *fakeStore) GetByID(id uuid.UUID) (*models.User, error)    { return nil, nil }
func (f *fakeStore) GetByPhone(phone string) (*models.User, error) { return nil, nil }
func (f *fakeStore) Create(usr *models.User) error {
	usr.ID = uuid.New()
	f.users = append(f.users, usr)
	return nil
}
func (f *fakeStore) List() ([]models.User, error) { return nil, nil }
func (f *fakeStore) Count() (int64, error)        { return int64(len(f.users)), nil }
func (f *fakeStore) Update(id uuid.UUID, cols map[string]any) (*models.User, error) {
	return nil, nil
}

func (f *fakeStore) GetProfileByUserID(userID uuid.UUID) (*models.TechnicianProfile, error) {
	return nil, nil
}
func (f *fakeStore) CreateProfile(p *models.TechnicianProfile) error {
	f.profiles = append(f.profiles, p)
	return nil
}
func (f *fakeStore) UpdateProfile(userID uuid.UUID, cols map[string]any) (*models.TechnicianProfile, error) {
	return nil, nil
}
func (f *fakeStore) AppendUnlockedBy(userID, unlockedBy uuid.UUID) error { return nil }
func (f *fakeStore) ListProfiles() ([]models.TechnicianProfile, error)  { return nil, nil }
func (f *fakeStore) GetPortfolioItems(technicianID uuid.UUID) ([]models.PortfolioItem, error) {
	return nil, nil
}
func (f *fakeStore) CreatePortfolioItem(item *models.PortfolioItem) error {
	f.portfolio = append(f.portfolio, item)
	return nil
}

type fakeJobStore struct{ store *fakeStore }

func (f *fakeJobStore) GetByID(id uuid.UUID) (*models.Job, error) { return nil, nil }
func (f *fakeJobStore) List() ([]models.Job, error)               { return nil, nil }
func (f *fakeJobStore) Create(j *models.Job) error {
	j.ID = uuid.New()
	f.store.jobs = append(f.store.jobs, j)
	return nil
}
func (f *fakeJobStore) UpdateStatus(id uuid.UUID, status models.JobStatus) (*models.Job, error) {
	return nil, nil
}

type fakeBidStore struct{ store *fakeStore }

func (f *fakeBidStore) GetByID(id uuid.UUID) (*models.Bid, error) { return nil, nil }
func (f *fakeBidStore) ListByJob(jobID uuid.UUID) ([]models.Bid, error) {
	return nil, nil
}
func (f *fakeBidStore) ListByTechnician(technicianID uuid.UUID) ([]models.Bid, error) {
	return nil, nil
}
func (f *fakeBidStore) Create(b *models.Bid) error {
	b.ID = uuid.New()
	f.store.bids = append(f.store.bids, b)
	return nil
}
func (f *fakeBidStore) Accept(bidID, jobID uuid.UUID) error { return nil }

func newSeedService() (*DefaultSeedService, *fakeStore) {
	store := &fakeStore{}
	svc := &DefaultSeedService{
		Users:       store,
		Technicians: store,
		Jobs:        &fakeJobStore{store: store},
		Bids:        &fakeBidStore{store: store},
	}
	return svc, store
}

func TestSeedDemoFixtures(t *testing.T) {
	svc, store := newSeedService()

	seeded, err := svc.SeedDemo()
	require.NoError(t, err)
	assert.True(t, seeded)

	// 2 customers + 8 technicians.
	assert.Len(t, store.users, 10)
	assert.Len(t, store.profiles, 8)
	assert.Len(t, store.jobs, 4)
	// 3 bids on the first job, 2 on the second.
	assert.Len(t, store.bids, 5)

	customers := 0
	for _, u := range store.users {
		if u.UserType == models.UserTypeCustomer {
			customers++
			assert.Positive(t, u.WalletBalance)
		}
	}
	assert.Equal(t, 2, customers)

	for _, j := range store.jobs {
		assert.Equal(t, models.JobStatusOpen, j.Status)
	}
	for _, b := range store.bids {
		assert.Equal(t, models.BidStatusPending, b.Status)
	}
}

func TestSeedDemoIsIdempotent(t *testing.T) {
	svc, store := newSeedService()

	seeded, err := svc.SeedDemo()
	require.NoError(t, err)
	require.True(t, seeded)
	usersAfterFirst := len(store.users)

	seeded, err = svc.SeedDemo()
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Len(t, store.users, usersAfterFirst)
}
