package technician

import (
	"testing"

	"labourmandi/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	users []models.User
}

func (f *fakeUserStore) GetByID(id uuid.UUID) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, nil
}
func (f *fakeUserStore) GetByPhone(phone string) (*models.User, error) { return nil, nil }
func (f *fakeUserStore) Create(usr *models.User) error                 { return nil }
func (f *fakeUserStore) List() ([]models.User, error)                  { return f.users, nil }
func (f *fakeUserStore) Count() (int64, error)                         { return int64(len(f.users)), nil }
func (f *fakeUserStore) Update(id uuid.UUID, cols map[string]any) (*models.User, error) {
	return nil, nil
}

type fakeTechnicianStore struct {
	profiles  map[uuid.UUID]*models.TechnicianProfile
	portfolio map[uuid.UUID][]models.PortfolioItem
}

func (f *fakeTechnicianStore) GetProfileByUserID(userID uuid.UUID) (*models.TechnicianProfile, error) {
	return f.profiles[userID], nil
}
func (f *fakeTechnicianStore) CreateProfile(p *models.TechnicianProfile) error { return nil }
func (f *fakeTechnicianStore) UpdateProfile(userID uuid.UUID, cols map[string]any) (*models.TechnicianProfile, error) {
	return nil, nil
}
func (f *fakeTechnicianStore) AppendUnlockedBy(userID, unlockedBy uuid.UUID) error { return nil }
func (f *fakeTechnicianStore) ListProfiles() ([]models.TechnicianProfile, error)   { return nil, nil }
func (f *fakeTechnicianStore) GetPortfolioItems(technicianID uuid.UUID) ([]models.PortfolioItem, error) {
	return f.portfolio[technicianID], nil
}
func (f *fakeTechnicianStore) CreatePortfolioItem(item *models.PortfolioItem) error { return nil }

func newDirectory() (*DefaultTechnicianService, map[string]uuid.UUID) {
	users := &fakeUserStore{}
	techs := &fakeTechnicianStore{
		profiles:  map[uuid.UUID]*models.TechnicianProfile{},
		portfolio: map[uuid.UUID][]models.PortfolioItem{},
	}
	ids := map[string]uuid.UUID{}

	add := func(name, city, pin, category string, online bool) {
		id := uuid.New()
		ids[name] = id
		users.users = append(users.users, models.User{
			ID: id, Name: name, City: city, Pin: pin,
			UserType: models.UserTypeTechnician, IsOnline: online,
		})
		techs.profiles[id] = &models.TechnicianProfile{UserID: id, Category: category, Rating: 45}
	}
	add("Rahul Verma", "Mumbai", "400001", "Construction & Civil Work", true)
	add("Amit Singh", "Delhi", "110001", "Construction & Civil Work", false)
	add("Suresh Patil", "Mumbai", "400002", "Specialized Technical Labour (Contract-based)", true)

	// A customer and a profile-less technician; neither belongs in the listing.
	customerID := uuid.New()
	users.users = append(users.users, models.User{
		ID: customerID, Name: "Rajesh Kumar", UserType: models.UserTypeCustomer,
	})
	bareID := uuid.New()
	ids["bare"] = bareID
	users.users = append(users.users, models.User{
		ID: bareID, Name: "No Profile", UserType: models.UserTypeTechnician,
	})

	return &DefaultTechnicianService{Users: users, Repo: techs}, ids
}

func TestListReturnsOnlyTechniciansWithProfiles(t *testing.T) {
	svc, _ := newDirectory()

	out, err := svc.List(Filter{})
	require.NoError(t, err)
	assert.Len(t, out, 3)
	for _, d := range out {
		assert.Equal(t, models.UserTypeTechnician, d.UserType)
		assert.NotNil(t, d.Profile)
	}
}

func TestListFilters(t *testing.T) {
	svc, _ := newDirectory()

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"category substring", Filter{Category: "construction"}, 2},
		{"category all", Filter{Category: "all"}, 3},
		{"pin exact", Filter{Pin: "400001"}, 1},
		{"search by name", Filter{Search: "rahul"}, 1},
		{"search by city", Filter{Search: "mumbai"}, 2},
		{"online only", Filter{OnlineOnly: true}, 2},
		{"combined", Filter{Category: "construction", OnlineOnly: true}, 1},
		{"no match", Filter{Pin: "999999"}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := svc.List(tc.filter)
			require.NoError(t, err)
			assert.Len(t, out, tc.want)
		})
	}
}

func TestGetByID(t *testing.T) {
	svc, ids := newDirectory()

	detail, err := svc.GetByID(ids["Rahul Verma"])
	require.NoError(t, err)
	assert.Equal(t, "Rahul Verma", detail.Name)
	require.NotNil(t, detail.Profile)
	assert.Equal(t, 45, detail.Profile.Rating)
	assert.NotNil(t, detail.Portfolio)

	_, err = svc.GetByID(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
