package auth

import (
	"context"
	"errors"
	"testing"

	"labourmandi/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uuid.UUID]*models.User{}}
}

func (f *fakeUserStore) GetByID(id uuid.UUID) (*models.User, error) { return f.users[id], nil }

func (f *fakeUserStore) GetByPhone(phone string) (*models.User, error) {
	for _, u := range f.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Create(usr *models.User) error {
	usr.ID = uuid.New()
	f.users[usr.ID] = usr
	return nil
}

func (f *fakeUserStore) Update(id uuid.UUID, cols map[string]any) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	if online, ok := cols["is_online"].(bool); ok {
		u.IsOnline = online
	}
	return u, nil
}

func (f *fakeUserStore) List() ([]models.User, error) { return nil, nil }
func (f *fakeUserStore) Count() (int64, error)        { return int64(len(f.users)), nil }

type fakeTechnicianStore struct {
	profiles []*models.TechnicianProfile
}

func (f *fakeTechnicianStore) GetProfileByUserID(userID uuid.UUID) (*models.TechnicianProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakeTechnicianStore) CreateProfile(p *models.TechnicianProfile) error {
	f.profiles = append(f.profiles, p)
	return nil
}
func (f *fakeTechnicianStore) UpdateProfile(userID uuid.UUID, cols map[string]any) (*models.TechnicianProfile, error) {
	return nil, nil
}
func (f *fakeTechnicianStore) AppendUnlockedBy(userID, unlockedBy uuid.UUID) error { return nil }
func (f *fakeTechnicianStore) ListProfiles() ([]models.TechnicianProfile, error)   { return nil, nil }
func (f *fakeTechnicianStore) GetPortfolioItems(technicianID uuid.UUID) ([]models.PortfolioItem, error) {
	return nil, nil
}
func (f *fakeTechnicianStore) CreatePortfolioItem(item *models.PortfolioItem) error { return nil }

type fakeOtpStore struct {
	codes   map[string]string
	expired bool
}

func (f *fakeOtpStore) Create(phone, code string) error {
	if f.codes == nil {
		f.codes = map[string]string{}
	}
	f.codes[phone] = code
	return nil
}

func (f *fakeOtpStore) Verify(phone, code string) (bool, error) {
	if f.expired {
		return false, nil
	}
	stored, ok := f.codes[phone]
	if !ok || stored != code {
		return false, nil
	}
	delete(f.codes, phone)
	return true, nil
}

type fakeSessionStore struct {
	sessions map[string]string
}

func (f *fakeSessionStore) Create(ctx context.Context, userID string) (string, error) {
	if f.sessions == nil {
		f.sessions = map[string]string{}
	}
	token := uuid.NewString()
	f.sessions[token] = userID
	return token, nil
}

func (f *fakeSessionStore) Get(ctx context.Context, token string) (string, error) {
	return f.sessions[token], nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

type fakeVerifier struct {
	claims *GoogleClaims
	err    error
}

func (f fakeVerifier) Verify(ctx context.Context, idToken, audience string) (*GoogleClaims, error) {
	return f.claims, f.err
}

func newAuthService(verifier GoogleTokenVerifier) (*DefaultAuthService, *fakeUserStore, *fakeTechnicianStore, *fakeOtpStore, *fakeSessionStore) {
	users := newFakeUserStore()
	techs := &fakeTechnicianStore{}
	otps := &fakeOtpStore{}
	sessions := &fakeSessionStore{}
	svc := &DefaultAuthService{
		Users:       users,
		Technicians: techs,
		Otps:        otps,
		Sessions:    sessions,
		Verifier:    verifier,
		SignupBonus: 100,
	}
	return svc, users, techs, otps, sessions
}

func TestSignupCustomer(t *testing.T) {
	svc, _, techs, _, sessions := newAuthService(nil)

	usr, token, err := svc.Signup(context.Background(), SignupRequest{
		UserType: models.UserTypeCustomer,
		Phone:    "9876543210",
		Name:     "Rajesh Kumar",
		City:     "Mumbai",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 100, usr.WalletBalance)
	assert.True(t, usr.IsOnline)
	assert.NotEmpty(t, usr.AvatarURL)
	assert.Empty(t, techs.profiles)
	assert.Equal(t, usr.ID.String(), sessions.sessions[token])
}

func TestSignupTechnicianCreatesProfile(t *testing.T) {
	svc, _, techs, _, _ := newAuthService(nil)

	usr, _, err := svc.Signup(context.Background(), SignupRequest{
		UserType:      models.UserTypeTechnician,
		Phone:         "9123456780",
		Name:          "Rahul Verma",
		Category:      "Construction & Civil Work",
		Subcategories: []string{"Mason (Rajmistri)"},
		DailyWage:     800,
	})
	require.NoError(t, err)
	require.Len(t, techs.profiles, 1)
	profile := techs.profiles[0]
	assert.Equal(t, usr.ID, profile.UserID)
	assert.Equal(t, 45, profile.Rating)
	// WhatsApp defaults to the signup phone when not supplied.
	assert.Equal(t, "9123456780", profile.WhatsappNumber)
}

func TestSignupDuplicatePhone(t *testing.T) {
	svc, _, _, _, _ := newAuthService(nil)
	req := SignupRequest{UserType: models.UserTypeCustomer, Phone: "9876543210", Name: "Rajesh"}

	_, _, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)

	_, _, err = svc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, ErrPhoneTaken)
}

func TestOTPFlow(t *testing.T) {
	svc, _, _, otps, _ := newAuthService(nil)

	_, _, err := svc.Signup(context.Background(), SignupRequest{
		UserType: models.UserTypeCustomer, Phone: "9876543210", Name: "Rajesh",
	})
	require.NoError(t, err)

	require.NoError(t, svc.RequestOTP("9876543210"))
	code := otps.codes["9876543210"]
	require.Len(t, code, 6)

	usr, token, err := svc.VerifyOTP(context.Background(), "9876543210", code)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, usr.IsOnline)

	// Codes are single use.
	_, _, err = svc.VerifyOTP(context.Background(), "9876543210", code)
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	svc, _, _, _, _ := newAuthService(nil)

	require.NoError(t, svc.RequestOTP("9876543210"))
	_, _, err := svc.VerifyOTP(context.Background(), "9876543210", "000000")
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestVerifyOTPUnregisteredPhone(t *testing.T) {
	svc, _, _, otps, _ := newAuthService(nil)

	require.NoError(t, svc.RequestOTP("9000000000"))
	code := otps.codes["9000000000"]

	_, _, err := svc.VerifyOTP(context.Background(), "9000000000", code)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGoogleSignInProvisionsCustomer(t *testing.T) {
	verifier := fakeVerifier{claims: &GoogleClaims{
		Email:   "priya@example.com",
		Name:    "Priya Sharma",
		Picture: "https://example.com/priya.png",
	}}
	svc, users, _, _, _ := newAuthService(verifier)

	usr, token, err := svc.GoogleSignIn(context.Background(), "token")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.UserTypeCustomer, usr.UserType)
	assert.Equal(t, 100, usr.WalletBalance)
	// The email doubles as the phone-column identity for Google accounts.
	assert.Equal(t, "priya@example.com", usr.Phone)
	assert.Len(t, users.users, 1)

	// A repeat sign-in reuses the account instead of creating another.
	again, _, err := svc.GoogleSignIn(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, usr.ID, again.ID)
	assert.Len(t, users.users, 1)
}

func TestGoogleSignInRejectsBadToken(t *testing.T) {
	svc, _, _, _, _ := newAuthService(fakeVerifier{err: errors.New("signature mismatch")})

	_, _, err := svc.GoogleSignIn(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSignOutDropsSession(t *testing.T) {
	svc, _, _, _, sessions := newAuthService(nil)

	_, token, err := svc.Signup(context.Background(), SignupRequest{
		UserType: models.UserTypeCustomer, Phone: "9876543210", Name: "Rajesh",
	})
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(context.Background(), token))
	assert.Empty(t, sessions.sessions[token])
}
