package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"labourmandi/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct {
	tokens map[string]string
}

func (f *fakeSessions) Create(ctx context.Context, userID string) (string, error) { return "", nil }
func (f *fakeSessions) Get(ctx context.Context, token string) (string, error) {
	return f.tokens[token], nil
}
func (f *fakeSessions) Delete(ctx context.Context, token string) error { return nil }

type fakeUsers struct {
	users map[uuid.UUID]*models.User
}

func (f *fakeUsers) GetByID(id uuid.UUID) (*models.User, error)    { return f.users[id], nil }
func (f *fakeUsers) GetByPhone(phone string) (*models.User, error) { return nil, nil }
func (f *fakeUsers) Create(usr *models.User) error                 { return nil }
func (f *fakeUsers) List() ([]models.User, error)                  { return nil, nil }
func (f *fakeUsers) Count() (int64, error)                         { return 0, nil }
func (f *fakeUsers) Update(id uuid.UUID, cols map[string]any) (*models.User, error) {
	return nil, nil
}

func authTestRouter(sessions *fakeSessions, users *fakeUsers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", SessionAuthMiddleware(sessions, users), func(c *gin.Context) {
		usr, _ := c.Get("user")
		c.JSON(http.StatusOK, gin.H{"userID": usr.(*models.User).ID})
	})
	return r
}

func TestSessionAuthAcceptsValidToken(t *testing.T) {
	userID := uuid.New()
	sessions := &fakeSessions{tokens: map[string]string{"tok123": userID.String()}}
	users := &fakeUsers{users: map[uuid.UUID]*models.User{userID: {ID: userID, Name: "Rajesh"}}}
	r := authTestRouter(sessions, users)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer tok123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestSessionAuthRejections(t *testing.T) {
	userID := uuid.New()
	sessions := &fakeSessions{tokens: map[string]string{
		"tok123":   userID.String(),
		"orphaned": uuid.NewString(),
	}}
	users := &fakeUsers{users: map[uuid.UUID]*models.User{userID: {ID: userID}}}
	r := authTestRouter(sessions, users)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic tok123"},
		{"empty token", "Bearer "},
		{"unknown token", "Bearer nope"},
		{"session for deleted user", "Bearer orphaned"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
