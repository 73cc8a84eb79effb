package authController

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lequanQL/glassity-api/models"
	"github.com/lequanQL/glassity-api/store"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

const seedUsers = `[
	{"id": 1, "username": "admin", "email": "admin@glassity.com", "password": "admin123", "fullName": "Glassity Admin", "role": "admin"},
	{"id": 2, "username": "minhanh", "email": "minhanh@example.com", "password": "password1", "fullName": "Nguyen Minh Anh", "role": "customer"}
]`

func newAuthRouter(t *testing.T) (*gin.Engine, *store.Single[models.User]) {
	t.Helper()
	users := store.NewCollection(store.CollectionConfig[models.User]{
		Key:    "users",
		KV:     store.NopStore{},
		Seed:   store.BytesSeed(seedUsers),
		IDOf:   func(u models.User) int { return u.ID },
		WithID: func(u models.User, id int) models.User { u.ID = id; return u },
	})
	session := store.NewSingle[models.User]("currentUser", store.NopStore{})

	r := gin.New()
	r.POST("/auth/login", Login(users, session, testSecret))
	r.POST("/auth/signup", Signup(users))
	r.POST("/auth/logout", Logout(session))
	r.GET("/auth/session", Session(session))
	return r, session
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLoginIssuesTokenAndSession(t *testing.T) {
	r, session := newAuthRouter(t)

	rec := doJSON(r, http.MethodPost, "/auth/login",
		`{"email": "Admin@Glassity.com", "password": "admin123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, models.RoleAdmin, body.User.Role)

	current, ok := session.Get()
	require.True(t, ok, "login records the current user")
	assert.Equal(t, "admin@glassity.com", current.Email)
}

func TestLoginLastWins(t *testing.T) {
	r, session := newAuthRouter(t)

	doJSON(r, http.MethodPost, "/auth/login", `{"email": "admin@glassity.com", "password": "admin123"}`)
	doJSON(r, http.MethodPost, "/auth/login", `{"email": "minhanh@example.com", "password": "password1"}`)

	current, ok := session.Get()
	require.True(t, ok)
	assert.Equal(t, "minhanh@example.com", current.Email)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	r, session := newAuthRouter(t)

	rec := doJSON(r, http.MethodPost, "/auth/login",
		`{"email": "admin@glassity.com", "password": "wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	_, ok := session.Get()
	assert.False(t, ok, "failed login must not touch the session")
}

func TestSignupCreatesCustomer(t *testing.T) {
	r, _ := newAuthRouter(t)

	rec := doJSON(r, http.MethodPost, "/auth/signup",
		`{"username": "newbie", "email": "newbie@example.com", "password": "secret99", "fullName": "New Customer"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 3, created.ID, "ids continue from the seeded maximum")
	assert.Equal(t, models.RoleCustomer, created.Role)

	// The new account can log in right away.
	login := doJSON(r, http.MethodPost, "/auth/login",
		`{"email": "newbie@example.com", "password": "secret99"}`)
	assert.Equal(t, http.StatusOK, login.Code)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	r, _ := newAuthRouter(t)

	rec := doJSON(r, http.MethodPost, "/auth/signup",
		`{"username": "dupe", "email": "MINHANH@example.com", "password": "secret99", "fullName": "Dupe"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSessionLifecycle(t *testing.T) {
	r, _ := newAuthRouter(t)

	rec := doJSON(r, http.MethodGet, "/auth/session", "")
	assert.Equal(t, http.StatusNotFound, rec.Code, "no session before login")

	doJSON(r, http.MethodPost, "/auth/login", `{"email": "admin@glassity.com", "password": "admin123"}`)

	rec = doJSON(r, http.MethodGet, "/auth/session", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	doJSON(r, http.MethodPost, "/auth/logout", "")

	rec = doJSON(r, http.MethodGet, "/auth/session", "")
	assert.Equal(t, http.StatusNotFound, rec.Code, "logout clears the session")
}
