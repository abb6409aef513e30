package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/home-listing/internal/config"
	"github.com/BruksfildServices01/home-listing/internal/db/dbtest"
	"github.com/BruksfildServices01/home-listing/internal/models"
)

type fakeUploader struct {
	mu   sync.Mutex
	keys []string
}

func (u *fakeUploader) Put(_ context.Context, key, _ string, _ []byte) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.keys = append(u.keys, key)
	return "https://cdn.test/" + key, nil
}

type server struct {
	t        *testing.T
	engine   *gin.Engine
	uploader *fakeUploader
}

func newServer(t *testing.T) *server {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiresIn:  time.Hour,
		BcryptCost:    bcrypt.MinCost,
		ImageMaxWidth: 64,
	}

	up := &fakeUploader{}
	r := gin.New()
	RegisterRoutes(r, dbtest.Open(t), cfg, Options{Uploader: up})

	return &server{t: t, engine: r, uploader: up}
}

func (s *server) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type authBody struct {
	Status string `json:"status"`
	Token  string `json:"token"`
	User   struct {
		ID       uint   `json:"id"`
		Email    string `json:"email"`
		UserType string `json:"userType"`
	} `json:"user"`
}

type errorBody struct {
	Code     string   `json:"error_code"`
	Message  string   `json:"message"`
	Messages []string `json:"messages"`
}

func (s *server) signup(name, userType string) authBody {
	s.t.Helper()

	w := s.do(http.MethodPost, "/api/auth/signup/"+userType, gin.H{
		"name":            name,
		"email":           strings.ToLower(name) + "@example.com",
		"phone":           "01012345678",
		"password":        "password123",
		"passwordConfirm": "password123",
	}, "")
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[authBody](s.t, w)
}

func validHome() gin.H {
	return gin.H{
		"address":           "12 Nile St",
		"city":              "Cairo",
		"price":             500000,
		"landSize":          200,
		"propertyType":      "CONDO",
		"numberOfBedrooms":  3,
		"numberOfBathrooms": 2,
		"images":            []gin.H{{"url": "a.jpg"}, {"url": "b.jpg"}},
	}
}

func (s *server) createHome(token string) uint {
	s.t.Helper()

	w := s.do(http.MethodPost, "/api/homes", validHome(), token)
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[struct {
		ID uint `json:"id"`
	}](s.t, w).ID
}

// ======================================================
// AUTH
// ======================================================

func TestHealth(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSignupNormalizesUserType(t *testing.T) {
	s := newServer(t)

	out := s.signup("Bassem", "buyer")
	assert.Equal(t, "success", out.Status)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, string(models.UserTypeBuyer), out.User.UserType)

	out = s.signup("Rita", "REALTOR")
	assert.Equal(t, string(models.UserTypeRealtor), out.User.UserType)
}

func TestSignupRejectsUnknownUserType(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodPost, "/api/auth/signup/ghost", gin.H{}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ghost is an invalid type!", decode[errorBody](t, w).Message)
}

func TestSignupValidationMessages(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodPost, "/api/auth/signup/buyer", gin.H{
		"email":           "not-an-email",
		"password":        "short",
		"passwordConfirm": "short",
		"phone":           "123",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode[errorBody](t, w)
	assert.ElementsMatch(t, []string{
		"Please provide your name!",
		"Please provide a valid email!",
		"Password must be at least 8 characters long!",
		"Phone number must contains 11 digits!",
	}, body.Messages)
}

func TestSignupPasswordMismatch(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodPost, "/api/auth/signup/buyer", gin.H{
		"name":            "Bassem",
		"email":           "bassem@example.com",
		"phone":           "01012345678",
		"password":        "password123",
		"passwordConfirm": "password124",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Passwords does not match!", decode[errorBody](t, w).Message)
	assert.NotContains(t, w.Body.String(), "password123")
}

func TestSignupDuplicateEmail(t *testing.T) {
	s := newServer(t)
	s.signup("Bassem", "buyer")

	w := s.do(http.MethodPost, "/api/auth/signup/buyer", gin.H{
		"name":            "Other",
		"email":           "BASSEM@example.com",
		"phone":           "01012345678",
		"password":        "password123",
		"passwordConfirm": "password123",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginAndMe(t *testing.T) {
	s := newServer(t)
	created := s.signup("Bassem", "buyer")

	w := s.do(http.MethodPost, "/api/auth/login", gin.H{
		"email":    "bassem@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	logged := decode[authBody](t, w)

	w = s.do(http.MethodGet, "/api/auth/me", nil, logged.Token)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}](t, w)
	assert.Equal(t, created.User.ID, me.ID)
	assert.Equal(t, "Bassem", me.Name)
}

func TestLoginFailuresLookTheSame(t *testing.T) {
	s := newServer(t)
	s.signup("Bassem", "buyer")

	wrongPassword := s.do(http.MethodPost, "/api/auth/login", gin.H{
		"email":    "bassem@example.com",
		"password": "nope-nope-nope",
	}, "")
	unknownEmail := s.do(http.MethodPost, "/api/auth/login", gin.H{
		"email":    "ghost@example.com",
		"password": "password123",
	}, "")

	assert.Equal(t, http.StatusForbidden, wrongPassword.Code)
	assert.Equal(t, http.StatusForbidden, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestMeRequiresToken(t *testing.T) {
	s := newServer(t)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/auth/me", nil, "").Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/auth/me", nil, "garbage").Code)
}

// ======================================================
// HOMES
// ======================================================

func TestHomeLifecycle(t *testing.T) {
	s := newServer(t)
	realtor := s.signup("Rita", "realtor")

	id := s.createHome(realtor.Token)

	// list surfaces a single image
	w := s.do(http.MethodGet, "/api/homes?city=Cairo", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]map[string]any](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "a.jpg", list[0]["image"])
	assert.NotContains(t, list[0], "images")

	// detail carries every image and the realtor contact
	w = s.do(http.MethodGet, fmt.Sprintf("/api/homes/%d", id), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode[struct {
		Images  []map[string]string `json:"images"`
		Realtor map[string]string   `json:"realtor"`
	}](t, w)
	assert.Len(t, detail.Images, 2)
	assert.Equal(t, "rita@example.com", detail.Realtor["email"])

	// partial update
	w = s.do(http.MethodPut, fmt.Sprintf("/api/homes/%d", id), gin.H{"price": 650000}, realtor.Token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[map[string]any](t, w)
	assert.EqualValues(t, 650000, updated["price"])
	assert.Equal(t, "Cairo", updated["city"])

	// delete, then the home is gone
	w = s.do(http.MethodDelete, fmt.Sprintf("/api/homes/%d", id), nil, realtor.Token)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/homes/%d", id), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListHomesFilters(t *testing.T) {
	s := newServer(t)
	realtor := s.signup("Rita", "realtor")
	s.createHome(realtor.Token)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/homes?city=Giza", nil, "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/homes?minPrice=900000", nil, "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/homes?maxPrice=500000&propertyType=condo", nil, "").Code)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/homes?minPrice=cheap", nil, "").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/homes?propertyType=castle", nil, "").Code)
}

func TestCreateHomeValidation(t *testing.T) {
	s := newServer(t)
	realtor := s.signup("Rita", "realtor")

	body := validHome()
	body["address"] = ""
	body["price"] = -5
	body["images"] = []gin.H{{"url": ""}}

	w := s.do(http.MethodPost, "/api/homes", body, realtor.Token)
	require.Equal(t, http.StatusBadRequest, w.Code)

	msgs := decode[errorBody](t, w).Messages
	assert.Contains(t, msgs, "Please provide the address of home!")
	assert.Contains(t, msgs, "price must be a positive number")
	assert.Contains(t, msgs, "images[0].url should not be empty")
}

func TestHomeGuards(t *testing.T) {
	s := newServer(t)
	owner := s.signup("Rita", "realtor")
	other := s.signup("Omar", "realtor")
	buyer := s.signup("Bassem", "buyer")

	id := s.createHome(owner.Token)
	path := fmt.Sprintf("/api/homes/%d", id)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/api/homes", validHome(), "").Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/api/homes", validHome(), buyer.Token).Code)

	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPut, path, gin.H{"city": "Giza"}, other.Token).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodDelete, path, nil, other.Token).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, path+"/messages", nil, other.Token).Code)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPut, "/api/homes/9999", gin.H{"city": "Giza"}, owner.Token).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/homes/abc", nil, "").Code)
}

// ======================================================
// INQUIRIES
// ======================================================

func TestInquiryFlow(t *testing.T) {
	s := newServer(t)
	realtor := s.signup("Rita", "realtor")
	buyer := s.signup("Bassem", "buyer")
	id := s.createHome(realtor.Token)

	w := s.do(http.MethodPost, fmt.Sprintf("/api/homes/%d/inquire", id), gin.H{
		"message":   "Is this still available?",
		"realtorId": 12345,
	}, buyer.Token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	msg := decode[map[string]any](t, w)
	assert.EqualValues(t, realtor.User.ID, msg["realtorId"])

	// realtors cannot inquire
	w = s.do(http.MethodPost, fmt.Sprintf("/api/homes/%d/inquire", id), gin.H{"message": "hi"}, realtor.Token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// empty message
	w = s.do(http.MethodPost, fmt.Sprintf("/api/homes/%d/inquire", id), gin.H{"message": ""}, buyer.Token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"Please, write your Message"}, decode[errorBody](t, w).Messages)

	// unknown home
	w = s.do(http.MethodPost, "/api/homes/9999/inquire", gin.H{"message": "hi"}, buyer.Token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/homes/%d/messages", id), nil, realtor.Token)
	require.Equal(t, http.StatusOK, w.Code)
	msgs := decode[[]struct {
		Message string            `json:"message"`
		Buyer   map[string]string `json:"buyer"`
	}](t, w)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Is this still available?", msgs[0].Message)
	assert.Equal(t, "Bassem", msgs[0].Buyer["name"])
}

// ======================================================
// UPLOADS AND ADMIN
// ======================================================

func TestImageUpload(t *testing.T) {
	s := newServer(t)
	realtor := s.signup("Rita", "realtor")

	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 128, 32))))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "house.png")
	require.NoError(t, err)
	_, err = part.Write(img.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/homes/images", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+realtor.Token)

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	out := decode[map[string]string](t, w)
	require.Len(t, s.uploader.keys, 1)
	assert.Equal(t, "https://cdn.test/"+s.uploader.keys[0], out["url"])
	assert.True(t, strings.HasSuffix(out["url"], ".webp"))
}

func TestAuditLogsAdminOnly(t *testing.T) {
	s := newServer(t)
	admin := s.signup("Adam", "admin")
	realtor := s.signup("Rita", "realtor")

	w := s.do(http.MethodGet, "/api/audit-logs?limit=10", nil, admin.Token)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[struct {
		Data  []any `json:"data"`
		Limit int   `json:"limit"`
	}](t, w)
	assert.NotNil(t, page.Data)
	assert.Equal(t, 10, page.Limit)

	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/api/audit-logs", nil, realtor.Token).Code)
}
