package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "gatherly/internal/errors"
	"gatherly/internal/models"
)

func newTestRouter() (*gin.Engine, *Handlers) {
	gin.SetMode(gin.TestMode)
	h := NewHandlers(nil, nil, "uploads")
	return gin.New(), h
}

func TestRoot(t *testing.T) {
	router, h := newTestRouter()
	router.GET("/", h.Root)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Community events API is running")
}

func TestPing(t *testing.T) {
	router, h := newTestRouter()
	router.GET("/api/ping", h.Ping)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestWriteErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", apperrors.Validation("Invalid interest level"), http.StatusBadRequest, "Invalid interest level"},
		{"not found", apperrors.NotFound("Event not found"), http.StatusNotFound, "Event not found"},
		{"conflict", apperrors.Conflict("Payment has already been processed"), http.StatusConflict, "Payment has already been processed"},
		{"unauthorized", apperrors.Unauthorized("Invalid credentials"), http.StatusUnauthorized, "Invalid credentials"},
		{"internal", assert.AnError, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			writeError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestGetUserRejectsBadID(t *testing.T) {
	router, h := newTestRouter()
	router.GET("/api/users/:userId", h.GetUser)

	for _, id := range []string{"abc", "0", "-1", "1.5"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/"+id, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, "id %q", id)
	}
}

func TestSignupRejectsInvalidBody(t *testing.T) {
	router, h := newTestRouter()
	router.POST("/api/auth/signup", h.Signup)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateRejectsMissingHeader(t *testing.T) {
	router, h := newTestRouter()
	router.GET("/api/auth/validate", h.Validate)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/validate", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestSetInterestRejectsInvalidBody(t *testing.T) {
	router, h := newTestRouter()
	router.POST("/api/user-interests", h.SetInterest)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user-interests", strings.NewReader(`{"user_id":1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyPaymentRejectsBadID(t *testing.T) {
	router, h := newTestRouter()
	router.PUT("/api/payments/:paymentId/verify", h.VerifyPayment)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/payments/abc/verify",
		strings.NewReader(`{"verified_by":1,"status":"verified"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteEventRequiresOrganizerID(t *testing.T) {
	router, h := newTestRouter()
	router.DELETE("/api/events/:id", h.DeleteEvent)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/events/1", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "organizer_id")
}

func TestUploadProfilePictureRequiresImage(t *testing.T) {
	router, h := newTestRouter()
	router.POST("/api/users/:userId/profile-picture", h.UploadProfilePicture)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/users/1/profile-picture", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Image file is required")
}

func multipartBody(t *testing.T, field, filename string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	assert.NoError(t, err)
	_, err = part.Write([]byte("file-content"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

// The profile upload reads the profile_picture form field; extension
// validation firing proves the field was found.
func TestUploadProfilePictureReadsNamedField(t *testing.T) {
	router, h := newTestRouter()
	router.POST("/api/users/:userId/profile-picture", h.UploadProfilePicture)

	body, contentType := multipartBody(t, "profile_picture", "avatar.txt")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users/1/profile-picture", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Only JPG, PNG and GIF images are allowed")
}

func TestUploadEventPhotoReadsNamedField(t *testing.T) {
	router, h := newTestRouter()
	router.POST("/api/events/:id/photo", h.UploadEventPhoto)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	assert.NoError(t, writer.WriteField("organizer_id", "1"))
	part, err := writer.CreateFormFile("photo", "banner.txt")
	assert.NoError(t, err)
	_, err = part.Write([]byte("file-content"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/1/photo", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Only JPG, PNG and GIF images are allowed")
}

// Absent single-row reads respond with a bare JSON null body, not a
// wrapper object and not a 404.
func TestWriteRowNullForAbsentRow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	writeRow(c, (*models.UserInterest)(nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestWriteRowPresentRow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	writeRow(c, &models.Payment{ID: 7, PaymentStatus: models.PaymentStatusPending})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"payment_status":"pending"`)
	assert.NotContains(t, w.Body.String(), `"payment":`)
}
