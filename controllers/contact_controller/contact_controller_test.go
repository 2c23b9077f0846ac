package contact_controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tahir1605/frame-theory/models"
	"github.com/Tahir1605/frame-theory/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContactRepo struct {
	contacts map[string]*models.Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[string]*models.Contact)}
}

func (r *fakeContactRepo) Create(_ context.Context, contact *models.Contact) error {
	if contact.ID == uuid.Nil {
		contact.ID = uuid.Must(uuid.NewV7())
	}
	cp := *contact
	r.contacts[contact.ID.String()] = &cp
	return nil
}

func (r *fakeContactRepo) List(_ context.Context) ([]models.Contact, error) {
	out := make([]models.Contact, 0, len(r.contacts))
	for _, ct := range r.contacts {
		out = append(out, *ct)
	}
	return out, nil
}

func (r *fakeContactRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.contacts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.contacts, id)
	return nil
}

func setupContactTest(t *testing.T) (*fakeContactRepo, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newFakeContactRepo()
	// nil mailer: notifications are skipped outside production wiring.
	Init(repo, nil)

	router := gin.New()
	router.POST("/contact/add", ContactAdd)
	router.GET("/admin/contact-list", ContactList)
	router.DELETE("/admin/contact-delete", ContactDelete)
	return repo, router
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ApiResponse {
	t.Helper()
	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestContactAdd(t *testing.T) {
	t.Run("saves a submission", func(t *testing.T) {
		repo, router := setupContactTest(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/contact/add", models.AddContactRequest{
			Name: "Prospective Client", Email: "client@example.com",
			Phone: "+1 555 0100", Message: "Do you shoot destination weddings?",
		}))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Message sent successfully", decodeResponse(t, rec).Message)
		require.Len(t, repo.contacts, 1)
		for _, ct := range repo.contacts {
			assert.Equal(t, "client@example.com", ct.Email)
		}
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		repo, router := setupContactTest(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/contact/add", models.AddContactRequest{
			Name: "Prospective Client",
		}))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Name, email and message are required", decodeResponse(t, rec).Message)
		assert.Empty(t, repo.contacts)
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		_, router := setupContactTest(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/contact/add", models.AddContactRequest{
			Name: "Prospective Client", Email: "not-an-email", Message: "Hello",
		}))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid email format", decodeResponse(t, rec).Message)
	})
}

func TestContactDelete(t *testing.T) {
	t.Run("deletes then reports not found on repeat", func(t *testing.T) {
		repo, router := setupContactTest(t)
		contact := &models.Contact{Name: "Prospective Client", Email: "client@example.com", Message: "Hi"}
		require.NoError(t, repo.Create(context.Background(), contact))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(t, http.MethodDelete, "/admin/contact-delete",
			models.DeleteRequest{ID: contact.ID.String()}))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Contact deleted successfully", decodeResponse(t, rec).Message)

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(t, http.MethodDelete, "/admin/contact-delete",
			models.DeleteRequest{ID: contact.ID.String()}))
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Contact not found", decodeResponse(t, rec).Message)
	})

	t.Run("rejects empty id", func(t *testing.T) {
		_, router := setupContactTest(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, jsonRequest(t, http.MethodDelete, "/admin/contact-delete", models.DeleteRequest{}))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Contact id is required", decodeResponse(t, rec).Message)
	})
}

func TestContactList(t *testing.T) {
	repo, router := setupContactTest(t)
	require.NoError(t, repo.Create(context.Background(), &models.Contact{
		Name: "Prospective Client", Email: "client@example.com", Message: "Hi",
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/contact-list", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "client@example.com")
}
