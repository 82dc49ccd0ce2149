package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestorahq/nestora-api/internal/application"
	"github.com/nestorahq/nestora-api/internal/domain/entity"
	"github.com/nestorahq/nestora-api/internal/interface/middleware"
	"github.com/nestorahq/nestora-api/pkg/helpers"
)

func agreementTestRouter(t *testing.T) (*gin.Engine, *helpers.TokenManager) {
	t.Helper()

	apartments := &stubApartmentRepo{byID: map[string]*entity.Apartment{
		"apt-1": {ID: "apt-1", FloorNo: 2, BlockName: "B", ApartmentNo: "B2", Rent: 1200, Available: true},
	}}
	svc := application.NewAgreementService(newStubAgreementRepo(), apartments, nil, testLogger())
	h := NewAgreementHandler(svc, testLogger())

	tokens := testTokens()
	r := gin.New()
	auth := r.Group("/", middleware.BearerAuth(tokens))
	auth.POST("/agreement", h.Create)
	auth.GET("/agreement/:email", h.GetByEmail)
	return r, tokens
}

func bearerFor(t *testing.T, tokens *helpers.TokenManager, email string) string {
	t.Helper()
	token, _, err := tokens.Generate(email, "", "user")
	require.NoError(t, err)
	return token
}

func TestAgreementCreateRequiresToken(t *testing.T) {
	r, _ := agreementTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/agreement", "", gin.H{
		"user_email": "a@x.com", "apartment_id": "apt-1",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAgreementCreateIdentityMismatch(t *testing.T) {
	r, tokens := agreementTestRouter(t)
	token := bearerFor(t, tokens, "mallory@x.com")

	w, env := doJSON(t, r, http.MethodPost, "/agreement", token, gin.H{
		"user_email": "alice@x.com", "apartment_id": "apt-1",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "forbidden access", env["message"])
}

func TestAgreementCreateAndDuplicate(t *testing.T) {
	r, tokens := agreementTestRouter(t)
	token := bearerFor(t, tokens, "alice@x.com")
	body := gin.H{"user_name": "Alice", "user_email": "alice@x.com", "apartment_id": "apt-1"}

	w, env := doJSON(t, r, http.MethodPost, "/agreement", token, body)
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := env["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, float64(1200), data["rent"])

	w, env = doJSON(t, r, http.MethodPost, "/agreement", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "already has an agreement", env["message"])
}

func TestAgreementCreateUnknownApartment(t *testing.T) {
	r, tokens := agreementTestRouter(t)
	token := bearerFor(t, tokens, "alice@x.com")

	w, env := doJSON(t, r, http.MethodPost, "/agreement", token, gin.H{
		"user_email": "alice@x.com", "apartment_id": "nope",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "unknown apartment", env["message"])
}

func TestAgreementGetByEmail(t *testing.T) {
	r, tokens := agreementTestRouter(t)
	token := bearerFor(t, tokens, "alice@x.com")

	// no agreement yet: data is null, not an error
	w, env := doJSON(t, r, http.MethodGet, "/agreement/alice@x.com", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, env["data"])

	_, _ = doJSON(t, r, http.MethodPost, "/agreement", token, gin.H{
		"user_email": "alice@x.com", "apartment_id": "apt-1",
	})

	w, env = doJSON(t, r, http.MethodGet, "/agreement/alice@x.com", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data, ok := env["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice@x.com", data["user_email"])
}

func TestAgreementGetByEmailForeignIdentity(t *testing.T) {
	r, tokens := agreementTestRouter(t)
	token := bearerFor(t, tokens, "mallory@x.com")

	w, env := doJSON(t, r, http.MethodGet, "/agreement/alice@x.com", token, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "forbidden access", env["message"])
}
