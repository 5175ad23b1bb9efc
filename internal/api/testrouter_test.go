package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/no0bAuntor/online-voting-system/config"
	"github.com/no0bAuntor/online-voting-system/internal/api"
	"github.com/no0bAuntor/online-voting-system/internal/models"
	"github.com/no0bAuntor/online-voting-system/internal/service"
	"github.com/no0bAuntor/online-voting-system/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

type testEnv struct {
	router     *gin.Engine
	users      *testutil.FakeUserRepository
	candidates *testutil.FakeCandidateRepository
	settings   *testutil.FakeSettingRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := testutil.NewFakeUserRepository()
	candidates := testutil.NewFakeCandidateRepository()
	settings := testutil.NewFakeSettingRepository()
	symbols := testutil.NewFakeSymbolRepository()

	cfg := &config.Config{
		JWT:    config.JWTConfig{Secret: testSecret},
		Admin:  config.AdminConfig{Username: "789456", Password: "@dmin"},
		Upload: config.UploadConfig{Dir: t.TempDir()},
	}

	log := testutil.NopLogger{}

	authService := service.NewAuthService(users, cfg)
	ballotService := service.NewBallotService(users, candidates, settings, log)
	electionService := service.NewElectionService(users, candidates, settings, log)
	candidateService := service.NewCandidateService(candidates, users)
	symbolService := service.NewSymbolService(symbols)

	r := gin.New()
	api.RegisterAuthRouters(r, authService)
	api.RegisterVoteRouters(r, ballotService, electionService, candidateService, cfg)
	api.RegisterResultRouters(r, candidateService)
	api.RegisterSymbolRouters(r, symbolService, cfg)

	return &testEnv{
		router:     r,
		users:      users,
		candidates: candidates,
		settings:   settings,
	}
}

func signToken(t *testing.T, id string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": id}).
		SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return token
}

func (e *testEnv) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, *models.APIResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp models.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	return w, &resp
}
