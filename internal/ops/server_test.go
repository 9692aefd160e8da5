package ops

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"workgrid.io/workgrid/ent"
	"workgrid.io/workgrid/internal/audit"
	"workgrid.io/workgrid/internal/config"
	"workgrid.io/workgrid/internal/dispatch"
	"workgrid.io/workgrid/internal/domain"
	"workgrid.io/workgrid/internal/ledger"
	"workgrid.io/workgrid/internal/pkg/logger"
	"workgrid.io/workgrid/internal/saga"
	"workgrid.io/workgrid/internal/testutil"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func init() {
	_ = logger.Init("error", "console")
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, prefix string) (*Server, *dispatch.Sink, *dispatch.Dispatcher) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	l := ledger.New(client, "workgrid-core")
	sink := dispatch.NewSink(client)
	d := dispatch.New(dispatch.Config{HandlerTimeout: 5 * time.Second, MaxRetries: 1}, l, sink, nil)
	coordinator := saga.NewCoordinator(client, "workgrid-core", saga.TenantDeletion())
	coordinator.RegisterHandlers(d)
	s := NewServer(config.OpsConfig{
		Enabled:     true,
		Port:        0,
		TokenSecret: testSecret,
	}, d, sink, coordinator, audit.NewRecorder(client), nil)
	return s, sink, d
}

func doRequest(t *testing.T, s *Server, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router().ServeHTTP(w, req)
	return w
}

func TestHealthIsPublic(t *testing.T) {
	s, _, _ := newTestServer(t, "ops_health")
	w := doRequest(t, s, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestOpsRoutesRequireToken(t *testing.T) {
	s, _, _ := newTestServer(t, "ops_auth")

	w := doRequest(t, s, http.MethodGet, "/ops/v1/dead-letters", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, s, http.MethodGet, "/ops/v1/dead-letters", "not-a-jwt")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	expired, err := GenerateToken([]byte(testSecret), "op-1", -time.Minute)
	require.NoError(t, err)
	w = doRequest(t, s, http.MethodGet, "/ops/v1/dead-letters", expired)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	wrongKey, err := GenerateToken([]byte("ffffffffffffffffffffffffffffffff"), "op-1", time.Hour)
	require.NoError(t, err)
	w = doRequest(t, s, http.MethodGet, "/ops/v1/dead-letters", wrongKey)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeadLetterListAndReplay(t *testing.T) {
	s, sink, d := newTestServer(t, "ops_replay")
	ctx := context.Background()

	env, err := domain.NewEnvelope(domain.EventMemberAdded, "membership-service", "tenant-1",
		domain.MemberAddedPayload{UserID: "user-1", Role: "admin"})
	require.NoError(t, err)
	raw, err := env.ToJSON()
	require.NoError(t, err)
	require.NoError(t, sink.Send(ctx, env.Topic(), env.EventID, raw, "handler crashed", 3))

	handled := false
	d.Register(domain.EventMemberAdded, "probe", []string{domain.Version11},
		func(ctx context.Context, tx *ent.Tx, env *domain.Envelope) error {
			handled = true
			return nil
		})

	token, err := GenerateToken([]byte(testSecret), "op-1", time.Hour)
	require.NoError(t, err)

	w := doRequest(t, s, http.MethodGet, "/ops/v1/dead-letters", token)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		DeadLetters []struct {
			ID string `json:"id"`
		} `json:"dead_letters"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.DeadLetters, 1)

	w = doRequest(t, s, http.MethodPost, "/ops/v1/dead-letters/"+listResp.DeadLetters[0].ID+"/replay", token)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, handled)

	w = doRequest(t, s, http.MethodPost, "/ops/v1/dead-letters/missing/replay", token)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSagaInspectionRoutes(t *testing.T) {
	s, _, d := newTestServer(t, "ops_sagas")
	ctx := context.Background()

	env, err := domain.NewEnvelope(domain.EventOrganizationDeleted, "organization-service", "tenant-1",
		domain.OrganizationDeletedPayload{RequestedBy: "owner-1"})
	require.NoError(t, err)
	raw, err := env.ToJSON()
	require.NoError(t, err)
	require.NoError(t, d.Process(ctx, env, raw))

	token, err := GenerateToken([]byte(testSecret), "op-1", time.Hour)
	require.NoError(t, err)

	w := doRequest(t, s, http.MethodGet, "/ops/v1/sagas?status=IN_PROGRESS", token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, s, http.MethodGet, "/ops/v1/sagas/"+env.CorrelationID, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, s, http.MethodGet, "/ops/v1/sagas/missing", token)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, s, http.MethodGet, "/ops/v1/audit/saga/"+env.CorrelationID, token)
	require.Equal(t, http.StatusOK, w.Code)
}
