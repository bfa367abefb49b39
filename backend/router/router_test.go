package router_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"fleetd/backend/app/models"
	"fleetd/backend/initialize"
	"fleetd/network"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testToken = "test-secret"
	testUser  = "operator"
	testPass  = "hunter2"
)

// newTestServer bootstraps a full application from a generated config
// file and serves it over httptest.
func newTestServer(t *testing.T) (*initialize.App, *httptest.Server) {
	t.Helper()
	dir := t.TempDir()
	cfg := fmt.Sprintf(`server:
  host: 127.0.0.1
  port: 0
db:
  driver: sqlite
  dsn: %s
auth:
  token: %s
  operator:
    user: %s
    pass: %s
  jwt:
    secret: unit-test-secret
liveness:
  threshold_sec: 30
`, filepath.Join(dir, "ctl.db"), testToken, testUser, testPass)

	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	app, err := initialize.Build(cfgPath)
	require.NoError(t, err)

	ts := httptest.NewServer(app.Router)
	t.Cleanup(ts.Close)
	return app, ts
}

func TestAPI_WhoamiScenario(t *testing.T) {
	_, ts := newTestServer(t)
	client := network.NewClient(ts.URL, testToken)

	require.NoError(t, client.Checkin("hostA", "10.0.0.1", 10, "5ms"))

	id, err := client.Enqueue("hostA", "whoami")
	require.NoError(t, err)
	require.NotZero(t, id)

	order, err := client.FetchOrder("hostA")
	require.NoError(t, err)
	require.NotNil(t, order.CommandID)
	assert.Equal(t, id, *order.CommandID)
	assert.Equal(t, "whoami", order.CommandText)

	order, err = client.FetchOrder("hostA")
	require.NoError(t, err)
	assert.Nil(t, order.CommandID)
	assert.Equal(t, "No pending orders", order.CommandText)

	require.NoError(t, client.StoreResponse("hostA", id, "root"))
	text, err := client.FetchResponse(id)
	require.NoError(t, err)
	assert.Equal(t, "root", text)

	agents, err := client.ListAgents()
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "hostA", agents[0].Name)
	assert.Equal(t, "online", agents[0].Status)
}

func TestAPI_FIFOAcrossMultipleCommands(t *testing.T) {
	_, ts := newTestServer(t)
	client := network.NewClient(ts.URL, testToken)

	var ids []uint
	for i := 0; i < 4; i++ {
		id, err := client.Enqueue("hostA", fmt.Sprintf("cmd-%d", i))
		require.NoError(t, err)
		ids = append(ids, id)
	}
	for i := 0; i < 4; i++ {
		order, err := client.FetchOrder("hostA")
		require.NoError(t, err)
		require.NotNil(t, order.CommandID)
		assert.Equal(t, ids[i], *order.CommandID)
	}
	order, err := client.FetchOrder("hostA")
	require.NoError(t, err)
	assert.Nil(t, order.CommandID)
}

func TestAPI_UnauthorizedProducesNoSideEffects(t *testing.T) {
	app, ts := newTestServer(t)
	bad := network.NewClient(ts.URL, "wrong-token")

	assert.Error(t, bad.Checkin("hostA", "10.0.0.1", 10, "5ms"))
	_, err := bad.Enqueue("hostA", "uptime")
	assert.Error(t, err)
	assert.Error(t, bad.StoreResponse("hostA", 1, "ok"))
	_, err = bad.ListAgents()
	assert.Error(t, err)

	var agents, commands, responses int64
	require.NoError(t, app.DB.Model(&models.Agent{}).Count(&agents).Error)
	require.NoError(t, app.DB.Model(&models.Command{}).Count(&commands).Error)
	require.NoError(t, app.DB.Model(&models.CommandResponse{}).Count(&responses).Error)
	assert.Zero(t, agents)
	assert.Zero(t, commands)
	assert.Zero(t, responses)
}

func TestAPI_StatusCodes(t *testing.T) {
	_, ts := newTestServer(t)

	get := func(path, token string) int {
		req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
		require.NoError(t, err)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := ts.Client().Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}

	// fetch-response requires auth like everything else
	assert.Equal(t, http.StatusUnauthorized, get("/v2/responses?command_id=1", ""))
	// malformed command_id
	assert.Equal(t, http.StatusBadRequest, get("/v2/responses?command_id=abc", testToken))
	// well-formed but unused id
	assert.Equal(t, http.StatusNotFound, get("/v2/responses?command_id=9999", testToken))
	// missing agent name on the order poll
	assert.Equal(t, http.StatusBadRequest, get("/v2/orders", testToken))
	// health endpoint is public
	assert.Equal(t, http.StatusOK, get("/ping", ""))
}

func TestAPI_OperatorLogin(t *testing.T) {
	_, ts := newTestServer(t)

	client := network.NewClient(ts.URL, "")
	require.NoError(t, client.Login(testUser, testPass))

	// the issued JWT is accepted wherever the shared secret is
	_, err := client.ListAgents()
	assert.NoError(t, err)

	bad := network.NewClient(ts.URL, "")
	assert.Error(t, bad.Login(testUser, "not-the-password"))
}
