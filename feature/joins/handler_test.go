package joins

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(f *Feature) *fiber.App {
	app := fiber.New()
	_ = f.Load(app)
	return app
}

func TestHandleListJoins(t *testing.T) {
	db := setupSQLite(t)
	seedJoins(t, NewRepository(db))
	app := newTestApp(NewFeature(db, zap.NewNop()))

	resp, err := app.Test(httptest.NewRequest("GET", "/joins/g1?limit=2", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var records []JoinRecord
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &records))
	require.Len(t, records, 2)
	assert.Equal(t, "m5", records[0].MemberID)

	resp, err = app.Test(httptest.NewRequest("GET", "/joins/g1?limit=-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleLeaderboard(t *testing.T) {
	db := setupSQLite(t)
	seedJoins(t, NewRepository(db))
	app := newTestApp(NewFeature(db, zap.NewNop()))

	resp, err := app.Test(httptest.NewRequest("GET", "/joins/g1/leaderboard", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var entries []LeaderboardEntry
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, LeaderboardEntry{InviterID: "alice", Joins: 2}, entries[0])
}

func TestHandler_DatabaseError(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	app := newTestApp(NewFeature(db, zap.NewNop()))

	sqlMock.ExpectQuery(".*").WillReturnError(assert.AnError)
	resp, err := app.Test(httptest.NewRequest("GET", "/joins/g1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHandler_NoDatabase(t *testing.T) {
	f := NewFeature(nil, zap.NewNop())
	assert.False(t, f.IsEnabled())
	assert.NotNil(t, f.Recorder())

	app := newTestApp(f)
	resp, err := app.Test(httptest.NewRequest("GET", "/joins/g1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestLoader(t *testing.T) {
	db, _ := setupMockDB(t)
	f := NewFeature(db, zap.NewNop())

	assert.Equal(t, "joins", f.Name())
	assert.True(t, f.IsEnabled())
	assert.NoError(t, f.Load(fiber.New()))
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, clampLimit(0))
	assert.Equal(t, 10, clampLimit(10))
	assert.Equal(t, MaxLimit, clampLimit(MaxLimit+1))
}
