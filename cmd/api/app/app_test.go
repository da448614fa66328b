package app

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"user-post-service/internal/config"
)

func testConfig(driver string) *config.Config {
	return &config.Config{
		App:   config.AppConfig{HTTPPort: "0", ShutdownTimeoutSeconds: 5},
		Store: config.StoreConfig{Driver: driver, SQLiteDSN: ":memory:"},
	}
}

// withRedis points cfg at mr and turns the entity cache on.
func withRedis(t *testing.T, cfg *config.Config, mr *miniredis.Miniredis) {
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)
	cfg.Redis = config.RedisConfig{Host: host, Port: port, PoolSize: 2}
	cfg.Cache = config.CacheConfig{Enabled: true, TTLSeconds: 60}
}

// APISuite runs the HTTP scenarios against a fresh application per test.
type APISuite struct {
	suite.Suite
	driver    string
	withRedis bool
	app       *App
	srv       *httptest.Server
}

func (s *APISuite) SetupTest() {
	cfg := testConfig(s.driver)
	if s.withRedis {
		withRedis(s.T(), cfg, miniredis.RunT(s.T()))
		cfg.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerSecond: 1000, BurstCapacity: 1000}
	}

	a, err := NewWithConfig(context.Background(), cfg, zaptest.NewLogger(s.T()))
	s.Require().NoError(err)
	s.app = a
	s.srv = httptest.NewServer(a.Container.Router)
}

func (s *APISuite) TearDownTest() {
	s.srv.Close()
	s.Require().NoError(s.app.Container.Close())
}

func (s *APISuite) do(method, path, body string) (int, string) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, s.srv.URL+path, r)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, string(b)
}

func (s *APISuite) TestCreateAndListUsers() {
	code, body := s.do(http.MethodPost, "/users", `{"name":"Ada","username":"ada","email":"ada@x.com"}`)
	s.Equal(http.StatusCreated, code)
	s.JSONEq(`{"id":1,"name":"Ada","username":"ada","email":"ada@x.com"}`, body)

	code, body = s.do(http.MethodPost, "/users", `{"name":"Ada","username":"ada","email":"ada@x.com"}`)
	s.Equal(http.StatusCreated, code)
	s.JSONEq(`{"id":2,"name":"Ada","username":"ada","email":"ada@x.com"}`, body)

	_, body = s.do(http.MethodGet, "/users", "")
	var users []map[string]any
	s.Require().NoError(json.Unmarshal([]byte(body), &users))
	s.Len(users, 2)
}

func (s *APISuite) TestEmptyCollections() {
	_, body := s.do(http.MethodGet, "/users", "")
	s.JSONEq(`[]`, body)
	_, body = s.do(http.MethodGet, "/posts", "")
	s.JSONEq(`[]`, body)
	_, body = s.do(http.MethodGet, "/posts?userId=1", "")
	s.JSONEq(`[]`, body)
}

func (s *APISuite) TestPatchMergesFields() {
	s.do(http.MethodPost, "/users", `{"name":"Ada","username":"ada","email":"ada@x.com"}`)

	code, body := s.do(http.MethodPatch, "/users/1", `{"email":"new@x.com"}`)
	s.Equal(http.StatusOK, code)
	s.JSONEq(`{"id":1,"name":"Ada","username":"ada","email":"new@x.com"}`, body)

	_, before := s.do(http.MethodGet, "/users/1", "")
	code, after := s.do(http.MethodPatch, "/users/1", `{}`)
	s.Equal(http.StatusOK, code)
	s.JSONEq(before, after)
}

func (s *APISuite) TestMissingIDs() {
	code, body := s.do(http.MethodGet, "/users/999", "")
	s.Equal(http.StatusNotFound, code)
	s.JSONEq(`{"statusCode":404,"error":"Not Found","message":"User with ID 999 not found"}`, body)

	code, _ = s.do(http.MethodPatch, "/posts/999", `{"title":"x"}`)
	s.Equal(http.StatusNotFound, code)

	code, _ = s.do(http.MethodDelete, "/posts/999", "")
	s.Equal(http.StatusNotFound, code)

	code, _ = s.do(http.MethodGet, "/users/abc", "")
	s.Equal(http.StatusBadRequest, code)
}

func (s *APISuite) TestPostsFilterAndOrphans() {
	s.do(http.MethodPost, "/users", `{"name":"Ada","username":"ada","email":"ada@x.com"}`)
	s.do(http.MethodPost, "/posts", `{"userId":1,"title":"Hi"}`)
	s.do(http.MethodPost, "/posts", `{"userId":2,"title":"Other"}`)
	code, body := s.do(http.MethodPost, "/posts", `{"userId":999,"title":"x"}`)
	s.Equal(http.StatusCreated, code)
	s.JSONEq(`{"id":3,"userId":999,"title":"x"}`, body)

	_, body = s.do(http.MethodGet, "/posts?userId=1", "")
	s.JSONEq(`[{"id":1,"userId":1,"title":"Hi"}]`, body)

	code, body = s.do(http.MethodDelete, "/users/1", "")
	s.Equal(http.StatusNoContent, code)
	s.Empty(body)

	code, _ = s.do(http.MethodGet, "/users/1", "")
	s.Equal(http.StatusNotFound, code)

	_, body = s.do(http.MethodGet, "/posts/1", "")
	s.JSONEq(`{"id":1,"userId":1,"title":"Hi"}`, body)
}

func (s *APISuite) TestPostsUserIDQuery() {
	s.do(http.MethodPost, "/posts", `{"userId":1,"title":"Hi"}`)
	s.do(http.MethodPost, "/posts", `{"userId":2,"title":"Other"}`)

	code, body := s.do(http.MethodGet, "/posts?userId=", "")
	s.Equal(http.StatusOK, code)
	s.JSONEq(`[{"id":1,"userId":1,"title":"Hi"},{"id":2,"userId":2,"title":"Other"}]`, body)

	code, body = s.do(http.MethodGet, "/posts?userId=abc", "")
	s.Equal(http.StatusOK, code)
	s.JSONEq(`[]`, body)
}

func (s *APISuite) TestPostUserIDIsImmutable() {
	s.do(http.MethodPost, "/posts", `{"userId":1,"title":"Hi"}`)

	_, body := s.do(http.MethodPatch, "/posts/1", `{"title":"Hello","userId":5}`)
	s.JSONEq(`{"id":1,"userId":1,"title":"Hello"}`, body)
}

func TestAPI_MemoryStore(t *testing.T) {
	suite.Run(t, &APISuite{driver: config.StoreDriverMemory})
}

func TestAPI_SQLiteStore(t *testing.T) {
	suite.Run(t, &APISuite{driver: config.StoreDriverSQLite})
}

func TestAPI_CachedAndRateLimited(t *testing.T) {
	suite.Run(t, &APISuite{driver: config.StoreDriverSQLite, withRedis: true})
}

func TestCache_RestartDoesNotServePreviousData(t *testing.T) {
	mr := miniredis.RunT(t)

	createAndGet := func(name string) string {
		cfg := testConfig(config.StoreDriverMemory)
		withRedis(t, cfg, mr)
		a, err := NewWithConfig(context.Background(), cfg, zaptest.NewLogger(t))
		require.NoError(t, err)
		srv := httptest.NewServer(a.Container.Router)
		defer func() {
			srv.Close()
			require.NoError(t, a.Container.Close())
		}()

		resp, err := http.Post(srv.URL+"/users", "application/json",
			strings.NewReader(`{"name":"`+name+`","username":"u","email":"u@x.com"}`))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		resp, err = http.Get(srv.URL + "/users/1")
		require.NoError(t, err)
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(b)
	}

	assert.JSONEq(t, `{"id":1,"name":"Ada","username":"u","email":"u@x.com"}`, createAndGet("Ada"))
	assert.JSONEq(t, `{"id":1,"name":"Bob","username":"u","email":"u@x.com"}`, createAndGet("Bob"))
}

func TestNewWithConfig_InvalidConfig(t *testing.T) {
	_, err := NewWithConfig(context.Background(), testConfig("postgres"), zaptest.NewLogger(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown STORE_DRIVER")
}

func TestRun_StopsOnCancel(t *testing.T) {
	a, err := NewWithConfig(context.Background(), testConfig(config.StoreDriverMemory), zaptest.NewLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
