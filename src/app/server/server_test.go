package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"lessonbox/src/app/http/dto"
	"lessonbox/src/app/middleware"
	"lessonbox/src/core/domain"
	"lessonbox/src/infra/config"
	"lessonbox/src/infra/logger"
	"lessonbox/src/infra/metrics"
	"lessonbox/src/infra/repo"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code      string      `json:"code"`
		Kind      domain.Kind `json:"kind"`
		Field     string      `json:"field"`
		RequestID string      `json:"request_id"`
	} `json:"error"`
}

type ServerSuite struct {
	suite.Suite
	router  http.Handler
	metrics *metrics.Metrics
}

func (s *ServerSuite) SetupTest() {
	cfg := &config.Config{
		Mode:    config.ModeServer,
		Log:     config.LogConfig{Level: "info", Format: "plain"},
		Metrics: config.MetricsConfig{Enabled: true},
	}
	s.metrics = metrics.New()
	s.router = New(cfg, logger.Discard(), repo.NewMemoryRepository(), s.metrics).Router()
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) do(method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func (s *ServerSuite) register(username string) dto.MemberResponse {
	rec, env := s.do(http.MethodPost, "/v1/members", map[string]any{"username": username})
	s.Require().Equal(http.StatusCreated, rec.Code)
	var m dto.MemberResponse
	s.Require().NoError(json.Unmarshal(env.Data, &m))
	return m
}

func (s *ServerSuite) TestHealth() {
	rec, _ := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get(middleware.RequestIDHeader))

	rec, _ = s.do(http.MethodGet, "/health/detailed", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"storage":{"status":"healthy"}`)
}

func (s *ServerSuite) TestRegisterValidatesUsername() {
	rec, env := s.do(http.MethodPost, "/v1/members", map[string]any{"username": "Al"})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(domain.KindValidation, env.Error.Kind)
	s.Equal("username", env.Error.Field)
	s.NotEmpty(env.Error.RequestID)

	s.register("Ana")
	rec, env = s.do(http.MethodPost, "/v1/members", map[string]any{"username": "Ana"})
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal(domain.KindConflict, env.Error.Kind)

	rec, env = s.do(http.MethodPost, "/v1/members", map[string]any{"username": 42})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(domain.KindTypeMismatch, env.Error.Kind)
}

func (s *ServerSuite) TestSetAge() {
	m := s.register("Ana")
	path := "/v1/members/" + m.ID + "/age"

	rec, env := s.do(http.MethodPut, path, map[string]any{"age": 25})
	s.Require().Equal(http.StatusOK, rec.Code)
	var got dto.MemberResponse
	s.Require().NoError(json.Unmarshal(env.Data, &got))
	s.Require().NotNil(got.Age)
	s.Equal(25, *got.Age)

	tests := []struct {
		age    any
		status int
		kind   domain.Kind
	}{
		{-5, http.StatusUnprocessableEntity, domain.KindOutOfRange},
		{"abc", http.StatusBadRequest, domain.KindTypeMismatch},
		{25.5, http.StatusBadRequest, domain.KindTypeMismatch},
		{nil, http.StatusBadRequest, domain.KindTypeMismatch},
	}
	for _, tt := range tests {
		rec, env := s.do(http.MethodPut, path, map[string]any{"age": tt.age})
		s.Equal(tt.status, rec.Code, "age %v", tt.age)
		s.Equal(tt.kind, env.Error.Kind, "age %v", tt.age)
	}

	rec, env = s.do(http.MethodGet, "/v1/members/"+m.ID, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(env.Data, &got))
	s.Equal(25, *got.Age)
}

func (s *ServerSuite) TestMemberPathMustBeUUID() {
	rec, env := s.do(http.MethodGet, "/v1/members/not-a-uuid", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("member_id", env.Error.Field)

	rec, env = s.do(http.MethodGet, "/v1/members/"+uuid.NewString(), nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(domain.KindNotFound, env.Error.Kind)
}

func (s *ServerSuite) TestAccountFlow() {
	rec, env := s.do(http.MethodPost, "/v1/accounts", map[string]any{"owner": "Alice", "opening_balance": 1000})
	s.Require().Equal(http.StatusCreated, rec.Code)
	var acc dto.AccountResponse
	s.Require().NoError(json.Unmarshal(env.Data, &acc))
	base := "/v1/accounts/" + acc.ID

	rec, env = s.do(http.MethodPost, base+"/deposit", map[string]any{"amount": 500})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(env.Data, &acc))
	s.Equal(int64(1500), acc.Balance)

	rec, env = s.do(http.MethodPost, base+"/deposit", map[string]any{"amount": 0})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(domain.KindValidation, env.Error.Kind)

	rec, env = s.do(http.MethodPost, base+"/withdraw", map[string]any{"amount": 2000})
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("INSUFFICIENT_FUNDS", env.Error.Code)

	rec, env = s.do(http.MethodGet, base, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(env.Data, &acc))
	s.Equal(int64(1500), acc.Balance)

	rec, env = s.do(http.MethodPost, "/v1/accounts", map[string]any{"opening_balance": 10})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(domain.KindValidation, env.Error.Kind)
	s.Equal("owner", env.Error.Field)
}

func (s *ServerSuite) TestAmountDecoding() {
	rec, env := s.do(http.MethodPost, "/v1/accounts", map[string]any{"owner": "Alice"})
	s.Require().Equal(http.StatusCreated, rec.Code)
	var acc dto.AccountResponse
	s.Require().NoError(json.Unmarshal(env.Data, &acc))
	deposit := "/v1/accounts/" + acc.ID + "/deposit"

	tests := []struct {
		body   string
		status int
		kind   domain.Kind
	}{
		{`{"amount": 1e20}`, http.StatusUnprocessableEntity, domain.KindOutOfRange},
		{`{"amount": 99999999999999999999}`, http.StatusUnprocessableEntity, domain.KindOutOfRange},
		{`{"amount": 1.5}`, http.StatusBadRequest, domain.KindTypeMismatch},
		{`{"amount": "ten"}`, http.StatusBadRequest, domain.KindTypeMismatch},
	}
	for _, tt := range tests {
		rec, env := s.do(http.MethodPost, deposit, json.RawMessage(tt.body))
		s.Equal(tt.status, rec.Code, tt.body)
		s.Equal(tt.kind, env.Error.Kind, tt.body)
		s.Equal("amount", env.Error.Field, tt.body)
	}
}

func (s *ServerSuite) TestSpeak() {
	rec, env := s.do(http.MethodPost, "/v1/animals/speak", map[string]any{
		"animals": []map[string]string{
			{"kind": "dog", "name": "Fido"},
			{"kind": "cat", "name": "Milo"},
			{"kind": "animal", "name": "Generic"},
		},
	})
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Utterances []dto.UtteranceResponse `json:"utterances"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &body))
	s.Require().Len(body.Utterances, 3)
	s.Contains(body.Utterances[0].Sound, "Fido")
	s.Contains(body.Utterances[1].Sound, "Milo")
	s.Require().NotNil(body.Utterances[2].Error)
	s.Equal(domain.KindNotImplemented, body.Utterances[2].Error.Kind)

	rec, _ = s.do(http.MethodPost, "/v1/animals/speak", map[string]any{"animals": []any{}})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec, env = s.do(http.MethodPost, "/v1/animals/speak", map[string]any{
		"animals": []map[string]string{{"name": "Nameless"}},
	})
	s.Require().Equal(http.StatusOK, rec.Code)
	var single struct {
		Utterances []dto.UtteranceResponse `json:"utterances"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &single))
	s.Require().Len(single.Utterances, 1)
	s.Require().NotNil(single.Utterances[0].Error)
	s.Equal(domain.KindValidation, single.Utterances[0].Error.Kind)
	s.Equal("kind", single.Utterances[0].Error.Field)
}

func (s *ServerSuite) TestDivide() {
	rec, env := s.do(http.MethodGet, "/v1/calculator/divide?denominator=4", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var got dto.DivideResponse
	s.Require().NoError(json.Unmarshal(env.Data, &got))
	s.Equal(25.0, got.Result)

	rec, env = s.do(http.MethodGet, "/v1/calculator/divide?numerator=10&denominator=0", nil)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal(domain.KindDivisionByZero, env.Error.Kind)

	rec, env = s.do(http.MethodGet, "/v1/calculator/divide?denominator=abc", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(domain.KindTypeMismatch, env.Error.Kind)
}

func (s *ServerSuite) TestFailuresAreCounted() {
	s.do(http.MethodGet, "/v1/calculator/divide?denominator=0", nil)
	s.do(http.MethodGet, "/v1/calculator/divide?denominator=0", nil)

	s.Equal(2.0, testutil.ToFloat64(s.metrics.FailuresTotal.WithLabelValues("http", "division-by-zero")))

	rec, _ := s.do(http.MethodGet, "/metrics", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "lessonbox_http_requests_total")
}

func (s *ServerSuite) TestUnknownRoute() {
	rec, env := s.do(http.MethodGet, "/nope", nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("NOT_FOUND", env.Error.Code)
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestRunServesUntilContextCancelled(t *testing.T) {
	cfg := &config.Config{
		Mode: config.ModeServer,
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            freePort(t),
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			ShutdownTimeout: time.Second,
		},
		Log: config.LogConfig{Level: "info"},
	}
	srv := New(cfg, logger.Discard(), repo.NewMemoryRepository(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	if err := srv.WaitForReady(2 * time.Second); err != nil {
		cancel()
		t.Fatalf("server never became ready: %v", err)
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
