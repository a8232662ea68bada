package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/pkg/api"
)

const whoAmIProcedure = "/splitledger.test.Echo/WhoAmI"

// whoAmI echoes the caller's user ID back as the single returned user.
func whoAmI(ctx context.Context, _ *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error) {
	userID := GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("no user on context"))
	}
	return connect.NewResponse(&api.GetCurrentUserResponse{
		User: &api.User{Id: userID, Email: GetEmail(ctx)},
	}), nil
}

func newEchoClient(t *testing.T, interceptors ...connect.Interceptor) *connect.Client[api.GetCurrentUserRequest, api.GetCurrentUserResponse] {
	t.Helper()

	mux := http.NewServeMux()
	mux.Handle(whoAmIProcedure, connect.NewUnaryHandler(whoAmIProcedure, whoAmI,
		api.WithCodec(), connect.WithInterceptors(interceptors...)))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return connect.NewClient[api.GetCurrentUserRequest, api.GetCurrentUserResponse](
		http.DefaultClient, server.URL+whoAmIProcedure, api.WithCodec())
}

func callWithAuth(client *connect.Client[api.GetCurrentUserRequest, api.GetCurrentUserResponse], header string) (*connect.Response[api.GetCurrentUserResponse], error) {
	req := connect.NewRequest(&api.GetCurrentUserRequest{})
	if header != "" {
		req.Header().Set("Authorization", header)
	}
	return client.CallUnary(context.Background(), req)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Basic abc", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		token, ok := bearerToken(tt.header)
		if token != tt.token || ok != tt.ok {
			t.Errorf("bearerToken(%q) = %q, %v; want %q, %v", tt.header, token, ok, tt.token, tt.ok)
		}
	}
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	token, err := jwtManager.Generate(&models.User{ID: "user-1", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	client := newEchoClient(t, RequireAuth(jwtManager))

	resp, err := callWithAuth(client, "Bearer "+token)
	if err != nil {
		t.Fatalf("call with valid token failed: %v", err)
	}
	if resp.Msg.User.Id != "user-1" || resp.Msg.User.Email != "a@example.com" {
		t.Errorf("context user = %+v", resp.Msg.User)
	}

	for _, header := range []string{"", "Token " + token, "Bearer not-a-jwt"} {
		_, err := callWithAuth(client, header)
		if connect.CodeOf(err) != connect.CodeUnauthenticated {
			t.Errorf("header %q: code = %v, want unauthenticated", header, connect.CodeOf(err))
		}
	}
}

func TestOptionalAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	token, err := jwtManager.Generate(&models.User{ID: "user-1", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	client := newEchoClient(t, OptionalAuth(jwtManager))

	if _, err := callWithAuth(client, "Bearer "+token); err != nil {
		t.Fatalf("call with valid token failed: %v", err)
	}

	// Without a usable token the handler runs with no user.
	for _, header := range []string{"", "Bearer garbage"} {
		_, err := callWithAuth(client, header)
		if connect.CodeOf(err) != connect.CodeNotFound {
			t.Errorf("header %q: code = %v, want not_found from handler", header, connect.CodeOf(err))
		}
	}
}

func TestMetricsInterceptor(t *testing.T) {
	m := metrics.New()
	client := newEchoClient(t, LoggingInterceptor(), MetricsInterceptor(m))

	if _, err := callWithAuth(client, ""); err == nil {
		t.Fatal("expected not_found without a user")
	}

	got := testutil.ToFloat64(m.RPCRequests.WithLabelValues(whoAmIProcedure, connect.CodeNotFound.String()))
	if got != 1 {
		t.Errorf("rpc_requests_total{code=not_found} = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(m.RPCDuration); n != 1 {
		t.Errorf("expected 1 duration series, got %d", n)
	}
}

func TestCORS(t *testing.T) {
	handler := CORS("https://ledger.example.com")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	preflight := httptest.NewRecorder()
	handler.ServeHTTP(preflight, httptest.NewRequest(http.MethodOptions, "/", nil))
	if preflight.Code != http.StatusOK {
		t.Errorf("preflight status = %d, want 200", preflight.Code)
	}
	if got := preflight.Header().Get("Access-Control-Allow-Origin"); got != "https://ledger.example.com" {
		t.Errorf("Allow-Origin = %q", got)
	}

	rec := httptest.NewRecorder()
	Logging(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}
