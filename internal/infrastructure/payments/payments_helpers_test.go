package payments

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"pixgate/internal/config"
	"pixgate/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const samplePixCode = "00020126580014br.gov.bcb.pix0136a1b2c3d4-e5f6-7890-abcd-ef12345678905204000053039865406649.905802BR5913MARIA SILVA6009SAO PAULO62070503***6304ABCD"

// upstream is a scripted provider: it records every request and answers
// with a fixed status and body.
type upstream struct {
	t      *testing.T
	mu     sync.Mutex
	calls  []recordedCall
	status int
	body   string
	delay  time.Duration
	server *httptest.Server
}

type recordedCall struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   map[string]any
}

func newUpstream(t *testing.T, status int, body string) *upstream {
	u := &upstream{t: t, status: status, body: body}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		call := recordedCall{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Header: r.Header.Clone()}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &call.Body); err != nil {
				t.Errorf("upstream got invalid json: %v", err)
			}
		}
		u.mu.Lock()
		u.calls = append(u.calls, call)
		status, body, delay := u.status, u.body, u.delay
		u.mu.Unlock()

		if delay > 0 {
			time.Sleep(delay)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(u.server.Close)
	return u
}

func (u *upstream) lastCall() recordedCall {
	u.mu.Lock()
	defer u.mu.Unlock()
	require.NotEmpty(u.t, u.calls, "expected at least one upstream call")
	return u.calls[len(u.calls)-1]
}

func (u *upstream) callCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.calls)
}

func (u *upstream) providerConfig(name string) config.ProviderConfig {
	return config.ProviderConfig{Name: name, BaseURL: u.server.URL, SecretKey: "sk_test_secret"}
}

func testOptions() Options {
	return Options{Timeout: 2 * time.Second, QRChartURL: "https://chart.example/qr?data="}
}

func mariaRequest() entities.PaymentRequest {
	return entities.PaymentRequest{
		Name:   "Maria Silva",
		Email:  "maria@x.com",
		CPF:    "123.456.789-09",
		Phone:  "(11) 98765-4321",
		Amount: decimal.NewFromFloat(64.9),
	}
}
