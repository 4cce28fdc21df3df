package obs

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitLoggerToWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, "warn")
	defer InitLogger("info")
	Logger.Info("dropped")
	Logger.Warn("kept", "k", 1)
	out := buf.String()
	if strings.Contains(out, "dropped") || !strings.Contains(out, `"msg":"kept"`) {
		t.Fatalf("unexpected log output: %s", out)
	}
}

func TestMetricsRegistriesAreIndependent(t *testing.T) {
	a, b := NewMetrics(), NewMetrics()
	a.LoadsTotal.WithLabelValues("mock", "success").Inc()
	if got := testutil.ToFloat64(b.LoadsTotal.WithLabelValues("mock", "success")); got != 0 {
		t.Fatalf("registries share state: %v", got)
	}
	a.Products.Set(12)
	rr := httptest.NewRecorder()
	a.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rr.Body.String(), "inventory_products 12") {
		t.Fatalf("gauge not exposed")
	}
}
