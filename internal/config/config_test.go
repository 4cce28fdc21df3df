package config

import (
	"os"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"HTTP_ADDR", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "INVENTORY_SOURCE",
		"INVENTORY_URL", "INVENTORY_CSV", "FETCH_TIMEOUT", "FETCH_RETRIES",
	} {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c != Default() {
		t.Fatalf("defaults mismatch: %+v", c)
	}
	if c.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr default")
	}
	if c.ShutdownTimeout != 15*time.Second {
		t.Fatalf("ShutdownTimeout default")
	}
	if c.Source != SourceMock {
		t.Fatalf("Source default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("INVENTORY_SOURCE", "http")
	t.Setenv("INVENTORY_URL", "https://example.com/latest_summary.json")
	t.Setenv("FETCH_TIMEOUT", "250ms")
	t.Setenv("FETCH_RETRIES", "2")
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.HTTPAddr != ":9090" {
		t.Fatalf("HTTPAddr env")
	}
	if c.ShutdownTimeout != 2*time.Second {
		t.Fatalf("ShutdownTimeout env")
	}
	if c.LogLevel != "debug" {
		t.Fatalf("LogLevel env")
	}
	if c.Source != SourceHTTP || c.URL == "" {
		t.Fatalf("source env")
	}
	if c.FetchTimeout != 250*time.Millisecond || c.FetchRetries != 2 {
		t.Fatalf("fetch env")
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("FETCH_RETRIES", "many")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed FETCH_RETRIES")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"mock", Config{Source: SourceMock}, true},
		{"http_without_url", Config{Source: SourceHTTP}, false},
		{"http_with_url", Config{Source: SourceHTTP, URL: "http://x"}, true},
		{"csv_without_path", Config{Source: SourceCSV}, false},
		{"csv_with_path", Config{Source: SourceCSV, CSVPath: "inv.csv"}, true},
		{"unknown", Config{Source: "s3"}, false},
		{"negative_retries", Config{Source: SourceMock, FetchRetries: -1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestFetchBudget(t *testing.T) {
	c := Config{FetchTimeout: 2 * time.Second, FetchRetries: 2}
	if got := c.FetchBudget(); got != 7*time.Second {
		t.Fatalf("budget=%v", got)
	}
}
