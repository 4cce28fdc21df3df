//go:build integration

package integration

import (
	"net/http"
	"testing"
)

func TestIntegration_ValidationErrors(t *testing.T) {
	waitReady(t)
	u := baseURL()

	cases := []struct {
		name, method, path string
		want               int
	}{
		{"unknown_sort", http.MethodGet, "/inventory?sort=weight", http.StatusBadRequest},
		{"unknown_direction", http.MethodGet, "/inventory?direction=up", http.StatusBadRequest},
		{"unknown_toggle", http.MethodGet, "/inventory?toggle=colour", http.StatusBadRequest},
		{"post_inventory", http.MethodPost, "/inventory", http.StatusMethodNotAllowed},
		{"get_reload", http.MethodGet, "/inventory/reload", http.StatusMethodNotAllowed},
		{"unknown_product", http.MethodGet, "/products/does-not-exist", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := http.NewRequest(tc.method, u+tc.path, nil)
			resp, err := http.DefaultClient.Do(r)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tc.want {
				t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, resp.StatusCode)
			}
		})
	}
}
