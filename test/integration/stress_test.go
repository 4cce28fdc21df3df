//go:build integration

package integration

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"
)

// Concurrent readers and reloads must all succeed.
func TestIntegration_ConcurrentReadsAndReloads(t *testing.T) {
	waitReady(t)
	u := baseURL()
	concurrency := 50
	perGoroutine := 20
	client := &http.Client{Timeout: 5 * time.Second}

	var wg sync.WaitGroup
	wg.Add(concurrency)
	errCh := make(chan error, concurrency*perGoroutine)
	for g := 0; g < concurrency; g++ {
		go func(gid int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				method, path := http.MethodGet, "/inventory?toggle=product_price"
				if gid%10 == 0 && i%5 == 0 {
					method, path = http.MethodPost, "/inventory/reload"
				}
				r, _ := http.NewRequest(method, u+path, nil)
				resp, err := client.Do(r)
				if err != nil {
					errCh <- err
					return
				}
				if resp.StatusCode != http.StatusOK {
					errCh <- fmt.Errorf("%s %s: expected 200, got %d", method, path, resp.StatusCode)
				}
				_ = resp.Body.Close()
			}
		}(g)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatal(err)
		}
	}
}
