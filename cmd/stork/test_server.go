package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jameslittle/stork/internal/cache"
	"github.com/jameslittle/stork/internal/codec"
	"github.com/jameslittle/stork/internal/domain"
	"github.com/jameslittle/stork/internal/query"
)

const testServerAddr = "127.0.0.1:1612"

const testPageHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Stork test server</title></head>
<body>
<input id="q" type="text" placeholder="Search..." autofocus>
<pre id="results"></pre>
<script>
const input = document.getElementById('q');
const results = document.getElementById('results');
input.addEventListener('input', async () => {
  const q = input.value;
  if (!q) { results.textContent = ''; return; }
  const res = await fetch('/search?q=' + encodeURIComponent(q));
  results.textContent = await res.text();
});
</script>
</body>
</html>`

// serveTestPage serves idx on testServerAddr until the process is
// interrupted, mirroring --test's "build once, search repeatedly in the
// browser" workflow.
func serveTestPage(idx *domain.Index) int {
	data, err := codec.Encode(idx)
	if err != nil {
		fmt.Printf("Could not serialize index for test server: %s\n", err)
		return exitFailure
	}
	if _, err := cache.ParseAndCache(data, cacheName); err != nil {
		fmt.Printf("Could not cache index for test server: %s\n", err)
		return exitFailure
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, testPageHTML)
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		out, err := query.SearchFromCache(cacheName, r.URL.Query().Get("q"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	})

	logger.Info("test server listening", "addr", "http://"+testServerAddr)
	if err := http.ListenAndServe(testServerAddr, mux); err != nil {
		fmt.Printf("Test server error: %s\n", err)
		return exitFailure
	}
	return exitSuccess
}
