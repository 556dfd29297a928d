// Command itunes serves a canned catalog search response for local development.
package main

import (
	_ "embed"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
)

//go:embed data.json
var jsonData []byte

type catalog struct {
	ResultCount int               `json:"resultCount"`
	Results     []json.RawMessage `json:"results"`
}

type item struct {
	TrackName string `json:"trackName"`
}

func main() {
	var data catalog
	if err := json.Unmarshal(jsonData, &data); err != nil {
		log.Fatalf("[iTunes mock] invalid data.json: %v", err)
	}

	http.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		// Simulate network latency (50-200ms)
		time.Sleep(time.Duration(50+time.Now().UnixNano()%150) * time.Millisecond)

		q := r.URL.Query()
		results := filter(data.Results, q.Get("term"), q.Get("limit"))

		body, err := json.Marshal(catalog{ResultCount: len(results), Results: results})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			log.Printf("[iTunes mock] write error: %v", err)
		}

		log.Printf("[iTunes mock] %s %s?%s - %d results", r.Method, r.URL.Path, r.URL.RawQuery, len(results))
	})

	log.Println("iTunes mock running on :8081")
	server := &http.Server{
		Addr:         ":8081",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}

// filter keeps results whose trackName contains any word of term, up to limit.
func filter(all []json.RawMessage, term, limit string) []json.RawMessage {
	words := strings.Fields(strings.ToLower(term))

	n, err := strconv.Atoi(limit)
	if err != nil || n <= 0 {
		n = len(all)
	}

	out := make([]json.RawMessage, 0, len(all))
	for _, raw := range all {
		if len(out) == n {
			break
		}

		var it item
		_ = json.Unmarshal(raw, &it)
		name := strings.ToLower(it.TrackName)
		for _, w := range words {
			if strings.Contains(name, w) {
				out = append(out, raw)
				break
			}
		}
	}

	return out
}
