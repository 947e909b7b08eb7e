// storefront-sim drives the public rental API end to end: blocked dates,
// two picker clicks, a quote and optionally a booking. Useful for smoke
// testing a local or staging stack through the gateway.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

func main() {
	var (
		baseURL   = flag.String("base-url", getenv("BASE_URL", "http://localhost:8080"), "gateway base url")
		productID = flag.String("product-id", getenv("PRODUCT_ID", ""), "product to exercise")
		startDate = flag.String("start-date", "", "rental start date (YYYY-MM-DD, default tomorrow)")
		days      = flag.Int("days", 3, "rental length in days")
		book      = flag.Bool("book", false, "create a real rental order at the end")
	)
	flag.Parse()

	if strings.TrimSpace(*productID) == "" {
		fatal("PRODUCT_ID is required")
	}

	start := time.Now().UTC().AddDate(0, 0, 1)
	if *startDate != "" {
		parsed, err := time.Parse("2006-01-02", *startDate)
		if err != nil {
			fatal("invalid -start-date: " + err.Error())
		}
		start = parsed
	}
	end := start.AddDate(0, 0, *days-1)
	sessionID := uuid.NewString()
	base := strings.TrimRight(*baseURL, "/")

	fmt.Printf("session %s, product %s, %s..%s\n", sessionID, *productID,
		start.Format("2006-01-02"), end.Format("2006-01-02"))

	get(base + "/api/v1/public/blocked-dates?product_id=" + *productID)

	post(base+"/api/v1/public/selection", map[string]any{
		"session_id": sessionID,
		"product_id": *productID,
		"date":       start.Format("2006-01-02"),
	})
	post(base+"/api/v1/public/selection", map[string]any{
		"session_id": sessionID,
		"product_id": *productID,
		"date":       end.Format("2006-01-02"),
	})

	post(base+"/api/v1/public/quote", map[string]any{
		"product_id": *productID,
		"start_date": start.Format("2006-01-02"),
		"end_date":   end.Format("2006-01-02"),
	})

	if *book {
		post(base+"/api/v1/public/rentals", map[string]any{
			"product_id":    *productID,
			"customer_name": "Smoke Test",
			"start_date":    start.Format("2006-01-02"),
			"end_date":      end.Format("2006-01-02"),
		})
	}
}

func get(url string) {
	resp, err := http.Get(url)
	if err != nil {
		fatal(err.Error())
	}
	dump(url, resp)
}

func post(url string, body map[string]any) {
	payload, err := json.Marshal(body)
	if err != nil {
		fatal(err.Error())
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		fatal(err.Error())
	}
	dump(url, resp)
}

func dump(url string, resp *http.Response) {
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("%s -> %d\n%s\n", url, resp.StatusCode, strings.TrimSpace(string(body)))
	if resp.StatusCode >= 400 {
		os.Exit(1)
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, "error: "+msg)
	os.Exit(1)
}
