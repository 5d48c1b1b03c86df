package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "base URL of a running relay")
	flag.Parse()

	fmt.Println("🔍 Starting Relay Health Check...")
	fmt.Println("----------------------------------------")

	client := &http.Client{Timeout: 5 * time.Second}

	checkEndpoint(client, "Liveness", *baseURL+"/health", `"status":"ok"`)
	checkEndpoint(client, "Metrics", *baseURL+"/metrics", "relay_events_received_total")
	checkChallenge(client, *baseURL)

	fmt.Println("----------------------------------------")
	fmt.Println("✅ Health Check Completed.")
}

func checkEndpoint(client *http.Client, name, url, expect string) {
	start := time.Now()
	resp, err := client.Get(url)
	duration := time.Since(start)

	if err != nil {
		fmt.Printf("❌ FAIL: %-12s - Error: %v\n", name, err)
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		fmt.Printf("❌ FAIL: %-12s - HTTP %d\n", name, resp.StatusCode)
	} else if !strings.Contains(string(body), expect) {
		fmt.Printf("⚠️ WARN: %-12s - OK (HTTP 200) but missing %q\n", name, expect)
	} else {
		fmt.Printf("✅ PASS: %-12s - OK (took %v)\n", name, duration)
	}
}

// checkChallenge exercises the verification handshake end to end: the
// relay must echo the challenge back without dispatching anything.
func checkChallenge(client *http.Client, baseURL string) {
	start := time.Now()
	payload := `{"type":"url_verification","challenge":"healthcheck"}`
	resp, err := client.Post(baseURL+"/webhook/automation", "application/json", strings.NewReader(payload))
	duration := time.Since(start)

	if err != nil {
		fmt.Printf("❌ FAIL: %-12s - Error: %v\n", "Handshake", err)
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == 200 && strings.Contains(string(body), "healthcheck") {
		fmt.Printf("✅ PASS: %-12s - Challenge echoed (took %v)\n", "Handshake", duration)
	} else {
		fmt.Printf("❌ FAIL: %-12s - HTTP %d, body: %s\n", "Handshake", resp.StatusCode, string(body))
	}
}
