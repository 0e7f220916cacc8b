package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
)

// newClient returns a client with its own cookie jar, i.e. one browser.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func navigate(t *testing.T, ts *httptest.Server, client *http.Client, gameID string) string {
	t.Helper()
	resp := doRequest(t, ts, client, http.MethodPost, "/api/lobby/navigate", map[string]string{"game_id": gameID})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	sessionID, ok := body["session_id"].(string)
	if !ok || sessionID == "" {
		t.Fatalf("expected session_id, got %#v", body)
	}
	return sessionID
}

func fetchSnapshot(t *testing.T, ts *httptest.Server, client *http.Client, sessionID string) map[string]any {
	t.Helper()
	resp := doRequest(t, ts, client, http.MethodGet, "/api/sessions/"+sessionID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	return decodeBody(t, resp)
}

func postAction(t *testing.T, ts *httptest.Server, client *http.Client, sessionID, action string, payload any) map[string]any {
	t.Helper()
	resp := doRequest(t, ts, client, http.MethodPost, "/api/sessions/"+sessionID+"/"+action, payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("%s: expected status %d, got %d", action, http.StatusOK, resp.StatusCode)
	}
	return decodeBody(t, resp)
}

func doRequest(t *testing.T, ts *httptest.Server, client *http.Client, method, path string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

// targetID reads the id of the current round's target from a snapshot.
func targetID(t *testing.T, snap map[string]any) string {
	t.Helper()
	target, ok := snap["target"].(map[string]any)
	if !ok {
		t.Fatalf("expected target in snapshot, got %#v", snap["target"])
	}
	id, _ := target["id"].(string)
	return id
}

// wrongID returns an offered option that is not the target.
func wrongID(t *testing.T, snap map[string]any) string {
	t.Helper()
	want := targetID(t, snap)
	options, _ := snap["options"].([]any)
	for _, raw := range options {
		option, _ := raw.(map[string]any)
		if id, _ := option["id"].(string); id != want {
			return id
		}
	}
	t.Fatalf("no wrong option in %#v", options)
	return ""
}

func number(value any) int {
	f, _ := value.(float64)
	return int(f)
}
