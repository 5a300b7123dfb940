package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frogworks/frogworks/internal/logging"
)

func newTestLogger() *logging.Logger {
	logger := logging.NewDefaultCLILogger()
	logger.SetOutput(io.Discard)
	return logger
}

func TestLoginSendsFormEncodedCredentials(t *testing.T) {
	var gotForm map[string]string
	var gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/login" {
			t.Errorf("path = %q, want /api/login", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		gotContentType = r.Header.Get("Content-Type")
		r.ParseForm()
		gotForm = map[string]string{
			"username": r.PostFormValue("username"),
			"password": r.PostFormValue("password"),
			"platform": r.PostFormValue("platform"),
		}
		json.NewEncoder(w).Encode(map[string]string{"session_id": "abc123"})
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestLogger())
	sessionID, err := client.Login(context.Background(), "frogward", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if sessionID != "abc123" {
		t.Errorf("session id = %q, want %q", sessionID, "abc123")
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q, want form-urlencoded", gotContentType)
	}
	if gotForm["username"] != "frogward" || gotForm["password"] != "hunter2" {
		t.Errorf("credentials = %v", gotForm)
	}
	if gotForm["platform"] == "" {
		t.Error("login did not send the device platform")
	}
}

func TestSessionIDRidesAlongOnEveryCall(t *testing.T) {
	var got string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		got = r.FormValue("session_id")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestLogger()).WithSession("sess-42")

	if _, err := client.GetFriends(context.Background()); err != nil {
		t.Fatalf("GetFriends: %v", err)
	}
	if got != "sess-42" {
		t.Errorf("session_id = %q, want %q", got, "sess-42")
	}
}

func TestStatusErrorTaxonomy(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusUnauthorized, want: ErrUnauthorized},
		{status: http.StatusForbidden, want: ErrForbidden},
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusInternalServerError, want: ErrServer},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"details": "it went wrong"}`))
			}))
			defer server.Close()

			client := NewClient(server.URL, newTestLogger())
			// 4xx responses are not retried, so this fails exactly once.
			_, err := client.GetApplication(context.Background(), 1)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, does not match sentinel %v", err, tt.want)
			}

			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("err %v is not a *StatusError", err)
			}
			if statusErr.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", statusErr.StatusCode, tt.status)
			}
			if statusErr.Message != "it went wrong" {
				t.Errorf("message = %q, want server detail", statusErr.Message)
			}
		})
	}
}

func TestGetEncodesFormInQuery(t *testing.T) {
	var gotQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("application_id")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestLogger())
	if _, err := client.GetIAPs(context.Background(), 77); err != nil {
		t.Fatalf("GetIAPs: %v", err)
	}
	if gotQuery != "77" {
		t.Errorf("application_id query = %q, want %q", gotQuery, "77")
	}
}

func TestExtractErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "details field", body: `{"details": "no such user"}`, want: "no such user"},
		{name: "plain text", body: "gateway exploded", want: "gateway exploded"},
		{name: "empty body", body: "", want: ""},
		{name: "json without details", body: `{"error": "x"}`, want: `{"error": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractErrorMessage([]byte(tt.body)); got != tt.want {
				t.Errorf("extractErrorMessage = %q, want %q", got, tt.want)
			}
		})
	}
}
