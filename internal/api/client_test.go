package api

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/rs/zerolog"
)

type capturedRequest struct {
	method string
	url    string
	body   string
	header fhttp.Header
}

type fakeDoer struct {
	requests []capturedRequest
	status   int
	response string
	err      error
}

func (f *fakeDoer) Do(req *fhttp.Request) (*fhttp.Response, error) {
	body := ""
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		body = string(data)
	}
	f.requests = append(f.requests, capturedRequest{
		method: req.Method,
		url:    req.URL.String(),
		body:   body,
		header: req.Header.Clone(),
	})
	if f.err != nil {
		return nil, f.err
	}
	status := f.status
	if status == 0 {
		status = 200
	}
	return &fhttp.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(f.response)),
		Header:     fhttp.Header{},
	}, nil
}

func (f *fakeDoer) last(t *testing.T) capturedRequest {
	t.Helper()
	if len(f.requests) == 0 {
		t.Fatalf("no requests captured")
	}
	return f.requests[len(f.requests)-1]
}

func testClient(doer *fakeDoer, token string) *Client {
	return NewWithDoer(doer, "http://api.test", StaticToken(token), zerolog.Nop())
}

func TestBearerTokenAttached(t *testing.T) {
	doer := &fakeDoer{response: `[]`}
	client := testClient(doer, "tok-123")

	if _, err := client.JobsByHR(context.Background(), 7); err != nil {
		t.Fatalf("jobs by hr: %v", err)
	}

	req := doer.last(t)
	if got := req.header.Get("Authorization"); got != "Bearer tok-123" {
		t.Fatalf("Authorization = %q, want %q", got, "Bearer tok-123")
	}
	if req.header.Get("X-Request-Id") == "" {
		t.Fatalf("expected X-Request-Id header")
	}
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	doer := &fakeDoer{response: `{"token":"abc"}`}
	client := testClient(doer, "")

	if _, err := client.GenerateToken(context.Background(), "sarah", "pw"); err != nil {
		t.Fatalf("generate token: %v", err)
	}
	req := doer.last(t)
	if got := req.header.Get("Authorization"); got != "" {
		t.Fatalf("expected no Authorization header, got %q", got)
	}
	if !strings.Contains(req.body, `"username":"sarah"`) {
		t.Fatalf("unexpected body: %s", req.body)
	}
}

func TestStatusErrorCarriesServerMessage(t *testing.T) {
	doer := &fakeDoer{status: 403, response: `{"message":"token expired"}`}
	client := testClient(doer, "tok")

	_, err := client.JobsByHR(context.Background(), 7)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Status != 403 || apiErr.Message != "token expired" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestStatusErrorFallsBackToRawBody(t *testing.T) {
	doer := &fakeDoer{status: 500, response: "boom"}
	client := testClient(doer, "tok")

	_, err := client.ApplicantCount(context.Background(), 101)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Message != "boom" {
		t.Fatalf("Message = %q, want %q", apiErr.Message, "boom")
	}
}

func TestTransportErrorPropagates(t *testing.T) {
	doer := &fakeDoer{err: errors.New("connection refused")}
	client := testClient(doer, "tok")

	if _, err := client.JobsByHR(context.Background(), 7); err == nil {
		t.Fatalf("expected transport error")
	}
}

func TestGenerateTokenRejectsEmptyToken(t *testing.T) {
	doer := &fakeDoer{response: `{}`}
	client := testClient(doer, "")

	if _, err := client.GenerateToken(context.Background(), "sarah", "pw"); err == nil {
		t.Fatalf("expected error for empty token")
	}
}

func TestFetchProfileRoleEndpoints(t *testing.T) {
	cases := []struct {
		role string
		path string
	}{
		{"HR", "http://api.test/api/hr/username"},
		{"EXECUTIVE", "http://api.test/api/executive/username"},
	}
	for _, tc := range cases {
		doer := &fakeDoer{response: `{"id":7,"name":"Sarah"}`}
		client := testClient(doer, "tok")

		profile, err := client.FetchProfile(context.Background(), tc.role, "sarah")
		if err != nil {
			t.Fatalf("fetch profile (%s): %v", tc.role, err)
		}
		if got := doer.last(t).url; got != tc.path {
			t.Fatalf("url = %q, want %q", got, tc.path)
		}
		if profile.Username != "sarah" {
			t.Fatalf("expected pinned username, got %q", profile.Username)
		}
		if profile.Role != tc.role {
			t.Fatalf("expected pinned role, got %q", profile.Role)
		}
	}
}

func TestFetchProfileUnknownRole(t *testing.T) {
	client := testClient(&fakeDoer{}, "tok")
	if _, err := client.FetchProfile(context.Background(), "ADMIN", "x"); err == nil {
		t.Fatalf("expected unknown-role error")
	}
}
