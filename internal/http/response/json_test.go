package response // import "github.com/Xunop/amana-bookstore/internal/http/response"

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOKResponse(t *testing.T) {
	r, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	OK(w, r, map[string]string{"id": "1"})

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf(`Unexpected status code, got %d instead of %d`, resp.StatusCode, http.StatusOK)
	}

	expectedBody := `{"success":true,"data":{"id":"1"}}`
	if actualBody := w.Body.String(); actualBody != expectedBody {
		t.Fatalf(`Unexpected body, got %s instead of %s`, actualBody, expectedBody)
	}

	if contentType := resp.Header.Get("Content-Type"); contentType != contentTypeHeader {
		t.Fatalf(`Unexpected content type, got %q instead of %q`, contentType, contentTypeHeader)
	}
}

func TestCreatedResponse(t *testing.T) {
	r, err := http.NewRequest("POST", "/", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	Created(w, r, []int{1})

	resp := w.Result()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf(`Unexpected status code, got %d instead of %d`, resp.StatusCode, http.StatusCreated)
	}

	expectedBody := `{"success":true,"data":[1]}`
	if actualBody := w.Body.String(); actualBody != expectedBody {
		t.Fatalf(`Unexpected body, got %s instead of %s`, actualBody, expectedBody)
	}
}

func TestServerErrorResponseHidesCause(t *testing.T) {
	r, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	ServerError(w, r, errors.New("disk on fire"))

	resp := w.Result()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf(`Unexpected status code, got %d instead of %d`, resp.StatusCode, http.StatusInternalServerError)
	}

	expectedBody := `{"success":false,"message":"Internal server error"}`
	if actualBody := w.Body.String(); actualBody != expectedBody {
		t.Fatalf(`Unexpected body, got %s instead of %s`, actualBody, expectedBody)
	}
}

func TestBadRequestResponse(t *testing.T) {
	r, err := http.NewRequest("POST", "/", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	BadRequest(w, r, errors.New("Title and author are required"))

	resp := w.Result()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf(`Unexpected status code, got %d instead of %d`, resp.StatusCode, http.StatusBadRequest)
	}

	expectedBody := `{"success":false,"message":"Title and author are required"}`
	if actualBody := w.Body.String(); actualBody != expectedBody {
		t.Fatalf(`Unexpected body, got %s instead of %s`, actualBody, expectedBody)
	}
}

func TestNotFoundResponse(t *testing.T) {
	r, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	NotFound(w, r, "Book not found")

	resp := w.Result()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf(`Unexpected status code, got %d instead of %d`, resp.StatusCode, http.StatusNotFound)
	}

	expectedBody := `{"success":false,"message":"Book not found"}`
	if actualBody := w.Body.String(); actualBody != expectedBody {
		t.Fatalf(`Unexpected body, got %s instead of %s`, actualBody, expectedBody)
	}
}

func TestTooManyRequestsResponse(t *testing.T) {
	r, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	TooManyRequests(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf(`Unexpected status code, got %d instead of %d`, resp.StatusCode, http.StatusTooManyRequests)
	}
	if resp.Header.Get("Retry-After") != "1" {
		t.Fatalf(`Missing Retry-After header`)
	}
}

func TestTextResponse(t *testing.T) {
	r, err := http.NewRequest("GET", "/healthcheck", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	Text(w, r, "OK")

	if w.Body.String() != "OK" {
		t.Fatalf(`Unexpected body, got %q`, w.Body.String())
	}
}
