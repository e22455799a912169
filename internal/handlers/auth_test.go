package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/service"
)

func postJSON(r http.Handler, path, body string, header http.Header) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}
	r.ServeHTTP(w, req)
	return w
}

func TestSignUpHandler(t *testing.T) {
	t.Run("success returns 201 with id", func(t *testing.T) {
		auth := &mockAuth{signUpID: 42}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/sign-up", `{"name":"Ana","email":"a@a.com","password":"x"}`, nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		var m map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &m)
		if int(m["id"].(float64)) != 42 {
			t.Fatalf("expected id=42, got %v", m["id"])
		}
		if auth.lastSignUpEmail != "a@a.com" {
			t.Fatalf("service got email %q", auth.lastSignUpEmail)
		}
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		auth := &mockAuth{signUpErr: service.ErrEmailTaken}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/sign-up", `{"name":"Ana","email":"a@a.com","password":"x"}`, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid bodies return 400", func(t *testing.T) {
		auth := &mockAuth{}
		r := newTestRouter(&service.Service{Authorization: auth})

		for _, body := range []string{
			`{}`,
			`{"name":"Ana","password":"x"}`,
			`{"name":"Ana","email":"not-an-email","password":"x"}`,
			`{"name":"Ana","email":"a@a.com"}`,
			`{"name":1,"email":"a@a.com","password":"x"}`,
		} {
			w := postJSON(r, "/sign-up", body, nil)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("body %s: status=%d, want 400", body, w.Code)
			}
		}
	})
}

func TestSignInHandler(t *testing.T) {
	t.Run("success returns profile and token", func(t *testing.T) {
		auth := &mockAuth{
			signInUser:  &models.User{ID: 7, Name: "Ana", Email: "a@a.com", PasswordHash: "secret-hash"},
			signInToken: "tok123",
		}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/sign-in", `{"email":"a@a.com","password":"x"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		var m map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if m["token"] != "tok123" || m["email"] != "a@a.com" || m["name"] != "Ana" {
			t.Fatalf("unexpected response: %v", m)
		}
		if int(m["id"].(float64)) != 7 {
			t.Fatalf("expected id=7, got %v", m["id"])
		}
		// hash must never leak
		if _, ok := m["password_hash"]; ok {
			t.Fatalf("password hash leaked in response: %s", w.Body.String())
		}
	})

	t.Run("bad credentials return 400", func(t *testing.T) {
		auth := &mockAuth{signInErr: service.ErrInvalidCredentials}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/sign-in", `{"email":"a@a.com","password":"wrong"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		auth := &mockAuth{}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/sign-in", `{"email":1}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
	})
}

func TestSignOutHandler(t *testing.T) {
	t.Run("revokes the presented token", func(t *testing.T) {
		auth := &mockAuth{authUserID: 7}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/sign-out", "", authHeader("tok123"))
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if auth.lastSignOutToken != "tok123" {
			t.Fatalf("SignOut got token %q, want tok123", auth.lastSignOutToken)
		}
	})

	t.Run("missing token returns 400", func(t *testing.T) {
		auth := &mockAuth{}
		r := newTestRouter(&service.Service{Authorization: auth})

		w := postJSON(r, "/sign-out", "", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
	})
}
