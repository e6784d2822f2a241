package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/rentfold/rentfold/internal/domain"
)

type widget struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type widgetRequest struct {
	Name string `json:"name"`
}

// routeID mounts a handler under /{id} so idParam can resolve.
func routeID(method string, h http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Method(method, "/{id}", h)
	return r
}

func TestHandleList(t *testing.T) {
	h := handleList(func(context.Context) ([]widget, error) {
		return []widget{{ID: 1, Name: "a"}}, nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got []widget
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Name != "a" {
		t.Errorf("body = %+v", got)
	}
}

func TestHandleList_NilBecomesEmptyArray(t *testing.T) {
	h := handleList(func(context.Context) ([]widget, error) { return nil, nil })

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %q, want []", body)
	}
}

func TestHandleGet_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"ok", nil, http.StatusOK},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"forbidden", fmt.Errorf("resolve: %w", domain.ErrForbidden), http.StatusForbidden},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"unknown", errors.New("pipe burst"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := routeID(http.MethodGet, handleGet(func(context.Context, int64) (*widget, error) {
				if tc.err != nil {
					return nil, tc.err
				}
				return &widget{ID: 7}, nil
			}, "widget not found"))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/7", nil))
			if rec.Code != tc.status {
				t.Errorf("status = %d, want %d", rec.Code, tc.status)
			}
		})
	}
}

func TestHandleGet_RejectsBadID(t *testing.T) {
	h := routeID(http.MethodGet, handleGet(func(context.Context, int64) (*widget, error) {
		t.Fatal("handler reached with a bad id")
		return nil, nil
	}, "not found"))

	for _, id := range []string{"abc", "0", "-4"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+id, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("id %q status = %d, want 400", id, rec.Code)
		}
	}
}

func TestHandleCreate(t *testing.T) {
	h := handleCreate(maxRequestBodySize, func(_ context.Context, req widgetRequest) (*widget, error) {
		return &widget{ID: 1, Name: req.Name}, nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{not json`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d, want 400", rec.Code)
	}
}

func TestHandleCreate_BodyLimit(t *testing.T) {
	h := handleCreate(16, func(_ context.Context, req widgetRequest) (*widget, error) {
		return &widget{Name: req.Name}, nil
	})

	big := `{"name":"` + strings.Repeat("x", 64) + `"}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big)))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestHandleUpdate(t *testing.T) {
	h := routeID(http.MethodPut, handleUpdate(maxRequestBodySize,
		func(_ context.Context, id int64, req widgetRequest) (*widget, error) {
			return &widget{ID: id, Name: req.Name}, nil
		}, "widget not found"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/5", strings.NewReader(`{"name":"b"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var got widget
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != 5 || got.Name != "b" {
		t.Errorf("body = %+v", got)
	}
}

func TestHandleDelete(t *testing.T) {
	var deleted int64
	h := routeID(http.MethodDelete, handleDelete(func(_ context.Context, id int64) error {
		deleted = id
		return nil
	}, "widget not found"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/9", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if deleted != 9 {
		t.Errorf("deleted id = %d, want 9", deleted)
	}

	h = routeID(http.MethodDelete, handleDelete(func(context.Context, int64) error {
		return domain.ErrForbidden
	}, "widget not found"))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/9", nil))
	if rec.Code != http.StatusForbidden {
		t.Errorf("forbidden delete status = %d, want 403", rec.Code)
	}
}

func TestWriteDomainError_UploadStatuses(t *testing.T) {
	rec := httptest.NewRecorder()
	writeDomainError(rec, fmt.Errorf("too big: %w", domain.ErrPayloadTooLarge), "")
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("payload too large status = %d, want 413", rec.Code)
	}

	rec = httptest.NewRecorder()
	writeDomainError(rec, fmt.Errorf("bad type: %w", domain.ErrUnsupportedMedia), "")
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Errorf("unsupported media status = %d, want 415", rec.Code)
	}
}

func TestValidationMessage_StripsWrapping(t *testing.T) {
	err := fmt.Errorf("validate: %w", fmt.Errorf("rent must be positive: %w", domain.ErrValidation))
	if got := validationMessage(err); got != "rent must be positive" {
		t.Errorf("message = %q", got)
	}
}
