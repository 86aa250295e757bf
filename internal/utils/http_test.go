// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Avdeyev

package utils

import (
	"net/http/httptest"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	n, err := WriteJSON(recorder, map[string]string{"status": "ok"}, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n == 0 {
		t.Error("expected a non-empty body")
	}
	if got := recorder.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", got)
	}
	if recorder.Code != 200 {
		t.Errorf("expected status 200, got %d", recorder.Code)
	}
	if body := recorder.Body.String(); body != `{"status":"ok"}` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestWriteJSON_MarshalError(t *testing.T) {
	recorder := httptest.NewRecorder()

	_, err := WriteJSON(recorder, make(chan int), 200)
	if err == nil {
		t.Fatal("expected an error for unserializable data")
	}
	if recorder.Code != 500 {
		t.Errorf("expected status 500, got %d", recorder.Code)
	}
}
