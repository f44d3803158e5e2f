package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodiesEqualIgnoresKeysAndNumberForm(t *testing.T) {
	a := []byte(`{"status":"ok","timestamp":"2024-01-01T00:00:00.000Z","data":[{"count":3}]}`)
	b := []byte(`{"timestamp":"2024-06-01T10:00:00Z","status":"ok","data":[{"count":3.0}]}`)

	assert.True(t, bodiesEqual(a, b, []string{"timestamp"}))
	assert.False(t, bodiesEqual(a, b, nil))
}

func TestBodiesEqualNonJSON(t *testing.T) {
	assert.True(t, bodiesEqual([]byte("id,StudyHours\n"), []byte("id,StudyHours\n\n"), nil))
	assert.False(t, bodiesEqual([]byte(`{"a":1}`), []byte("a=1"), nil))
}

func TestCompareTarget(t *testing.T) {
	legacy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"page":1,"pageSize":50,"total":2,"totalPages":1,"data":[]}`))
	}))
	defer legacy.Close()

	goAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "2" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"success":false,"error":"Invalid page or pageSize parameters"}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":[],"totalPages":1,"total":2,"pageSize":50,"page":1,"success":true}`))
	}))
	defer goAPI.Close()

	client := goAPI.Client()

	comp := compareTarget(client, goAPI.URL, legacy.URL, target{Path: "api/rows", Critical: true}, nil)
	require.NoError(t, comp.Error)
	assert.True(t, comp.StatusMatch)
	assert.True(t, comp.BodyMatch)

	comp = compareTarget(client, goAPI.URL, legacy.URL, target{Method: "get", Path: "/api/rows?page=2"}, nil)
	require.NoError(t, comp.Error)
	assert.False(t, comp.StatusMatch)
	assert.Equal(t, http.StatusBadRequest, comp.GoStatus)
	assert.False(t, comp.BodyMatch)

	var buf bytes.Buffer
	printReport(&buf, []comparison{comp})
	assert.Contains(t, buf.String(), "[DIFF] get /api/rows?page=2")
}

func TestSplitKeys(t *testing.T) {
	assert.Equal(t, []string{"timestamp", "requestId"}, splitKeys(" timestamp, ,requestId "))
	assert.Nil(t, splitKeys(""))
}
