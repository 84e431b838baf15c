package main

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForServer(t *testing.T, url string) {
	t.Helper()
	client := &http.Client{Timeout: 100 * time.Millisecond}
	require.Eventually(t, func() bool {
		resp, err := client.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 50*time.Millisecond, "server did not start")
}

func TestSetupLogs(t *testing.T) {
	t.Run("default mode", func(t *testing.T) {
		w := setupLogs(false)
		assert.NotNil(t, w)
	})

	t.Run("debug mode", func(t *testing.T) {
		w := setupLogs(true)
		assert.NotNil(t, w)
	})
}

func TestSignals(t *testing.T) {
	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	// verify signals() doesn't panic
	require.NotPanics(t, func() {
		signals(cancel)
	})
}

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"empty", "", "", false},
		{"valid", "/folio", "/folio", false},
		{"valid nested", "/app/folio", "/app/folio", false},
		{"strips trailing slash", "/folio/", "/folio", false},
		{"root only", "/", "", false},
		{"missing leading slash", "folio", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
