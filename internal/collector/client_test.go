package collector

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wandertools/wandertools/internal/feedback"
)

func TestSendWireContract(t *testing.T) {
	var (
		gotMethod string
		gotType   string
		gotBody   map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		if err := json.Unmarshal(raw, &gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true,"next":"/thanks"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	err = c.Send(context.Background(), feedback.Payload{Feedback: "Great app!", App: "WanderTools"})
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "application/json", gotType)
	require.Equal(t, map[string]any{"feedback": "Great app!", "app": "WanderTools"}, gotBody)
}

func TestSendClassifiesStatus(t *testing.T) {
	cases := []struct {
		code    int
		wantErr bool
	}{
		{http.StatusOK, false},
		{http.StatusCreated, false},
		{http.StatusNoContent, false},
		{http.StatusFound, true},
		{http.StatusBadRequest, true},
		{http.StatusUnprocessableEntity, true},
		{http.StatusInternalServerError, true},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.code)
		}))
		c, err := New(srv.URL, WithHTTPClient(&http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
		}))
		require.NoError(t, err)

		err = c.Send(context.Background(), feedback.Payload{Feedback: "x", App: "y"})
		srv.Close()
		if !tc.wantErr {
			require.NoError(t, err, "status %d", tc.code)
			continue
		}
		var rejected *RejectedError
		require.True(t, errors.As(err, &rejected), "status %d: %v", tc.code, err)
		require.Equal(t, tc.code, rejected.StatusCode)
	}
}

func TestSendTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	addr := srv.URL
	srv.Close()

	c, err := New(addr, WithTimeout(time.Second))
	require.NoError(t, err)
	err = c.Send(context.Background(), feedback.Payload{Feedback: "x", App: "y"})
	require.Error(t, err)
	var rejected *RejectedError
	require.False(t, errors.As(err, &rejected))
}

func TestNewValidatesEndpoint(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
	_, err = New("ftp://example.com/f")
	require.Error(t, err)
	_, err = New("://bad")
	require.Error(t, err)

	c, err := New(DefaultEndpoint, WithTimeout(5*time.Second))
	require.NoError(t, err)
	require.Equal(t, 5*time.Second, c.httpClient.Timeout)
}

func TestWithTimeoutLeavesCallerClientAlone(t *testing.T) {
	shared := &http.Client{Timeout: time.Second}

	c, err := New(DefaultEndpoint, WithHTTPClient(shared), WithTimeout(5*time.Second))
	require.NoError(t, err)
	require.Equal(t, time.Second, shared.Timeout)
	require.Equal(t, 5*time.Second, c.httpClient.Timeout)
	require.NotSame(t, shared, c.httpClient)

	c, err = New(DefaultEndpoint, WithTimeout(5*time.Second), WithHTTPClient(shared))
	require.NoError(t, err)
	require.Equal(t, time.Second, shared.Timeout)
	require.Equal(t, 5*time.Second, c.httpClient.Timeout)

	c, err = New(DefaultEndpoint, WithHTTPClient(shared))
	require.NoError(t, err)
	require.Same(t, shared, c.httpClient)
}

func TestControllerOverCollector(t *testing.T) {
	status := http.StatusInternalServerError
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(status)
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)
	ctrl, err := feedback.NewController("WanderTools", c)
	require.NoError(t, err)
	ctrl.SetText("Great app!")

	st, err := ctrl.SubmitAndWait(context.Background())
	require.NoError(t, err)
	require.Equal(t, feedback.Error, st)
	require.Equal(t, "Great app!", ctrl.Text())

	status = http.StatusOK
	st, err = ctrl.SubmitAndWait(context.Background())
	require.NoError(t, err)
	require.Equal(t, feedback.Sent, st)
	require.Empty(t, ctrl.Text())
	require.Equal(t, 2, calls)
}
