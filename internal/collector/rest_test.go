package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRESTFetcher_SortsAndKeepsNulls(t *testing.T) {
	var auth, symbol string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		symbol = r.URL.Query().Get("symbol")
		_, _ = w.Write([]byte(`[{"timestamp":300,"close":12.5},{"timestamp":100,"close":10},{"timestamp":200,"close":null}]`))
	}))
	defer srv.Close()

	f := NewRESTFetcher(srv.URL, "secret", "")
	samples, err := f.FetchDailyCloses(context.Background(), "SPY", time.Unix(0, 0), time.Unix(400, 0))
	require.NoError(t, err)
	require.Len(t, samples, 3)

	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, "SPY", symbol)
	assert.Equal(t, int64(100), samples[0].Time.Unix())
	assert.Equal(t, 10.0, samples[0].Close)
	assert.False(t, samples[1].Valid)
	assert.Equal(t, 12.5, samples[2].Close)
}

func TestRESTFetcher_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewRESTFetcher(srv.URL, "", "")
	_, err := f.FetchDailyCloses(context.Background(), "NOPE", time.Unix(0, 0), time.Unix(400, 0))
	assert.ErrorIs(t, err, ErrNoData)
}
