package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"go.dedis.ch/sssrecover/recovery"
	"go.dedis.ch/sssrecover/storage"
)

const sampleJSON = `{
	"keys": {"n": 4, "k": 3},
	"1": {"base": "10", "value": "4"},
	"2": {"base": "2", "value": "111"},
	"3": {"base": "10", "value": "12"},
	"6": {"base": "4", "value": "213"}
}`

func newServer(t *testing.T) (http.Handler, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	s, err := New(recovery.DefaultConfiguration(), store)
	require.NoError(t, err)
	return s.Handler(), store
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func Test_solve(t *testing.T) {
	h, store := newServer(t)

	rec := do(h, http.MethodPost, "/solve", sampleJSON)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	out := decode(t, rec)
	require.Equal(t, "3", out["secret"])
	require.Equal(t, "lagrange", out["method"])
	require.Equal(t, float64(2), out["degree"])
	require.Equal(t, float64(3), out["pointsUsed"])
	require.Equal(t, float64(4), out["totalPoints"])
	require.Equal(t, 1, store.Len())

	// same input is answered from the store with the same request id
	again := decode(t, do(h, http.MethodPost, "/solve", sampleJSON))
	require.Equal(t, out["requestId"], again["requestId"])
	require.Equal(t, 1, store.Len())

	rec = do(h, http.MethodPost, "/solve?method=vandermonde", sampleJSON)
	require.Equal(t, http.StatusOK, rec.Code)
	out = decode(t, rec)
	require.Equal(t, "3", out["secret"])
	require.Equal(t, "vandermonde", out["method"])
	require.Equal(t, 2, store.Len())
}

func Test_solve_errors(t *testing.T) {
	h, store := newServer(t)

	rec := do(h, http.MethodGet, "/solve", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = do(h, http.MethodPost, "/solve?method=newton", sampleJSON)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h, http.MethodPost, "/solve", "{")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotEmpty(t, decode(t, rec)["error"])

	rec = do(h, http.MethodPost, "/solve", `{"keys": {"n": 2, "k": 3}, "1": {"base": "10", "value": "4"}}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, decode(t, rec)["error"], "insufficient points: need 3, found 1")

	require.Equal(t, 0, store.Len())
}

func Test_health_and_unknown_routes(t *testing.T) {
	h, _ := newServer(t)

	rec := do(h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())

	rec = do(h, http.MethodPost, "/healthz", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = do(h, http.MethodGet, "/peer", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_New_invalid_configuration(t *testing.T) {
	conf := recovery.DefaultConfiguration()
	conf.Method = "newton"
	_, err := New(conf, storage.NewMemoryStore())
	require.Error(t, err)
}

func Test_solve_untrusted_threshold(t *testing.T) {
	h, store := newServer(t)

	rec := do(h, http.MethodPost, "/solve", `{"keys":{"n":3,"k":68719476736},"1":{"base":"10","value":"5"}}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, decode(t, rec)["error"], "insufficient points: need 68719476736, found 1")

	start := time.Now()
	rec = do(h, http.MethodPost, "/solve", `{"keys":{"n":9223372036854775807,"k":2},"1":{"base":"10","value":"5"}}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, decode(t, rec)["error"], "insufficient points: need 2, found 1")
	require.Less(t, time.Since(start), time.Second)

	require.Equal(t, 0, store.Len())
}

func Test_solve_body_too_large(t *testing.T) {
	h, _ := newServer(t)

	body := `{"keys": {"n": 1, "k": 1}, "pad": "` + strings.Repeat("x", maxBodySize) + `"}`
	rec := do(h, http.MethodPost, "/solve", body)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.Contains(t, decode(t, rec)["error"], "body exceeds")
}

// brokenWriter accepts headers but fails every body write.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, xerrors.New("connection reset")
}

func Test_write_errors_are_logged(t *testing.T) {
	logs := new(bytes.Buffer)
	conf := recovery.DefaultConfiguration()
	conf.Logger = zerolog.New(logs).Level(zerolog.DebugLevel)

	s, err := New(conf, storage.NewMemoryStore())
	require.NoError(t, err)
	h := s.Handler()

	w := brokenWriter{httptest.NewRecorder()}
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader(sampleJSON)))
	require.Contains(t, logs.String(), "failed to write response: connection reset")

	logs.Reset()
	w = brokenWriter{httptest.NewRecorder()}
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Contains(t, logs.String(), "failed to write health response: connection reset")
}
