package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"go-bibsort/config"
	"go-bibsort/pkg/article"
	"go-bibsort/services/executor"
	"go-bibsort/services/printer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newServer(t *testing.T) *Server {
	t.Helper()
	es := executor.New([]*article.Article{
		article.New("Ana", "Mora", "Zebra crossings", "docs/z.txt", 2020, ""),
		article.New("Luis", "Soto", "apple", "docs/a.txt", 1999, ""),
		article.New("Eva", "Rojas", "Banana split recipes", "docs/b.txt", 1950, ""),
	}, nil)

	s, err := New(&config.ServerConfig{Host: "127.0.0.1", Port: 0}, es)
	require.NoError(t, err)
	return s
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestNewRequiresDependencies(t *testing.T) {
	_, err := New(nil, nil)
	require.Error(t, err)
}

func TestSortHandler(t *testing.T) {
	s := newServer(t)

	w := get(t, s, "/articles?by=title")
	require.Equal(t, http.StatusOK, w.Code)

	page := printer.Page{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Equal(t, 3, page.Total)
	require.Len(t, page.Items, 3)
	require.Equal(t, "Banana split recipes", page.Items[0].Title)
	require.Equal(t, "Zebra crossings", page.Items[1].Title)
	require.Equal(t, "apple", page.Items[2].Title)
}

func TestSortHandlerLimit(t *testing.T) {
	s := newServer(t)

	w := get(t, s, "/articles?by=year&limit=1&stable=true")
	require.Equal(t, http.StatusOK, w.Code)

	page := printer.Page{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Items, 1)
	require.Equal(t, 1950, page.Items[0].Year)
}

func TestSortHandlerMsgpack(t *testing.T) {
	s := newServer(t)

	w := get(t, s, "/articles?by=words&format=msgpack")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/msgpack", w.Header().Get("Content-Type"))

	page := printer.Page{}
	require.NoError(t, msgpack.Unmarshal(w.Body.Bytes(), &page))
	require.Equal(t, []int{1, 2, 3}, []int{page.Items[0].TitleWords, page.Items[1].TitleWords, page.Items[2].TitleWords})
}

func TestSortHandlerErrors(t *testing.T) {
	s := newServer(t)

	for target, code := range map[string]string{
		"/articles":                    "INVALID_PARAM",
		"/articles?by=author":          "INVALID_CRITERION",
		"/articles?by=year&limit=10":   "INVALID_PARAM",
		"/articles?by=year&limit=-1":   "INVALID_PARAM",
		"/articles?by=year&limit=many": "INVALID_PARAM",
		"/articles?by=year&format=xml": "INVALID_PARAM",
	} {
		w := get(t, s, target)
		require.Equal(t, http.StatusBadRequest, w.Code, target)

		body := struct {
			Error errorBody `json:"error"`
		}{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, code, body.Error.Code, target)
	}
}

func TestCriteriaHandler(t *testing.T) {
	w := get(t, newServer(t), "/criteria")
	require.Equal(t, http.StatusOK, w.Code)

	body := struct {
		Criteria []string `json:"criteria"`
		Total    int      `json:"total"`
	}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, []string{"title", "words", "path", "year"}, body.Criteria)
	require.Equal(t, 3, body.Total)
}

func TestWordsHandler(t *testing.T) {
	s := newServer(t)

	w := get(t, s, "/words?text="+url.QueryEscape("a  b\tc\nd"))
	require.Equal(t, http.StatusOK, w.Code)

	body := struct {
		Words int `json:"words"`
	}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, 4, body.Words)

	w = get(t, s, "/words?text=")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"text":"","words":0}`, w.Body.String())

	w = get(t, s, "/words")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartStop(t *testing.T) {
	s := newServer(t)

	errs := s.Start()
	require.NoError(t, s.Stop(context.Background()))

	for err := range errs {
		require.NoError(t, err)
	}
}
