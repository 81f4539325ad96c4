package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerTokenAttached(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{"id": 7, "email": "kim@example.com"}`))
	}))
	defer srv.Close()

	base := New(srv.URL)
	c := base.WithToken("tok-123")

	u, err := c.Me(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", got)
	assert.Equal(t, FlexString("7"), u.ID)

	_, err = base.Me(t.Context())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWithTokenDoesNotShareCredential(t *testing.T) {
	base := New("http://backend.test").WithToken("a")
	clone := base.WithToken("b")

	assert.Equal(t, "a", base.Token())
	assert.Equal(t, "b", clone.Token())
	assert.Equal(t, base.BaseURL(), clone.BaseURL())
}

func TestErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/contracts/missing":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"문서를 찾을 수 없습니다."}`))
		case "/auth/me":
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"detail":[{"loc":["body","file"],"msg":"field required"}]}`))
		}
	}))
	defer srv.Close()
	c := New(srv.URL)

	_, err := c.GetContract(t.Context(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "문서를 찾을 수 없습니다.", Message(err))

	_, err = c.Me(t.Context())
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.False(t, errors.Is(err, ErrNotFound))

	_, err = c.ExtractText(t.Context(), "a.txt", strings.NewReader("x"))
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Contains(t, apiErr.Detail, "field required")
}

func TestMessageFallsBackToTransportError(t *testing.T) {
	c := New("http://127.0.0.1:1")
	_, err := c.ListContracts(t.Context())
	require.Error(t, err)
	assert.Equal(t, err.Error(), Message(err))
	assert.Empty(t, Message(nil))
}

func TestToggleFavoriteAndDelete(t *testing.T) {
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		if r.URL.Path == "/contracts/42/favorite" {
			w.Write([]byte(`{"is_favorite": true}`))
			return
		}
		w.Write([]byte(`{"status":"deleted"}`))
	}))
	defer srv.Close()
	c := New(srv.URL)

	fav, err := c.ToggleFavorite(t.Context(), "42")
	require.NoError(t, err)
	assert.True(t, fav)
	require.NoError(t, c.DeleteContract(t.Context(), "42"))

	assert.Equal(t, []string{"POST /contracts/42/favorite", "DELETE /contracts/42/delete"}, calls)
}

func TestFullInterpretMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		f, hdr, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		body, _ := io.ReadAll(f)
		assert.Equal(t, "lease.txt", hdr.Filename)
		assert.Equal(t, "제1조 목적", string(body))
		assert.Equal(t, "en", r.FormValue("language"))

		w.Write([]byte(`{"document":{
			"document_id":"d-1",
			"meta":{"language":"en","domain_tags":["lease"],"parties":["A","B"]},
			"summary":{"overall_summary":"s","one_line_summary":"o","key_points":["k"]},
			"risk_profile":{"overall_risk_level":"높음","overall_risk_score":70,"risk_dimensions":{"해지":60,"지급/대금":80}},
			"clauses":[{"clause_id":"제1조","raw_text":"t","summary":"s","risk_level":"낮음","risk_score":10,"red_flags":["x"]}],
			"causal_graph":[],
			"terms":[]}}`))
	}))
	defer srv.Close()

	doc, err := New(srv.URL).FullInterpret(t.Context(), "lease.txt", strings.NewReader("제1조 목적"), "en")
	require.NoError(t, err)
	assert.Equal(t, FlexString("d-1"), doc.DocumentID)
	assert.Equal(t, Dimensions{{"해지", 60}, {"지급/대금", 80}}, doc.RiskProfile.RiskDimensions)
	assert.Equal(t, []string{"x"}, doc.Clauses[0].RedFlags)
}

func TestAskSendsTextAndLanguage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "ko", in["language"])
		w.Write([]byte(`{"id": 3, "answer": "**답변**"}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL).Ask(t.Context(), "해지 조항?", "")
	require.NoError(t, err)
	assert.Equal(t, "해지 조항?", res.Question)
	assert.Equal(t, "**답변**", res.Answer)
}

func TestDecodeDimensions(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Dimensions
		err  bool
	}{
		{name: "null", in: `null`, want: Dimensions{}},
		{name: "empty", in: ``, want: Dimensions{}},
		{name: "ordered", in: `{"b": 2, "a": 1.9}`, want: Dimensions{{"b", 2}, {"a", 1}}},
		{name: "duplicate keeps first position", in: `{"a": 1, "b": 2, "a": 3}`, want: Dimensions{{"a", 3}, {"b", 2}}},
		{name: "array", in: `[1,2]`, err: true},
		{name: "string score", in: `{"a": "x"}`, err: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeDimensions([]byte(tt.in))
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	out, err := json.Marshal(Dimensions{{"b", 2}, {"a", 1}})
	require.NoError(t, err)
	assert.Equal(t, `{"b":2,"a":1}`, string(out))
}
