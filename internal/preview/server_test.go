package preview

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/figure"
	"github.com/gogpu/figure/illustrate"
)

// idleHost accepts frame requests and never fires them.
type idleHost struct{}

func (idleHost) RequestFrame(func()) func() { return func() {} }

func newTestServer(t *testing.T) (*Server, *illustrate.Context) {
	t.Helper()
	ctx := illustrate.New(illustrate.WithHost(idleHost{}))
	n := 0
	srv := New(ctx, WithIDGenerator(func() string {
		n++
		return "target-" + string(rune('0'+n))
	}))
	return srv, ctx
}

func do(t *testing.T, h http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestCategories(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []categoryJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 8)
	assert.Equal(t, "knee", string(got[0].ID))
	assert.Equal(t, "Wrist/Hand", got[6].Label)
	assert.Equal(t, 4, got[1].Count)
}

func TestListExercises(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/exercises?bodyPart=shoulder", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []exerciseJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 4)
	for _, ex := range got {
		assert.Equal(t, "shoulder", string(ex.BodyPart))
	}

	rec = do(t, srv, http.MethodGet, "/exercises", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Greater(t, len(got), 4)

	rec = do(t, srv, http.MethodGet, "/exercises?bodyPart=tail", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetExercise(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/exercises/straight_leg_raise", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got exerciseJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "knee", string(got.BodyPart))
	assert.Equal(t, "lLeg", got.Highlight)

	rec = do(t, srv, http.MethodGet, "/exercises/does_not_exist", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFigureSVG(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/exercises/bridge/figure.svg?size=120&gender=female&t=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<svg "))
	assert.Contains(t, body, `width="120"`)
	assert.Contains(t, body, `height="144"`)
	assert.Contains(t, body, `data-exercise="bridge"`)
	assert.Contains(t, body, "-arrow", "t=1 shows the motion arrow")

	for _, path := range []string{
		"/exercises/bridge/figure.svg?size=abc",
		"/exercises/bridge/figure.svg?size=4",
		"/exercises/bridge/figure.svg?t=2",
	} {
		assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodGet, path, "").Code, path)
	}
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/exercises/nope/figure.svg", "").Code)
}

func TestFigurePNG(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/exercises/calf_raise/figure.png?size=40", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestFigureUnknownFormat(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/exercises/bridge/figure.gif", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "png, svg")
}

func TestMountedTargetKeepsStyle(t *testing.T) {
	srv, ctx := newTestServer(t)
	rec := do(t, srv, http.MethodPost, "/targets", `{"exerciseId":"heel_slide","gender":"female","caption":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	tg, ok := ctx.Targets().Get("target-1")
	require.True(t, ok)
	st, ok := tg.(*illustrate.SVGTarget)
	require.True(t, ok)
	require.NotNil(t, st.Style().Gender)
	assert.Equal(t, figure.Female, *st.Style().Gender)
	assert.True(t, st.Style().Caption)
	assert.Contains(t, st.Inner(), "Heel Slide")
}

func TestTargetsLifecycle(t *testing.T) {
	srv, ctx := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/targets", `{"exerciseId":"wall_slide"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created targetJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "target-1", created.InstanceID)
	assert.Equal(t, "wall_slide", created.ExerciseID)
	assert.Equal(t, "/targets/target-1", rec.Header().Get("Location"))
	assert.Equal(t, 1, ctx.Targets().Len())

	rec = do(t, srv, http.MethodGet, "/targets/target-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="target-1"`)
	assert.Contains(t, rec.Body.String(), `id="target-1-body"`)

	assert.Equal(t, http.StatusNoContent, do(t, srv, http.MethodDelete, "/targets/target-1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodDelete, "/targets/target-1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/targets/target-1", "").Code)
	assert.Zero(t, ctx.Targets().Len())
}

func TestMountTargetErrors(t *testing.T) {
	srv, ctx := newTestServer(t)
	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPost, "/targets", `{`).Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodPost, "/targets", `{"exerciseId":"nope"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPost, "/targets", `{"exerciseId":"bridge","size":9999}`).Code)
	assert.Zero(t, ctx.Targets().Len())
}

func TestAnimationControl(t *testing.T) {
	srv, ctx := newTestServer(t)

	assert.Equal(t, http.StatusNoContent, do(t, srv, http.MethodPost, "/animation/start", "").Code)
	assert.True(t, ctx.Running())
	assert.Equal(t, http.StatusNoContent, do(t, srv, http.MethodPost, "/animation/start", "").Code)
	assert.True(t, ctx.Running())
	assert.Equal(t, http.StatusNoContent, do(t, srv, http.MethodPost, "/animation/stop", "").Code)
	assert.False(t, ctx.Running())
}

func TestUUIDDefault(t *testing.T) {
	srv := New(illustrate.New(illustrate.WithHost(idleHost{})))
	rec := do(t, srv, http.MethodPost, "/targets", `{"exerciseId":"bridge"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created targetJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Len(t, created.InstanceID, 36)
}
