package monitor

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fogleman/gg"
	"github.com/luka333z/snake/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestStatus(t *testing.T) {
	s := New()
	n := 1
	s.Publish(client.Status{Screen: "ACTIVE", Active: true, PlayerNumber: &n, CodeLabel: "ABCD", Rendered: 3}, nil)

	rec := get(t, s, URI_STATUS)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got client.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "ACTIVE", got.Screen)
	assert.True(t, got.Active)
	require.NotNil(t, got.PlayerNumber)
	assert.Equal(t, 1, *got.PlayerNumber)
	assert.Equal(t, "ABCD", got.CodeLabel)
	assert.Equal(t, 3, got.Rendered)
}

func TestFrameMissing(t *testing.T) {
	rec := get(t, New(), URI_FRAME)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFrame(t *testing.T) {
	dc := gg.NewContext(60, 60)
	dc.SetColor(color.RGBA{0x23, 0x1f, 0x20, 0xff})
	dc.Clear()
	dc.SetColor(color.RGBA{0xe6, 0x69, 0x16, 0xff})
	dc.DrawRectangle(0, 0, 30, 30)
	dc.Fill()

	s := New()
	s.Publish(client.Status{}, dc.Image())

	// the published copy must not follow later drawing
	dc.SetColor(color.White)
	dc.Clear()

	rec := get(t, s, URI_FRAME)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 60, 60), img.Bounds())
	r, g, b, _ := img.At(10, 10).RGBA()
	assert.Equal(t, []uint32{0xe6, 0x69, 0x16}, []uint32{r >> 8, g >> 8, b >> 8})

	rec = get(t, s, URI_FRAME+"?size=12")
	require.Equal(t, http.StatusOK, rec.Code)
	img, err = png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 12, 12), img.Bounds())

	// a status-only publish keeps the frame
	s.Publish(client.Status{Screen: "INITIAL"}, nil)
	assert.Equal(t, http.StatusOK, get(t, s, URI_FRAME).Code)
}

func TestFrameBadSize(t *testing.T) {
	s := New()
	s.Publish(client.Status{}, image.NewRGBA(image.Rect(0, 0, 4, 4)))
	for _, q := range []string{"abc", "0", "-5", "99999"} {
		rec := get(t, s, URI_FRAME+"?size="+q)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestUnknownRoute(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, get(t, New(), "/nope").Code)
}
