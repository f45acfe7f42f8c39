package view

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_EmbeddedHello(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	require.True(t, r.Has("response/hello"))

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "response/hello", map[string]any{"data": "hello!"}, nil))
	assert.Contains(t, buf.String(), "<p>hello!</p>")
}

func TestRenderer_DefaultWhenModelEmpty(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "response/hello", map[string]any{}, nil))
	assert.Contains(t, buf.String(), "<p>empty</p>")
}

func TestRenderer_EscapesModel(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "response/hello", map[string]any{"data": "<b>x</b>"}, nil))
	assert.Contains(t, buf.String(), "&lt;b&gt;x&lt;/b&gt;")
}

func TestRenderer_UnknownView(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	err = r.Render(&bytes.Buffer{}, "response/missing", nil, nil)
	assert.ErrorIs(t, err, ErrViewNotFound)
}

func TestNewFromFS_ParseError(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.html": {Data: []byte("{{ .data ")},
	}

	_, err := NewFromFS(fsys)
	assert.Error(t, err)
}

func TestNewFromFS_SkipsOtherFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"a/b.html":  {Data: []byte("{{ .v | upper }}")},
		"README.md": {Data: []byte("{{ broken")},
	}

	r, err := NewFromFS(fsys)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "a/b", map[string]any{"v": "shout"}, nil))
	assert.Equal(t, "SHOUT", buf.String())
}

func TestRenderer_PathAlias(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	require.True(t, r.Has("response-view-v3"))

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "response-view-v3", map[string]any{"data": "hello!"}, nil))
	assert.Contains(t, buf.String(), "<p>hello!</p>")
}
