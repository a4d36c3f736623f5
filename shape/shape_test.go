package shape

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTwoLines(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path, err := Read(strings.NewReader("1.0 2.0\n-3.5 0.25"))
	require.NoError(t, err)
	assert.Equal(t, Path{epicycles.P(1, 2), epicycles.P(-3.5, 0.25)}, path)
}

func TestReadKeepsOrderAndSkipsBlankLines(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	input := "\n3 3\r\n  1\t1  \n\n2 2\n   \n\n"
	path, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, Path{epicycles.P(3, 3), epicycles.P(1, 1), epicycles.P(2, 2)}, path)
}

func TestReadMalformed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, input := range []string{
		"1.0\n",
		"1 2\n3\n",
		"1 2 3\n",
		"1 x\n",
		"NaN 0\n",
		"0 -Inf\n",
	} {
		_, err := Read(strings.NewReader(input))
		assert.True(t, errors.Is(err, ErrMalformedSample), "input %q: %v", input, err)
	}
	_, err := Read(strings.NewReader("1 2\n3\n"))
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadEmpty(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, input := range []string{"", "\n\n  \n"} {
		_, err := Read(strings.NewReader(input))
		assert.True(t, errors.Is(err, ErrEmptyPath), "input %q", input)
	}
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	dir := t.TempDir()
	fname := filepath.Join(dir, "square.txt")
	require.NoError(t, os.WriteFile(fname, []byte("1 1\n-1 1\n-1 -1\n1 -1\n"), 0o644))
	path, err := Load(fname)
	require.NoError(t, err)
	assert.Equal(t, 4, path.Len())
	assert.True(t, path.IsCentered())
	_, err = Load(filepath.Join(dir, "missing.txt"))
	assert.True(t, errors.Is(err, ErrInputNotFound))
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1 1\nfoo bar\n"), 0o644))
	_, err = Load(bad)
	assert.True(t, errors.Is(err, ErrMalformedSample))
	assert.Contains(t, err.Error(), "bad.txt")
	_, err = Load(dir) // a directory opens, but does not read
	assert.True(t, errors.Is(err, ErrInputUnreadable), "%v", err)
}

func TestMeanAndBounds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Path{epicycles.P(2, 1), epicycles.P(4, 1), epicycles.P(4, 5), epicycles.P(2, 5)}
	assert.True(t, path.Mean().Equal(epicycles.P(3, 3)))
	assert.False(t, path.IsCentered())
	box := path.Bounds()
	assert.Equal(t, epicycles.P(2, 1), box.Min)
	assert.Equal(t, epicycles.P(4, 5), box.Max)
	assert.Equal(t, epicycles.P(4, 5), box.Extent())
	off := Path{epicycles.P(-7, 1), epicycles.P(3, -2)}
	assert.Equal(t, epicycles.P(7, 2), off.Bounds().Extent())
	assert.Equal(t, Box{}, Path{}.Bounds())
	assert.Len(t, path.Contour(), 4)
}
