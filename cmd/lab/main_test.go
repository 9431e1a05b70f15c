package main

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lab/config"
)

func TestRun_TextToStdout(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-width", "4", "-height", "3", "-seed", "5", "-format", "txt", "-o", "-", "-verify"}, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2*3+1)
	assert.Equal(t, "+---+---+---+---+", lines[0])
	assert.Equal(t, "+---+---+---+---+", lines[len(lines)-1])
	assert.Contains(t, lines[1], "*", "entrance row is on the path")
	assert.Contains(t, lines[len(lines)-2], "*", "exit row is on the path")
}

func TestRun_SameSeedSameOutput(t *testing.T) {
	args := []string{"-width", "9", "-height", "6", "-seed", "31", "-format", "txt", "-o", "-"}
	var a, b bytes.Buffer
	require.NoError(t, run(args, &a))
	require.NoError(t, run(args, &b))
	assert.Equal(t, a.String(), b.String())
}

func TestRun_PNGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.png")
	err := run([]string{"-width", "5", "-height", "4", "-cell", "8", "-seed", "2", "-o", path}, &bytes.Buffer{})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}

// TestRun_CellOnly checks that a changed cell size keeps the configured
// 800×600 window and fits more cells into it.
func TestRun_CellOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.png")
	require.NoError(t, run([]string{"-cell", "10", "-seed", "1", "-o", path}, &bytes.Buffer{}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())

	var out bytes.Buffer
	require.NoError(t, run([]string{"-cell", "10", "-seed", "1", "-format", "txt", "-o", "-"}, &out))
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2*60+1, "60 rows")
	assert.Len(t, lines[0], 4*80+1, "80 columns")
}

// TestRun_OneAxisOverride sizes only the columns; rows still fit the window.
func TestRun_OneAxisOverride(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-width", "5", "-cell", "100", "-seed", "3", "-format", "txt", "-o", "-"}, &out))
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2*6+1, "600px / 100px rows")
	assert.Equal(t, "+---+---+---+---+---+", lines[0])
}

// TestRun_DefaultOutputFollowsFormat writes maze.txt, not maze.png, for -format txt.
func TestRun_DefaultOutputFollowsFormat(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, run([]string{"-width", "3", "-height", "2", "-seed", "1", "-format", "txt"}, &bytes.Buffer{}))

	body, err := os.ReadFile(filepath.Join(dir, "maze.txt"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "+---+---+---+\n"))
	_, err = os.Stat(filepath.Join(dir, "maze.png"))
	assert.True(t, os.IsNotExist(err), "no png written")
}

func TestWithFormatExt(t *testing.T) {
	cases := []struct{ path, format, want string }{
		{"maze.png", "txt", "maze.txt"},
		{"out/maze.png", "svg", "out/maze.svg"},
		{"maze", "png", "maze.png"},
		{"maze.svg", "svg", "maze.svg"},
		{"-", "txt", "-"},
		{"", "txt", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, withFormatExt(tc.path, tc.format), "%s as %s", tc.path, tc.format)
	}
}

// TestWriteOutput_RemovesPartialFile leaves nothing behind when rendering fails midway.
func TestWriteOutput_RemovesPartialFile(t *testing.T) {
	errBoom := errors.New("render failed")
	path := filepath.Join(t.TempDir(), "maze.png")

	err := writeOutput(path, &bytes.Buffer{}, func(w io.Writer) error {
		_, _ = io.WriteString(w, "\x89PNG partial")
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "partial file removed")

	require.NoError(t, writeOutput(path, &bytes.Buffer{}, func(w io.Writer) error {
		_, werr := io.WriteString(w, "ok")
		return werr
	}))
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))

	var stdout bytes.Buffer
	require.NoError(t, writeOutput("-", &stdout, func(w io.Writer) error {
		_, werr := io.WriteString(w, "to stdout")
		return werr
	}))
	assert.Equal(t, "to stdout", stdout.String())
}

func TestRun_SVGWalls(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-width", "3", "-height", "3", "-seed", "1", "-format", "svg", "-style", "walls", "-o", "-"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "<svg")
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		err  error
	}{
		{"ZeroWidth", []string{"-width", "0", "-o", "-"}, config.ErrInvalidConfig},
		{"BadFormat", []string{"-format", "gif", "-o", "-"}, config.ErrInvalidConfig},
		{"BadStyle", []string{"-style", "hex", "-o", "-"}, config.ErrInvalidConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := run(tc.args, &bytes.Buffer{})
			assert.ErrorIs(t, err, tc.err)
		})
	}

	assert.Error(t, run([]string{"-no-such-flag"}, &bytes.Buffer{}))
}
