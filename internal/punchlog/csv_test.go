package punchlog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/punchclock/internal/errors"
)

func TestEncodeFormat(t *testing.T) {
	out := int64(1513607931)
	log := &Log{rows: []Row{
		{In: 1513600731, Out: &out},
		{In: 1513700000},
	}}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, log))

	// Integer timestamps, blank Out marker on the open row.
	assert.Equal(t, "In,Out\n1513600731,1513607931\n1513700000,\n", buf.String())
}

func TestEncodeEmptyLog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, NewLog()))
	assert.Equal(t, "In,Out\n", buf.String())
}

func TestDecode(t *testing.T) {
	t.Run("committed and open rows", func(t *testing.T) {
		log, err := Decode(strings.NewReader("In,Out\n1513600731,1513607931\n1513700000,\n"))
		require.NoError(t, err)

		rows := log.Rows()
		require.Len(t, rows, 2)
		assert.Equal(t, int64(1513600731), rows[0].In)
		require.True(t, rows[0].Committed())
		assert.Equal(t, int64(1513607931), *rows[0].Out)
		assert.False(t, rows[1].Committed())
		assert.Equal(t, StateIn, log.State())
	})

	t.Run("empty input", func(t *testing.T) {
		log, err := Decode(strings.NewReader(""))
		require.NoError(t, err)
		assert.Zero(t, log.Len())
		assert.Equal(t, StateOut, log.State())
	})

	t.Run("header only", func(t *testing.T) {
		log, err := Decode(strings.NewReader("In,Out\n"))
		require.NoError(t, err)
		assert.Zero(t, log.Len())
	})

	t.Run("wrong header", func(t *testing.T) {
		_, err := Decode(strings.NewReader("Start,Stop\n1,2\n"))
		require.Error(t, err)
		assert.True(t, errors.IsCategory(err, errors.CategoryParse))
	})

	t.Run("non-integer timestamp", func(t *testing.T) {
		_, err := Decode(strings.NewReader("In,Out\nnoon,1513607931\n"))
		require.Error(t, err)
		assert.True(t, errors.IsCategory(err, errors.CategoryParse))
	})

	t.Run("open row before end", func(t *testing.T) {
		_, err := Decode(strings.NewReader("In,Out\n1513600731,\n1513700000,1513700300\n"))
		require.Error(t, err)
		assert.True(t, errors.IsCategory(err, errors.CategoryParse))
	})
}

func TestRoundTrip(t *testing.T) {
	out := int64(1513607931)
	original := &Log{rows: []Row{
		{In: 1513600731, Out: &out},
		{In: 1513700000},
	}}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, original))
	reloaded, err := Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, original.Rows(), reloaded.Rows())
	assert.Equal(t, original.State(), reloaded.State())
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file is an empty log", func(t *testing.T) {
		log, err := LoadFile(filepath.Join(t.TempDir(), "absent"))
		require.NoError(t, err)
		assert.Zero(t, log.Len())
		assert.Equal(t, StateOut, log.State())
	})

	t.Run("empty file is an empty log", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blank")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		log, err := LoadFile(path)
		require.NoError(t, err)
		assert.Zero(t, log.Len())
	})

	t.Run("wrong field count is fatal", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad")
		require.NoError(t, os.WriteFile(path, []byte("In,Out\n1513600731\n"), 0o644))

		_, err := LoadFile(path)
		require.Error(t, err)
		assert.True(t, errors.IsCategory(err, errors.CategoryParse))
	})
}

func TestSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log")
	out := int64(1513607931)
	log := &Log{rows: []Row{{In: 1513600731, Out: &out}}}

	require.NoError(t, SaveFile(path, log))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "In,Out\n1513600731,1513607931\n", string(data))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log")
	out := int64(1513607931)
	original := &Log{rows: []Row{
		{In: 1513600731, Out: &out},
		{In: 1513700000},
	}}

	require.NoError(t, SaveFile(path, original))
	reloaded, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, original.Rows(), reloaded.Rows())
	assert.Equal(t, StateIn, reloaded.State())
}
