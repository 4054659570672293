package terminal

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset", "", 80},
		{"valid", "132", 132},
		{"zero", "0", 80},
		{"negative", "-5", 80},
		{"garbage", "wide", 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CHARSHEET_TEST_COLS", tt.value)
			assert.Equal(t, tt.want, envInt("CHARSHEET_TEST_COLS", 80))
		})
	}
}

func TestSizeFromEnv(t *testing.T) {
	t.Setenv("COLUMNS", "120")
	t.Setenv("LINES", "40")
	assert.Equal(t, Size{Cols: 120, Rows: 40}, getSizeFromEnv())

	t.Setenv("COLUMNS", "")
	t.Setenv("LINES", "")
	assert.Equal(t, Size{Cols: DefaultCols, Rows: DefaultRows}, getSizeFromEnv())
}

func TestQuerySizeFailsOnRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notatty")
	require.NoError(t, err)
	defer f.Close()

	_, err = QuerySize(f.Fd())
	assert.Error(t, err)
}

func TestGetSizeFromFdFallsBack(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notatty")
	require.NoError(t, err)
	defer f.Close()

	t.Setenv("COLUMNS", "99")
	t.Setenv("LINES", "33")
	assert.Equal(t, Size{Cols: 99, Rows: 33}, GetSizeFromFd(f.Fd()))
}

func TestSessionPlainOutput(t *testing.T) {
	var out bytes.Buffer
	s, err := Open(strings.NewReader(""), &out)
	require.NoError(t, err)

	assert.False(t, s.Raw())
	assert.False(t, s.Interactive())

	require.NoError(t, s.Clear())
	require.NoError(t, s.Draw("ab\ncd"))
	require.NoError(t, s.Close())

	assert.Equal(t, "ab\ncd\n", out.String(), "no escapes or CRLF off a terminal")
}

func TestSessionSizeOffTerminal(t *testing.T) {
	t.Setenv("COLUMNS", "100")
	t.Setenv("LINES", "50")

	s, err := Open(strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, err)
	defer s.Close()

	size, err := s.Size()
	require.NoError(t, err)
	assert.Equal(t, Size{Cols: 100, Rows: 50}, size)
}

func TestSessionCloseIdempotent(t *testing.T) {
	s, err := Open(strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, err)
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "notatty")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f))
}
