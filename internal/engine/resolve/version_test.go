package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want Version
	}{
		{"1.2.0", Version{1, 2, 0}},
		{"v1.2.3", Version{1, 2, 3}},
		{"2", Version{2, 0, 0}},
		{"1.5", Version{1, 5, 0}},
		{" 1.0.0 ", Version{1, 0, 0}},
	}

	for _, tt := range tests {
		got, err := ParseVersion(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "abc", "1.2.3.4", "1.-2", "1.x"} {
		_, err := ParseVersion(bad)
		assert.Error(t, err, bad)
	}
}

func TestVersionCompare(t *testing.T) {
	assert.Equal(t, 0, Version{1, 2, 0}.Compare(Version{1, 2, 0}))
	assert.Equal(t, -1, Version{1, 1, 9}.Compare(Version{1, 2, 0}))
	assert.Equal(t, 1, Version{2, 0, 0}.Compare(Version{1, 9, 9}))
}

func TestCheckVersion(t *testing.T) {
	// Пустая и текущая версии проходят молча.
	assert.Empty(t, CheckVersion(""))
	assert.Empty(t, CheckVersion(GrammarVersion))

	warns := CheckVersion("1.0.0")
	require.Len(t, warns, 1)
	assert.Equal(t, WarnVersion, warns[0].Kind)
	assert.Contains(t, warns[0].Message, "older")

	warns = CheckVersion("2.0.0")
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0].Message, "incompatible")

	warns = CheckVersion("not-a-version")
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0].Message, "unparseable")
}
