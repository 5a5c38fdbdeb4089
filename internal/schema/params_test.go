package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, raw := range []string{"0", "-1", "abc", "", "1.5"} {
		_, err := ParseID(raw)
		assert.Error(t, err, "raw %q", raw)
	}
}

func TestParseProtocol(t *testing.T) {
	for _, raw := range []string{"http", "https"} {
		p, err := ParseProtocol(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, p)
	}

	for _, raw := range []string{"ftp", "HTTPS", "gopher", ""} {
		_, err := ParseProtocol(raw)
		var fe *FieldError
		require.ErrorAs(t, err, &fe, "raw %q", raw)
		assert.Equal(t, "protocol", fe.Field)
	}
}

func TestParseImageFormat(t *testing.T) {
	for _, raw := range []string{"jpg", "jpeg", "png"} {
		f, err := ParseImageFormat(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, f)
	}

	for _, raw := range []string{"gif", "PNG", "bmp", ""} {
		_, err := ParseImageFormat(raw)
		assert.Error(t, err, "raw %q", raw)
	}
}

func TestFormatMatchesMIME(t *testing.T) {
	assert.True(t, FormatMatchesMIME("jpg", "image/jpeg"))
	assert.True(t, FormatMatchesMIME("jpeg", "image/jpeg"))
	assert.True(t, FormatMatchesMIME("png", "image/png"))

	assert.False(t, FormatMatchesMIME("png", "image/jpeg"))
	assert.False(t, FormatMatchesMIME("jpg", "image/png"))
	assert.False(t, FormatMatchesMIME("gif", "image/gif"))
}
