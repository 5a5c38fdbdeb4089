package pdf

import (
	"bytes"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsimard/playerdex/internal/model"
)

// 1x1 transparent PNG
const tinyPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAACklEQVR4nGNgAAAAAgAB4iG8MwAAAABJRU5ErkJggg=="

func TestRender(t *testing.T) {
	when := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	players := []model.Player{
		{ID: 1, Username: "alice", Level: 10, LastConnection: &when},
		{ID: 2, Username: "bob", Level: 3},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, players))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 500)
}

func TestRenderEmptyList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, nil))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestRenderWithAvatar(t *testing.T) {
	players := []model.Player{
		{ID: 1, Username: "alice", Level: 10, ProfilePic: "data:image/png;base64," + tinyPNG},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, players))
	withAvatar := buf.Len()

	players[0].ProfilePic = ""
	buf.Reset()
	require.NoError(t, Render(&buf, players))
	assert.Greater(t, withAvatar, buf.Len())
}

func TestRenderBadPictureSkipsAvatar(t *testing.T) {
	players := []model.Player{
		{ID: 1, Username: "alice", Level: 10, ProfilePic: "data:image/png;base64,@@not-base64@@"},
		{ID: 2, Username: "bob", Level: 3, ProfilePic: "data:image/gif;base64," + base64.StdEncoding.EncodeToString([]byte("gif"))},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, players))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
