package imageutil

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURL_NoImage(t *testing.T) {
	assert.Equal(t, DefaultImagePath, DataURL(nil))
	assert.Equal(t, DefaultImagePath, DataURL([]byte{}))
}

func TestDataURL_RoundTrip(t *testing.T) {
	raw := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}
	got := DataURL(raw)
	require.True(t, strings.HasPrefix(got, "data:image/jpeg;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, "data:image/jpeg;base64,"))
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}
