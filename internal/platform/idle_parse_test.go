package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMillis(t *testing.T) {
	got, err := parseMillis(" 61500\n")
	require.NoError(t, err)
	assert.Equal(t, 61500*time.Millisecond, got)

	got, err = parseMillis("-3")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), got)

	_, err = parseMillis("idle")
	assert.Error(t, err)
}

func TestParseMutterIdle(t *testing.T) {
	got, err := parseMutterIdle("(uint64 5230,)\n")
	require.NoError(t, err)
	assert.Equal(t, 5230*time.Millisecond, got)

	_, err = parseMutterIdle("Error: GDBus.Error")
	assert.Error(t, err)
}

func TestParseIORegIdle(t *testing.T) {
	output := `+-o IOHIDSystem  <class IOHIDSystem>
    {
      "HIDIdleTime" = 2500000000
      "HIDParameters" = {}
    }`
	got, err := parseIORegIdle(output)
	require.NoError(t, err)
	assert.Equal(t, 2500*time.Millisecond, got)

	_, err = parseIORegIdle("{}")
	assert.Error(t, err)
}
