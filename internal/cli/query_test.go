package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kondziu/fonologia/internal/phoneme"
)

func TestQueryByHeight(t *testing.T) {
	buf, err := execute(t, "query", "--height", "close")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	for _, line := range lines {
		assert.Contains(t, line, " close ")
	}
}

func TestQueryCombined(t *testing.T) {
	buf, err := execute(t, "query", "--height", "open", "--backness", "back")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ɑ open back unrounded", lines[0])
	assert.Equal(t, "ɒ open back rounded", lines[1])
}

func TestQueryRoundingAnyJSON(t *testing.T) {
	buf, err := execute(t, "query", "--rounding", "any", "--format", "json")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	payload, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var vowels []phoneme.WireVowel
	require.NoError(t, json.Unmarshal(payload, &vowels))
	require.Len(t, vowels, 1)
	assert.Equal(t, "ə", vowels[0].Symbol)
}

func TestQueryNoMatches(t *testing.T) {
	buf, err := execute(t, "query", "--height", "near_open", "--backness", "back")
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestQueryInvalidFeature(t *testing.T) {
	buf, err := execute(t, "query", "--height", "tall")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), ErrCodeBadFeature)
}
