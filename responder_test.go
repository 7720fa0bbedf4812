package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fixedStats() string {
	return "Stats:\n- Time (GMT-3): 2024-01-01 00:00:00\n- Uptime: 1h 2m 3s\n- Games Running:\n- Counter-Strike 2 (ID: 730)"
}

func TestAutoReplyStatsCommand(t *testing.T) {
	reply, ok := AutoReply("!stats", fixedStats)
	assert.True(t, ok)
	assert.Equal(t, fixedStats(), reply)
}

func TestAutoReplyStatsCommandCaseInsensitiveSubstring(t *testing.T) {
	reply, ok := AutoReply("ei, manda o !STATS aí", fixedStats)
	assert.True(t, ok)
	assert.Equal(t, fixedStats(), reply)
}

func TestAutoReplyStatsWinsOverKeywords(t *testing.T) {
	// "oi" is a keyword, but the command is checked first.
	reply, ok := AutoReply("oi, !stats por favor", fixedStats)
	assert.True(t, ok)
	assert.Equal(t, fixedStats(), reply)
}

func TestAutoReplyFirstKeywordMatchWins(t *testing.T) {
	// Contains both "oi" and "jogar"; "oi" is listed first.
	reply, ok := AutoReply("oi, bora jogar?", func() string { return "" })
	assert.True(t, ok)
	assert.Equal(t, "Eai, blz?", reply)
}

func TestAutoReplyKeywordIsCaseInsensitive(t *testing.T) {
	reply, ok := AutoReply("TCHAU", func() string { return "" })
	assert.True(t, ok)
	assert.Equal(t, "Vlw man, flw", reply)
}

func TestAutoReplyNoMatch(t *testing.T) {
	reply, ok := AutoReply("xyzzy", func() string { return "" })
	assert.False(t, ok)
	assert.Empty(t, reply)
}

func TestAutoReplyDeterministic(t *testing.T) {
	first, ok := AutoReply("obrigado pela partida", func() string { return "" })
	assert.True(t, ok)
	for i := 0; i < 50; i++ {
		reply, ok := AutoReply("obrigado pela partida", func() string { return "" })
		assert.True(t, ok)
		assert.Equal(t, first, reply)
	}
}
