package shared

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestEllipticalTruncate(t *testing.T) {
	assert.Equal(t, "…", TruncateWithEllipsis("1 2 3", 0))
	assert.Equal(t, "1…", TruncateWithEllipsis("1 2 3", 2))
	assert.Equal(t, "1 2…", TruncateWithEllipsis("1 2 3", 3))
	assert.Equal(t, "1 2 3", TruncateWithEllipsis("1 2 3", 5))
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "Shipped v2 today", Preview("Shipped  v2\n\ntoday"))
	long := ""
	for i := 0; i < 40; i++ {
		long += "word "
	}
	p := Preview(long)
	assert.True(t, CharCount(p) <= PreviewLen+1)
	assert.Equal(t, "…", string([]rune(p)[CharCount(p)-1:]))
}

func TestCharCount(t *testing.T) {
	assert.Equal(t, 0, CharCount(""))
	assert.Equal(t, 5, CharCount("hello"))
	assert.Equal(t, 2, CharCount("🚀✨"))
}

func TestJoinUrl(t *testing.T) {
	assert.Equal(t, "http://x:8000/api/usage", JoinUrl("http://x:8000/", "/api/usage"))
	assert.Equal(t, "http://x:8000/api/usage", JoinUrl("http://x:8000", "api/usage"))
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.Bot.ImageCount = 5
	cfg.ApplyDefaults()
	assert.Equal(t, "standard", cfg.Bot.DefaultStyle)
	assert.Equal(t, 24, cfg.Bot.DefaultScanHours)
	assert.Equal(t, 5, cfg.Bot.ImageCount)
	assert.Equal(t, 3000, cfg.Bot.PostCharLimit)
	assert.Equal(t, "0 9 * * *", cfg.Autopilot.Schedule)
	assert.Equal(t, 24, cfg.Autopilot.Hours)
	assert.Equal(t, "standard", cfg.Autopilot.Style)
}
