package advancement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/advkit/pkg/text"
)

func TestDisplay_Render(t *testing.T) {
	base := NewDisplay("Title", "Desc", "minecraft:stone")

	tests := []struct {
		name     string
		input    Display
		expected string
	}{
		{
			"plain",
			base,
			`{"title":{"text":"Title"},"description":{"text":"Desc"},"icon":{"item":"minecraft:stone"}}`,
		},
		{
			"empty texts",
			NewDisplay("", "", "minecraft:stone"),
			`{"title":"","description":"","icon":{"item":"minecraft:stone"}}`,
		},
		{
			"rich title",
			base.TitleText(text.Plain("Gold").Color(text.Gold)),
			`{"title":{"color":"gold","text":"Gold"},"description":{"text":"Desc"},"icon":{"item":"minecraft:stone"}}`,
		},
		{
			"optional fields in order",
			base.Hidden(false).Announce(true).Toast(true).Frame(FrameGoal).Background("bg.png"),
			`{"title":{"text":"Title"},"description":{"text":"Desc"},"icon":{"item":"minecraft:stone"},` +
				`"background":"bg.png","frame":"goal","show_toast":true,"announce_to_chat":true,"hidden":false}`,
		},
		{
			"setters replace",
			base.Title("Other").Description("").Icon("minecraft:dirt"),
			`{"title":{"text":"Other"},"description":"","icon":{"item":"minecraft:dirt"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderJSON(tt.input))
		})
	}
}

func TestFrame_RandomResolvesToConcreteFrame(t *testing.T) {
	concrete := []Frame{FrameTask, FrameGoal, FrameChallenge}
	seen := map[Frame]bool{}

	for range 300 {
		f := FrameRandom.Resolve()
		assert.Contains(t, concrete, f)
		seen[f] = true
	}
	// 300 uniform draws over three values miss one with negligible probability
	assert.Len(t, seen, 3)
}

func TestFrame_ConcreteResolveIsIdentity(t *testing.T) {
	assert.Equal(t, FrameGoal, FrameGoal.Resolve())
}

func TestDisplay_RandomFrameResolvedWhenSet(t *testing.T) {
	d := NewDisplay("a", "b", "c").Frame(FrameRandom)
	first := renderJSON(d)

	// Rendering the same display again reuses the resolved frame
	for range 20 {
		assert.Equal(t, first, renderJSON(d))
	}
	assert.NotContains(t, first, "random")
}

func TestParseFrame(t *testing.T) {
	tests := []struct {
		input    string
		expected Frame
	}{
		{"task", FrameTask},
		{"GOAL", FrameGoal},
		{" Challenge ", FrameChallenge},
		{"unknown", FrameTask},
		{"", FrameTask},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseFrame(tt.input))
		})
	}

	assert.Contains(t, []Frame{FrameTask, FrameGoal, FrameChallenge}, ParseFrame("Random"))
}
