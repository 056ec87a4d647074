package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Tone
	}{
		{"empty is neutral", "", ToneNeutral},
		{"plain question is neutral", "Ile kosztuje plan Starter?", ToneNeutral},
		{"profanity pl", "co to za sciema, cholera", ToneAggressive},
		{"profanity en", "this is bullshit", ToneAggressive},
		{"uppercase shouting", "DLACZEGO TO NIE DZIALA", ToneAggressive},
		{"short uppercase is not shouting", "ROI w SaaS", ToneNeutral},
		{"distrust pl", "nie wierzę w te liczby", ToneSkeptical},
		{"distrust en", "sounds like a scam", ToneSkeptical},
		{"politeness pl", "proszę o szczegóły oferty", ToneFormal},
		{"politeness en", "could you send the details, please", ToneFormal},
		{"casual pl", "spoko, a co z cenami?", ToneCasual},
		{"casual en", "lol ok what about pricing", ToneCasual},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTone(tt.input))
		})
	}
}

// Profanity can co-occur with a "please"; aggressiveness is checked first.
func TestClassifyToneOrder(t *testing.T) {
	assert.Equal(t, ToneAggressive, ClassifyTone("proszę, napraw to cholera"))
	assert.Equal(t, ToneSkeptical, ClassifyTone("proszę, ale nie wierzę w to"))
}

// ClassifyTone is total: any input yields one of the defined tones.
func TestClassifyToneTotality(t *testing.T) {
	inputs := []string{"", " ", "\t\n", "🙂", "????", "żółć", "a", "MIXED case Ąę"}
	for _, in := range inputs {
		got := ClassifyTone(in)
		assert.Contains(t, AllTones, got, "input %q", in)
	}
}
