package template

import (
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-master-password/internal/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_FitInSeed(t *testing.T) {
	for _, tier := range Tiers {
		templates, err := tier.Templates()
		require.NoError(t, err)
		require.NotEmpty(t, templates)

		for _, tmpl := range templates {
			assert.LessOrEqual(t, len(tmpl), crypto.SiteSeedSize-1, tmpl)
		}
	}
}

func TestTemplates_EveryClassHasAlphabet(t *testing.T) {
	for _, tier := range Tiers {
		templates, err := tier.Templates()
		require.NoError(t, err)

		for _, tmpl := range templates {
			for i := range len(tmpl) {
				_, known := classAlphabets[tmpl[i]]
				assert.True(t, known, "template %q uses unmapped class %q", tmpl, tmpl[i])
				assert.NotEmpty(t, Alphabet(tmpl[i]))
			}
		}
	}
}

func TestTemplates_ReturnsCopy(t *testing.T) {
	templates, err := TierPin.Templates()
	require.NoError(t, err)
	templates[0] = "mutated"

	again, err := TierPin.Templates()
	require.NoError(t, err)
	assert.Equal(t, []string{"nnnn"}, again)
}

func TestTemplates_Counts(t *testing.T) {
	want := map[Tier]int{
		TierPin:     1,
		TierBasic:   3,
		TierShort:   1,
		TierMedium:  2,
		TierLong:    21,
		TierMaximum: 2,
	}
	for tier, n := range want {
		templates, err := tier.Templates()
		require.NoError(t, err)
		assert.Len(t, templates, n, tier.String())
	}
}

func TestAlphabet(t *testing.T) {
	tests := []struct {
		class byte
		want  string
	}{
		{class: 'V', want: "AEIOU"},
		{class: 'C', want: "BCDFGHJKLMNPQRSTVWXYZ"},
		{class: 'v', want: "aeiou"},
		{class: 'c', want: "bcdfghjklmnpqrstvwxyz"},
		{class: 'A', want: "AEIOUBCDFGHJKLMNPQRSTVWXYZ"},
		{class: 'a', want: "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz"},
		{class: 'n', want: "0123456789"},
		{class: 'o', want: "@&%?,=[]_:-+*$#!'^~;()/."},
		{class: 'x', want: "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz0123456789!@#$%^&*()"},
		{class: '?', want: "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz0123456789!@#$%^&*()"},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			assert.Equal(t, tt.want, Alphabet(tt.class))
		})
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		in      string
		want    Tier
		wantErr bool
	}{
		{in: "pin", want: TierPin},
		{in: "PIN", want: TierPin},
		{in: "i", want: TierPin},
		{in: "basic", want: TierBasic},
		{in: "b", want: TierBasic},
		{in: "short", want: TierShort},
		{in: "medium", want: TierMedium},
		{in: " long ", want: TierLong},
		{in: "l", want: TierLong},
		{in: "maximum", want: TierMaximum},
		{in: "x", want: TierMaximum},
		{in: "50", want: TierLong},
		{in: "60", want: TierMaximum},
		{in: "55", wantErr: true},
		{in: "-10", wantErr: true},
		{in: "", wantErr: true},
		{in: "huge", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTier(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTier_String(t *testing.T) {
	assert.Equal(t, "long", TierLong.String())
	assert.Equal(t, "Tier(7)", Tier(7).String())
}

func TestTier_TextRoundTrip(t *testing.T) {
	var cfg struct {
		Tier Tier `json:"tier"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"tier":"medium"}`), &cfg))
	assert.Equal(t, TierMedium, cfg.Tier)

	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tier":"medium"}`, string(out))

	assert.ErrorIs(t, json.Unmarshal([]byte(`{"tier":"nope"}`), &cfg), ErrInvalidArgument)

	_, err = Tier(1).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
