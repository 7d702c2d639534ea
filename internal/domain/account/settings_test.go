package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenUpdates(t *testing.T) {
	in := map[string]any{
		"privacy": map[string]any{
			"showEmail": true,
		},
		"preferences.language": "de",
		"notifications": map[string]any{
			"marketing": false,
		},
	}
	got := FlattenUpdates(in)
	assert.Equal(t, map[string]any{
		"privacy.showEmail":       true,
		"preferences.language":    "de",
		"notifications.marketing": false,
	}, got)
}

func TestApplySettingsUpdates_SetsLeaves(t *testing.T) {
	s := DefaultSettings()
	updated, err := ApplySettingsUpdates(s, map[string]any{
		"privacy.showEmail":         true,
		"privacy.profileVisibility": "private",
		"security.twoFactorEnabled": true,
	})
	require.NoError(t, err)
	assert.True(t, updated.Privacy.ShowEmail)
	assert.Equal(t, "private", updated.Privacy.ProfileVisibility)
	assert.True(t, updated.Security.TwoFactorEnabled)
	// untouched leaves keep their values
	assert.True(t, updated.Notifications.Email)
	assert.Equal(t, "en", updated.Preferences.Language)
}

func TestApplySettingsUpdates_Rejects(t *testing.T) {
	s := DefaultSettings()
	cases := map[string]struct {
		updates map[string]any
		err     error
	}{
		"unknown leaf":     {map[string]any{"privacy.shoeSize": true}, ErrUnknownSetting},
		"unknown section":  {map[string]any{"billing.plan": "pro"}, ErrUnknownSetting},
		"section as value": {map[string]any{"privacy": "all"}, ErrUnknownSetting},
		"wrong type":       {map[string]any{"notifications.email": "yes"}, ErrInvalidSetting},
		"bad enum":         {map[string]any{"privacy.profileVisibility": "friends"}, ErrInvalidSetting},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			out, err := ApplySettingsUpdates(s, tc.updates)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, s, out)
		})
	}
}
