package account

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Settings struct {
	Privacy       PrivacySettings      `json:"privacy"`
	Notifications NotificationSettings `json:"notifications"`
	Security      SecuritySettings     `json:"security"`
	Preferences   PreferenceSettings   `json:"preferences"`
}

type PrivacySettings struct {
	ProfileVisibility string `json:"profileVisibility"`
	ShowEmail         bool   `json:"showEmail"`
	ShowEarnings      bool   `json:"showEarnings"`
}

type NotificationSettings struct {
	Email     bool `json:"email"`
	JobAlerts bool `json:"jobAlerts"`
	Messages  bool `json:"messages"`
	Marketing bool `json:"marketing"`
}

type SecuritySettings struct {
	TwoFactorEnabled bool `json:"twoFactorEnabled"`
	LoginAlerts      bool `json:"loginAlerts"`
}

type PreferenceSettings struct {
	Language string `json:"language"`
	Timezone string `json:"timezone"`
	Currency string `json:"currency"`
}

func DefaultSettings() Settings {
	return Settings{
		Privacy: PrivacySettings{ProfileVisibility: "public"},
		Notifications: NotificationSettings{
			Email:     true,
			JobAlerts: true,
			Messages:  true,
		},
		Security:    SecuritySettings{LoginAlerts: true},
		Preferences: PreferenceSettings{Language: "en", Timezone: "UTC", Currency: "HBAR"},
	}
}

var (
	visibilities = map[string]bool{"public": true, "private": true, "clients_only": true}
	currencies   = map[string]bool{"HBAR": true, "USD": true}
)

func (s Settings) Validate() error {
	if !visibilities[s.Privacy.ProfileVisibility] {
		return fmt.Errorf("%w: privacy.profileVisibility must be one of public, private, clients_only", ErrInvalidSetting)
	}
	if !currencies[s.Preferences.Currency] {
		return fmt.Errorf("%w: preferences.currency must be HBAR or USD", ErrInvalidSetting)
	}
	return nil
}

// FlattenUpdates turns nested objects into dotted paths:
// {"privacy": {"showEmail": true}} becomes {"privacy.showEmail": true}.
// Keys that already contain dots are kept as they are.
func FlattenUpdates(nested map[string]any) map[string]any {
	out := make(map[string]any)
	flattenInto(out, "", nested)
	return out
}

func flattenInto(out map[string]any, prefix string, in map[string]any) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if child, ok := v.(map[string]any); ok {
			flattenInto(out, key, child)
			continue
		}
		out[key] = v
	}
}

// ApplySettingsUpdates sets each dotted path in updates on s. Every path must
// name an existing leaf and the value must have the leaf's JSON type.
func ApplySettingsUpdates(s Settings, updates map[string]any) (Settings, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return s, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return s, err
	}

	for path, v := range updates {
		if err := setPath(doc, path, v); err != nil {
			return s, err
		}
	}

	raw, err = json.Marshal(doc)
	if err != nil {
		return s, err
	}
	var updated Settings
	if err := json.Unmarshal(raw, &updated); err != nil {
		return s, fmt.Errorf("%w: %v", ErrInvalidSetting, err)
	}
	if err := updated.Validate(); err != nil {
		return s, err
	}
	return updated, nil
}

func setPath(doc map[string]any, path string, v any) error {
	parts := strings.Split(path, ".")
	node := doc
	for _, part := range parts[:len(parts)-1] {
		child, ok := node[part].(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSetting, path)
		}
		node = child
	}

	leaf := parts[len(parts)-1]
	current, ok := node[leaf]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSetting, path)
	}
	if _, isObject := current.(map[string]any); isObject {
		return fmt.Errorf("%w: %s is a section, not a value", ErrUnknownSetting, path)
	}
	if !sameKind(current, v) {
		return fmt.Errorf("%w: %s", ErrInvalidSetting, path)
	}
	node[leaf] = v
	return nil
}

func sameKind(a, b any) bool {
	switch a.(type) {
	case bool:
		_, ok := b.(bool)
		return ok
	case string:
		_, ok := b.(string)
		return ok
	case float64:
		_, ok := b.(float64)
		return ok
	}
	return false
}
