package account

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

type fieldSetter func(v any) error

func stringField(dst *string, max int) fieldSetter {
	return func(v any) error {
		s, ok := v.(string)
		if !ok {
			return ErrInvalidFieldValue
		}
		s = strings.TrimSpace(s)
		if max > 0 && len(s) > max {
			return fmt.Errorf("%w: longer than %d characters", ErrInvalidFieldValue, max)
		}
		*dst = s
		return nil
	}
}

func requiredStringField(dst *string, max int) fieldSetter {
	set := stringField(dst, max)
	return func(v any) error {
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: cannot be empty", ErrInvalidFieldValue)
		}
		return set(v)
	}
}

func stringsField(dst *pq.StringArray) fieldSetter {
	return func(v any) error {
		var out []string
		switch vals := v.(type) {
		case []string:
			out = vals
		case []any:
			for _, item := range vals {
				s, ok := item.(string)
				if !ok {
					return ErrInvalidFieldValue
				}
				out = append(out, s)
			}
		default:
			return ErrInvalidFieldValue
		}
		*dst = CleanList(out)
		return nil
	}
}

func floatField(dst *float64) fieldSetter {
	return func(v any) error {
		var f float64
		switch n := v.(type) {
		case float64:
			f = n
		case int:
			f = float64(n)
		default:
			return ErrInvalidFieldValue
		}
		if f < 0 {
			return fmt.Errorf("%w: cannot be negative", ErrInvalidFieldValue)
		}
		*dst = f
		return nil
	}
}

// CleanList trims entries and drops blanks and duplicates, keeping order.
func CleanList(in []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

func (p *Profile) setters() map[string]fieldSetter {
	return map[string]fieldSetter{
		"name":          requiredStringField(&p.Name, 120),
		"bio":           stringField(&p.Bio, 2000),
		"location":      stringField(&p.Location, 120),
		"avatar":        stringField(&p.Avatar, 0),
		"walletAddress": stringField(&p.WalletAddress, 100),
	}
}

func apply(setters map[string]fieldSetter, updates map[string]any) error {
	for key := range updates {
		if _, ok := setters[key]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownProfileField, key)
		}
	}
	for key, v := range updates {
		if err := setters[key](v); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func (f *Freelancer) ApplyProfile(updates map[string]any) error {
	s := f.setters()
	s["title"] = stringField(&f.Title, 120)
	s["skills"] = stringsField(&f.Skills)
	s["hourlyRate"] = floatField(&f.HourlyRate)
	s["portfolio"] = stringsField(&f.Portfolio)
	return apply(s, updates)
}

func (c *Client) ApplyProfile(updates map[string]any) error {
	s := c.setters()
	s["company"] = stringField(&c.Company, 120)
	s["website"] = stringField(&c.Website, 255)
	s["industry"] = stringField(&c.Industry, 120)
	return apply(s, updates)
}

func (a *Admin) ApplyProfile(updates map[string]any) error {
	return apply(a.setters(), updates)
}
