package account

import "math"

func percent(filled, total int) int {
	if total == 0 {
		return 100
	}
	return int(math.Round(float64(filled) * 100 / float64(total)))
}

func count(checks ...bool) int {
	n := 0
	for _, ok := range checks {
		if ok {
			n++
		}
	}
	return n
}

func (p *Profile) commonChecks() []bool {
	return []bool{
		p.Name != "",
		p.Email != "",
		p.Bio != "",
		p.Location != "",
		p.Avatar != "",
		p.WalletAddress != "",
	}
}

func (f *Freelancer) ProfileCompletion() int {
	checks := append(f.commonChecks(),
		f.Title != "",
		len(f.Skills) > 0,
		f.HourlyRate > 0,
		len(f.Portfolio) > 0,
	)
	return percent(count(checks...), len(checks))
}

func (c *Client) ProfileCompletion() int {
	checks := append(c.commonChecks(),
		c.Company != "",
		c.Industry != "",
	)
	return percent(count(checks...), len(checks))
}

func (a *Admin) ProfileCompletion() int {
	checks := []bool{a.Name != "", a.Email != "", a.Avatar != ""}
	return percent(count(checks...), len(checks))
}
