package analyze

// scoreRule is one additive scoring step. points returns the contribution for
// the current post (zero means the rule did not fire); tag names the rule so
// hits can be surfaced as detected patterns
type scoreRule struct {
	tag    string
	points func() int
}

// foldRules sums an ordered rule list, invoking onHit for every firing rule.
// Keeping the additive chains as data makes each rule pinnable in tests
func foldRules(rules []scoreRule, onHit func(tag string, pts int)) int {
	total := 0
	for _, r := range rules {
		p := r.points()
		if p == 0 {
			continue
		}
		total += p
		if onHit != nil {
			onHit(r.tag, p)
		}
	}
	return total
}

// clampScore pins any intermediate arithmetic into the surfaced [0,100] range
func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// capped scales a count by per-unit points and caps the contribution
func capped(count, perUnit, limit int) int {
	p := count * perUnit
	if p > limit {
		return limit
	}
	return p
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
