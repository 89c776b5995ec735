package batch

import "time"

// Result pairs one input name with its code. Code is empty for an empty name.
type Result struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Group lists the names that share a code, in first-seen order.
type Group struct {
	Code  string   `json:"code"`
	Names []string `json:"names"`
}

// Report is the outcome of one batch run.
type Report struct {
	RunID     string        `json:"run_id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
	Results   []Result      `json:"results"`
	Empty     int           `json:"empty"`
}

// Groups buckets non-empty results by code. Groups appear in the order their
// code was first produced; names keep input order and may repeat.
func (r *Report) Groups() []Group {
	index := make(map[string]int)
	var groups []Group
	for _, res := range r.Results {
		if res.Code == "" {
			continue
		}
		i, ok := index[res.Code]
		if !ok {
			i = len(groups)
			index[res.Code] = i
			groups = append(groups, Group{Code: res.Code})
		}
		groups[i].Names = append(groups[i].Names, res.Name)
	}
	return groups
}

// Collisions returns only the groups with more than one distinct name.
func (r *Report) Collisions() []Group {
	var out []Group
	for _, g := range r.Groups() {
		if countDistinct(g.Names) > 1 {
			out = append(out, g)
		}
	}
	return out
}

func countDistinct(names []string) int {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		seen[n] = struct{}{}
	}
	return len(seen)
}
