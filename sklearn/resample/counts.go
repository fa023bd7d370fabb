package resample

// ClassCounts is the number of samples per label. Labels holds every label
// once, in order of first appearance in y; this is the stable ordering used
// for tie-breaking and for plan iteration.
type ClassCounts[L comparable] struct {
	Labels []L
	Counts map[L]int
}

// CountClasses derives the class count table from y. It is recomputed on
// every resampling call and never cached.
func CountClasses[L comparable](y []L) ClassCounts[L] {
	counts := ClassCounts[L]{Counts: make(map[L]int)}
	for _, label := range y {
		if _, seen := counts.Counts[label]; !seen {
			counts.Labels = append(counts.Labels, label)
		}
		counts.Counts[label]++
	}
	return counts
}

// Len returns the number of distinct labels.
func (c ClassCounts[L]) Len() int {
	return len(c.Labels)
}

// Total returns the number of samples.
func (c ClassCounts[L]) Total() int {
	total := 0
	for _, n := range c.Counts {
		total += n
	}
	return total
}

// Majority returns the label with the highest count. Ties go to the label
// that appears first in y. ok is false when there are no labels.
func (c ClassCounts[L]) Majority() (label L, count int, ok bool) {
	for _, l := range c.Labels {
		if n := c.Counts[l]; !ok || n > count {
			label, count, ok = l, n, true
		}
	}
	return label, count, ok
}
