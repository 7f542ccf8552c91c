package dataset

// Instance is one labeled feature vector. Instances are created once at load
// time and are not mutated afterwards.
type Instance struct {
	Features []float64
	Label    string
}

// Dataset is an ordered sequence of instances sharing the same dimension.
type Dataset []Instance

// Dimension returns the feature vector length of the first instance, or 0 for
// an empty dataset.
func (d Dataset) Dimension() int {
	if len(d) == 0 {
		return 0
	}
	return len(d[0].Features)
}

// Labels returns the distinct labels in order of first appearance.
func (d Dataset) Labels() []string {
	seen := make(map[string]struct{}, len(d))
	var out []string
	for _, inst := range d {
		if _, ok := seen[inst.Label]; ok {
			continue
		}
		seen[inst.Label] = struct{}{}
		out = append(out, inst.Label)
	}
	return out
}
