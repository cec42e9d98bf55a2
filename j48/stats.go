package j48

// Stats summarizes a tree. Size counts nodes and leaves, matching the
// "Size of the tree" J48 reports.
type Stats struct {
	Leaves int
	Size   int
	// Depth is the number of split levels on the longest path.
	Depth    int
	Features []string
	// Classes maps each label to the number of leaves predicting it.
	Classes map[string]int
	// ClassOrder lists labels in first-seen order.
	ClassOrder []string
	// Instances maps each label to the training instances its leaves cover.
	// Leaves without a printed weight do not contribute.
	Instances map[string]float64
}

// Summarize walks n and collects its Stats.
func Summarize(n *Node) Stats {
	s := Stats{
		Classes:   map[string]int{},
		Instances: map[string]float64{},
	}
	seen := map[string]bool{}
	var walk func(*Node, int)
	walk = func(n *Node, depth int) {
		s.Size++
		if depth > s.Depth {
			s.Depth = depth
		}
		if !seen[n.Feature] {
			seen[n.Feature] = true
			s.Features = append(s.Features, n.Feature)
		}
		for _, b := range n.Branches {
			if b.Child != nil {
				walk(b.Child, depth+1)
				continue
			}
			s.Leaves++
			s.Size++
			if _, ok := s.Classes[b.Class]; !ok {
				s.ClassOrder = append(s.ClassOrder, b.Class)
			}
			s.Classes[b.Class]++
			if b.Weight != nil {
				s.Instances[b.Class] += b.Weight.Total
			}
		}
	}
	walk(n, 1)
	return s
}
