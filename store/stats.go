package store

import "sort"

// Stats summarizes the live entries.
type Stats struct {
	Count       int
	TotalSize   int
	AverageSize int            // TotalSize / Count, 0 when empty
	Extensions  map[string]int // keyed by extension or NoExtension
}

// ExtensionCount is one row of the extension histogram.
type ExtensionCount struct {
	Extension string
	Count     int
}

// SortedExtensions returns the histogram ordered by extension name.
func (s Stats) SortedExtensions() []ExtensionCount {
	rows := make([]ExtensionCount, 0, len(s.Extensions))
	for ext, n := range s.Extensions {
		rows = append(rows, ExtensionCount{Extension: ext, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Extension < rows[j].Extension
	})
	return rows
}

// Stats computes count, sizes and the extension histogram in one pass.
func (s *Store) Stats() Stats {
	st := Stats{
		Count:      len(s.entries),
		Extensions: make(map[string]int),
	}
	for _, e := range s.entries {
		st.TotalSize += e.Size
		ext := e.Extension()
		if ext == "" {
			ext = NoExtension
		}
		st.Extensions[ext]++
	}
	if st.Count > 0 {
		st.AverageSize = st.TotalSize / st.Count
	}
	return st
}
