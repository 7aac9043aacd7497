package trolley

// Consolidate groups lines by ProductID, summing quantities across
// duplicates. The first-seen line of each id keeps its price and description
// as the representative, and the output preserves first-appearance order, so
// the result is deterministic for a given input order. The trolley already
// keeps one line per id, but checkout re-groups defensively so that any line
// list, however constructed, hits the inventory store with one request per
// product. Applying Consolidate to an already-consolidated list is a no-op.
func Consolidate(lines []Line) []Line {
	grouped := make([]Line, 0, len(lines))
	index := make(map[string]int, len(lines))

	for _, line := range lines {
		if i, ok := index[line.ProductID]; ok {
			grouped[i].Quantity += line.Quantity
			continue
		}
		index[line.ProductID] = len(grouped)
		grouped = append(grouped, line)
	}

	return grouped
}
