package table

// Ellipsis marks a skipped page gap in the items returned by BuildPageItems.
const Ellipsis = -1

// BuildPageItems computes the windowed pagination items for a pager: the
// first and last boundaryCount page numbers, the current page with
// siblingCount neighbours on each side, and a single Ellipsis wherever more
// than one page number is skipped. A gap of exactly one page renders the
// page number itself. The result never contains duplicates or two adjacent
// ellipses, and holds for every (current, total) pair after clamping.
func BuildPageItems(current, total, siblingCount, boundaryCount int) []int {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}
	if siblingCount < 0 {
		siblingCount = 0
	}
	if boundaryCount < 0 {
		boundaryCount = 0
	}

	startPages := pageRange(1, min(boundaryCount, total))
	endPages := pageRange(max(total-boundaryCount+1, boundaryCount+1), total)

	siblingsStart := max(
		min(current-siblingCount, total-boundaryCount-siblingCount*2-1),
		boundaryCount+2,
	)
	siblingsEnd := min(
		max(current+siblingCount, boundaryCount+siblingCount*2+2),
		total-boundaryCount-1,
	)

	items := make([]int, 0, boundaryCount*2+siblingCount*2+3)
	items = append(items, startPages...)

	switch {
	case siblingsStart > boundaryCount+2:
		items = append(items, Ellipsis)
	case boundaryCount+1 < total-boundaryCount:
		// Gap of exactly one page: render the number instead of an ellipsis.
		items = append(items, boundaryCount+1)
	}

	items = append(items, pageRange(siblingsStart, siblingsEnd)...)

	switch {
	case siblingsEnd < total-boundaryCount-1:
		items = append(items, Ellipsis)
	case total-boundaryCount > boundaryCount:
		items = append(items, total-boundaryCount)
	}

	return append(items, endPages...)
}

func pageRange(start, end int) []int {
	if start > end {
		return nil
	}
	out := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		out = append(out, p)
	}
	return out
}
