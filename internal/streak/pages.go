package streak

// ComputePagesRead derives "pages read" from two cumulative page readings.
//
// The stored value is the page the reader is currently on, not a daily count,
// so the daily figure is the delta against the previous recorded day. Returns
// nil when nothing was logged today, the full current page when there is no
// prior reading (first log ever, page 0 is the implicit start), and nil when
// the page number went backwards: that means the book changed, and a nil keeps
// "new book" distinguishable from "read zero pages".
func ComputePagesRead(currentPage, previousPage *int) *int {
	if currentPage == nil {
		return nil
	}
	if previousPage == nil {
		v := *currentPage
		return &v
	}
	delta := *currentPage - *previousPage
	if delta < 0 {
		return nil
	}
	return &delta
}

// ReadingGoalMet reports whether a derived pages-read value meets the daily goal.
func ReadingGoalMet(pagesRead *int) bool {
	return pagesRead != nil && *pagesRead >= PagesGoal
}
