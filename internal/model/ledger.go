package model

// Ledger records which characters have been chosen in the current rotation cycle
type Ledger struct {
	SelectedIDs   []int  `json:"selectedIds"`
	LastResetDate string `json:"lastResetDate"` // YYYY-MM-DD, local
}

// NewLedger creates an empty ledger stamped with the given date
func NewLedger(date string) *Ledger {
	return &Ledger{
		SelectedIDs:   []int{},
		LastResetDate: date,
	}
}

// Contains reports whether id has been used in this cycle
func (l *Ledger) Contains(id int) bool {
	for _, used := range l.SelectedIDs {
		if used == id {
			return true
		}
	}
	return false
}

// Reset clears the ledger and stamps it with date
func (l *Ledger) Reset(date string) {
	l.SelectedIDs = []int{}
	l.LastResetDate = date
}

// SelectionInfo is a read-only snapshot of the ledger against the roster
type SelectionInfo struct {
	UsedCount      int    `json:"usedCount"`
	TotalCount     int    `json:"totalCount"`
	RemainingCount int    `json:"remainingCount"`
	LastResetDate  string `json:"lastResetDate"`
}
