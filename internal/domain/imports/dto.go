package imports

// CheckinRow is one pre-parsed row of a check-in export. Line is the 1-based
// source line used for error reporting.
type CheckinRow struct {
	Line      int
	UserID    string
	CheckTime string
}

// EmployeeRow is one pre-parsed row of a roster export.
type EmployeeRow struct {
	Line        int
	UserID      string
	BadgeNumber string
	Name        string
}

type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	BatchID  string     `json:"batch_id"`
	Received int        `json:"received"`
	Written  int        `json:"written"`
	Skipped  int        `json:"skipped"`
	Failed   int        `json:"failed"`
	Chunks   int        `json:"chunks"`
	Aborted  bool       `json:"aborted"`
	Errors   []RowError `json:"errors,omitempty"`
}
