package borrowinghistory

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

// historyWire is the JSON shape consumed by caller-facing layers. Dates are
// rendered date-only; returnDate is omitted while the loan is open.
type historyWire struct {
	UserID  string      `json:"userId"`
	Entries []entryWire `json:"entries"`
}

type entryWire struct {
	LoanID     string `json:"loanId"`
	Title      string `json:"title"`
	BorrowDate string `json:"borrowDate"`
	ReturnDate string `json:"returnDate,omitempty"`
	Fine       int64  `json:"fine"`
}

// ToJSON encodes the history for caller-facing layers.
func (h History) ToJSON() ([]byte, error) {
	wire := historyWire{
		UserID:  h.UserID,
		Entries: make([]entryWire, 0, len(h.entries)),
	}

	for _, entry := range h.entries {
		w := entryWire{
			LoanID:     entry.LoanID,
			Title:      entry.Title,
			BorrowDate: entry.BorrowDate.Format(time.DateOnly),
			Fine:       entry.Fine,
		}

		if !entry.IsOpen() {
			w.ReturnDate = entry.ReturnDate.Format(time.DateOnly)
		}

		wire.Entries = append(wire.Entries, w)
	}

	return jsoniter.ConfigFastest.Marshal(wire)
}
