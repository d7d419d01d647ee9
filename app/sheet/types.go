package sheet

import "context"

// Columns of a recorded submission, in spreadsheet order.
var Columns = []string{"date", "time", "topic", "name", "company", "email", "phone", "promotion", "message"}

// Counter is implemented by recorders that can report how many rows they hold.
type Counter interface {
	Count(ctx context.Context) (int, error)
}
