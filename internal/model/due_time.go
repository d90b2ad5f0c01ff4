package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DueTimeLayout is the text form of a task deadline in the store. Keeping
// the column as formatted text makes range queries plain lexicographic
// comparisons on both the sqlite and mysql backends.
const DueTimeLayout = "2006-01-02 15:04:05"

// DueTime is a task deadline persisted as DueTimeLayout text. A stored
// value that does not parse is kept in raw form instead of failing the
// whole result set; TaskRepository decides what to do with such rows
// according to its DueTimePolicy.
type DueTime struct {
	time.Time
	raw string
}

// NewDueTime truncates t to second precision, matching what the column
// can hold.
func NewDueTime(t time.Time) DueTime {
	return DueTime{Time: t.Truncate(time.Second)}
}

// Malformed returns the unparseable stored text, if any.
func (d DueTime) Malformed() (string, bool) { return d.raw, d.raw != "" }

// Scan implements sql.Scanner. Parse failures do not error; they flag the
// value as malformed and leave the decision to the caller.
func (d *DueTime) Scan(value any) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		*d = NewDueTime(v)
		return nil
	case nil:
		*d = DueTime{raw: "<null>"}
		return nil
	default:
		return fmt.Errorf("due time: unsupported column type %T", value)
	}

	t, err := time.ParseInLocation(DueTimeLayout, s, time.Local)
	if err != nil {
		*d = DueTime{raw: s}
		return nil
	}
	*d = DueTime{Time: t}
	return nil
}

// Value implements driver.Valuer.
func (d DueTime) Value() (driver.Value, error) {
	return d.Time.Format(DueTimeLayout), nil
}

func (d DueTime) String() string { return d.Time.Format(DueTimeLayout) }
