package models

// AttendanceSource tells which check-in path produced a record.
type AttendanceSource string

const (
	SourceSolo  AttendanceSource = "solo"
	SourceParty AttendanceSource = "party"
)

// DateLayout is the layout of AttendanceRecord.Date.
const DateLayout = "2006-01-02"

// AttendanceRecord is one day of gym attendance for one user.
// (UserID, Date) is unique regardless of Source.
type AttendanceRecord struct {
	// ID is the unique identifier for the record (UUID format).
	ID string

	UserID string

	// Date is the calendar day in the attendance time zone.
	Date string

	// CheckedInAt is the Unix timestamp of the check-in.
	CheckedInAt int64

	// PhotoURL is the durable reference of the check-in photo, if any.
	PhotoURL string

	// PartyID is set when the record came from a party check-in.
	PartyID string

	Source AttendanceSource
}
