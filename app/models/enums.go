package models

// AttendanceState defines the possible states of a student's attendance mark.
type AttendanceState string

const (
	Present AttendanceState = "present"
	Absent  AttendanceState = "absent"
)

// FolderStatus defines the lifecycle states of a class folder.
type FolderStatus string

const (
	FolderOpen   FolderStatus = "open"
	FolderClosed FolderStatus = "closed"
)

// LogbookStatus defines the lifecycle states of a logbook.
type LogbookStatus string

const (
	LogbookActive   LogbookStatus = "active"
	LogbookFinished LogbookStatus = "finished"
)

// QuotationStatus defines the status of a quotation.
type QuotationStatus string

const (
	QuotationDraft    QuotationStatus = "draft"
	QuotationSent     QuotationStatus = "sent"
	QuotationAccepted QuotationStatus = "accepted"
	QuotationRejected QuotationStatus = "rejected"
)
