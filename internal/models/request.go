package models

import "time"

// TicketRequest is one validated row from the audience registration file.
// HolderName is already resolved: a blank ticket-holder field falls back to
// the member name before the request reaches the allocation engine.
type TicketRequest struct {
	Row        int // 1-based line in the source CSV; the header is line 1
	Timestamp  time.Time
	MemberName string
	HolderName string
	Tickets    int
	Pickup     string
}
