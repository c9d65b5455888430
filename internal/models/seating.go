package models

import "strings"

// SeatBlock is an ordered run of seat identifiers from the inventory file.
// Blocks are immutable once loaded; the numeric ordering key is derived
// from Name by the allocation engine.
type SeatBlock struct {
	Name  string
	Seats []string
}

// SeatAssignment binds one physical seat to the request that filled it.
// Request is nil for seats that stayed empty.
type SeatAssignment struct {
	Block   string
	Seat    string
	Request *TicketRequest
}

// UnsatisfiedRequest reports a request that did not receive its full ticket
// count. Remaining is the unmet part, not the originally requested count.
type UnsatisfiedRequest struct {
	Request   *TicketRequest
	Remaining int
}

// Granted returns how many tickets the request actually received.
func (u UnsatisfiedRequest) Granted() int {
	return u.Request.Tickets - u.Remaining
}

// AllocationResult is the outcome of one allocation pass: exactly one
// assignment per physical seat (filled or empty) in seating order, plus one
// unsatisfied entry per request that fell short, in request order.
type AllocationResult struct {
	Assignments []SeatAssignment
	Unsatisfied []UnsatisfiedRequest
}

// TotalSeats returns the size of the inventory the result covers.
func (r *AllocationResult) TotalSeats() int {
	return len(r.Assignments)
}

// FilledSeats returns the number of seats bound to a request.
func (r *AllocationResult) FilledSeats() int {
	filled := 0
	for _, assignment := range r.Assignments {
		if assignment.Request != nil {
			filled++
		}
	}
	return filled
}

// EmptySeats returns the number of seats no request reached.
func (r *AllocationResult) EmptySeats() int {
	return r.TotalSeats() - r.FilledSeats()
}

// BlockDisplayName returns the human form of a block name as it appears in
// reports and exports: "block-1" becomes "Block 1".
func BlockDisplayName(name string) string {
	return strings.ReplaceAll(name, "block-", "Block ")
}
