// Package seating implements the allocation engine: a single deterministic
// pass that binds audience requests to physical seats.
//
// Ordering policy lives here, not in the loaders. Blocks are processed in
// ascending order of the integer embedded in their name, seats in declared
// order within a block, requests in timestamp order with the original CSV
// row as tie-break. Callers may pass both sequences unsorted; Allocate
// sorts copies and never mutates its inputs.
package seating

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"seatAllocator/internal/models"
)

var blockNumber = regexp.MustCompile(`\d+`)

// BlockKey extracts the numeric ordering key from a block name: the first
// run of digits, wherever it appears ("block-12" and "Block 12 left" both
// yield 12). A name without digits violates the inventory contract.
func BlockKey(name string) (int, error) {
	digits := blockNumber.FindString(name)
	if digits == "" {
		return 0, fmt.Errorf("block name %q has no numeric component", name)
	}
	key, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("block name %q: %w", name, err)
	}
	return key, nil
}

// Duplicate is a seat identifier that occurs more than once in the
// inventory, with its occurrence count.
type Duplicate struct {
	Seat  string
	Count int
}

// FindDuplicates scans the whole inventory for repeated seat identifiers,
// across block boundaries, and reports them in first-seen order.
func FindDuplicates(blocks []models.SeatBlock) []Duplicate {
	counts := make(map[string]int)
	var order []string

	for _, block := range blocks {
		for _, seat := range block.Seats {
			if counts[seat] == 0 {
				order = append(order, seat)
			}
			counts[seat]++
		}
	}

	var duplicates []Duplicate
	for _, seat := range order {
		if counts[seat] > 1 {
			duplicates = append(duplicates, Duplicate{Seat: seat, Count: counts[seat]})
		}
	}
	return duplicates
}

// Allocate assigns seats to requests in strict arrival order. It flattens
// the sorted blocks into one seat sequence and advances a single cursor
// over it: each request takes consecutive seats until it is satisfied or
// the inventory runs out. A request that falls short produces an
// UnsatisfiedRequest carrying the unmet count; once the cursor is
// exhausted every later request is unsatisfied in full without another
// scan. Requests with a non-positive ticket count consume nothing and
// produce no entry.
//
// Capacity exhaustion is regular result data. An error is returned only
// for structural contract violations: a duplicate seat identifier anywhere
// in the inventory, or a block name without a numeric component.
func Allocate(blocks []models.SeatBlock, requests []models.TicketRequest) (*models.AllocationResult, error) {
	if duplicates := FindDuplicates(blocks); len(duplicates) > 0 {
		seatIDs := make([]string, len(duplicates))
		for i, duplicate := range duplicates {
			seatIDs[i] = duplicate.Seat
		}
		return nil, fmt.Errorf("duplicate seat identifiers in inventory: %s", strings.Join(seatIDs, ", "))
	}

	type keyedBlock struct {
		models.SeatBlock
		key int
	}

	ordered := make([]keyedBlock, len(blocks))
	total := 0
	for i, block := range blocks {
		key, err := BlockKey(block.Name)
		if err != nil {
			return nil, err
		}
		ordered[i] = keyedBlock{SeatBlock: block, key: key}
		total += len(block.Seats)
	}
	slices.SortStableFunc(ordered, func(a, b keyedBlock) int {
		return cmp.Compare(a.key, b.key)
	})

	queue := slices.Clone(requests)
	slices.SortStableFunc(queue, func(a, b models.TicketRequest) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(a.Row, b.Row)
	})

	assignments := make([]models.SeatAssignment, 0, total)
	for _, block := range ordered {
		for _, seat := range block.Seats {
			assignments = append(assignments, models.SeatAssignment{Block: block.Name, Seat: seat})
		}
	}

	var unsatisfied []models.UnsatisfiedRequest
	cursor := 0
	for i := range queue {
		request := &queue[i]

		need := request.Tickets
		if need <= 0 {
			// Upstream validation excludes these; tolerate them anyway.
			continue
		}

		for need > 0 && cursor < len(assignments) {
			assignments[cursor].Request = request
			cursor++
			need--
		}

		if need > 0 {
			unsatisfied = append(unsatisfied, models.UnsatisfiedRequest{Request: request, Remaining: need})
		}
	}

	return &models.AllocationResult{Assignments: assignments, Unsatisfied: unsatisfied}, nil
}
