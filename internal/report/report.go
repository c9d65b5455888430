// Package report renders an allocation result as the console seating
// report: filled seats grouped by block, then the requests that could not
// be seated. Section and block headers are colored when the terminal
// supports it; the content lines stay plain so the report can be piped.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"seatAllocator/internal/models"
)

const timeLayout = "2006/01/02 15:04:05"

type Presenter struct {
	out io.Writer
}

func New(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

func (p *Presenter) Render(result *models.AllocationResult) error {
	out := &errWriter{w: p.out}

	fmt.Fprintln(out, color.CyanString("--- Seating Assignment Results ---"))

	anyAssigned := false
	currentBlock := ""
	for _, assignment := range result.Assignments {
		if assignment.Request == nil {
			continue
		}

		if assignment.Block != currentBlock {
			currentBlock = assignment.Block
			fmt.Fprintf(out, "\n%s ======\n", color.YellowString(models.BlockDisplayName(assignment.Block)))
		}
		anyAssigned = true

		fmt.Fprintln(out, seatLine(assignment))
	}

	if !anyAssigned && len(result.Unsatisfied) == 0 {
		fmt.Fprintln(out, "No seats were assigned and no requests were left waiting.")
	} else if !anyAssigned {
		fmt.Fprintln(out, "No seats were successfully assigned.")
	}

	if len(result.Unsatisfied) > 0 {
		fmt.Fprintf(out, "\n%s\n", color.CyanString("--- Requests That Could Not Be Seated ---"))
		for _, entry := range result.Unsatisfied {
			fmt.Fprintf(out, "- Ticket Holder: %s, Tickets: %d, Time: %s (Original CSV Row: %d)\n",
				entry.Request.HolderName,
				entry.Remaining,
				entry.Request.Timestamp.Format(timeLayout),
				entry.Request.Row,
			)
		}
	}

	if out.err != nil {
		return fmt.Errorf("failed to write seating report: %w", out.err)
	}

	return nil
}

// errWriter latches the first write failure; later writes become no-ops so
// the render loop stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}

	var n int
	n, ew.err = ew.w.Write(p)

	return n, ew.err
}

// seatLine formats one filled seat. Member and pickup segments are omitted
// when blank so sparse registration rows stay readable.
func seatLine(assignment models.SeatAssignment) string {
	request := assignment.Request

	line := assignment.Seat + ": "
	if request.MemberName != "" {
		line += "Member: " + request.MemberName + " "
	}
	line += "Ticket Holder: " + request.HolderName
	if request.Pickup != "" {
		line += " Pickup Method: " + request.Pickup
	}
	if !request.Timestamp.IsZero() {
		line += " Allocation Time: " + request.Timestamp.Format(timeLayout)
	}

	return line
}
