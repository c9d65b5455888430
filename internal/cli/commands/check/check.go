package check

import (
	"fmt"
	"io"
	"log/slog"

	"seatAllocator/internal/models"
	"seatAllocator/internal/seating"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SeatSource
type SeatSource interface {
	LoadBlocks() ([]models.SeatBlock, error)
}

// New builds the check command: scan the inventory for duplicate seat
// identifiers. Duplicates are listed and reported as an error so the
// process exits non-zero; an inventory with duplicates must not be used
// for an allocation run.
func New(log *slog.Logger, seats SeatSource, out io.Writer) func() error {
	return func() error {
		const op = "commands.check.New"

		log := log.With(slog.String("op", op))

		blocks, err := seats.LoadBlocks()
		if err != nil {
			return err
		}

		duplicates := seating.FindDuplicates(blocks)
		if len(duplicates) == 0 {
			fmt.Fprintln(out, "No duplicate seats found.")
			log.Info("inventory checked", slog.Int("blocks", len(blocks)))

			return nil
		}

		fmt.Fprintln(out, "Duplicate seats found:")
		for _, duplicate := range duplicates {
			fmt.Fprintf(out, "%s (count: %d)\n", duplicate.Seat, duplicate.Count)
		}

		return fmt.Errorf("%d duplicate seat identifiers in inventory", len(duplicates))
	}
}
