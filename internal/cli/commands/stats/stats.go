package stats

import (
	"fmt"
	"io"
	"log/slog"

	"seatAllocator/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SeatSource
type SeatSource interface {
	LoadBlocks() ([]models.SeatBlock, error)
}

// New builds the stats command: per-block seat counts in document order and
// the inventory total.
func New(log *slog.Logger, seats SeatSource, out io.Writer) func() error {
	return func() error {
		const op = "commands.stats.New"

		log := log.With(slog.String("op", op))

		blocks, err := seats.LoadBlocks()
		if err != nil {
			return err
		}

		total := 0
		for _, block := range blocks {
			fmt.Fprintf(out, "Block: %s\n", block.Name)
			fmt.Fprintf(out, "Number of seats: %d\n", len(block.Seats))
			fmt.Fprintln(out, "========")
			total += len(block.Seats)
		}
		fmt.Fprintf(out, "Total number of seats: %d\n", total)

		log.Info("inventory summarized",
			slog.Int("blocks", len(blocks)),
			slog.Int("seats", total))

		return nil
	}
}
