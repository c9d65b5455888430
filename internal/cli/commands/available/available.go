package available

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"seatAllocator/internal/models"
	"seatAllocator/internal/seating"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SeatSource
type SeatSource interface {
	LoadBlocks() ([]models.SeatBlock, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservedSource
type ReservedSource interface {
	ReservedSeats() (map[string]struct{}, error)
}

// New builds the available command: list every inventory seat that does not
// appear in a previously exported allocation table, in lexical order. An
// inventory with duplicate seat identifiers fails the run, a set difference
// over it would be meaningless.
func New(log *slog.Logger, seats SeatSource, reserved ReservedSource, out io.Writer) func() error {
	return func() error {
		const op = "commands.available.New"

		log := log.With(slog.String("op", op))

		blocks, err := seats.LoadBlocks()
		if err != nil {
			return err
		}

		if duplicates := seating.FindDuplicates(blocks); len(duplicates) > 0 {
			seatIDs := make([]string, len(duplicates))
			for i, duplicate := range duplicates {
				seatIDs[i] = duplicate.Seat
			}
			slices.Sort(seatIDs)

			return fmt.Errorf("duplicate seat numbers found in inventory: %s", strings.Join(seatIDs, ", "))
		}

		taken, err := reserved.ReservedSeats()
		if err != nil {
			return err
		}

		var inventory []string
		for _, block := range blocks {
			inventory = append(inventory, block.Seats...)
		}
		slices.Sort(inventory)

		free := 0
		for _, seat := range inventory {
			if _, ok := taken[seat]; ok {
				continue
			}
			fmt.Fprintf(out, "Available (not preserved) seat: %s\n", seat)
			free++
		}

		log.Info("available seats listed",
			slog.Int("inventory", len(inventory)),
			slog.Int("reserved", len(taken)),
			slog.Int("available", free))

		return nil
	}
}
