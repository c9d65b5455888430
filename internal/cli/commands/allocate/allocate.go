package allocate

import (
	"errors"
	"log/slog"

	"seatAllocator/internal/models"
	"seatAllocator/internal/seating"
)

var (
	ErrNoSeats    = errors.New("no available seats could be read")
	ErrNoRequests = errors.New("no valid audience requests could be read")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SeatSource
type SeatSource interface {
	LoadBlocks() ([]models.SeatBlock, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AudienceSource
type AudienceSource interface {
	LoadRequests() ([]models.TicketRequest, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Renderer
type Renderer interface {
	Render(result *models.AllocationResult) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TableWriter
type TableWriter interface {
	Write(result *models.AllocationResult) error
}

// New builds the allocate command: load the inventory and the requests, run
// the allocation, print the report and export the table. A nil writer skips
// the export, matching a blank output path.
func New(log *slog.Logger, seats SeatSource, audience AudienceSource, renderer Renderer, writer TableWriter) func() error {
	return func() error {
		const op = "commands.allocate.New"

		log := log.With(slog.String("op", op))

		log.Info("reading seat inventory")

		blocks, err := seats.LoadBlocks()
		if err != nil {
			return err
		}
		if len(blocks) == 0 {
			return ErrNoSeats
		}

		log.Info("reading audience requests")

		requests, err := audience.LoadRequests()
		if err != nil {
			return err
		}
		if len(requests) == 0 {
			return ErrNoRequests
		}

		log.Info("assigning seats",
			slog.Int("blocks", len(blocks)),
			slog.Int("requests", len(requests)))

		result, err := seating.Allocate(blocks, requests)
		if err != nil {
			return err
		}

		log.Info("seat assignment complete",
			slog.Int("filled", result.FilledSeats()),
			slog.Int("empty", result.EmptySeats()),
			slog.Int("unsatisfied", len(result.Unsatisfied)))

		if err := renderer.Render(result); err != nil {
			return err
		}

		if writer == nil {
			log.Info("no output file configured, skipping CSV export")
			return nil
		}

		if err := writer.Write(result); err != nil {
			return err
		}

		log.Info("allocation table exported")

		return nil
	}
}
