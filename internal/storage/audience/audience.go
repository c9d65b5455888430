// Package audience reads and normalizes ticket requests from the
// registration CSV. Everything the allocation engine must not worry about
// happens here: BOM stripping, locale-specific timestamp parsing, the
// holder-name fallback, and row validation. Rows that cannot be used are
// skipped with a warning; the batch fails only when the file itself cannot
// be read.
package audience

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"seatAllocator/internal/lib/logger/sl"
	"seatAllocator/internal/models"
)

// Column positions in the registration export. The header row is ignored;
// the layout is fixed by the form, not by column names.
const (
	columnTimestamp  = 0
	columnIdentity   = 1 // unused
	columnMember     = 2
	columnHolder     = 3
	columnCopiable   = 4 // unused
	columnInstrument = 5 // unused
	columnTickets    = 6
	columnPickup     = 7

	columnCount = 8
)

// Loader loads ticket requests from one audience file.
type Loader struct {
	log  *slog.Logger
	path string
}

func New(log *slog.Logger, path string) *Loader {
	return &Loader{log: log, path: path}
}

// LoadRequests reads every usable row, in file order. The engine owns
// sorting, so requests come back exactly as they appear in the file.
func (l *Loader) LoadRequests() ([]models.TicketRequest, error) {
	const op = "storage.audience.LoadRequests"

	log := l.log.With(slog.String("op", op), slog.String("file", l.path))

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audience file: %w", err)
	}
	defer file.Close()

	return l.readRequests(log, file)
}

// readRequests drives the CSV scan. A *csv.ParseError is confined to one
// row, so that row is skipped and the scan carries on; any other error
// comes from the stream itself and recurs on every Read, so it aborts the
// load.
func (l *Loader) readRequests(log *slog.Logger, src io.Reader) ([]models.TicketRequest, error) {
	// Spreadsheet exports are utf-8-sig; the decoder strips the BOM when
	// present and passes plain UTF-8 through untouched.
	reader := csv.NewReader(transform.NewReader(src, unicode.UTF8BOM.NewDecoder()))
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read audience header: %w", err)
	}

	var requests []models.TicketRequest
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, fmt.Errorf("failed to read audience file: %w", err)
			}

			log.Warn("skipping malformed row", slog.Int("row", row), sl.Err(err))
			continue
		}

		request, ok := l.parseRecord(log, row, record)
		if !ok {
			continue
		}
		requests = append(requests, request)
	}

	return requests, nil
}

func (l *Loader) parseRecord(log *slog.Logger, row int, record []string) (models.TicketRequest, bool) {
	if len(record) < columnCount {
		log.Warn("skipping improperly formatted row",
			slog.Int("row", row),
			slog.Int("fields", len(record)))
		return models.TicketRequest{}, false
	}

	memberName := strings.TrimSpace(record[columnMember])
	holderName := strings.TrimSpace(record[columnHolder])
	if holderName == "" {
		holderName = memberName
	}

	ticketsField := strings.TrimSpace(record[columnTickets])
	tickets := 0
	if ticketsField != "" {
		parsed, err := strconv.Atoi(ticketsField)
		if err != nil {
			log.Warn("skipping row with non-numeric ticket count",
				slog.Int("row", row),
				slog.String("tickets", ticketsField))
			return models.TicketRequest{}, false
		}
		tickets = parsed
	}
	if tickets <= 0 {
		// An empty form submission, not an error. Nothing to allocate.
		log.Debug("skipping row without tickets", slog.Int("row", row))
		return models.TicketRequest{}, false
	}

	timestamp, err := ParseTimestamp(strings.TrimSpace(record[columnTimestamp]))
	if err != nil {
		log.Warn("skipping row with unparsable allocation time", slog.Int("row", row), sl.Err(err))
		return models.TicketRequest{}, false
	}

	return models.TicketRequest{
		Row:        row,
		Timestamp:  timestamp,
		MemberName: memberName,
		HolderName: holderName,
		Tickets:    tickets,
		Pickup:     strings.TrimSpace(record[columnPickup]),
	}, true
}

// Meridiem markers accepted in allocation timestamps. The registration form
// localizes the AM/PM indicator; a zh locale writes 上午/下午.
var meridiems = map[string]bool{
	"上午": false,
	"AM": false,
	"am": false,
	"下午": true,
	"PM": true,
	"pm": true,
}

const timestampLayout = "2006/1/2 3:04:05"

// ParseTimestamp parses an allocation time of the form
// "YYYY/M/D <meridiem> H:MM:SS", e.g. "2025/5/14 下午 5:51:07".
func ParseTimestamp(value string) (time.Time, error) {
	datePart, rest, ok := strings.Cut(value, " ")
	if !ok {
		return time.Time{}, fmt.Errorf("timestamp %q has no time part", value)
	}
	marker, timePart, ok := strings.Cut(rest, " ")
	if !ok {
		return time.Time{}, fmt.Errorf("timestamp %q has no meridiem marker", value)
	}

	post, known := meridiems[marker]
	if !known {
		return time.Time{}, fmt.Errorf("timestamp %q: unknown meridiem marker %q", value, marker)
	}

	parsed, err := time.Parse(timestampLayout, datePart+" "+timePart)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: %w", value, err)
	}

	// The layout reads a 12-hour clock; shift afternoon hours forward and
	// pull 12 AM back to midnight.
	switch {
	case post && parsed.Hour() < 12:
		parsed = parsed.Add(12 * time.Hour)
	case !post && parsed.Hour() == 12:
		parsed = parsed.Add(-12 * time.Hour)
	}

	return parsed, nil
}
