// Package export writes the final allocation table as a CSV file and reads
// previously exported tables back. Files are written UTF-8 with a BOM so
// spreadsheet tools detect the encoding; the reader tolerates files with or
// without one.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"seatAllocator/internal/models"
)

const timeLayout = "2006/01/02 15:04:05"

const seatNumberColumn = "Seat Number"

var header = []string{
	"Block",
	seatNumberColumn,
	"Member Name",
	"Ticket Holder Name",
	"Number of Tickets",
	"Pickup Method",
	"Allocation Time",
}

// Writer exports an allocation result to one CSV file.
type Writer struct {
	path string
}

// NewWriter prepares a writer for path, appending the .csv extension when
// it is missing.
func NewWriter(path string) *Writer {
	if !strings.HasSuffix(strings.ToLower(path), ".csv") {
		path += ".csv"
	}

	return &Writer{path: path}
}

// Path returns the file the writer will create, extension included.
func (w *Writer) Path() string {
	return w.path
}

// Write renders the allocation table: one row per filled seat with a ticket
// count of 1, then one row per unsatisfied request carrying the tickets it
// still needs, with no block or seat number. Empty seats are not exported.
func (w *Writer) Write(result *models.AllocationResult) error {
	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	if err := writeTable(file, result); err != nil {
		return err
	}

	// The deferred Close only cleans up after earlier failures; the close
	// that commits the data must report its error.
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}

	return nil
}

func writeTable(out io.Writer, result *models.AllocationResult) error {
	bomWriter := transform.NewWriter(out, unicode.UTF8BOM.NewEncoder())
	csvWriter := csv.NewWriter(bomWriter)

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for _, assignment := range result.Assignments {
		if assignment.Request == nil {
			continue
		}

		request := assignment.Request
		record := []string{
			models.BlockDisplayName(assignment.Block),
			assignment.Seat,
			request.MemberName,
			request.HolderName,
			"1",
			request.Pickup,
			formatTime(request),
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("failed to write seat row: %w", err)
		}
	}

	for _, entry := range result.Unsatisfied {
		request := entry.Request
		record := []string{
			"N/A (Unassigned)",
			"N/A",
			request.MemberName,
			request.HolderName,
			strconv.Itoa(entry.Remaining),
			request.Pickup,
			formatTime(request),
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("failed to write unassigned row: %w", err)
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush export file: %w", err)
	}

	if err := bomWriter.Close(); err != nil {
		return fmt.Errorf("failed to flush export file: %w", err)
	}

	return nil
}

func formatTime(request *models.TicketRequest) string {
	if request.Timestamp.IsZero() {
		return ""
	}

	return request.Timestamp.Format(timeLayout)
}

// Reader reads the seats already taken according to an exported table.
type Reader struct {
	path string
}

func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// ReservedSeats returns the set of values in the "Seat Number" column. The
// column is found by header name, so any CSV that carries one works, not
// just files produced by Writer.
func (r *Reader) ReservedSeats() (map[string]struct{}, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reserved seats file: %w", err)
	}
	defer file.Close()

	csvReader := csv.NewReader(transform.NewReader(file, unicode.UTF8BOM.NewDecoder()))
	csvReader.FieldsPerRecord = -1

	headerRecord, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reserved seats file %s is empty", r.path)
		}
		return nil, fmt.Errorf("failed to read reserved seats header: %w", err)
	}

	seatColumn := -1
	for i, name := range headerRecord {
		if strings.TrimSpace(name) == seatNumberColumn {
			seatColumn = i
			break
		}
	}
	if seatColumn == -1 {
		return nil, fmt.Errorf("reserved seats file %s has no %q column", r.path, seatNumberColumn)
	}

	reserved := make(map[string]struct{})
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read reserved seats file: %w", err)
		}

		if seatColumn >= len(record) {
			continue
		}
		reserved[record[seatColumn]] = struct{}{}
	}

	return reserved, nil
}
