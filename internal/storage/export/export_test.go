package export

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatAllocator/internal/models"
)

func sampleResult() *models.AllocationResult {
	first := &models.TicketRequest{
		Row:        2,
		Timestamp:  time.Date(2025, 5, 14, 17, 51, 7, 0, time.UTC),
		MemberName: "Ann",
		HolderName: "Ann",
		Tickets:    2,
		Pickup:     "Box office",
	}
	second := &models.TicketRequest{
		Row:        3,
		Timestamp:  time.Date(2025, 5, 14, 18, 2, 30, 0, time.UTC),
		MemberName: "Ben",
		HolderName: "Ben's mother",
		Tickets:    3,
	}

	return &models.AllocationResult{
		Assignments: []models.SeatAssignment{
			{Block: "block-1", Seat: "A1", Request: first},
			{Block: "block-1", Seat: "A2", Request: first},
			{Block: "block-2", Seat: "B1", Request: second},
			{Block: "block-2", Seat: "B2", Request: nil},
		},
		Unsatisfied: []models.UnsatisfiedRequest{
			{Request: second, Remaining: 2},
		},
	}
}

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "allocation.csv")

	require.NoError(t, NewWriter(path).Write(sampleResult()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "\ufeff"), "export must start with a UTF-8 BOM")

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(raw), "\ufeff"))).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 5, "header, three filled seats, one unsatisfied request")
	assert.Equal(t, []string{
		"Block", "Seat Number", "Member Name", "Ticket Holder Name",
		"Number of Tickets", "Pickup Method", "Allocation Time",
	}, records[0])

	assert.Equal(t, []string{"Block 1", "A1", "Ann", "Ann", "1", "Box office", "2025/05/14 17:51:07"}, records[1])
	assert.Equal(t, []string{"Block 1", "A2", "Ann", "Ann", "1", "Box office", "2025/05/14 17:51:07"}, records[2])
	assert.Equal(t, []string{"Block 2", "B1", "Ben", "Ben's mother", "1", "", "2025/05/14 18:02:30"}, records[3])

	assert.Equal(t, []string{"N/A (Unassigned)", "N/A", "Ben", "Ben's mother", "2", "", "2025/05/14 18:02:30"}, records[4],
		"unsatisfied row carries the tickets still needed, not the requested count")
}

func TestWriter_EmptyResult(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.csv")

	result := &models.AllocationResult{
		Assignments: []models.SeatAssignment{
			{Block: "block-1", Seat: "A1", Request: nil},
		},
	}
	require.NoError(t, NewWriter(path).Write(result))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(raw), "\ufeff"))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "empty seats are not exported, only the header remains")
}

func TestNewWriter_AppendsExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "no extension", in: "allocation", want: "allocation.csv"},
		{name: "extension present", in: "allocation.csv", want: "allocation.csv"},
		{name: "uppercase extension", in: "allocation.CSV", want: "allocation.CSV"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			writer := NewWriter(filepath.Join(dir, tc.in))
			assert.Equal(t, filepath.Join(dir, tc.want), writer.Path())
		})
	}
}

func TestWriter_UnwritablePath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "deep", "allocation.csv")

	err := NewWriter(path).Write(sampleResult())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create export file")
}

// rejectingWriter fails every write, like a device with no space left.
type rejectingWriter struct{}

func (rejectingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("no space left on device")
}

func TestWriteTable_WriteFailure(t *testing.T) {
	t.Parallel()

	err := writeTable(rejectingWriter{}, sampleResult())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to flush export file")
	assert.Contains(t, err.Error(), "no space left on device")
}

func TestReader_ReservedSeats_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "allocation.csv")
	require.NoError(t, NewWriter(path).Write(sampleResult()))

	reserved, err := NewReader(path).ReservedSeats()
	require.NoError(t, err)

	assert.Equal(t, map[string]struct{}{
		"A1":  {},
		"A2":  {},
		"B1":  {},
		"N/A": {},
	}, reserved)
}

func TestReader_ReservedSeats_PlainFile(t *testing.T) {
	t.Parallel()

	// Hand-maintained file without a BOM and with a reduced column set.
	path := filepath.Join(t.TempDir(), "preserved-seats.csv")
	content := "Seat Number,Ticket Holder Name\nA1,Ann\nB2,Ben\nA1,Ann\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	reserved, err := NewReader(path).ReservedSeats()
	require.NoError(t, err)

	assert.Equal(t, map[string]struct{}{"A1": {}, "B2": {}}, reserved)
}

func TestReader_ReservedSeats_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "empty file",
			content: "",
			wantErr: "is empty",
		},
		{
			name:    "missing seat column",
			content: "Block,Holder\nBlock 1,Ann\n",
			wantErr: `has no "Seat Number" column`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "reserved.csv")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			reserved, err := NewReader(path).ReservedSeats()
			require.Error(t, err)
			assert.Nil(t, reserved)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestReader_ReservedSeats_MissingFile(t *testing.T) {
	t.Parallel()

	reserved, err := NewReader(filepath.Join(t.TempDir(), "nope.csv")).ReservedSeats()
	require.Error(t, err)
	assert.Nil(t, reserved)
	assert.Contains(t, err.Error(), "failed to open reserved seats file")
}

func TestReader_ReservedSeats_ShortRows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "reserved.csv")
	content := "Block,Seat Number\nBlock 1,A1\nBlock 2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	reserved, err := NewReader(path).ReservedSeats()
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"A1": {}}, reserved, "rows without the seat column are ignored")
}
