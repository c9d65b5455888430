package available

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatAllocator/internal/cli/commands/available/mocks"
	"seatAllocator/internal/lib/logger/handlers/slogdiscard"
	"seatAllocator/internal/models"
)

func TestAvailableCommand(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	inventory := []models.SeatBlock{
		{Name: "block-2", Seats: []string{"B2", "B1"}},
		{Name: "block-1", Seats: []string{"A1", "A2"}},
	}

	testCases := []struct {
		name       string
		mockSetup  func(seats *mocks.SeatSource, reserved *mocks.ReservedSource)
		wantOutput string
		wantErr    string
	}{
		{
			name: "Reserved seats filtered, rest sorted",
			mockSetup: func(seats *mocks.SeatSource, reserved *mocks.ReservedSource) {
				seats.On("LoadBlocks").Return(inventory, nil)
				reserved.On("ReservedSeats").Return(map[string]struct{}{
					"A2":  {},
					"B1":  {},
					"N/A": {},
				}, nil)
			},
			wantOutput: "Available (not preserved) seat: A1\n" +
				"Available (not preserved) seat: B2\n",
		},
		{
			name: "Nothing reserved",
			mockSetup: func(seats *mocks.SeatSource, reserved *mocks.ReservedSource) {
				seats.On("LoadBlocks").Return(inventory, nil)
				reserved.On("ReservedSeats").Return(map[string]struct{}{}, nil)
			},
			wantOutput: "Available (not preserved) seat: A1\n" +
				"Available (not preserved) seat: A2\n" +
				"Available (not preserved) seat: B1\n" +
				"Available (not preserved) seat: B2\n",
		},
		{
			name: "Duplicate inventory fails before the reserved file is read",
			mockSetup: func(seats *mocks.SeatSource, reserved *mocks.ReservedSource) {
				seats.On("LoadBlocks").Return([]models.SeatBlock{
					{Name: "block-1", Seats: []string{"B1", "A1"}},
					{Name: "block-2", Seats: []string{"A1", "B1"}},
				}, nil)
			},
			wantErr: "duplicate seat numbers found in inventory: A1, B1",
		},
		{
			name: "Inventory unreadable",
			mockSetup: func(seats *mocks.SeatSource, reserved *mocks.ReservedSource) {
				seats.On("LoadBlocks").Return(nil, errors.New("failed to read seat inventory"))
			},
			wantErr: "failed to read seat inventory",
		},
		{
			name: "Reserved file unreadable",
			mockSetup: func(seats *mocks.SeatSource, reserved *mocks.ReservedSource) {
				seats.On("LoadBlocks").Return(inventory, nil)
				reserved.On("ReservedSeats").Return(nil, errors.New("failed to open reserved seats file"))
			},
			wantErr: "failed to open reserved seats file",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			seatsMock := mocks.NewSeatSource(t)
			reservedMock := mocks.NewReservedSource(t)
			tc.mockSetup(seatsMock, reservedMock)

			var out bytes.Buffer
			err := New(logger, seatsMock, reservedMock, &out)()

			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantOutput, out.String())
		})
	}
}
