package stats

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatAllocator/internal/cli/commands/stats/mocks"
	"seatAllocator/internal/lib/logger/handlers/slogdiscard"
	"seatAllocator/internal/models"
)

func TestStatsCommand(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name       string
		mockSetup  func(mock *mocks.SeatSource)
		wantOutput string
		wantErr    string
	}{
		{
			name: "Two blocks",
			mockSetup: func(mock *mocks.SeatSource) {
				mock.On("LoadBlocks").Return([]models.SeatBlock{
					{Name: "block-1", Seats: []string{"A1", "A2", "A3"}},
					{Name: "block-2", Seats: []string{"B1", "B2"}},
				}, nil)
			},
			wantOutput: "Block: block-1\n" +
				"Number of seats: 3\n" +
				"========\n" +
				"Block: block-2\n" +
				"Number of seats: 2\n" +
				"========\n" +
				"Total number of seats: 5\n",
		},
		{
			name: "Empty inventory",
			mockSetup: func(mock *mocks.SeatSource) {
				mock.On("LoadBlocks").Return([]models.SeatBlock{}, nil)
			},
			wantOutput: "Total number of seats: 0\n",
		},
		{
			name: "Loader failure",
			mockSetup: func(mock *mocks.SeatSource) {
				mock.On("LoadBlocks").Return(nil, errors.New("failed to read seat inventory"))
			},
			wantErr: "failed to read seat inventory",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			seatsMock := mocks.NewSeatSource(t)
			tc.mockSetup(seatsMock)

			var out bytes.Buffer
			err := New(logger, seatsMock, &out)()

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
