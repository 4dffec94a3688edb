package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStickerValid(t *testing.T) {
	s, err := NewSticker(10, "Player", "Team A")
	require.NoError(t, err)
	require.Equal(t, int64(10), s.Number)
	require.Equal(t, "Player", s.Name)
	require.Equal(t, "Team A", s.Team)
}

func TestNewStickerInvalid(t *testing.T) {
	tests := []struct {
		name        string
		number      int64
		stickerName string
		team        string
	}{
		{name: "missing number", stickerName: "Player", team: "Team A"},
		{name: "missing name", number: 10, team: "Team A"},
		{name: "missing team", number: 10, stickerName: "Player"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSticker(tt.number, tt.stickerName, tt.team)
			require.ErrorIs(t, err, ErrInvalidParam)
		})
	}
}
