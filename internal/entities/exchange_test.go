package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewExchangeValid(t *testing.T) {
	e, err := NewExchange(1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, int64(1), e.NotificationID)
	require.Equal(t, int64(2), e.StickerNumber)
	require.Equal(t, int64(3), e.UserID)
}

func TestNewExchangeInvalid(t *testing.T) {
	tests := []struct {
		name           string
		notificationID int64
		stickerNumber  int64
		userID         int64
	}{
		{name: "missing notification id", stickerNumber: 2, userID: 3},
		{name: "missing sticker number", notificationID: 1, userID: 3},
		{name: "missing user id", notificationID: 1, stickerNumber: 2},
		{name: "multiple missing", notificationID: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExchange(tt.notificationID, tt.stickerNumber, tt.userID)
			require.ErrorIs(t, err, ErrInvalidParam)
		})
	}
}
