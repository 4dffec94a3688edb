package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUserStickerValid(t *testing.T) {
	us, err := NewUserSticker(1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, int64(1), us.Amount)
	require.Equal(t, int64(2), us.UserID)
	require.Equal(t, int64(3), us.StickerID)
	require.Nil(t, us.Sticker)
}

func TestNewUserStickerInvalid(t *testing.T) {
	tests := []struct {
		name      string
		amount    int64
		userID    int64
		stickerID int64
	}{
		{name: "missing amount", userID: 2, stickerID: 3},
		{name: "missing user id", amount: 2, stickerID: 3},
		{name: "missing sticker id", amount: 2, userID: 3},
		{name: "multiple missing", userID: 2},
		{name: "negative amount", amount: -1, userID: 2, stickerID: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUserSticker(tt.amount, tt.userID, tt.stickerID)
			require.ErrorIs(t, err, ErrInvalidParam)
		})
	}
}
