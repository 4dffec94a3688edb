package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNotificationValid(t *testing.T) {
	n, err := NewNotification(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(1), n.From)
	require.Equal(t, int64(2), n.To)
}

func TestNewNotificationInvalid(t *testing.T) {
	tests := []struct {
		name string
		from int64
		to   int64
	}{
		{name: "missing sender", to: 2},
		{name: "negative sender", from: -1, to: 2},
		{name: "missing recipient", from: 1},
		{name: "negative recipient", from: 1, to: -2},
		{name: "sender equals recipient", from: 3, to: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNotification(tt.from, tt.to)
			require.ErrorIs(t, err, ErrInvalidParam)
		})
	}
}

func TestNewNotificationSelfRejectedWithMessage(t *testing.T) {
	_, err := NewNotification(7, 7)
	require.ErrorIs(t, err, ErrInvalidParam)
	require.Contains(t, err.Error(), "differ")
}
