package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "08:00", want: "08:00"},
		{name: "valid evening", input: "21:30", want: "21:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "not zero padded", input: "8:00", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "out of range minutes", input: "10:61", wantErr: true},
		{name: "garbage", input: "abcde", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("10:30")
	min, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, min)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(630)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), ts)

	ts, err = NewTimeStringFromMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:00"), ts)

	_, err = NewTimeStringFromMinutes(24 * 60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = NewTimeStringFromMinutes(-1)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("21:00")

	got, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("22:00"), got)

	// Переход через полночь запрещен
	_, err = ts.AddMinutes(200)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("08:30"))
	assert.True(t, TimeString("22:00").IsAfter("08:30"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
}
