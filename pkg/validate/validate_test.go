package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNationalID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "valid 1900s", id: "29501012345678"},
		{name: "valid 2000s", id: "30312251234567"},
		{name: "valid with dashes", id: "295-0101-234-5678"},
		{name: "valid with spaces", id: "295 0101 234 5678"},
		{name: "too short", id: "2950101234567", wantErr: ErrNationalIDFormat},
		{name: "too long", id: "295010123456789", wantErr: ErrNationalIDFormat},
		{name: "non digits", id: "2950101234567a", wantErr: ErrNationalIDFormat},
		{name: "empty", id: "", wantErr: ErrNationalIDFormat},
		{name: "century 1", id: "19501012345678", wantErr: ErrNationalIDCentury},
		{name: "century 4", id: "49501012345678", wantErr: ErrNationalIDCentury},
		{name: "month 13", id: "29513012345678", wantErr: ErrNationalIDDate},
		{name: "month zero", id: "29500012345678", wantErr: ErrNationalIDDate},
		{name: "february 30th", id: "29502302345678", wantErr: ErrNationalIDDate},
		{name: "day zero", id: "29501002345678", wantErr: ErrNationalIDDate},
		{name: "future birth date", id: "39901012345678", wantErr: ErrBirthDateInFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NationalID(tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBirthDateFromNationalID(t *testing.T) {
	got, err := BirthDateFromNationalID("29501012345678")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = BirthDateFromNationalID("30312251234567")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2003, 12, 25, 0, 0, 0, 0, time.UTC), got)
}

func TestPhone(t *testing.T) {
	assert.NoError(t, Phone("01012345678"))
	assert.NoError(t, Phone("010-1234-5678"))
	assert.NoError(t, Phone("010 1234 5678"))

	assert.ErrorIs(t, Phone("0101234567"), ErrPhoneFormat)   // 10 digits
	assert.ErrorIs(t, Phone("010123456789"), ErrPhoneFormat) // 12 digits
	assert.ErrorIs(t, Phone("02012345678"), ErrPhoneFormat)  // landline prefix
	assert.ErrorIs(t, Phone(""), ErrPhoneFormat)
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("omar@example.com"))
	assert.NoError(t, Email("omar.said+tag@clinic.example.eg"))

	assert.ErrorIs(t, Email("not-an-email"), ErrEmailFormat)
	assert.ErrorIs(t, Email("omar@"), ErrEmailFormat)
	assert.ErrorIs(t, Email("@example.com"), ErrEmailFormat)
	assert.ErrorIs(t, Email(""), ErrEmailFormat)
}
