package scale

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weightPayload(weight float32) []byte {
	payload := make([]byte, 13)
	payload[0] = 0x02
	binary.LittleEndian.PutUint32(payload[1:5], math.Float32bits(weight))
	return payload
}

func TestDecodeWeight(t *testing.T) {
	receivedAt := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	payload := weightPayload(72.5)

	reading, err := DecodeWeight(payload, receivedAt)
	require.NoError(t, err)
	assert.InDelta(t, 72.5, reading.WeightKg, 0.0001)
	assert.Equal(t, UnitKilograms, reading.Unit)
	assert.Equal(t, receivedAt, reading.Timestamp)
	assert.Nil(t, reading.BodyFat)
	assert.Nil(t, reading.MuscleMass)
	assert.Nil(t, reading.VisceralFat)

	payload[1] = 0xff
	assert.NotEqual(t, payload[1], reading.Raw[1], "raw bytes must be copied")
}

func TestDecodeWeightRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    error
	}{
		{"empty", nil, ErrPayloadTooShort},
		{"flags only", []byte{0x02}, ErrPayloadTooShort},
		{"truncated weight", []byte{0x02, 0x00, 0x00, 0x91}, ErrPayloadTooShort},
		{"zero weight", weightPayload(0), ErrInvalidWeight},
		{"negative weight", weightPayload(-5), ErrInvalidWeight},
		{"nan weight", weightPayload(float32(math.NaN())), ErrInvalidWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeWeight(tt.payload, time.Now())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBMI(t *testing.T) {
	value, ok := BMI(72.25, 1.70)
	require.True(t, ok)
	assert.Equal(t, 25.0, value)

	_, ok = BMI(70, 0)
	assert.False(t, ok)
	_, ok = BMI(0, 1.7)
	assert.False(t, ok)
}
