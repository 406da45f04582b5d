package scale

import (
	"encoding/binary"
	"errors"
	"math"
	"time"
)

const (
	UnitKilograms = "kg"

	// Weight is a little-endian float32 right after the flags byte.
	weightOffset = 1
	weightLength = 4
)

var (
	ErrPayloadTooShort = errors.New("scale payload too short")
	ErrInvalidWeight   = errors.New("scale payload carries an invalid weight")
)

// Reading is one decoded weight notification. Body composition fields stay nil:
// the payload layout for them is not known, so they are never guessed.
type Reading struct {
	WeightKg        float64
	Unit            string
	Timestamp       time.Time
	BodyFat         *float64
	MuscleMass      *float64
	WaterPercentage *float64
	VisceralFat     *int
	BodyAge         *int
	Raw             []byte
}

func DecodeWeight(payload []byte, receivedAt time.Time) (Reading, error) {
	if len(payload) < weightOffset+weightLength {
		return Reading{}, ErrPayloadTooShort
	}

	bits := binary.LittleEndian.Uint32(payload[weightOffset : weightOffset+weightLength])
	weight := float64(math.Float32frombits(bits))
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return Reading{}, ErrInvalidWeight
	}

	raw := make([]byte, len(payload))
	copy(raw, payload)
	return Reading{
		WeightKg:  weight,
		Unit:      UnitKilograms,
		Timestamp: receivedAt,
		Raw:       raw,
	}, nil
}

// BMI returns weight / height², rounded to two decimals. ok is false when
// either input is not positive.
func BMI(weightKg float64, heightM float64) (float64, bool) {
	if weightKg <= 0 || heightM <= 0 {
		return 0, false
	}
	value := weightKg / (heightM * heightM)
	return math.Round(value*100) / 100, true
}
