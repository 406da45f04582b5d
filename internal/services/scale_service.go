package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rafaeldias2025/oficial-27/internal/models"
	"github.com/rafaeldias2025/oficial-27/internal/scale"
)

var (
	ErrScaleReadingInvalid    = errors.New("scale reading invalid")
	ErrScaleReadingSaveFailed = errors.New("save scale reading failed")
	ErrScaleReadingLoadFailed = errors.New("load scale readings failed")
	ErrScaleDeviceSaveFailed  = errors.New("save scale device failed")
	ErrScaleDeviceFailed      = errors.New("scale device failed")
)

const DefaultUserHeightM = 1.70

type WeightRepository interface {
	CreateMeasurement(measurement *models.WeightMeasurement) error
	ListMeasurements(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.WeightMeasurement, error)
	UpsertDevice(device *models.ScaleDevice) error
	FindDevice(userID uint, deviceID string) (models.ScaleDevice, bool, error)
	ListDevices(userID uint) ([]models.ScaleDevice, error)
}

type ScaleUserRepository interface {
	FindByID(userID uint) (models.User, error)
}

// DeviceCapture is what a browser bridge forwards after pairing with a scale:
// the advertised identity and the raw characteristic values it received.
type DeviceCapture struct {
	DeviceID           string
	Name               string
	Services           []string
	ServiceUUID        string
	CharacteristicUUID string
	Payloads           [][]byte
	ReceivedAt         time.Time
}

type ScaleService struct {
	weights       WeightRepository
	users         ScaleUserRepository
	defaultHeight float64
	readTimeout   time.Duration
	now           func() time.Time
}

func NewScaleService(weights WeightRepository, users ScaleUserRepository, defaultHeightM float64) *ScaleService {
	if defaultHeightM <= 0 {
		defaultHeightM = DefaultUserHeightM
	}
	return &ScaleService{
		weights:       weights,
		users:         users,
		defaultHeight: defaultHeightM,
		readTimeout:   10 * time.Second,
		now:           time.Now,
	}
}

// RecordCapture decodes the first usable payload of a forwarded capture and
// stores it as a measurement for the user.
func (service *ScaleService) RecordCapture(ctx context.Context, userID uint, capture DeviceCapture) (models.WeightMeasurement, error) {
	receivedAt := capture.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = service.now()
	}
	replay := scale.NewReplay(
		scale.Advertisement{ID: strings.TrimSpace(capture.DeviceID), Name: strings.TrimSpace(capture.Name), Services: capture.Services},
		capture.ServiceUUID,
		capture.CharacteristicUUID,
		capture.Payloads,
		receivedAt,
	)
	return service.ReadAndRecord(ctx, userID, replay)
}

// ReadAndRecord reads one weight from the requester and stores it.
func (service *ScaleService) ReadAndRecord(ctx context.Context, userID uint, requester scale.DeviceRequester) (models.WeightMeasurement, error) {
	readCtx, cancel := context.WithTimeout(ctx, service.readTimeout)
	defer cancel()

	captured, err := scale.ReadOne(readCtx, requester, scale.DefaultFilter())
	if err != nil {
		return models.WeightMeasurement{}, classifyReadError(err)
	}

	measurement, err := service.RecordReading(userID, captured.Reading, captured.Device.ID, models.MeasurementSourceScale)
	if err != nil {
		return models.WeightMeasurement{}, err
	}
	if captured.Device.ID != "" {
		if err := service.registerDevice(userID, captured); err != nil {
			return models.WeightMeasurement{}, err
		}
	}
	return measurement, nil
}

// classifyReadError separates decode and filter failures from transport ones.
func classifyReadError(err error) error {
	if errors.Is(err, scale.ErrNoReading) || errors.Is(err, scale.ErrNoDevice) {
		return errors.Join(ErrScaleReadingInvalid, err)
	}
	return errors.Join(ErrScaleDeviceFailed, err)
}

func (service *ScaleService) RecordReading(userID uint, reading scale.Reading, deviceID string, source string) (models.WeightMeasurement, error) {
	if reading.WeightKg <= 0 || math.IsNaN(reading.WeightKg) || math.IsInf(reading.WeightKg, 0) {
		return models.WeightMeasurement{}, ErrScaleReadingInvalid
	}
	if source != models.MeasurementSourceScale {
		source = models.MeasurementSourceManual
	}

	measuredAt := reading.Timestamp
	if measuredAt.IsZero() {
		measuredAt = service.now()
	}

	measurement := models.WeightMeasurement{
		UserID:          userID,
		MeasuredAt:      measuredAt.UTC(),
		WeightKg:        math.Round(reading.WeightKg*100) / 100,
		BodyFat:         reading.BodyFat,
		MuscleMass:      reading.MuscleMass,
		WaterPercentage: reading.WaterPercentage,
		VisceralFat:     reading.VisceralFat,
		BodyAge:         reading.BodyAge,
		Source:          source,
		DeviceID:        deviceID,
	}
	if bmi, ok := scale.BMI(measurement.WeightKg, service.heightFor(userID)); ok {
		measurement.BMI = &bmi
	}

	if err := service.weights.CreateMeasurement(&measurement); err != nil {
		return models.WeightMeasurement{}, ErrScaleReadingSaveFailed
	}
	return measurement, nil
}

func (service *ScaleService) ListReadings(userID uint, from *time.Time, to *time.Time, location *time.Location) ([]models.WeightMeasurement, error) {
	var fromStart *time.Time
	var toEnd *time.Time
	if from != nil {
		start := DateAtLocation(*from, location)
		fromStart = &start
	}
	if to != nil {
		_, end := DayRange(*to, location)
		toEnd = &end
	}

	measurements, err := service.weights.ListMeasurements(userID, fromStart, toEnd)
	if err != nil {
		return nil, ErrScaleReadingLoadFailed
	}
	return measurements, nil
}

func (service *ScaleService) ListDevices(userID uint) ([]models.ScaleDevice, error) {
	devices, err := service.weights.ListDevices(userID)
	if err != nil {
		return nil, ErrScaleReadingLoadFailed
	}
	return devices, nil
}

func (service *ScaleService) heightFor(userID uint) float64 {
	if service.users != nil {
		user, err := service.users.FindByID(userID)
		if err == nil && user.HeightCM > 0 {
			return user.HeightCM / 100
		}
	}
	return service.defaultHeight
}

func (service *ScaleService) registerDevice(userID uint, captured scale.Capture) error {
	connectedAt := service.now().UTC()
	device := models.ScaleDevice{
		ID:                 uuid.NewString(),
		UserID:             userID,
		DeviceID:           captured.Device.ID,
		Name:               captured.Device.Name,
		Manufacturer:       scale.DefaultManufacturer,
		ServiceUUID:        captured.ServiceUUID,
		CharacteristicUUID: captured.CharacteristicUUID,
		LastConnection:     &connectedAt,
		CreatedAt:          connectedAt,
	}

	existing, found, err := service.weights.FindDevice(userID, captured.Device.ID)
	if err != nil {
		return ErrScaleDeviceSaveFailed
	}
	if found {
		device.ID = existing.ID
		device.CreatedAt = existing.CreatedAt
	}
	if err := service.weights.UpsertDevice(&device); err != nil {
		return ErrScaleDeviceSaveFailed
	}
	return nil
}
