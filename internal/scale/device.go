package scale

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	ServiceWeightScale              = "weight_scale"
	CharacteristicWeightMeasurement = "weight_measurement"
	DefaultDeviceName               = "Unknown Device"
	DefaultManufacturer             = "Xiaomi"
)

var (
	ErrNoDevice        = errors.New("no matching scale device")
	ErrConnectFailed   = errors.New("scale connection failed")
	ErrSubscribeFailed = errors.New("scale subscription failed")
	ErrStreamClosed    = errors.New("scale notification stream closed")
	ErrNoReading       = errors.New("no scale payload decoded")
)

type Filter struct {
	NamePrefixes []string
	Services     []string
}

func DefaultFilter() Filter {
	return Filter{
		NamePrefixes: []string{"MI", "MIBFS"},
		Services:     []string{ServiceWeightScale},
	}
}

type Advertisement struct {
	ID       string
	Name     string
	Services []string
}

func (filter Filter) Matches(advertisement Advertisement) bool {
	for _, prefix := range filter.NamePrefixes {
		if prefix != "" && strings.HasPrefix(advertisement.Name, prefix) {
			return true
		}
	}
	for _, wanted := range filter.Services {
		for _, offered := range advertisement.Services {
			if strings.EqualFold(wanted, offered) {
				return true
			}
		}
	}
	return false
}

// Notification is one push event from the measurement characteristic.
type Notification struct {
	Payload    []byte
	ReceivedAt time.Time
	Err        error
}

type DeviceRequester interface {
	RequestDevice(ctx context.Context, filter Filter) (Device, error)
}

type Device interface {
	Advertisement() Advertisement
	Connect(ctx context.Context, service string, characteristic string) (Connection, error)
}

type Connection interface {
	ServiceUUID() string
	CharacteristicUUID() string
	Subscribe(ctx context.Context) (<-chan Notification, error)
	Close() error
}

type Capture struct {
	Device             Advertisement
	ServiceUUID        string
	CharacteristicUUID string
	Reading            Reading
}

// ReadOne requests a device, subscribes to weight notifications, and returns
// the first payload that decodes. Undecodable payloads are skipped; if the
// stream closes after skipping some, the error is ErrNoReading.
func ReadOne(ctx context.Context, requester DeviceRequester, filter Filter) (Capture, error) {
	device, err := requester.RequestDevice(ctx, filter)
	if err != nil {
		if errors.Is(err, ErrNoDevice) || ctx.Err() != nil {
			return Capture{}, err
		}
		return Capture{}, fmt.Errorf("%w: %v", ErrNoDevice, err)
	}
	if device == nil {
		return Capture{}, ErrNoDevice
	}

	advertisement := device.Advertisement()
	if strings.TrimSpace(advertisement.Name) == "" {
		advertisement.Name = DefaultDeviceName
	}

	connection, err := device.Connect(ctx, ServiceWeightScale, CharacteristicWeightMeasurement)
	if err != nil {
		return Capture{}, fmt.Errorf("%w: %v", ErrConnectFailed, err)
	}
	defer connection.Close()

	notifications, err := connection.Subscribe(ctx)
	if err != nil {
		return Capture{}, fmt.Errorf("%w: %v", ErrSubscribeFailed, err)
	}

	var decodeErr error
	for {
		select {
		case <-ctx.Done():
			return Capture{}, ctx.Err()
		case notification, ok := <-notifications:
			if !ok {
				if decodeErr != nil {
					return Capture{}, fmt.Errorf("%w: %v", ErrNoReading, decodeErr)
				}
				return Capture{}, ErrStreamClosed
			}
			if notification.Err != nil {
				return Capture{}, fmt.Errorf("%w: %v", ErrSubscribeFailed, notification.Err)
			}
			receivedAt := notification.ReceivedAt
			if receivedAt.IsZero() {
				receivedAt = time.Now()
			}
			reading, err := DecodeWeight(notification.Payload, receivedAt)
			if err != nil {
				decodeErr = err
				continue
			}
			return Capture{
				Device:             advertisement,
				ServiceUUID:        connection.ServiceUUID(),
				CharacteristicUUID: connection.CharacteristicUUID(),
				Reading:            reading,
			}, nil
		}
	}
}
