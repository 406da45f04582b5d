package scale

import (
	"context"
	"time"
)

// Replay serves notifications that were captured elsewhere (a browser bridge
// forwarding raw characteristic values) through the DeviceRequester contract.
type Replay struct {
	advertisement      Advertisement
	serviceUUID        string
	characteristicUUID string
	payloads           [][]byte
	receivedAt         time.Time
}

func NewReplay(advertisement Advertisement, serviceUUID string, characteristicUUID string, payloads [][]byte, receivedAt time.Time) *Replay {
	return &Replay{
		advertisement:      advertisement,
		serviceUUID:        serviceUUID,
		characteristicUUID: characteristicUUID,
		payloads:           payloads,
		receivedAt:         receivedAt,
	}
}

func (replay *Replay) RequestDevice(ctx context.Context, filter Filter) (Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !filter.Matches(replay.advertisement) {
		return nil, ErrNoDevice
	}
	return replay, nil
}

func (replay *Replay) Advertisement() Advertisement {
	return replay.advertisement
}

func (replay *Replay) Connect(ctx context.Context, service string, characteristic string) (Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &replayConnection{replay: replay, service: service, characteristic: characteristic}, nil
}

type replayConnection struct {
	replay         *Replay
	service        string
	characteristic string
}

func (connection *replayConnection) ServiceUUID() string {
	if connection.replay.serviceUUID != "" {
		return connection.replay.serviceUUID
	}
	return connection.service
}

func (connection *replayConnection) CharacteristicUUID() string {
	if connection.replay.characteristicUUID != "" {
		return connection.replay.characteristicUUID
	}
	return connection.characteristic
}

func (connection *replayConnection) Subscribe(ctx context.Context) (<-chan Notification, error) {
	notifications := make(chan Notification, len(connection.replay.payloads))
	for _, payload := range connection.replay.payloads {
		notifications <- Notification{Payload: payload, ReceivedAt: connection.replay.receivedAt}
	}
	close(notifications)
	return notifications, nil
}

func (connection *replayConnection) Close() error {
	return nil
}
