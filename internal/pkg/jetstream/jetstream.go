package jetstream

import (
	"strconv"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

func MessageID(pair nats.SequencePair) string {
	return "seq:" + strconv.FormatUint(pair.Consumer, 10)
}

// Publisher publishes JSON encoded payloads without waiting for the stream's ack.
type Publisher struct {
	JS nats.JetStreamContext
}

func NewPublisher(js nats.JetStreamContext) *Publisher {
	return &Publisher{JS: js}
}

func (p *Publisher) Publish(subject string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal payload")
	}
	_, err = p.JS.PublishAsync(subject, b)
	return err
}
