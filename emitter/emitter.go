// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package emitter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/luxbin/luxbin"
)

// DefaultQueueSize bounds the number of sequences waiting to be published
const DefaultQueueSize = 64

// Publisher sends a payload to a topic. *Client satisfies it.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// LightMessage is published to <topic>/light
type LightMessage struct {
	TransmissionID       string             `json:"transmission_id"`
	LuxbinRepresentation string             `json:"luxbin_representation"`
	Quantum              bool               `json:"quantum"`
	TotalDurationMS      int                `json:"total_duration_ms"`
	Sequence             []luxbin.LightBeam `json:"light_sequence"`
}

// MorseMessage is published to <topic>/morse
type MorseMessage struct {
	TransmissionID       string              `json:"transmission_id"`
	LuxbinRepresentation string              `json:"luxbin_representation"`
	Quantum              bool                `json:"quantum"`
	Statistics           luxbin.MorseStats   `json:"statistics"`
	Sequence             []luxbin.MorsePulse `json:"pulse_sequence"`
}

type outbound struct {
	topic   string
	id      string
	payload any
}

// Emitter publishes encoded sequences from a bounded queue. Enqueueing never
// blocks the caller; a full queue drops the sequence.
type Emitter struct {
	pub   Publisher
	topic string
	queue chan outbound
}

// New creates an emitter publishing under the given topic prefix
func New(pub Publisher, topic string, queueSize int) *Emitter {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Emitter{
		pub:   pub,
		topic: topic,
		queue: make(chan outbound, queueSize),
	}
}

// LightTopic returns the topic light sequences are published to
func (e *Emitter) LightTopic() string { return e.topic + "/light" }

// MorseTopic returns the topic Morse sequences are published to
func (e *Emitter) MorseTopic() string { return e.topic + "/morse" }

// EnqueueLight queues a light sequence. Returns false if it was dropped.
func (e *Emitter) EnqueueLight(msg LightMessage) bool {
	return e.enqueue(outbound{topic: e.LightTopic(), id: msg.TransmissionID, payload: msg})
}

// EnqueueMorse queues a Morse sequence. Returns false if it was dropped.
func (e *Emitter) EnqueueMorse(msg MorseMessage) bool {
	return e.enqueue(outbound{topic: e.MorseTopic(), id: msg.TransmissionID, payload: msg})
}

func (e *Emitter) enqueue(o outbound) bool {
	select {
	case e.queue <- o:
		return true
	default:
		slog.Warn("emitter queue full, dropping sequence",
			"topic", o.topic,
			"transmission_id", o.id,
		)
		return false
	}
}

// Start publishes queued sequences until ctx is cancelled
func (e *Emitter) Start(ctx context.Context) {
	slog.Info("emitter started", "topic", e.topic)

	for {
		select {
		case <-ctx.Done():
			slog.Info("emitter stopped", "pending", len(e.queue))
			return

		case o := <-e.queue:
			if err := e.publish(o); err != nil {
				slog.Error("failed to publish sequence",
					"topic", o.topic,
					"transmission_id", o.id,
					"error", err,
				)
			}
		}
	}
}

func (e *Emitter) publish(o outbound) error {
	payload, err := json.Marshal(o.payload)
	if err != nil {
		return fmt.Errorf("failed to marshal sequence: %w", err)
	}
	if err := e.pub.Publish(o.topic, payload); err != nil {
		return err
	}
	slog.Debug("published sequence", "topic", o.topic, "transmission_id", o.id, "bytes", len(payload))
	return nil
}
