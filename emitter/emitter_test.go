// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package emitter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/danielhkuo/luxbin/luxbin"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type published struct {
	topic   string
	payload []byte
}

type fakePublisher struct {
	out chan published
	err error
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{out: make(chan published, 16)}
}

func (f *fakePublisher) Publish(topic string, payload []byte) error {
	f.out <- published{topic: topic, payload: payload}
	return f.err
}

func (f *fakePublisher) next(t *testing.T) published {
	t.Helper()
	select {
	case p := <-f.out:
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for publish")
		return published{}
	}
}

// run starts the emitter and returns a stop func that waits for it to exit
func run(e *Emitter) func() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		e.Start(ctx)
	}()
	return func() {
		cancel()
		<-done
	}
}

func TestEmitter_Topics(t *testing.T) {
	e := New(newFakePublisher(), "lab/bench", 1)
	assert.Equal(t, "lab/bench/light", e.LightTopic())
	assert.Equal(t, "lab/bench/morse", e.MorseTopic())
}

func TestEmitter_PublishesLight(t *testing.T) {
	pub := newFakePublisher()
	e := New(pub, "luxbin", 4)
	stop := run(e)
	defer stop()

	symbols := luxbin.EncodeSymbols("HI")
	beams := luxbin.LightSequence(symbols, true)
	require.True(t, e.EnqueueLight(LightMessage{
		TransmissionID:       "tx-1",
		LuxbinRepresentation: symbols.String(),
		Quantum:              true,
		TotalDurationMS:      luxbin.TotalDuration(beams),
		Sequence:             beams,
	}))

	p := pub.next(t)
	assert.Equal(t, "luxbin/light", p.topic)

	var got LightMessage
	require.NoError(t, json.Unmarshal(p.payload, &got))
	assert.Equal(t, "tx-1", got.TransmissionID)
	assert.Equal(t, "SE ", got.LuxbinRepresentation)
	assert.Len(t, got.Sequence, 3)
	assert.Equal(t, 15, got.TotalDurationMS)
}

func TestEmitter_PublishesMorse(t *testing.T) {
	pub := newFakePublisher()
	e := New(pub, "luxbin", 4)
	stop := run(e)
	defer stop()

	symbols := luxbin.EncodeSymbols("A")
	pulses := luxbin.MorseSequence(symbols, true)
	require.True(t, e.EnqueueMorse(MorseMessage{
		TransmissionID:       "tx-2",
		LuxbinRepresentation: symbols.String(),
		Statistics:           luxbin.Stats(pulses, luxbin.CharacterCount("A")),
		Sequence:             pulses,
	}))

	p := pub.next(t)
	assert.Equal(t, "luxbin/morse", p.topic)

	var got MorseMessage
	require.NoError(t, json.Unmarshal(p.payload, &got))
	assert.Equal(t, 145, got.Statistics.TotalDurationMS)
	assert.Len(t, got.Sequence, len(pulses))
}

func TestEmitter_DropsWhenFull(t *testing.T) {
	// Not started, so nothing drains the queue
	e := New(newFakePublisher(), "luxbin", 2)

	assert.True(t, e.EnqueueLight(LightMessage{TransmissionID: "a"}))
	assert.True(t, e.EnqueueLight(LightMessage{TransmissionID: "b"}))
	assert.False(t, e.EnqueueLight(LightMessage{TransmissionID: "c"}), "third sequence should be dropped")
	assert.False(t, e.EnqueueMorse(MorseMessage{TransmissionID: "d"}))
}

func TestEmitter_PublishErrorKeepsRunning(t *testing.T) {
	pub := newFakePublisher()
	pub.err = errors.New("broker unavailable")
	e := New(pub, "luxbin", 4)
	stop := run(e)
	defer stop()

	require.True(t, e.EnqueueLight(LightMessage{TransmissionID: "first"}))
	require.True(t, e.EnqueueLight(LightMessage{TransmissionID: "second"}))

	pub.next(t)
	p := pub.next(t)

	var got LightMessage
	require.NoError(t, json.Unmarshal(p.payload, &got))
	assert.Equal(t, "second", got.TransmissionID)
}

func TestEmitter_DefaultQueueSize(t *testing.T) {
	e := New(newFakePublisher(), "luxbin", 0)
	assert.Equal(t, DefaultQueueSize, cap(e.queue))
}

func TestEmitter_StopsOnCancel(t *testing.T) {
	e := New(newFakePublisher(), "luxbin", 1)
	stop := run(e)
	stop()
}
