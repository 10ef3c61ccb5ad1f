// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package emitter broadcasts encoded sequences to light hardware over MQTT.

LED and laser controllers subscribe to the light and morse topics and replay
each sequence. Messages are JSON at QoS 1:

	<topic>/light  LightMessage
	<topic>/morse  MorseMessage

# Usage

	client, err := emitter.NewClient(emitter.ClientConfig{Broker: cfg.MQTTBroker, ...})
	em := emitter.New(client, cfg.MQTTTopic, emitter.DefaultQueueSize)
	go em.Start(ctx)

	em.EnqueueLight(msg) // never blocks; false when the queue is full

Publishing happens on the Start goroutine, so a slow broker never delays an
HTTP response.
*/
package emitter
