// Package eventsink fans a running execution's event stream out to an
// external subscriber. The Engine publishes every runner.Event it receives
// to exactly one Sink; the three implementations here (channel, websocket
// broadcast, Kafka producer) let that subscriber be an in-process listener,
// a browser tab, or another service, without the Engine special-casing the
// transport.
package eventsink
