// Package messaging decouples the crawler's fetch path from the goroutine
// that reports each page's discovered links. It is carried over from the teacher's
// messaging package unchanged in shape: the crawler only ever needs an
// in-process channel, but the Producer/Consumer seam means a future
// deployment could swap in an external queue without touching caller code.
package messaging

// Producer exposes a single Produce method meant to enqueue a payload.
type Producer interface {
	Produce([]byte) error
}

// Consumer connects to a queue, blocking while forwarding incoming payloads
// into a channel.
type Consumer interface {
	Consume(chan<- []byte) error
}

// ProducerConsumer is the behavior of a simple message queue.
type ProducerConsumer interface {
	Producer
	Consumer
}

// ProducerConsumerCloser is a ProducerConsumer that owns a resource needing
// an explicit shutdown.
type ProducerConsumerCloser interface {
	ProducerConsumer
	Close()
}
