package queue

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"
)

// TopicCustomersSeeded is published after a seed batch commits.
const TopicCustomersSeeded = "customers_seeded"

// SeedEvent is the payload of TopicCustomersSeeded
type SeedEvent struct {
	Inserted int       `json:"inserted"`
	SeededAt time.Time `json:"seeded_at"`
}

// SeedEventHandler adapts fn to a subscriber of TopicCustomersSeeded. It
// accepts the event as published in process or as an AMQP message body.
func SeedEventHandler(fn func(SeedEvent)) func(payload any) error {
	return func(payload any) error {
		switch p := payload.(type) {
		case SeedEvent:
			fn(p)
		case []byte:
			var ev SeedEvent
			if err := json.Unmarshal(p, &ev); err != nil {
				log.Println("⚠️ Invalid seed event:", err)
				return nil // no retry
			}
			fn(ev)
		default:
			log.Printf("⚠️ Invalid payload type %T, expected SeedEvent\n", payload)
		}
		return nil
	}
}

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue delivers to subscribers of the same process, with retry
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error

	MaxRetries int
	Backoff    time.Duration
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers:   make(map[string][]func(payload any) error),
		MaxRetries: 3,
		Backoff:    500 * time.Millisecond,
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	for _, handler := range handlers {
		job := JobPayload{
			Payload:    payload,
			MaxRetries: q.MaxRetries,
		}
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for {
		err := handler(job.Payload)
		if err == nil {
			return
		}

		job.RetryCount++
		log.Printf("⚠️ Job failed (attempt %d/%d): %v\n", job.RetryCount, job.MaxRetries, err)

		if job.RetryCount > job.MaxRetries {
			log.Printf("❌ Job permanently failed after %d attempts: %+v\n", job.MaxRetries, job.Payload)
			return
		}

		// linear backoff before retry
		time.Sleep(time.Duration(job.RetryCount) * q.Backoff)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// Connect returns a RabbitMQ queue when url is set and an in-process queue
// otherwise. The returned func releases the connection.
func Connect(url string) (Queue, func() error, error) {
	if url == "" {
		return NewInMemoryQueue(), func() error { return nil }, nil
	}
	q, err := DialAMQP(url)
	if err != nil {
		return nil, nil, err
	}
	return q, q.Close, nil
}
