package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/pawcare/vetmarket/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher routes password-reset deliveries to a fixed set of workers,
// sharded by email so repeated requests for the same account are delivered
// in order. Sending never blocks the HTTP request that triggered it.
type Dispatcher struct {
	workers []chan ports.OTPMessage
	sender  ports.OTPSender
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sender ports.OTPSender, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.OTPMessage, numWorkers),
		sender:  sender,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.OTPMessage, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a message to the worker responsible for its email.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(msg ports.OTPMessage) {
	d.workers[d.shardIndex(msg.Email)] <- msg
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.OTPMessage) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sender.Send(ctx, msg); err != nil {
				d.log.Error().Err(err).
					Str("email", msg.Email).
					Int("worker_id", id).
					Msg("otp delivery failed")
			}
		}
	}
}
