package workers

import (
	"context"
	"sync"

	"github.com/avdeyev/go-signup/internal/logger"
	"github.com/avdeyev/go-signup/internal/mail"
)

// defaultQueueSize bounds the pending-send backlog. Registration bursts
// beyond it drop sends rather than block the request path.
const defaultQueueSize = 256

type mailJob struct {
	email string
	code  string
}

// MailDispatcher is the fire-and-forget handoff between the registration
// use case and the mail transport. Enqueue never blocks the HTTP response;
// delivery runs on a single background goroutine and failures are logged
// for operator visibility, never surfaced to the client.
type MailDispatcher struct {
	sender mail.Sender
	logger *logger.Logger

	jobs chan mailJob
	wg   sync.WaitGroup
	once sync.Once
}

// NewMailDispatcher constructs a dispatcher delivering through sender.
func NewMailDispatcher(sender mail.Sender, log *logger.Logger) *MailDispatcher {
	return &MailDispatcher{
		sender: sender,
		logger: log,
		jobs:   make(chan mailJob, defaultQueueSize),
	}
}

// Run implements [Worker]. It starts the consumer goroutine and returns.
func (d *MailDispatcher) Run() {
	d.wg.Add(1)
	go d.consume()
}

func (d *MailDispatcher) consume() {
	defer d.wg.Done()

	for job := range d.jobs {
		// the send is decoupled from any request lifecycle
		if err := d.sender.SendActivationCode(context.Background(), job.email, job.code); err != nil {
			d.logger.Err(err).
				Str("to", job.email).
				Msg("activation code delivery failed")
			continue
		}

		d.logger.Debug().Str("to", job.email).Msg("activation code delivered")
	}
}

// Enqueue schedules a send without blocking. When the backlog is full the
// job is dropped and logged; the user falls back to support or a resend.
func (d *MailDispatcher) Enqueue(email, code string) {
	select {
	case d.jobs <- mailJob{email: email, code: code}:
	default:
		d.logger.Warn().Str("to", email).Msg("mail queue full, dropping activation code send")
	}
}

// Shutdown stops accepting jobs and waits for the backlog to drain.
func (d *MailDispatcher) Shutdown() {
	d.once.Do(func() {
		close(d.jobs)
	})
	d.wg.Wait()
}
