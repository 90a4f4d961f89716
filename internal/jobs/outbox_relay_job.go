package jobs

import (
	"context"

	"kitchenpos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// OutboxPublisher relays one batch of stored domain events.
type OutboxPublisher interface {
	Handle(ctx context.Context, cmd commands.PublishOutboxCommand) (int, error)
}

// OutboxRelayJob periodically publishes stored domain events to the message broker.
// A run is skipped while the previous one is still in progress.
type OutboxRelayJob struct {
	handler   OutboxPublisher
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *zap.Logger
}

// NewOutboxRelayJob creates the relay job. schedule is a cron expression with a
// seconds field, e.g. "*/5 * * * * *".
func NewOutboxRelayJob(handler OutboxPublisher, schedule string, batchSize int, logger *zap.Logger) *OutboxRelayJob {
	logger = logger.With(zap.String("component", "outbox_relay_job"))

	return &OutboxRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(zap.NewStdLog(logger)))),
		),
		logger: logger,
	}
}

// Start validates the batch size, registers the schedule and starts the job.
func (j *OutboxRelayJob) Start() error {
	cmd, err := commands.NewPublishOutboxCommand(j.batchSize)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, func() { j.run(context.Background(), cmd) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox relay job started", zap.String("schedule", j.schedule), zap.Int("batch_size", j.batchSize))
	return nil
}

// Stop stops the schedule and waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox relay job stopped")
}

func (j *OutboxRelayJob) run(ctx context.Context, cmd commands.PublishOutboxCommand) {
	published, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("Outbox relay failed", zap.Error(err))
		return
	}
	if published > 0 {
		j.logger.Debug("Outbox messages published", zap.Int("count", published))
	}
}
