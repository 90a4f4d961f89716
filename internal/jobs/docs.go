// Package jobs provides scheduled background tasks for kitchenpos.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Publishes domain events stored in the outbox table to Kafka
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	relay := jobs.NewOutboxRelayJob(publishOutboxHandler, "*/5 * * * * *", 100, logger)
//	jobManager := jobs.NewJobManager(relay)
//
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("Failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed relay is logged and retried on the next tick; messages stay in the outbox
// - Failed job starts will stop any already running jobs
package jobs
