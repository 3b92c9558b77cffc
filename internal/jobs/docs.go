// Package jobs provides scheduled background tasks for the fulfillment service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order pipeline.
//
// # Available Jobs
//
// 1. OrderMonitorJob - Runs every minute to report in-flight orders and flag
// orders that have been in the pipeline longer than the configured threshold.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getActiveOrdersHandler, clk, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The monitor job only reads; failures are logged and the next tick retries.
package jobs
