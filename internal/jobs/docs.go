// Package jobs provides scheduled background tasks for the kitchen
// orchestration system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the synchronous flow cannot guarantee.
//
// # Available Jobs
//
// 1. StationAssignmentJob - Runs every five seconds to retry station
// assignment for kitchen orders that stayed unassigned because no
// station had headroom at the time of the original attempt.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(uowFactory, assignStationHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The assignment job treats "no station available" as an expected
// business outcome and stays quiet about it; the order is retried on
// the next tick. Every other error is logged.
package jobs
