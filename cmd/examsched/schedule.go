package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"examsched/internal/analyzer"
	"examsched/internal/export"
	"examsched/internal/ingest"
	"examsched/internal/repair"
	"examsched/internal/schedule"
	"examsched/pkg/config"
	"examsched/pkg/logger"
)

func repairParams(cfg *config.Config) repair.Params {
	return repair.Params{
		Enabled:    doRepair,
		MaxMoves:   cfg.Repair.MaxMoves,
		Scheduling: cfg.Scheduling,
	}
}

func runSchedule(cfg *config.Config) error {
	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	dataset, merges, err := ingest.LoadDataset(datasetPath)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	s := schedule.New(log)
	result, err := s.Run(dataset, merges, cfg.Scheduling)
	if err != nil {
		return fmt.Errorf("run scheduler: %w", err)
	}

	if doRepair {
		result = repair.Run(result, dataset, merges, repairParams(cfg))
	}

	analysis := analyzer.Analyze(result, dataset, merges, cfg.Scheduling)
	exp := export.ToScheduleExport(result, analysis, cfg.Scheduling, uuid.NewString(), time.Now())

	switch format {
	case "json":
		return export.WriteJSON(os.Stdout, exp)
	default:
		return export.WriteTable(os.Stdout, exp)
	}
}

