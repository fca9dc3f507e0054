package main

import (
	"encoding/json"
	"fmt"
	"os"

	"examsched/internal/analyzer"
	"examsched/internal/ingest"
	"examsched/internal/schedule"
	"examsched/pkg/config"
	"examsched/pkg/logger"
)

func runAnalyze(cfg *config.Config) error {
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

	analysis := analyzer.Analyze(result, dataset, merges, cfg.Scheduling)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(analysis)
}
