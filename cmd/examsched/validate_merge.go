package main

import (
	"fmt"

	"examsched/internal/ingest"
	"examsched/internal/merge"
	"examsched/pkg/config"
)

func runValidateMerge(cfg *config.Config) error {
	dataset, merges, err := ingest.LoadDataset(datasetPath)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	_, reports, err := merge.ValidateAll(merges, dataset)
	if err != nil {
		return fmt.Errorf("validate merges: %w", err)
	}

	for _, r := range reports {
		status := "ok"
		if !r.IsValid {
			status = "UNSCHEDULABLE"
		}
		fmt.Printf("%-20s enrollment=%-6d max_room=%-6d %s\n", r.GroupID, r.TotalEnrollment, r.MaxRoomCapacity, status)
	}
	return nil
}
