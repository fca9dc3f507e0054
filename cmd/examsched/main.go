// Command examsched is the CLI host for the final-exam scheduling core.
// It is the only I/O-performing layer: it loads a fixed-shape JSON
// dataset, calls the pure core, and prints or exports the result.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"examsched/pkg/config"
)

var (
	datasetPath string
	format      string
	doRepair    bool
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	cmdRoot := &cobra.Command{
		Use:   "examsched",
		Short: "Final exam scheduling engine",
		Long:  "Computes a university final-exam schedule from a normalized dataset of sections, students, and rooms.",
	}

	cmdSchedule := &cobra.Command{
		Use:   "schedule",
		Short: "run the scheduler and print the resulting schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchedule(cfg)
		},
	}
	cmdSchedule.Flags().StringVar(&datasetPath, "dataset", "dataset.json", "path to the normalized JSON dataset")
	cmdSchedule.Flags().StringVar(&format, "format", "table", "output format: table or json")
	cmdSchedule.Flags().BoolVar(&doRepair, "repair", cfg.Repair.Enabled, "apply the optional local back-to-back repair pass")
	cmdRoot.AddCommand(cmdSchedule)

	cmdAnalyze := &cobra.Command{
		Use:   "analyze",
		Short: "run the scheduler and print only the post-hoc violation analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cfg)
		},
	}
	cmdAnalyze.Flags().StringVar(&datasetPath, "dataset", "dataset.json", "path to the normalized JSON dataset")
	cmdRoot.AddCommand(cmdAnalyze)

	cmdValidateMerge := &cobra.Command{
		Use:   "validate-merge",
		Short: "validate merge groups in a dataset without running the scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidateMerge(cfg)
		},
	}
	cmdValidateMerge.Flags().StringVar(&datasetPath, "dataset", "dataset.json", "path to the normalized JSON dataset")
	cmdRoot.AddCommand(cmdValidateMerge)

	if err := cmdRoot.Execute(); err != nil {
		log.Fatal(err)
	}
}
