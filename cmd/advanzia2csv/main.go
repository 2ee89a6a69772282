package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/hmueller/advanzia2csv/pkg/config"
	"github.com/hmueller/advanzia2csv/pkg/plan"
	"github.com/hmueller/advanzia2csv/pkg/service"
)

var (
	cliFilters filters
	cfgFile    string
)

var rootCmd = &cobra.Command{
	Use:   "advanzia2csv",
	Short: "Convert Advanzia bank statements to CSV",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <input_path> <output_path>",
	Short: "Extract transactions from PDF statements into a CSV file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		logger := newLogger(cfg.LogLevel)
		processor := service.NewProcessor(cfg, logger, cliFilters.toFilterFunc())
		return processor.Convert(args[0], args[1])
	},
}

var showCmd = &cobra.Command{
	Use:   "show <input_path>",
	Short: "Parse statements and pretty-print the transactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		logger := newLogger(cfg.LogLevel)
		processor := service.NewProcessor(cfg, logger, nil)
		transactions, err := processor.Collect(args[0])
		if err != nil {
			return err
		}
		pp.Println(transactions)
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan <plan_file>",
	Short: "Run a YAML plan of conversion jobs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Build(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		p, err := plan.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Plan %s\n", args[0])
		p.Print()

		logger := newLogger(cfg.LogLevel)
		for _, job := range p.Jobs {
			jobCfg := *cfg
			jobCfg.SwapSign = job.SwapSign
			processor := service.NewProcessor(&jobCfg, logger, nil)
			if err := processor.Convert(job.Input, job.Output); err != nil {
				return err
			}
		}
		return nil
	},
}

func newLogger(level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "advanzia2csv",
		Level:           lvl,
	})
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	// Filter flags (global)
	rootCmd.PersistentFlags().StringVar(&cliFilters.startDate, "start", "", "Start date (DD.MM.YYYY)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.endDate, "end", "", "End date (DD.MM.YYYY)")
	rootCmd.PersistentFlags().Float64Var(&cliFilters.minAmount, "min", 0, "Minimum amount")
	rootCmd.PersistentFlags().Float64Var(&cliFilters.maxAmount, "max", 0, "Maximum amount")
	rootCmd.PersistentFlags().StringVar(&cliFilters.match, "match", "", "Filter by description (case insensitive)")

	// Flags specific to the convert subcommand
	convertCmd.Flags().Bool("swap-sign", false, "Swap sign of the amount")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(planCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
