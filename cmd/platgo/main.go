// Command platgo inspects the host CPU from the command line.
//
// Usage:
//
//	platgo features
//	platgo features --json
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	kcpuid "github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"

	"github.com/hupe1980/platgo"
	"github.com/hupe1980/platgo/cpuid"
)

type report struct {
	Brand      string          `json:"brand,omitempty"`
	Vendor     string          `json:"vendor,omitempty"`
	GOARCH     string          `json:"goarch"`
	AsmCapable bool            `json:"asm_capable"`
	Features   map[string]bool `json:"features"`
}

func main() {
	var (
		asJSON  bool
		verbose bool
	)

	root := &cobra.Command{
		Use:   "platgo",
		Short: "Inspect host CPU instruction-set capabilities",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	features := &cobra.Command{
		Use:   "features",
		Short: "Print the instruction-set extensions this CPU supports",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			caps := platgo.Detect()
			logger.Debug("probed host", "caps", caps)

			r := report{
				Brand:      kcpuid.CPU.BrandName,
				Vendor:     kcpuid.CPU.VendorString,
				GOARCH:     caps.GOARCH,
				AsmCapable: caps.AsmCapable,
				Features:   caps.Features,
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(r)
			}
			return printReport(cmd, r)
		},
	}
	features.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")

	root.AddCommand(features)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printReport(cmd *cobra.Command, r report) error {
	out := cmd.OutOrStdout()

	if r.Brand != "" {
		fmt.Fprintf(out, "CPU:    %s (%s)\n", r.Brand, r.Vendor)
	}
	fmt.Fprintf(out, "Arch:   %s\n", r.GOARCH)
	fmt.Fprintf(out, "Asm:    %v (build-time; intersect with flags below)\n\n", r.AsmCapable)

	for _, f := range cpuid.All() {
		state := "no"
		if r.Features[f.String()] {
			state = "yes"
		}
		fmt.Fprintf(out, "%-12s %s\n", f, state)
	}
	return nil
}
