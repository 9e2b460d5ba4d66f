// Package main provides the flowerpot binary: an offline cut-length
// calculator for coaxial-sleeve antennas. It shares the planner with the API
// server but needs no database or network.
package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kd9vfw/flowerpot/internal/planner"
	"github.com/kd9vfw/flowerpot/pkg/rf"
)

const (
	version = "1.0.0"
	appName = "flowerpot"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		freqMHz        float64
		band           string
		coax           string
		trimMargin     float64
		maxPrintHeight float64
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Flowerpot antenna dimension calculator",
		Long: `Flowerpot computes cut and trim-to lengths for a coaxial-sleeve
(flowerpot) VHF antenna, plus the section split for a height-limited
3D printer.

Give it a frequency or a band name and it prints the quarter-wave
sleeve and half-wave radiator dimensions in millimeters.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := planner.PlanRequest{
				Label:   "cli",
				Band:    band,
				FreqMHz: freqMHz,
				Coax:    coax,
			}
			if cmd.Flags().Changed("trim-margin") {
				req.TrimMargin = &trimMargin
			}
			if cmd.Flags().Changed("max-print-height") {
				geo := rf.DefaultTubeGeometry()
				geo.MaxPrintHeightMM = maxPrintHeight
				req.Geometry = &geo
			}
			return run(cmd.OutOrStdout(), req)
		},
	}

	cmd.Flags().Float64VarP(&freqMHz, "freq", "f", 0, "Target center frequency in MHz")
	cmd.Flags().StringVarP(&band, "band", "b", "", "Band name to center on (airband, 2m, marine)")
	cmd.Flags().StringVar(&coax, "coax", "", "Coax type (RG-58, RG-8X, RG-6)")
	cmd.Flags().Float64Var(&trimMargin, "trim-margin", rf.DefaultTrimMargin, "Trim margin as a fraction of nominal length")
	cmd.Flags().Float64Var(&maxPrintHeight, "max-print-height", 240, "Printer build height in mm")

	cmd.AddCommand(bandsCmd())

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, version)
		},
	})

	return cmd
}

func bandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bands",
		Short: "List supported bands",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "BAND\tLOW MHZ\tCENTER MHZ\tHIGH MHZ")
			for _, name := range []rf.BandName{rf.BandAir, rf.Band2m, rf.BandMarine} {
				b := rf.VHF.ByName(name)
				fmt.Fprintf(w, "%s\t%g\t%g\t%g\n", b.Name, b.LowMHz, b.CenterMHz, b.HighMHz)
			}
			w.Flush()
		},
	}
}

func run(out io.Writer, req planner.PlanRequest) error {
	design, err := planner.NewPlannerService(rf.VHF).PlanDesign(req)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Frequency: %.3f MHz", design.FreqMHz)
	if design.Band != rf.BandUnknown {
		fmt.Fprintf(out, " (%s)", design.Band)
	}
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ELEMENT\tCUT MM\tTRIM TO MM")
	for _, el := range design.Elements {
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\n", el.Element.Name, el.CutMM, el.NominalMM)
	}
	w.Flush()

	fmt.Fprintf(out, "Total mast length: %.1fmm in %d sections (%d sleeve, feedpoint atop section %d)\n",
		design.Sections.TotalLengthMM,
		design.Sections.NumSections,
		design.Sections.SleeveSections,
		design.Sections.FeedpointSection)
	return nil
}
