package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Simplici0/studio/internal/config"
	"github.com/Simplici0/studio/internal/intake"
	"github.com/Simplici0/studio/internal/pricing"
	"github.com/Simplici0/studio/internal/seed"
	"github.com/Simplici0/studio/internal/sheet"
)

func newQuoteCmd() *cobra.Command {
	var (
		file   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a questionnaire from a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runQuote(cmd.OutOrStdout(), in, asJSON)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "questionnaire JSON file, or - for stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full quote as JSON")
	return cmd
}

func runQuote(out io.Writer, in io.Reader, asJSON bool) error {
	req, err := intake.DecodeJSON(in)
	if err != nil {
		return err
	}
	req = req.WithDefaults()
	res := pricing.Default().Compute(req.QuoteInput())

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Site type:\t%s\n", res.Meta.SiteTypeLabel)
	fmt.Fprintf(tw, "Platform:\t%s\n", res.Meta.PlatformLabel)
	fmt.Fprintf(tw, "Timeline:\t%s\n", res.Meta.TimelineLabel)
	fmt.Fprintf(tw, "Pages:\t%d\n\n", res.Meta.TotalPages)
	for _, item := range res.Breakdown {
		fmt.Fprintf(tw, "%s\t%s\n", item.Label, pricing.FormatAmount(item.Amount))
	}
	fmt.Fprintf(tw, "Total\t%s\n", pricing.FormatQuote(res))
	return tw.Flush()
}

func newSubmissionsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "submissions",
		Short: "List recent submissions from the local SQLite ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ledger, err := sheet.OpenSQLiteRecorder(cmd.Context(), cfg.Sheet.DBPath)
			if err != nil {
				return err
			}
			defer ledger.Close()

			rows, err := ledger.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printSubmissions(cmd.OutOrStdout(), rows, time.Now())
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of submissions to show")
	return cmd
}

func printSubmissions(out io.Writer, rows []sheet.Row, now time.Time) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(out, "No submissions yet.")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SUBMITTED\tID\tFROM\tSITE TYPE\tTOTAL")
	for _, r := range rows {
		from := r.Name
		if from == "" {
			from = r.Company
		}
		if from == "" {
			from = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			humanize.RelTime(r.SubmittedAt, now, "ago", "from now"),
			r.ID, from, r.SiteType, pricing.FormatAmount(r.Total))
	}
	return tw.Flush()
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Record demo submissions in the local SQLite ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ledger, err := sheet.OpenSQLiteRecorder(cmd.Context(), cfg.Sheet.DBPath)
			if err != nil {
				return err
			}
			defer ledger.Close()

			stats, err := seed.Run(cmd.Context(), ledger, pricing.Default())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "seed complete: inserts=%d skipped=%d\n", stats.Inserts, stats.Skipped)
			return err
		},
	}
}
