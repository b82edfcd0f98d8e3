package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"smart-quick-add/internal/model"
	"smart-quick-add/internal/quickadd"
)

const (
	formatJSON = "json"
	formatICS  = "ics"
)

type parseOutput struct {
	Item        model.ParsedInput       `json:"item"`
	Suggestions []model.SmartSuggestion `json:"suggestions"`
	Detections  quickadd.Detections     `json:"detections"`
}

func newParseCmd(opts *options) *cobra.Command {
	var (
		now     string
		format  string
		confirm []string
	)

	cmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Parse one line of quick-add text",
		Long: `Parse one line of quick-add text and print the resulting item.

Examples:
  quickadd parse "urgent team meeting tomorrow afternoon"
  quickadd parse "webinar on go" --confirm type=event
  quickadd parse "pay rent friday" --format ics > rent.ics`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var base time.Time
			if now != "" {
				t, err := time.Parse(time.RFC3339, now)
				if err != nil {
					return fmt.Errorf("--now must be RFC 3339: %w", err)
				}
				base = t
			}
			confirmed, err := parseConfirm(confirm)
			if err != nil {
				return err
			}

			uc, err := opts.useCase()
			if err != nil {
				return err
			}

			out, err := uc.Parse(ctx, quickadd.ParseInput{
				Text:      strings.Join(args, " "),
				Now:       base,
				Confirmed: confirmed,
			})
			if err != nil {
				return err
			}

			switch format {
			case formatICS:
				return uc.ExportICS(ctx, cmd.OutOrStdout(), []model.ParsedInput{out.ParsedInput})
			case formatJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(parseOutput{
					Item:        out.ParsedInput,
					Suggestions: out.Suggestions,
					Detections:  out.Detections,
				})
			}
			return fmt.Errorf("unknown format %q", format)
		},
	}

	cmd.Flags().StringVar(&now, "now", "", "reference time in RFC 3339 (defaults to the current time)")
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format: json or ics")
	cmd.Flags().StringArrayVar(&confirm, "confirm", nil, "pre-confirm a suggestion as type=value (repeatable)")
	return cmd
}

// parseConfirm turns "priority=high" pairs into a confirmed set.
func parseConfirm(pairs []string) (model.ConfirmedSet, error) {
	set := model.ConfirmedSet{}
	for _, p := range pairs {
		typ, value, ok := strings.Cut(p, "=")
		if !ok || typ == "" || value == "" {
			return nil, fmt.Errorf("--confirm %q: want type=value", p)
		}
		set.Add(model.SuggestionKey{Type: model.SuggestionType(typ), Value: value})
	}
	return set, nil
}
