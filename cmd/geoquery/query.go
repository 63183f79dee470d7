package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gcbaptista/geoquery/api"
	"github.com/gcbaptista/geoquery/internal/dispatch"
	"github.com/gcbaptista/geoquery/internal/handlers"
)

var queryCmd = &cobra.Command{
	Use:   "query <text>",
	Short: "Route a question and print the hits",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := queryText(args)
		if err != nil {
			return err
		}
		a, err := buildApp(cfg)
		if err != nil {
			return err
		}

		result := a.dispatcher.Process(cmd.Context(), text)
		hits := result.Hits
		if format, _ := cmd.Flags().GetBool("format"); format {
			hits = handlers.FormatHits(hits, string(result.Domain))
		}
		return render(cmd, map[string]interface{}{
			"domain":     result.Domain,
			"targets":    result.Targets,
			"hits":       hits,
			"by_country": dispatch.Group(hits),
		})
	},
}

var recognizeCmd = &cobra.Command{
	Use:   "recognize <text>",
	Short: "Print the routing decision for a question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := queryText(args)
		if err != nil {
			return err
		}
		a, err := buildApp(cfg)
		if err != nil {
			return err
		}

		slots := a.router.Slots(text)
		return render(cmd, api.RecognizeResponse{
			Targets:     slots.Targets,
			Domain:      slots.Domain,
			SectionHint: slots.SectionHint,
			ISO3Codes:   slots.ISO3Codes,
			Query:       text,
		})
	},
}

var dispatchCmd = &cobra.Command{
	Use:   "dispatch <text>",
	Short: "Run the keyword source dispatcher for a question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := queryText(args)
		if err != nil {
			return err
		}
		a, err := buildApp(cfg)
		if err != nil {
			return err
		}
		return render(cmd, a.sources.Run(cmd.Context(), text))
	},
}

func init() {
	for _, cmd := range []*cobra.Command{queryCmd, recognizeCmd, dispatchCmd} {
		cmd.Flags().StringP("output", "o", "json", "output format: json or yaml")
	}
	queryCmd.Flags().Bool("format", false, "normalize hits to the response schema")
}

// queryText joins the arguments and applies the API's query checks.
func queryText(args []string) (string, error) {
	text := strings.Join(args, " ")
	if err := api.ValidateQuery(text, cfg.Query.MaxLength); err != nil {
		return "", err
	}
	return text, nil
}

func render(cmd *cobra.Command, value interface{}) error {
	output, _ := cmd.Flags().GetString("output")
	return writeOutput(cmd.OutOrStdout(), output, value)
}

func writeOutput(w io.Writer, format string, value interface{}) error {
	switch format {
	case "json", "":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		return encoder.Encode(value)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unknown output format '%s'", format)
	}
}
