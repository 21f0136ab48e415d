// Package show implements the show command, which pretty-prints an
// existing meetup-data.json artifact without touching the network.
package show

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/greenroomhq/greenroom/cmd/application"
	"github.com/greenroomhq/greenroom/internal/cmdutil/output"
	"github.com/greenroomhq/greenroom/pkg/errors"
	"github.com/greenroomhq/greenroom/pkg/meetup"
)

// Flags holds the show command's flag values.
type Flags struct {
	DataPath string
	Output   string
}

// NewCommand creates the show command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:       "show [section]",
		GroupID:   "data",
		Short:     "Display the current meetup data artifact",
		ValidArgs: []string{"meetup", "speakers", "sponsor"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		Long: `Show reads an existing meetup-data.json and prints it.

Without a section argument the whole artifact is shown. The default
format is a table when attached to a terminal and JSON when piped, so
the output can feed scripts directly.`,
		Example: `  greenroom show                       # Whole artifact
  greenroom show speakers              # Speaker lineup only
  greenroom show -o json | jq .meetup  # Machine-readable
  greenroom show sponsor -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) == 1 {
				section = args[0]
			}

			dataPath := flags.DataPath
			if dataPath == "" {
				dataPath = app.DataPath()
			}

			data, err := readArtifact(dataPath)
			if err != nil {
				return err
			}

			format, err := output.ParseFormat(flags.Output)
			if err != nil {
				return err
			}
			if format == "" {
				format = output.DetectFormat("")
			}

			return render(cmd, data, section, format)
		},
	}

	cmd.Flags().StringVar(&flags.DataPath, "data", "", "meetup data artifact path (default meetup-data.json)")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "output format: table, json, yaml")

	return cmd
}

// readArtifact loads and decodes the meetup data artifact.
func readArtifact(path string) (*meetup.Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no meetup data at %s, run \"greenroom fetch\" first", path)
		}
		return nil, errors.WrapIO("read", path, err)
	}

	var data meetup.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return &data, nil
}

// render writes the requested section in the requested format.
func render(cmd *cobra.Command, data *meetup.Data, section string, format output.Format) error {
	formatter := output.NewFormatter(format)
	w := cmd.OutOrStdout()

	if format != output.FormatTable {
		return formatter.Format(w, sectionValue(data, section))
	}

	// Table output renders each section separately
	switch section {
	case "meetup":
		return formatter.Format(w, output.KeyValue(data.Meetup))
	case "speakers":
		return formatter.Format(w, speakersTable(data.Speakers))
	case "sponsor":
		return renderSponsor(cmd, formatter, data.Sponsor)
	}

	cmd.Println("Meetup:")
	if err := formatter.Format(w, output.KeyValue(data.Meetup)); err != nil {
		return err
	}
	cmd.Println()
	cmd.Printf("Speakers (%d):\n", len(data.Speakers))
	if err := formatter.Format(w, speakersTable(data.Speakers)); err != nil {
		return err
	}
	cmd.Println()
	return renderSponsor(cmd, formatter, data.Sponsor)
}

// sectionValue picks the artifact section for structured output formats.
func sectionValue(data *meetup.Data, section string) any {
	switch section {
	case "meetup":
		return data.Meetup
	case "speakers":
		return data.Speakers
	case "sponsor":
		return data.Sponsor
	default:
		return data
	}
}

// speakersTable converts the speaker list to table data.
func speakersTable(speakers []meetup.Speaker) *output.Data {
	rows := make([][]string, 0, len(speakers))
	for _, s := range speakers {
		rows = append(rows, []string{
			s.Name,
			s.TalkTitle,
			stringOrDash(s.GitHub),
			stringOrDash(s.Company),
			stringOrDash(s.JobTitle),
		})
	}
	return &output.Data{
		Headers: []string{"Name", "Talk", "GitHub", "Company", "Job Title"},
		Rows:    rows,
	}
}

// renderSponsor prints the sponsor section, which may be absent.
func renderSponsor(cmd *cobra.Command, formatter output.Formatter, sponsor *meetup.Sponsor) error {
	if sponsor == nil {
		cmd.Println("Sponsor: none")
		return nil
	}
	cmd.Println("Sponsor:")
	return formatter.Format(cmd.OutOrStdout(), output.KeyValue(*sponsor))
}

// stringOrDash renders optional fields in table cells.
func stringOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
