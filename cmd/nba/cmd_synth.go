package main

import (
	"bytes"
	"os"

	"github.com/sierrasoftworks/humane-errors-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spechtlabs/nba/internal/cli/cmd"
	"github.com/spechtlabs/nba/pkg/manifest"
)

func newSynthCmd() *cobra.Command {
	cmdSynth := &cobra.Command{
		Use:   "synth [--output|-o <file>] [--format|-f yaml|json]",
		Short: "Render the annotator manifests",
		Long: `Render the namespace, trust chain, workload and webhook registration of the
annotator as a single manifest. Nothing is written when any object fails
validation.`,
		Example: `# Print the default topology
nba synth

# Deploy into another namespace and pipe to kubectl
nba synth --namespace annotator | kubectl apply -f -

# Write a JSON v1/List to a file
nba synth -f json -o manifests.json`,
		Args: cobra.ExactArgs(0),
		RunE: func(c *cobra.Command, _ []string) error {
			if err := runSynth(c); err != nil {
				return err
			}
			return nil
		},
	}

	cmdSynth.Flags().StringP("output", "o", "", "File to write the manifest to (default: stdout)")
	viper.SetDefault("output.path", "")
	bindFlag(cmdSynth, "output.path", "output")

	cmdSynth.Flags().StringP("format", "f", string(manifest.FormatYAML), "Output format (yaml or json)")
	viper.SetDefault("output.format", string(manifest.FormatYAML))
	bindFlag(cmdSynth, "output.format", "format")
	_ = cmdSynth.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return manifest.AllFormatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmdSynth
}

func runSynth(c *cobra.Command) humane.Error {
	format, err := manifest.ParseFormat(viper.GetString("output.format"))
	if err != nil {
		return err
	}

	g, err := manifest.Synthesize(cmd.SeedsFromConfig())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := g.Encode(&buf, format); err != nil {
		return err
	}

	path := viper.GetString("output.path")
	if path == "" {
		if _, err := buf.WriteTo(c.OutOrStdout()); err != nil {
			return humane.Wrap(err, "failed to write manifest", "check that stdout is writable")
		}
		return nil
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // manifests are not secret
		return humane.Wrap(err, "failed to write manifest to "+path, "check that the directory exists and is writable")
	}
	return nil
}
