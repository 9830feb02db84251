package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Alfex4936/nlpdash/internal/config"
	"github.com/Alfex4936/nlpdash/internal/logging"
	"github.com/Alfex4936/nlpdash/internal/spelldiff"
	"github.com/Alfex4936/nlpdash/internal/tui"
	"github.com/Alfex4936/nlpdash/internal/ui"
	"github.com/Alfex4936/nlpdash/internal/upload"
	"github.com/Alfex4936/nlpdash/nlpdash"
)

// app is the state shared by every subcommand.
type app struct {
	configPath string
	jsonOut    bool
	verbose    bool
	dictPath   string
	inputFile  string

	cfg *config.Config
	log *zap.Logger
}

// resultView is a View that can tell whether it showed an error.
type resultView interface {
	nlpdash.View
	Failed() bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "nlpdash",
		Short:         "Terminal client for the NLP analysis service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $NLPDASH_CONFIG or ./nlpdash.yaml)")
	pf.BoolVar(&a.jsonOut, "json", false, "print results as JSON")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.textCmd("analyze", "Lexical analysis and most common words", (*nlpdash.Dashboard).AnalyzeText),
		a.spellCmd(),
		a.textCmd("sentiment", "Sentiment verdict of each classifier", (*nlpdash.Dashboard).AnalyzeSentiment),
		a.uploadCmd(),
		a.transcribeCmd(),
		a.configCmd(),
		a.tuiCmd(),
	)
	return root
}

func (a *app) logger() (*zap.Logger, error) {
	if a.log == nil {
		log, err := logging.New(a.cfg.Log, a.verbose)
		if err != nil {
			return nil, err
		}
		a.log = log
	}
	return a.log, nil
}

func (a *app) dashboard(view nlpdash.View) (*nlpdash.Dashboard, error) {
	log, err := a.logger()
	if err != nil {
		return nil, err
	}
	var opts []nlpdash.Option
	if a.dictPath != "" {
		dict, err := spelldiff.LoadDict(a.dictPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, nlpdash.WithDict(dict))
	}
	return nlpdash.New(a.cfg, view, log, opts...)
}

func (a *app) view(w io.Writer) resultView {
	if a.jsonOut {
		return ui.NewJSONView()
	}
	return ui.NewTerminalView(w, ui.DefaultStyles())
}

// finish flushes a JSON view and maps an error banner to errFailed.
func (a *app) finish(w io.Writer, v resultView) error {
	if jv, ok := v.(*ui.JSONView); ok {
		if err := jv.Flush(w); err != nil {
			return err
		}
	}
	if v.Failed() {
		return errFailed
	}
	return nil
}

// readText takes the text from args, -f or stdin, in that order.
func (a *app) readText(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case a.inputFile != "":
		data, err := os.ReadFile(a.inputFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

type textAction func(d *nlpdash.Dashboard, ctx context.Context, text string)

func (a *app) textCmd(use, short string, action textAction) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " [text]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runText(cmd, args, action)
		},
	}
	cmd.Flags().StringVarP(&a.inputFile, "file", "f", "", "read text from file")
	return cmd
}

func (a *app) spellCmd() *cobra.Command {
	cmd := a.textCmd("spell", "Spell-check and list corrections", (*nlpdash.Dashboard).CheckSpelling)
	cmd.Flags().StringVarP(&a.dictPath, "dict", "d", "", `user dictionary JSON file ({"words": [...]})`)
	return cmd
}

func (a *app) runText(cmd *cobra.Command, args []string, action textAction) error {
	text, err := a.readText(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	v := a.view(out)
	d, err := a.dashboard(v)
	if err != nil {
		return err
	}
	action(d, cmd.Context(), strings.TrimRight(text, "\n"))
	return a.finish(out, v)
}

func (a *app) uploadCmd() *cobra.Command {
	var drop bool
	cmd := &cobra.Command{
		Use:   "upload FILE...",
		Short: "Upload files to the service",
		Long: `Upload files one after another, as the file picker does.
With --drop only the first file is uploaded, as a drag-and-drop would.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := upload.ReadFiles(args...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			v := a.view(out)
			d, err := a.dashboard(v)
			if err != nil {
				return err
			}

			var outcomes []upload.Outcome
			if drop {
				d.DragEnter()
				if o, ok := d.Drop(cmd.Context(), files); ok {
					outcomes = append(outcomes, o)
				}
			} else {
				outcomes = d.Select(cmd.Context(), files)
			}
			if err := a.finish(out, v); err != nil && !errors.Is(err, errFailed) {
				return err
			}
			for _, o := range outcomes {
				if o.Err != nil {
					return errFailed
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&drop, "drop", false, "drop-zone semantics: upload only the first file")
	return cmd
}

func (a *app) transcribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transcribe AUDIO",
		Short: "Transcribe a flac or wav recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := upload.ReadFiles(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			v := a.view(out)
			d, err := a.dashboard(v)
			if err != nil {
				return err
			}
			d.Transcribe(cmd.Context(), files[0])
			return a.finish(out, v)
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(a.cfg); err != nil {
				return fmt.Errorf("config: encode: %w", err)
			}
			return enc.Close()
		},
	}
}

func (a *app) tuiCmd() *cobra.Command {
	var dict string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Logs would corrupt the screen unless they go to a file.
			if a.cfg.Log.File == "" {
				a.log = zap.NewNop()
			}
			a.dictPath = dict
			view := &tui.ProgramView{}
			d, err := a.dashboard(view)
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), d, view, ui.DefaultStyles())
		},
	}
	cmd.Flags().StringVarP(&dict, "dict", "d", "", "user dictionary JSON file for spell-check")
	return cmd
}
