package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/spacesedan/scriptscore/config"
	"github.com/spacesedan/scriptscore/internal/logging"
	"github.com/spacesedan/scriptscore/internal/report"
	"github.com/spacesedan/scriptscore/internal/textutil"
)

func main() {
	root := &cobra.Command{
		Use:          "scriptscore [script text]",
		Short:        "Score a short-form video script for virality",
		Long:         "Runs the heuristic analyzers (or a one-shot remote model evaluation) over a script and prints the unified report as JSON.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().StringP("file", "f", "", "Read the script from a file instead of the argument ('-' for stdin)")
	root.Flags().String("topic", "", "Topic hint for hashtag suggestions")
	root.Flags().String("platform", report.DefaultPlatform, "Target platform id for guideline checks")
	root.Flags().StringSlice("trending", nil, "Trending hashtags to prioritize if relevant")
	root.Flags().StringSlice("banned", nil, "Extra banned terms for the brand-safety check")
	root.Flags().Bool("remote", false, "Use the remote model evaluation (falls back to heuristics on failure)")
	root.Flags().Int("max-hashtags", 0, "Cap for suggested hashtags (default 6)")
	root.Flags().Bool("markdown", false, "Treat input as markdown and strip formatting first")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	script, err := readScript(cmd, args)
	if err != nil {
		return err
	}
	if markdown, _ := cmd.Flags().GetBool("markdown"); markdown {
		script = textutil.PlainText(script)
	}

	topic, _ := cmd.Flags().GetString("topic")
	platform, _ := cmd.Flags().GetString("platform")
	trending, _ := cmd.Flags().GetStringSlice("trending")
	banned, _ := cmd.Flags().GetStringSlice("banned")
	remote, _ := cmd.Flags().GetBool("remote")
	maxTags, _ := cmd.Flags().GetInt("max-hashtags")

	// The core has no timeout of its own; bound the one possible network
	// call here at the collaborator boundary.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	rep := report.AnalyzeScript(ctx, script, report.Options{
		Topic:          topic,
		Platform:       platform,
		Trending:       trending,
		BannedTerms:    banned,
		UseRemoteModel: remote,
		MaxHashtags:    maxTags,
	})

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func readScript(cmd *cobra.Command, args []string) (string, error) {
	file, _ := cmd.Flags().GetString("file")
	switch {
	case file == "-":
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read script file: %w", err)
		}
		return string(b), nil
	case len(args) == 1:
		return args[0], nil
	default:
		return "", errors.New("provide the script as an argument or via --file")
	}
}
