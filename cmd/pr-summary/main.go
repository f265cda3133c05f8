package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roivaz/pr-summary/internal/config"
	"github.com/roivaz/pr-summary/internal/logging"
	"github.com/roivaz/pr-summary/internal/pullrequest"
	"github.com/roivaz/pr-summary/internal/summarizer"
)

var rootCmd = &cobra.Command{
	Use:          "pr-summary",
	Short:        "Summarize a pull request diff with an LLM and post it as a comment",
	SilenceUsage: true,
	RunE:         run,
}

func main() {
	rootCmd.PersistentFlags().String("github-repository", "", "Repository as owner/name or URL (env GITHUB_REPOSITORY)")
	rootCmd.PersistentFlags().Int("pr-number", 0, "Pull request number")
	rootCmd.PersistentFlags().String("github-event-path", "", "GitHub Actions event payload used when --pr-number is unset (env GITHUB_EVENT_PATH)")
	rootCmd.PersistentFlags().String("model-name", "", "Completion model name (env MODEL_NAME)")
	rootCmd.PersistentFlags().String("llm-provider", "", "openai or ollama")
	rootCmd.PersistentFlags().String("prompt-file", "", "YAML file overriding shared_prompt/instructions")
	rootCmd.PersistentFlags().String("log-level", "", "info or debug")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Print the summary instead of posting it")

	config.Init(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("pr-summary: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	base := logging.NewLogger(config.LogLevel())

	ref, err := pullrequest.ResolveRef(config.GitHubRepository(), config.PRNumber(), config.GitHubEventPath())
	if err != nil {
		return err
	}

	cfg, err := summarizer.LoadConfig()
	if err != nil {
		return err
	}
	cfg.Logger = base

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() { <-sigs; cancel() }()

	rt, err := summarizer.Build(ctx, cfg)
	if err != nil {
		return err
	}
	defer rt.Close()
	svc := rt.Summarizer

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		result, err := svc.Preview(ctx, ref)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Text)
		return nil
	}

	return svc.PostPRSummary(ctx, ref.Number, pullrequest.Repository{Owner: ref.Owner, Name: ref.Repo})
}
