package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/isavita/coderev/internal/config"
	"github.com/isavita/coderev/internal/git"
	"github.com/isavita/coderev/internal/provider"
	"github.com/isavita/coderev/internal/provider/claude"
	"github.com/isavita/coderev/internal/provider/ollama"
	"github.com/isavita/coderev/internal/provider/openai"
	"github.com/isavita/coderev/internal/render"
	"github.com/isavita/coderev/internal/review"
	"github.com/spf13/cobra"
)

var reviewFlags struct {
	baseBranch         string
	files              []string
	model              string
	temperature        string
	systemMessage      string
	reviewInstructions string
}

var reviewCmd = &cobra.Command{
	Use:   "review [branch]",
	Short: "Review a branch against the base branch",
	Long: `Review collects the diff between the base branch and the target branch,
sends it to the configured model, and prints the review feedback.

Without a branch argument the current branch is reviewed. Use -f to narrow
the review to specific files.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		overrides := overridesFromFlags(cmd)

		var branch string
		if len(args) > 0 {
			branch = args[0]
		}

		renderer := render.New(render.DefaultOptions())
		return runReview(cmd.Context(), reviewDeps{
			repo:     repo,
			store:    store,
			registry: newProviderRegistry(),
			renderer: renderer,
		}, reviewParams{
			branch:    branch,
			files:     reviewFlags.files,
			overrides: overrides,
		})
	},
}

func init() {
	reviewCmd.Flags().StringVar(&reviewFlags.baseBranch, "base-branch", "", "base branch to diff against")
	reviewCmd.Flags().StringArrayVarP(&reviewFlags.files, "file", "f", nil, "limit the review to specific files (repeatable)")
	reviewCmd.Flags().StringVar(&reviewFlags.model, "model", "", "model to use for the review")
	reviewCmd.Flags().StringVar(&reviewFlags.temperature, "temperature", "", "sampling temperature in [0, 2]")
	reviewCmd.Flags().StringVar(&reviewFlags.systemMessage, "system-message", "", "system message sent to the model")
	reviewCmd.Flags().StringVar(&reviewFlags.reviewInstructions, "review-instructions", "", "review guidelines included in the prompt")

	rootCmd.AddCommand(reviewCmd)
}

// overridesFromFlags builds the per-invocation overrides. Only flags the
// user actually provided participate in resolution, so an empty string is
// still a deliberate override.
func overridesFromFlags(cmd *cobra.Command) config.Overrides {
	var o config.Overrides
	if cmd.Flags().Changed("model") {
		o.Model = &reviewFlags.model
	}
	if cmd.Flags().Changed("temperature") {
		o.Temperature = &reviewFlags.temperature
	}
	if cmd.Flags().Changed("base-branch") {
		o.BaseBranch = &reviewFlags.baseBranch
	}
	if cmd.Flags().Changed("system-message") {
		o.SystemMessage = &reviewFlags.systemMessage
	}
	if cmd.Flags().Changed("review-instructions") {
		o.ReviewInstructions = &reviewFlags.reviewInstructions
	}
	return o
}

// reviewDeps are the collaborators of a review run, injected so tests can
// substitute a mock provider and temporary repositories.
type reviewDeps struct {
	repo     *git.Repository
	store    *config.Store
	registry *provider.Registry
	renderer *render.Renderer
}

// reviewParams are the user inputs of a review run.
type reviewParams struct {
	branch    string
	files     []string
	overrides config.Overrides
}

// runReview executes the full review flow. The diff is collected before any
// provider is constructed so that git failures never trigger a model call.
func runReview(ctx context.Context, deps reviewDeps, params reviewParams) error {
	settings, err := config.Resolve(params.overrides, deps.store)
	if err != nil {
		return err
	}

	branch := params.branch
	if branch == "" {
		branch, err = deps.repo.GetCurrentBranch(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "No branch specified, reviewing current branch: %s\n", branch)
	}

	diff, err := deps.repo.GetBranchDiff(ctx, settings.BaseBranch, branch, params.files)
	if err != nil {
		return err
	}

	changedFiles, err := deps.repo.GetChangedFiles(ctx, settings.BaseBranch, branch)
	if err != nil {
		return err
	}

	commits, err := deps.repo.GetCommits(ctx, settings.BaseBranch, branch)
	if err != nil {
		return err
	}

	stats, err := deps.repo.GetDiffStats(ctx, settings.BaseBranch, branch)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Reviewing %s against %s: %d files, +%d/-%d, %s of diff\n",
		branch, settings.BaseBranch, stats.FilesChanged, stats.Additions, stats.Deletions,
		humanize.Bytes(uint64(len(diff))))

	userPrompt := review.BuildUserPrompt(&review.Request{
		Branch:         branch,
		BaseBranch:     settings.BaseBranch,
		ChangedFiles:   changedFiles,
		RequestedFiles: params.files,
		Commits:        commits,
		Instructions:   settings.ReviewInstructions,
		Diff:           diff,
	})

	if IsDebug() {
		deps.renderer.RenderPanel("resolved settings", settingsSummary(settings))
		deps.renderer.RenderPanel("system message", settings.SystemMessage)
		deps.renderer.RenderPanel("user prompt", userPrompt)
	}

	p, model, err := deps.registry.ForModel(settings.Model)
	if err != nil {
		return err
	}
	Debug("using provider %s with model %s", p.Name(), model)

	resp, err := p.Review(ctx, &provider.ReviewRequest{
		Model:        model,
		SystemPrompt: settings.SystemMessage,
		UserPrompt:   userPrompt,
		Temperature:  settings.Temperature,
	})
	if err != nil {
		return fmt.Errorf("review failed: %w", err)
	}
	Debug("review used %d tokens", resp.TokensUsed)

	return deps.renderer.RenderReview(review.CleanResponse(resp.Content))
}

// settingsSummary formats the short settings for the debug panel. The long
// message fields get panels of their own.
func settingsSummary(s config.Settings) string {
	return fmt.Sprintf("model: %s\ntemperature: %g\nbase_branch: %s", s.Model, s.Temperature, s.BaseBranch)
}

// newProviderRegistry wires the real providers. Construction is lazy, so a
// missing API key only matters for the provider the model routes to.
func newProviderRegistry() *provider.Registry {
	r := provider.NewRegistry()
	r.Register("claude", func() (provider.Provider, error) {
		return claude.New(os.Getenv("ANTHROPIC_API_KEY"))
	})
	r.Register("openai", func() (provider.Provider, error) {
		return openai.New(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_BASE_URL"))
	})
	r.Register("ollama", func() (provider.Provider, error) {
		return ollama.New(os.Getenv("OLLAMA_HOST"))
	})
	return r
}
