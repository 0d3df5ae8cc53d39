package main

import (
	"context"
	"io"
	"time"

	"github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/go-otel-utils/otelzap"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/spechtlabs/nba/internal/cli/async_operation"
	"github.com/spechtlabs/nba/internal/cli/cmd"
	"github.com/spechtlabs/nba/internal/cli/pretty_print"
	"github.com/spechtlabs/nba/pkg/client/k8s"
	"github.com/spechtlabs/nba/pkg/manifest"
	"github.com/spechtlabs/nba/pkg/utils"
)

// applierFactory connects to the cluster selected by kubeconfig and context.
type applierFactory func(kubeconfig, kubeContext string, opts k8s.ClientOptions) (k8s.ApplyClient, humane.Error)

func newApplyCmd(newApplier applierFactory) *cobra.Command {
	cmdApply := &cobra.Command{
		Use:   "apply [--kubeconfig <file>] [--context <name>] [--dry-run] [--wait] [--timeout <duration>]",
		Short: "Create or update the annotator in a cluster",
		Long: `Synthesize the annotator manifests and create or update every object in the
current cluster, in dependency order. cert-manager must already be installed.

With --dry-run every request is validated by the API server but nothing is
persisted. When the namespace does not exist yet, the objects inside it cannot
be checked by the server and are reported as created.`,
		Example: `# Apply the default topology to the current context
nba apply

# Check what the API server would accept without persisting anything
nba apply --dry-run --context staging

# Block until the certificate is issued and the annotator is available
nba apply --wait --timeout 5m`,
		Args: cobra.ExactArgs(0),
		RunE: func(c *cobra.Command, _ []string) error {
			if err := runApply(c, newApplier); err != nil {
				return err
			}
			return nil
		},
	}

	cmdApply.Flags().String("kubeconfig", "", "Path to the kubeconfig file (default: KUBECONFIG or ~/.kube/config)")
	viper.SetDefault("apply.kubeconfig", "")
	bindFlag(cmdApply, "apply.kubeconfig", "kubeconfig")

	cmdApply.Flags().String("context", "", "Kubeconfig context to use (default: current context)")
	viper.SetDefault("apply.context", "")
	bindFlag(cmdApply, "apply.context", "context")

	cmdApply.Flags().Bool("dry-run", false, "Send every write as a server side dry run")
	viper.SetDefault("apply.dryRun", false)
	bindFlag(cmdApply, "apply.dryRun", "dry-run")

	cmdApply.Flags().Bool("wait", false, "Wait until the certificate is issued and the deployment is available")
	viper.SetDefault("apply.wait", false)
	bindFlag(cmdApply, "apply.wait", "wait")

	cmdApply.Flags().Duration("timeout", 2*time.Minute, "How long --wait waits before giving up")
	viper.SetDefault("apply.timeout", 2*time.Minute)
	bindFlag(cmdApply, "apply.timeout", "timeout")

	return cmdApply
}

func runApply(c *cobra.Command, newApplier applierFactory) humane.Error {
	ctx, cancel := context.WithCancelCause(c.Context())
	defer cancel(context.Canceled)
	utils.InterruptHandler(ctx, cancel)

	g, err := manifest.Synthesize(cmd.SeedsFromConfig())
	if err != nil {
		return err
	}

	// A graph that cannot be emitted is not applied either.
	if _, err := g.Documents(); err != nil {
		return err
	}

	opts := k8s.DefaultClientOptions()
	opts.DryRun = viper.GetBool("apply.dryRun")

	applier, err := newApplier(viper.GetString("apply.kubeconfig"), viper.GetString("apply.context"), opts)
	if err != nil {
		return err
	}

	results, err := applier.Apply(ctx, g.Objects())
	if len(results) > 0 {
		_, _ = c.OutOrStdout().Write([]byte(pretty_print.FormatApplySummary(results, opts.DryRun)))
	}
	if err != nil {
		otelzap.L().WithError(err).ErrorContext(ctx, "Apply failed", zap.Int("applied", len(results)))
		return err
	}

	if !viper.GetBool("apply.wait") || opts.DryRun {
		return nil
	}

	return waitReady(ctx, c.OutOrStdout(), applier, g)
}

func waitReady(ctx context.Context, out io.Writer, applier k8s.ApplyClient, g *manifest.Graph) humane.Error {
	ctx, cancel := context.WithTimeout(ctx, viper.GetDuration("apply.timeout"))
	defer cancel()

	objects := g.Objects()
	return async_operation.Wait(ctx,
		func(ctx context.Context) (bool, humane.Error) {
			return applier.Ready(ctx, objects)
		},
		async_operation.WithOutput(out),
		async_operation.WithInProgressMessage("Waiting for the certificate to be issued and the annotator to become available..."),
		async_operation.WithDoneMessage("The annotator is available."),
		async_operation.WithTimeoutMessage("The annotator did not become available in time"),
	)
}

func newClusterApplier(kubeconfig, kubeContext string, opts k8s.ClientOptions) (k8s.ApplyClient, humane.Error) {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if kubeconfig != "" {
		loadingRules.ExplicitPath = kubeconfig
	}

	overrides := &clientcmd.ConfigOverrides{CurrentContext: kubeContext}
	restCfg, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, overrides).ClientConfig()
	if err != nil {
		return nil, humane.Wrap(err, "failed to load kubeconfig", "pass --kubeconfig or set KUBECONFIG to a valid file")
	}

	scheme, herr := manifest.NewScheme()
	if herr != nil {
		return nil, herr
	}

	return k8s.NewClusterClient(restCfg, scheme, opts)
}
