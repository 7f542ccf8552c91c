// Package cli wires the classifier packages into the knn command tree.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/knn/config"
	"github.com/viant/knn/dataset"
	"github.com/viant/knn/logging"
	"github.com/viant/knn/store"
)

// version is set via -ldflags at build time.
var version = "(devel)"

type app struct {
	cfg    *config.Config
	logger *logging.Logger
}

// Execute runs the knn command.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the knn command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "knn",
		Short:         "k-nearest-neighbors classifier",
		Long:          "knn classifies labeled numeric feature vectors by majority vote over the k nearest training instances.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().String("config", "knn.yaml", "Path to YAML configuration file")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides config)")

	root.AddCommand(
		newShellCmd(a),
		newEvalCmd(a),
		newPredictCmd(a),
		newNearestCmd(a),
		newImportCmd(a),
		newExportCmd(a),
		newDatasetsCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(level, cfg.Logging.Format, cmd.ErrOrStderr())
	return nil
}

func (a *app) openStore(ctx context.Context) (store.Store, error) {
	return store.Open(ctx, a.cfg.Store.Driver, a.cfg.Store.Path)
}

// addTrainingFlags registers the flags selecting the training set and k.
func addTrainingFlags(cmd *cobra.Command) {
	cmd.Flags().String("train", "", "Path to the training file (.csv, .csv.gz or .csv.zst)")
	cmd.Flags().String("dataset", "", "Name of a stored training dataset")
	cmd.Flags().IntP("k", "k", 0, "Number of neighbors (defaults to config)")
	cmd.MarkFlagsMutuallyExclusive("train", "dataset")
}

// k returns --k when it was given, the configured k otherwise. An explicit
// value is passed on as is so that an invalid k is reported, not replaced.
func (a *app) k(cmd *cobra.Command) int {
	if cmd.Flags().Changed("k") {
		k, _ := cmd.Flags().GetInt("k")
		return k
	}
	return a.cfg.K
}

// workers returns --workers when it was given, the configured value otherwise.
func (a *app) workers(cmd *cobra.Command) (int, error) {
	if !cmd.Flags().Changed("workers") {
		return a.cfg.Workers, nil
	}
	n, _ := cmd.Flags().GetInt("workers")
	if n <= 0 {
		return 0, fmt.Errorf("invalid workers %d: must be positive", n)
	}
	return n, nil
}

// training loads the training set named by --train or --dataset. The boolean
// is false when neither flag is set.
func (a *app) training(cmd *cobra.Command) (dataset.Dataset, bool, error) {
	if name, _ := cmd.Flags().GetString("dataset"); name != "" {
		s, err := a.openStore(cmd.Context())
		if err != nil {
			return nil, true, err
		}
		defer s.Close()
		ds, err := s.Load(cmd.Context(), name)
		return ds, true, err
	}
	if path, _ := cmd.Flags().GetString("train"); path != "" {
		ds, err := dataset.LoadFile(path)
		return ds, true, err
	}
	return nil, false, nil
}

func (a *app) requireTraining(cmd *cobra.Command) (dataset.Dataset, error) {
	ds, ok, err := a.training(cmd)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("one of --train or --dataset is required")
	}
	return ds, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "knn", version)
		},
	}
}
