package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/knn/dataset"
	"github.com/viant/knn/session"
)

func (a *app) newSession(cmd *cobra.Command, training dataset.Dataset) (*session.Session, error) {
	workers, err := a.workers(cmd)
	if err != nil {
		return nil, err
	}
	return session.New(training, a.k(cmd),
		session.WithLogger(a.logger),
		session.WithWorkers(workers),
	)
}

func newShellCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Run the interactive classification menu",
		Long: "Run the interactive menu: evaluate a test file, classify one observation, change k or exit.\n" +
			"Without --train or --dataset the training file and k are prompted for.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			training, ok, err := a.training(cmd)
			if err != nil {
				return err
			}
			if !ok {
				workers, err := a.workers(cmd)
				if err != nil {
					return err
				}
				return session.Start(cmd.InOrStdin(), cmd.OutOrStdout(), dataset.LoadFile,
					session.WithLogger(a.logger),
					session.WithWorkers(workers),
				)
			}
			s, err := a.newSession(cmd, training)
			if err != nil {
				return err
			}
			return session.NewShell(s, cmd.InOrStdin(), cmd.OutOrStdout(), dataset.LoadFile).Run()
		},
	}
	addTrainingFlags(cmd)
	cmd.Flags().Int("workers", 0, "Concurrent classifications in batch evaluation (defaults to config)")
	return cmd
}

func newEvalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Classify every instance of a test file and report accuracy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			training, err := a.requireTraining(cmd)
			if err != nil {
				return err
			}
			testPath, _ := cmd.Flags().GetString("test")
			test, err := dataset.LoadFile(testPath)
			if err != nil {
				return err
			}
			s, err := a.newSession(cmd, training)
			if err != nil {
				return err
			}
			report, err := s.EvaluateBatch(test)
			if err != nil {
				return fmt.Errorf("%s: %w", testPath, err)
			}
			return session.WriteReport(cmd.OutOrStdout(), report)
		},
	}
	addTrainingFlags(cmd)
	cmd.Flags().String("test", "", "Path to the test file")
	cmd.Flags().Int("workers", 0, "Concurrent classifications (defaults to config)")
	_ = cmd.MarkFlagRequired("test")
	return cmd
}

func newPredictCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict FEATURES",
		Short: "Classify one comma-separated observation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			training, err := a.requireTraining(cmd)
			if err != nil {
				return err
			}
			features, err := dataset.ParseFeatures(args[0])
			if err != nil {
				return err
			}
			s, err := a.newSession(cmd, training)
			if err != nil {
				return err
			}
			label, err := s.PredictOne(features)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Predicted Label: %s\n", label)
			return nil
		},
	}
	addTrainingFlags(cmd)
	return cmd
}
