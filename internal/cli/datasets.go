package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/knn/dataset"
	"github.com/viant/knn/store"
)

func newImportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Store a dataset file under a name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("train")
			name, _ := cmd.Flags().GetString("name")
			ds, err := dataset.LoadFile(path)
			if err != nil {
				return err
			}
			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.Save(cmd.Context(), name, ds); err != nil {
				return err
			}
			a.logger.Info("dataset imported", "name", name, "instances", len(ds), "driver", a.cfg.Store.Driver)
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d instances into %s\n", len(ds), name)
			return nil
		},
	}
	cmd.Flags().String("train", "", "Path to the dataset file")
	cmd.Flags().String("name", "", "Dataset name")
	_ = cmd.MarkFlagRequired("train")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write a stored dataset to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()
			ds, err := s.Load(cmd.Context(), name)
			if err != nil {
				return err
			}
			return dataset.SaveFile(args[0], ds)
		},
	}
	cmd.Flags().String("name", "", "Dataset name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newDatasetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List stored datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()
			names, err := s.Names(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newNearestCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nearest FEATURES",
		Short: "List the k stored instances closest to an observation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("dataset")
			features, err := dataset.ParseFeatures(args[0])
			if err != nil {
				return err
			}
			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()
			neighbors, err := store.Nearest(cmd.Context(), s, name, features, a.k(cmd))
			if err != nil {
				return err
			}
			for i, n := range neighbors {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%g\n", i+1, n.Label, n.Distance)
			}
			return nil
		},
	}
	cmd.Flags().String("dataset", "", "Name of a stored dataset")
	cmd.Flags().IntP("k", "k", 0, "Number of neighbors (defaults to config)")
	_ = cmd.MarkFlagRequired("dataset")
	return cmd
}
