package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"gradweaver/internal/train"
)

func newTrainCmd() *cobra.Command {
	var (
		configPath     string
		historyPath    string
		checkpointPath string
		plot           bool
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train an MLP classifier on the two-moons set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := train.DefaultConfig()
			if configPath != "" {
				var err error
				cfg, err = train.LoadConfig(configPath)
				if err != nil {
					return err
				}
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			model, history, err := train.Run(cfg, logger)
			if err != nil {
				return err
			}

			final := history.Steps[len(history.Steps)-1]
			fmt.Fprintf(cmd.OutOrStdout(), "final loss %.3f, accuracy %.2f%%\n", final.Loss, final.Accuracy*100)

			if historyPath != "" {
				if err := history.WriteJSON(historyPath); err != nil {
					return err
				}
			}
			if checkpointPath != "" {
				if err := train.SaveCheckpoint(checkpointPath, model); err != nil {
					return err
				}
			}
			if plot {
				fmt.Fprint(cmd.OutOrStdout(), train.Boundary(model, 20))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML training config (defaults used when omitted)")
	cmd.Flags().StringVar(&historyPath, "history", "", "Write the per-epoch run history to this JSON file")
	cmd.Flags().StringVar(&checkpointPath, "checkpoint", "", "Write trained parameters to this JSON file")
	cmd.Flags().BoolVar(&plot, "plot", false, "Print an ASCII decision-boundary plot")
	return cmd
}
