package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/netscheme-backend/internal/app"
	"github.com/heartmarshall/netscheme-backend/internal/service/threshold"
	"github.com/heartmarshall/netscheme-backend/internal/transport/dto"
	"github.com/heartmarshall/netscheme-backend/pkg/ctxutil"
)

func newThresholdsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thresholds",
		Short: "Manage alert thresholds",
	}
	cmd.AddCommand(newThresholdsImportCmd(e))
	return cmd
}

func newThresholdsImportCmd(e *env) *cobra.Command {
	var actor string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Create a batch of thresholds from a YAML file in one transaction",
		Example: `  schemectl thresholds import thresholds.yaml --actor 6f1c...
  cat thresholds.yaml | schemectl thresholds import - --actor 6f1c...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readImport(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			if err := in.Validate(); err != nil {
				return err
			}
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "%d thresholds valid\n", len(in.Thresholds))
				return nil
			}

			actorID, err := uuid.Parse(actor)
			if err != nil {
				return fmt.Errorf("--actor: %w", err)
			}

			ctx := cmd.Context()
			pool, err := e.connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			svcs := app.NewServices(e.cfg, e.logger, pool, nil)
			created, err := svcs.Thresholds.Import(ctxutil.WithUserID(ctx, actorID), in)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.Map(created, dto.FromThreshold))
		},
	}

	cmd.Flags().StringVar(&actor, "actor", "", "user id recorded as the creator in the audit trail")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate the file without writing")
	return cmd
}

// readImport decodes a threshold file. "-" reads stdin. Unknown keys are
// rejected so a typo does not silently drop a field.
func readImport(stdin io.Reader, path string) (threshold.ImportInput, error) {
	var in threshold.ImportInput

	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return in, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return in, fmt.Errorf("decode %s: empty file", path)
		}
		return in, fmt.Errorf("decode %s: %w", path, err)
	}
	return in, nil
}
