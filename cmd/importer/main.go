// Command importer loads the indicators workbook into PostgreSQL or SQLite so
// the API can serve it with DATASET_SOURCE=postgres|sqlite.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"telecom-metrics-service/internal/config"
	"telecom-metrics-service/internal/logging"
	"telecom-metrics-service/internal/telecom/adapters/sqldb"
	"telecom-metrics-service/internal/telecom/adapters/xlsx"
	"telecom-metrics-service/internal/telecom/core/usecase"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type options struct {
	xlsxPath string
	driver   string
	dsn      string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "importer",
		Short:        "Import the indicators workbook into a SQL store",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("xlsx") {
				opts.xlsxPath = cfg.DatasetPath
			}
			if !cmd.Flags().Changed("dsn") {
				opts.dsn = cfg.SQLitePath
				if opts.driver == sqldb.DriverPostgres {
					opts.dsn = cfg.PostgresDSN
				}
			}
			return run(cmd.Context(), opts, log, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.xlsxPath, "xlsx", "", "workbook path (default DATASET_PATH)")
	cmd.Flags().StringVar(&opts.driver, "driver", sqldb.DriverSQLite, "target database: postgres | sqlite")
	cmd.Flags().StringVar(&opts.dsn, "dsn", "", "connection string or SQLite file (default POSTGRES_DSN / SQLITE_PATH)")
	return cmd
}

func run(ctx context.Context, opts options, log zerolog.Logger, out io.Writer) error {
	if opts.xlsxPath == "" || opts.dsn == "" {
		return fmt.Errorf("both --xlsx and --dsn are required")
	}

	ds, err := xlsx.NewLoader(opts.xlsxPath, log).LoadDataset(ctx)
	if err != nil {
		log.Error().Err(err).Str("xlsx", opts.xlsxPath).Msg("failed to read workbook")
		return err
	}

	db, err := sqldb.Open(ctx, opts.driver, opts.dsn)
	if err != nil {
		log.Error().Err(err).Str("driver", opts.driver).Msg("failed to connect")
		return err
	}
	defer db.Close()

	uc := usecase.NewImportObservationsUseCase(sqldb.NewObservationRepository(sqldb.NewSQLDB(db)))
	summary, err := uc.ImportDataset(ctx, ds)
	if err != nil {
		log.Error().Err(err).Msg("import failed")
		return err
	}

	renderSummary(out, summary)
	log.Info().Str("snapshot_id", ds.SnapshotID().String()).Msg("import finished")
	return nil
}

func renderSummary(w io.Writer, summary []usecase.ImportSummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Table", "Created", "Duplicates"})

	var created, dups int
	for _, s := range summary {
		table.Append([]string{string(s.Family), strconv.Itoa(s.Created), strconv.Itoa(s.Duplicates)})
		created += s.Created
		dups += s.Duplicates
	}
	table.SetFooter([]string{"Total", strconv.Itoa(created), strconv.Itoa(dups)})
	table.Render()
}
