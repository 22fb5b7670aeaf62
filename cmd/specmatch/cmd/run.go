package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	specmatch "github.com/transactionalblog/sigmod-contest-2020"
	"github.com/transactionalblog/sigmod-contest-2020/internal/dataset"
	"github.com/transactionalblog/sigmod-contest-2020/internal/submission"
	"github.com/transactionalblog/sigmod-contest-2020/pkg/errors"
	"github.com/transactionalblog/sigmod-contest-2020/pkg/logging"
)

// runCmd executes the full resolution pipeline and writes the
// submission CSV.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Resolve the dataset and write the submission CSV",
	Long: `Run reads the dataset (one directory per source, one JSON file per
specification), resolves matching specification pairs, and writes them
to the submission file as left_spec_id,right_spec_id rows.

Records without a page title, and records whose title is shorter than
the blocking key length, are skipped and counted; a duplicate spec id
aborts the run.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("dataset", "./dataset", "dataset root directory")
	runCmd.Flags().String("output", "./output/submission.csv", "submission CSV path")
	runCmd.Flags().Int("key-length", 3, "blocking key length in characters")
	runCmd.Flags().Int("threshold", 2, "shared title tokens required for a match")
	runCmd.Flags().Int("workers", 1, "blocks matched concurrently")
	runCmd.Flags().String("metrics-addr", "", "serve prometheus metrics on this address during the run")

	for _, flag := range []string{"dataset", "output", "key-length", "threshold", "workers", "metrics-addr"} {
		if err := viper.BindPFlag(flag, runCmd.Flags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("Failed to bind %s flag: %v", flag, err))
		}
	}
}

func runRun(cmd *cobra.Command, _ []string) error {
	datasetDir := viper.GetString("dataset")
	outputPath := viper.GetString("output")

	keyLength := viper.GetInt("key-length")
	if keyLength < 1 {
		return errors.NewConfigError("key-length",
			fmt.Sprintf("blocking key length must be at least 1, got %d", keyLength),
			errors.ErrInvalidInput)
	}

	if addr := viper.GetString("metrics-addr"); addr != "" {
		serveMetrics(addr)
	}

	logging.Info().Str("dataset", datasetDir).Msg("Reading dataset")
	items, err := dataset.Read(datasetDir)
	if err != nil {
		return err
	}

	pipeline := specmatch.New(
		specmatch.WithKeyLength(keyLength),
		specmatch.WithThreshold(viper.GetInt("threshold")),
		specmatch.WithWorkers(viper.GetInt("workers")),
	)

	result, err := pipeline.Run(cmd.Context(), items)
	if err != nil {
		return err
	}

	if err := submission.WriteFile(outputPath, result.Matches); err != nil {
		return err
	}

	logging.Info().Str("path", outputPath).Msg("Submission written")
	fmt.Println(result.Summary())
	return nil
}

// serveMetrics exposes the prometheus registry for the duration of the
// run. A failure to bind is logged and the run continues.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logging.Info().Str("addr", addr).Msg("Serving metrics")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn().Err(err).Msg("Metrics server stopped")
		}
	}()
}
