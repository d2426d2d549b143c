// Command bertpiece-bench loads a WordPiece vocabulary, tokenizes a corpus
// of newline-delimited text, and prints throughput (lines/s, tokens/s). The
// encode-call and [UNK]-fallback counters are served on the Prometheus
// /metrics endpoint, not printed.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/crimson-sun/bertpiece/internal/config"
	"github.com/crimson-sun/bertpiece/internal/logging"
	"github.com/crimson-sun/bertpiece/internal/metrics"
	"github.com/crimson-sun/bertpiece/pkg/bertpiece"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bertpiece-bench: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "bertpiece-bench",
		Short: "Benchmark WordPiece tokenization throughput over a text corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v)
		},
	}

	flags := cmd.Flags()
	flags.String("vocab", "", "path to vocab.txt (required)")
	flags.String("corpus", "", "path to a newline-delimited text corpus (required)")
	flags.Int("max-tokens", 128, "maximum sequence length before truncation")
	flags.Int("pad-to", 0, "pad every row to this length (0 disables padding)")
	flags.Int("batch-size", 32, "number of lines encoded per EncodeBatch call")
	flags.Int("workers", runtime.NumCPU(), "worker goroutines per batch")
	flags.Bool("lowercase", true, "lowercase input before matching")
	flags.String("verbosity", "standard", "log verbosity: quiet, standard, verbose")
	flags.String("metrics-addr", ":9090", "address to serve Prometheus /metrics on, empty disables it")

	for _, name := range []string{"vocab", "corpus", "max-tokens", "pad-to", "batch-size", "workers", "lowercase", "verbosity", "metrics-addr"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	return cmd
}

func run(v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logging.Init(false, logging.LevelForVerbosity(cfg.Verbosity))

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				slog.Error("metrics server stopped", "error", err)
			}
		}()
		slog.Info("metrics server started", "addr", cfg.MetricsAddr)
	}

	vocab, err := bertpiece.LoadVocabulary(cfg.VocabPath, bertpiece.WithLowercase(cfg.Lowercase))
	if err != nil {
		return fmt.Errorf("load vocabulary: %w", err)
	}
	slog.Info("vocabulary loaded", "path", cfg.VocabPath, "size", vocab.Size())

	lines, err := readLines(cfg.CorpusPath)
	if err != nil {
		return fmt.Errorf("read corpus: %w", err)
	}
	slog.Info("corpus loaded", "path", cfg.CorpusPath, "lines", len(lines))

	tok := bertpiece.NewTokenizer(vocab, bertpiece.WithMetrics(collector))

	start := time.Now()
	var totalTokens int
	for i := 0; i < len(lines); i += cfg.BatchSize {
		end := min(i+cfg.BatchSize, len(lines))
		batch, err := tok.EncodeBatch(lines[i:end], cfg.MaxTokens, cfg.PadTo, cfg.Workers)
		if err != nil {
			return fmt.Errorf("encode batch at line %d: %w", i, err)
		}
		for _, n := range batch.Lengths {
			totalTokens += n
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("lines=%d tokens=%d elapsed=%s lines/s=%.1f tokens/s=%.1f\n",
		len(lines), totalTokens, elapsed.Round(time.Millisecond),
		float64(len(lines))/elapsed.Seconds(), float64(totalTokens)/elapsed.Seconds())

	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
