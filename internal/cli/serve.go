package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"vocabsearch/internal/logging"
	"vocabsearch/internal/server"
	"vocabsearch/internal/vocab"
)

var errNoVocabPath = errors.New("vocabulary path required: pass it as an argument or set server.vocab_path")

var serveFlags struct {
	addr      string
	logDir    string
	rateLimit float64
	rateBurst int
}

var serveCmd = &cobra.Command{
	Use:   "serve [vocab-path]",
	Short: "Serve the vocabulary and the search page over HTTP",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveFlags.addr, "addr", "", "listen address (default from config, :8080)")
	f.StringVar(&serveFlags.logDir, "log-dir", "", "write numbered log files to this directory instead of stdout")
	f.Float64Var(&serveFlags.rateLimit, "rate-limit", 0, "requests per second, 0 disables limiting")
	f.IntVar(&serveFlags.rateBurst, "rate-burst", 0, "rate limiter burst size")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s := cfg.Server
	if len(args) > 0 {
		s.VocabPath = args[0]
	}
	f := cmd.Flags()
	if f.Changed("addr") {
		s.Addr = serveFlags.addr
	}
	if f.Changed("log-dir") {
		s.LogDir = serveFlags.logDir
	}
	if f.Changed("rate-limit") {
		s.RateLimit = serveFlags.rateLimit
	}
	if f.Changed("rate-burst") {
		s.RateBurst = serveFlags.rateBurst
	}
	if s.VocabPath == "" {
		_ = cmd.Usage()
		return errNoVocabPath
	}

	logOut := os.Stdout
	if s.LogDir != "" {
		logOut, err = logging.OpenDir(s.LogDir)
		if err != nil {
			return err
		}
		defer logOut.Close()
	}
	logger := logging.New(logOut, slog.LevelInfo)

	payload, err := vocab.ReadFile(s.VocabPath)
	if err != nil {
		return err
	}
	logger.Info("vocabulary loaded", "path", s.VocabPath, "entries", len(payload.Entries()), "gzip_bytes", len(payload.Gzip))

	handler, err := server.New(payload, server.Options{
		RateLimit: s.RateLimit,
		RateBurst: s.RateBurst,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	return server.ListenAndRun(cmd.Context(), s.Addr, handler, logger)
}
