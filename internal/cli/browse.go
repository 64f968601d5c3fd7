package cli

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"vocabsearch/internal/domain"
	"vocabsearch/internal/eventbus"
	"vocabsearch/internal/loader"
	"vocabsearch/internal/logging"
	"vocabsearch/internal/ui"
)

var browseFlags struct {
	url       string
	file      string
	wordWidth int
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Search the vocabulary interactively in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func init() {
	f := browseCmd.Flags()
	f.StringVarP(&browseFlags.url, "url", "u", "", "vocabulary server base URL")
	f.StringVarP(&browseFlags.file, "file", "f", "", "read the vocabulary from a local file instead of a server")
	f.IntVar(&browseFlags.wordWidth, "word-width", 0, "width of the word column")
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c := cfg.Client
	f := cmd.Flags()
	if f.Changed("url") {
		c.BaseURL = browseFlags.url
		c.VocabFile = ""
	}
	if f.Changed("file") {
		c.VocabFile = browseFlags.file
	}
	if f.Changed("word-width") && browseFlags.wordWidth > 0 {
		c.WordWidth = browseFlags.wordWidth
	}

	// the terminal belongs to the UI, so logs go to a file
	logger := logging.Discard()
	if c.LogFile != "" {
		logFile, err := logging.OpenFile(c.LogFile)
		if err != nil {
			return err
		}
		defer logFile.Close()
		logger = logging.New(logFile, slog.LevelDebug)
	}

	var src loader.Source = loader.NewHTTPSource(c.BaseURL)
	if c.VocabFile != "" {
		src = loader.FileSource{Path: c.VocabFile}
	}

	bus := eventbus.New(logger)
	defer bus.Close()
	subscribeLogging(bus, logger)

	model := ui.NewModel(cmd.Context(), ui.Options{
		Source:    src,
		WordWidth: c.WordWidth,
		Bus:       bus,
		Logger:    logger,
	})

	logger.Info("starting UI", "url", c.BaseURL, "file", c.VocabFile)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		logger.Error("error running program", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("UI exited")

	if err := model.Err(); err != nil {
		return fmt.Errorf("virhe ladattaessa sisältöä: %w", err)
	}
	return nil
}

// subscribeLogging records widget events in the log file
func subscribeLogging(bus eventbus.EventBus, logger *slog.Logger) {
	bus.Subscribe(eventbus.EventVocabLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.VocabLoadedEvent); ok {
			logger.Info("vocabulary loaded", "entries", event.Count)
		}
	})
	bus.Subscribe(eventbus.EventVocabLoadFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.VocabLoadFailedEvent); ok {
			logger.Error("vocabulary load failed", "error", event.Err)
		}
	})
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.SearchCompletedEvent); ok {
			logger.Debug("search completed", "query", event.Query, "matches", event.Matches)
		}
	})
	bus.Subscribe(eventbus.EventSearchFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.SearchFailedEvent); ok {
			logger.Warn("search failed", "query", event.Query, "error", event.Err)
		}
	})
	bus.Subscribe(eventbus.EventPageRendered, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.PageRenderedEvent); ok {
			logger.Debug("page rendered", "shown", event.Shown, "total", event.Total)
		}
	})
}
