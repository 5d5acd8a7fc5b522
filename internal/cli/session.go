package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"winpick/internal/config"
	"winpick/internal/domain"
	"winpick/internal/eventbus"
	"winpick/internal/source"
	"winpick/internal/ui"
)

// session wires logging, the event bus and the configuration for one command run
type session struct {
	cfg     *config.Config
	bus     eventbus.EventBus
	logFile io.Closer
}

func openSession(cmd *cobra.Command, opts *Options) (*session, error) {
	s := &session{}

	// Set up logging
	logFile, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.SetOutput(io.Discard)
	} else {
		s.logFile = logFile
		log.SetOutput(logFile)
	}

	s.bus = eventbus.New()
	logEvents(s.bus)

	configSvc := configService(opts.ConfigPath, s.bus)
	cfg, err := configSvc.Load()
	if err != nil {
		s.Close()
		return nil, err
	}
	if err := opts.Apply(cmd, cfg); err != nil {
		s.Close()
		return nil, err
	}
	s.cfg = cfg

	return s, nil
}

func configService(path string, bus eventbus.EventBus) config.ConfigService {
	if path != "" {
		return config.NewConfigServiceAt(path, bus)
	}
	return config.NewConfigServiceWithBus(bus)
}

// Close flushes pending events and closes the log file
func (s *session) Close() {
	if s.bus != nil {
		s.bus.Close()
	}
	if s.logFile != nil {
		log.SetOutput(os.Stderr)
		s.logFile.Close()
	}
}

// fetcher puts the configured cache in front of src
func (s *session) fetcher(src source.Fetcher[string]) (source.Fetcher[string], error) {
	if !s.cfg.Cache.Enabled {
		return src, nil
	}
	cached, err := source.NewCached(src, s.cfg.Cache.Size)
	if err != nil {
		return nil, err
	}
	return cached, nil
}

// matcher creates the configured matcher
func (s *session) matcher() (source.Matcher, error) {
	return source.NewMatcher(s.cfg.Matching.Algorithm, s.cfg.Matching.CaseSensitive)
}

// prompt builds a prompt over src from the configuration
func (s *session) prompt(src source.Fetcher[string]) (*ui.Prompt[string], error) {
	f, err := s.fetcher(src)
	if err != nil {
		return nil, err
	}
	return ui.NewPrompt(s.cfg.Prompt.Message, f).
		WithHelpMessage(s.cfg.Prompt.HelpMessage).
		WithConfig(s.cfg.SelectConfig()).
		WithStartingCursor(s.cfg.Select.StartingCursor).
		WithStartingFilter(s.cfg.Select.StartingFilter).
		WithBus(s.bus), nil
}

// run shows the prompt on the terminal. The frame goes to stderr and keys come from
// the controlling terminal, so stdin and stdout stay free for pipes.
func run(ctx context.Context, p *ui.Prompt[string]) (domain.ListOption[string], error) {
	return p.Run(ctx, tea.WithOutput(os.Stderr), tea.WithInputTTY())
}

// printAnswer writes the chosen option or its index
func printAnswer(w io.Writer, answer domain.ListOption[string], index bool) error {
	var err error
	if index {
		_, err = fmt.Fprintln(w, answer.Index)
	} else {
		_, err = fmt.Fprintln(w, answer.Value)
	}
	return err
}

// logEvents writes prompt events to the log
func logEvents(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventPromptStarted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PromptStartedEvent); ok {
			log.Printf("Prompt %q started with %d options", event.Message, event.Total)
		}
	})
	bus.Subscribe(eventbus.EventOptionsFetched, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.OptionsFetchedEvent); ok {
			log.Printf("Filter %q: %d of %d options from offset %d", event.Filter, event.Count, event.Total, event.Offset)
		}
	})
	bus.Subscribe(eventbus.EventFetchFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FetchFailedEvent); ok {
			log.Printf("Fetch failed for filter %q: %v", event.Filter, event.Err)
		}
	})
	bus.Subscribe(eventbus.EventAnswerSubmitted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.AnswerSubmittedEvent); ok {
			log.Printf("Answer submitted: #%d %q", event.Index, event.Answer)
		}
	})
	bus.Subscribe(eventbus.EventPromptCancelled, func(e eventbus.DomainEvent) {
		log.Printf("Prompt cancelled")
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Config loaded from %s (page size %d, vim %v)", event.Path, event.PageSize, event.VimMode)
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Printf("Config saved to %s", event.Path)
		}
	})
}
