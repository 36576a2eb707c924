package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"wa-console/internal/clients/console"
	"wa-console/internal/i18n"
	"wa-console/internal/observability"
	"wa-console/internal/wizard"

	"github.com/joho/godotenv"
)

type printNavigator struct {
	logger *observability.Logger
}

func (n printNavigator) Navigate(route string) {
	n.logger.Info(observability.WithFields(context.Background(), observability.Field{Key: "route", Value: route}), "wizard finished")
}

func main() {
	// Load environment variables
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			log.Printf("Warning: env.local file not found: %v", err)
		}
	}

	defaultURL := os.Getenv("CONSOLE_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:4000"
	}

	apiURL := flag.String("api", defaultURL, "console API base URL")
	campaignID := flag.String("campaign", "", "campaign id to edit; empty creates a new campaign")
	title := flag.String("title", "", "campaign title")
	campaignType := flag.String("type", "", "campaign type (BROADCAST or TRANSACTIONAL)")
	templateID := flag.String("template", "", "template id to select")
	lists := flag.String("lists", "", "comma separated contact list ids")
	tags := flag.String("tags", "", "comma separated tag ids")
	throttle := flag.Int("throttle", 0, "messages per minute; 0 keeps the current value")
	lang := flag.String("lang", i18n.DefaultLanguage, "label language (en or ar)")
	draft := flag.Bool("draft", false, "save as draft instead of sending")
	timeout := flag.Duration("timeout", 10*time.Second, "API request timeout")
	flag.Parse()

	logger := observability.NewLogger(observability.WithConsoleOutput())
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog := i18n.MustLoad()
	client := console.NewClient(*apiURL, *timeout, logger)
	w := wizard.New(client, printNavigator{logger: logger},
		wizard.WithCatalog(catalog, *lang),
		wizard.WithLogger(logger),
	)
	defer w.Close()

	if err := run(ctx, w, wizardInput{
		campaignID:   *campaignID,
		title:        *title,
		campaignType: *campaignType,
		templateID:   *templateID,
		lists:        splitIDs(*lists),
		tags:         splitIDs(*tags),
		throttle:     *throttle,
		draft:        *draft,
	}); err != nil {
		logger.Error(ctx, "wizard failed", err)
		os.Exit(1)
	}
}

type wizardInput struct {
	campaignID   string
	title        string
	campaignType string
	templateID   string
	lists        []string
	tags         []string
	throttle     int
	draft        bool
}

// run walks the wizard step by step, printing each label, then saves.
func run(ctx context.Context, w *wizard.Wizard, in wizardInput) error {
	if err := w.Load(ctx, in.campaignID); err != nil {
		return err
	}
	fmt.Println(w.Title())

	for {
		step := w.Step()
		fmt.Printf("[%d/%d] %s\n", int(step)+1, len(wizard.Steps), w.StepLabel(step))

		switch step {
		case wizard.StepBasic:
			current := w.Draft()
			t := in.title
			if t == "" {
				t = current.Title
			}
			if err := w.SetBasic(t, in.campaignType); err != nil {
				return err
			}
		case wizard.StepTemplate:
			if in.templateID != "" {
				if err := w.SelectTemplate(in.templateID); err != nil {
					return err
				}
			}
			fmt.Println(w.Preview())
		case wizard.StepRecipients:
			if in.lists != nil || in.tags != nil {
				if err := w.SetAudience(in.lists, in.tags); err != nil {
					return err
				}
			}
		case wizard.StepAdvanced:
			current := w.Draft()
			rate := current.ThrottleRate
			if in.throttle > 0 {
				rate = in.throttle
			}
			if err := w.SetAdvanced(current.RetryFailed, rate, current.EmailReport); err != nil {
				return err
			}

			if in.draft {
				saved, err := w.SaveDraft(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("%s %s (%s)\n", saved.ID, saved.Title, saved.Status)
				return nil
			}
			saved, err := w.SaveAndSend(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s (%s)\n", saved.ID, saved.Title, saved.Status)
			return nil
		}

		if err := w.Advance(ctx); err != nil {
			return err
		}
	}
}

func splitIDs(s string) []string {
	if s == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
