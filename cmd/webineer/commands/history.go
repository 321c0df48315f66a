package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/diamondcougar10/Webineer/internal/history"
)

// HistoryCmd implements the 'history' command.
type HistoryCmd struct {
	Limit   int    `short:"n" help:"Number of runs to show" default:"20"`
	BuildID string `name:"build-id" help:"Show all events for one build ID"`
}

func (h *HistoryCmd) Run(g *Global) error {
	store, err := openHistory(g.Config)
	if err != nil {
		return err
	}
	if store == nil {
		return fmt.Errorf("history is disabled (history_db is empty in the configuration)")
	}
	defer closeHistory(store)

	ctx := context.Background()
	var events []history.Event
	if h.BuildID != "" {
		events, err = store.ByBuildID(ctx, h.BuildID)
	} else {
		events, err = store.Recent(ctx, h.Limit)
	}
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("No recorded runs")
		return nil
	}

	for _, event := range events {
		fmt.Printf("%s  %-7s  %s  %s\n",
			event.Timestamp.Format("2006-01-02 15:04:05"),
			event.Type,
			event.BuildID,
			summarize(event))
	}
	return nil
}

// summarize formats the payload of one event as a single line.
func summarize(event history.Event) string {
	switch event.Type {
	case history.EventRender:
		var record history.RenderRecord
		if err := json.Unmarshal(event.Payload, &record); err != nil {
			return ""
		}
		status := "ok"
		if !record.Success {
			status = "failed: " + record.Error
		}
		return fmt.Sprintf("%s: %d pages to %s in %.0fms (%s)",
			record.Project, record.Pages, record.OutputDir, record.DurationMS, status)
	case history.EventImport:
		var record history.ImportRecord
		if err := json.Unmarshal(event.Payload, &record); err != nil {
			return ""
		}
		return fmt.Sprintf("%s: %d pages, %d assets from %s",
			record.Project, record.PagesImported, record.AssetsCopied, record.Source)
	default:
		return ""
	}
}
