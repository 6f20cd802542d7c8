// hrmsctl is a headless driver for the HRMS screens: list or export
// announcements from the terminal, with mutation feedback mirrored to
// Slack when configured.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"peoplehub.com/peoplehub/config"
	"peoplehub.com/peoplehub/export"
	"peoplehub.com/peoplehub/notify"
	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/ui/announcements"
	"peoplehub.com/peoplehub/utils"
)

func main() {
	configPath := flag.String("config", "", "path to client config yaml")
	category := flag.String("category", "all", "announcement category filter")
	priority := flag.String("priority", "all", "announcement priority filter")
	search := flag.String("search", "", "client-side text search")
	csvOut := flag.String("csv", "", "write the filtered list as CSV to this file ('-' for a timestamped name)")
	xlsxOut := flag.String("xlsx", "", "write the filtered list as XLSX to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var notifier notify.Notifier = notify.NewRecorder()
	if cfg.Slack.Token != "" {
		notifier = notify.NewSlack(cfg.Slack.Token, notify.SlackOption{
			InfoChannelID:  cfg.Slack.InfoChannelID,
			ErrorChannelID: cfg.Slack.ErrorChannelID,
		})
	}

	client := v1.NewPeopleHubClient(cfg.BaseURL, cfg.Token)
	actions := announcements.NewActions(client.Announcements, notifier)
	view := announcements.NewListView(actions)

	if err := view.Mount(); err != nil {
		log.Fatalf("load announcements: %v", err)
	}
	if err := view.SetCategory(*category); err != nil {
		log.Fatalf("filter announcements: %v", err)
	}
	if err := view.SetPriority(*priority); err != nil {
		log.Fatalf("filter announcements: %v", err)
	}
	view.SetSearch(*search)

	rows := view.Rows()

	if *csvOut != "" {
		name := *csvOut
		if name == "-" {
			name = export.AnnouncementsCSVFilename(time.Now())
		}
		if err := os.WriteFile(name, []byte(export.AnnouncementsCSV(rows)), 0o644); err != nil {
			log.Fatalf("write csv: %v", err)
		}
		fmt.Printf("wrote %d announcements to %s\n", len(rows), name)
		return
	}

	if *xlsxOut != "" {
		data, err := export.AnnouncementsXLSX(rows)
		if err != nil {
			log.Fatalf("render xlsx: %v", err)
		}
		if err := os.WriteFile(*xlsxOut, data, 0o644); err != nil {
			log.Fatalf("write xlsx: %v", err)
		}
		fmt.Printf("wrote %d announcements to %s\n", len(rows), *xlsxOut)
		return
	}

	for _, a := range rows {
		fmt.Printf("%-30s %-12s %-8s %s\n",
			a.Title, a.Category, a.Priority,
			utils.DisplayDateRange(a.StartDate.Time, a.EndDate.Time))
	}
	if len(rows) == 0 {
		fmt.Println("no announcements")
	}
}
