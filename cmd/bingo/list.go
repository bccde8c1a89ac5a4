package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/goal-bingo/internal/quest"
	"github.com/vovakirdan/goal-bingo/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the boards saved in the database",
	Long: `Shows every quest slot in the database, including the boards of SSH
users (namespace "ssh:<user>"), most recently updated first.

Open a slot with 'bingo play --namespace <name>'.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// savedBoard summarises one namespace of the quest database.
type savedBoard struct {
	Namespace string
	Title     string
	Mode      string
	Updated   time.Time
}

func runList(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	boards, err := savedBoards(store)
	if err != nil {
		return err
	}
	writeBoards(os.Stdout, boards)
	return nil
}

// savedBoards reads the summary of every namespace in store.
func savedBoards(store *storage.Store) ([]savedBoard, error) {
	namespaces, err := store.Namespaces()
	if err != nil {
		return nil, err
	}

	boards := make([]savedBoard, 0, len(namespaces))
	for _, ns := range namespaces {
		entries, err := store.Entries(ns)
		if err != nil {
			return nil, err
		}

		b := savedBoard{Namespace: ns, Mode: string(quest.ModeSetup)}
		for _, e := range entries {
			if e.UpdatedAt.After(b.Updated) {
				b.Updated = e.UpdatedAt
			}
			switch e.Key {
			case quest.KeyConfig:
				var qc quest.Config
				if json.Unmarshal([]byte(e.Value), &qc) == nil {
					b.Title = qc.Title
				}
			case quest.KeyMode:
				if e.Value == string(quest.ModePlay) {
					b.Mode = e.Value
				}
			}
		}
		if b.Title == "" {
			b.Title = "(no quest)"
		}
		boards = append(boards, b)
	}
	return boards, nil
}

func writeBoards(w io.Writer, boards []savedBoard) {
	if len(boards) == 0 {
		fmt.Fprintln(w, "No saved boards.")
		return
	}

	fmt.Fprintln(w, "Saved boards:")
	fmt.Fprintln(w)

	// Calculate column widths
	nsLen, titleLen := len("Namespace"), len("Title")
	for _, b := range boards {
		nsLen = max(nsLen, len(b.Namespace))
		titleLen = max(titleLen, len(b.Title))
	}

	fmt.Fprintf(w, "  %-*s  %-*s  %-5s  %s\n", nsLen, "Namespace", titleLen, "Title", "Mode", "Updated")
	fmt.Fprintf(w, "  %-*s  %-*s  %-5s  %s\n", nsLen, "---------", titleLen, "-----", "----", "-------")

	for _, b := range boards {
		updated := "-"
		if !b.Updated.IsZero() {
			updated = b.Updated.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "  %-*s  %-*s  %-5s  %s\n", nsLen, b.Namespace, titleLen, b.Title, b.Mode, updated)
	}
}
