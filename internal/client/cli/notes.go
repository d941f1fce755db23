package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ekuzmina/notekeeper/internal/model"
)

// AddNote collects a title and a multi-line body and creates a new note.
// The note is written to the local store first; the engine mirrors it to
// the server when connectivity allows.
func (a *App) AddNote(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	body, err := GetMultiline(a.reader, "Enter note text:", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	note, err := a.engine.Create(ctx, title, body)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Created", note.ID)
	return nil
}

// EditNote prompts for a note id and replacement content and updates the
// note in place. Editing an unknown or deleted note is a no-op.
func (a *App) EditNote(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter note id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	title, err := getSimpleText(a.reader, "Enter new title", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	body, err := GetMultiline(a.reader, "Enter new note text:", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.engine.Update(ctx, id, title, body); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	return nil
}

// List refreshes the collection from the server when possible and prints
// the active notes, newest first. When the server is unreachable the local
// copy is shown instead.
func (a *App) List(ctx context.Context) error {
	notes, err := a.engine.Refresh(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(notes) == 0 {
		printlnFn("No notes yet")
		return nil
	}

	for _, n := range notes {
		printlnFn(formatNoteLine(n))
	}

	if err := a.engine.LastSyncError(); err != nil {
		printlnFn("Warning: some changes are not synced yet:", err.Error())
	}
	return nil
}

// Show prompts for a note id and prints the full note.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter note id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, n := range a.engine.Notes() {
		if n.ID == id {
			printlnFn("Id:     ", n.ID)
			printlnFn("Title:  ", n.Title)
			printlnFn("Updated:", formatTimestamp(n.UpdatedAt))
			printlnFn("Synced: ", n.Synced)
			printlnFn("")
			printlnFn(n.Body)
			return nil
		}
	}

	printlnFn("Note not found:", id)
	return nil
}

// Delete prompts for a note id and tombstones the note. Deleting an
// unknown note is a no-op.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter note id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.engine.Remove(ctx, id); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	return nil
}

// Sync runs a full reconcile pass: pull the server's copy, push every
// dirty record, and report what is still pending.
func (a *App) Sync(ctx context.Context) error {
	if err := a.engine.Reconcile(ctx); err != nil {
		log.Printf("Sync failed: %s", err.Error())
		return err
	}

	if err := a.engine.LastSyncError(); err != nil {
		printlnFn("Sync finished with pending changes:", err.Error())
	} else {
		printlnFn("Sync complete")
	}
	return nil
}

func formatNoteLine(n *model.Note) string {
	flag := " "
	if !n.Synced {
		flag = "*"
	}
	return fmt.Sprintf("%s %s  %s  %s", flag, n.ID, formatTimestamp(n.UpdatedAt), n.Title)
}

func formatTimestamp(ts int64) string {
	return time.UnixMicro(ts).Local().Format("2006-01-02 15:04")
}
