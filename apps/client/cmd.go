package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/dkimathi/darasa/core"
	"github.com/dkimathi/darasa/core/collab"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	svc  *collab.Service
	conf *core.Config
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage: client -name NAME [-rep] COMMAND [args]")
	fmt.Println("Commands:")
	fmt.Println("  messages                                            - list chat messages (oldest first)")
	fmt.Println("  send -text TEXT                                     - send a chat message")
	fmt.Println("  assignments                                         - list assignments (newest first)")
	fmt.Println("  post-assignment -title T -subject S -deadline D -description TEXT")
	fmt.Println("                                                      - post an assignment (class rep only)")
	fmt.Println("  delete-assignment -id ID                            - delete an assignment (class rep only)")
	fmt.Println("  notes                                               - list notes (newest first)")
	fmt.Println("  upload-note -title T -subject S -description TEXT   - upload a note")
	fmt.Println("  delete-note -id ID                                  - delete a note (uploader or class rep)")
	fmt.Println("  announcements                                       - list announcements (newest first)")
	fmt.Println("  post-announcement -title T -content TEXT            - post an announcement (class rep only)")
	fmt.Println("  watch                                               - keep refreshing and printing everything")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		cli.printUsage()
		return errHelp
	}

	switch args[0] {
	case "messages":
		for _, m := range cli.svc.Messages() {
			fmt.Printf("[%s] %s: %s\n", m.CreatedAt.Local().Format("15:04"), m.User, m.Text)
		}
		return nil

	case "send":
		cmd := flag.NewFlagSet("send", flag.ExitOnError)
		text := cmd.String("text", "", "The message text.")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}
		if *text == "" {
			cmd.Usage()
			return errHelp
		}
		return cli.svc.SendMessage(ctx, *text)

	case "assignments":
		for _, a := range cli.svc.Assignments() {
			fmt.Printf("%s  %s (%s) due %s by %s\n\t%s\n", a.ID, a.Title, a.Subject, a.Deadline, a.PostedBy, a.Description)
		}
		return nil

	case "post-assignment":
		cmd := flag.NewFlagSet("post-assignment", flag.ExitOnError)
		title := cmd.String("title", "", "The assignment title.")
		subject := cmd.String("subject", "", "The subject.")
		deadline := cmd.String("deadline", "", "The deadline (YYYY-MM-DD).")
		description := cmd.String("description", "", "The description.")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}
		return cli.svc.PostAssignment(ctx, collab.NewAssignment{
			Title:       *title,
			Subject:     *subject,
			Deadline:    *deadline,
			Description: *description,
		})

	case "delete-assignment":
		cmd := flag.NewFlagSet("delete-assignment", flag.ExitOnError)
		id := cmd.String("id", "", "The assignment id.")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == "" {
			cmd.Usage()
			return errHelp
		}
		return cli.svc.DeleteAssignment(ctx, *id)

	case "notes":
		for _, n := range cli.svc.Notes() {
			fmt.Printf("%s  %s (%s) by %s\n\t%s\n", n.ID, n.Title, n.Subject, n.UploadedBy, n.Description)
		}
		return nil

	case "upload-note":
		cmd := flag.NewFlagSet("upload-note", flag.ExitOnError)
		title := cmd.String("title", "", "The note title.")
		subject := cmd.String("subject", "", "The subject.")
		description := cmd.String("description", "", "The description.")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}
		return cli.svc.UploadNote(ctx, collab.NewNote{
			Title:       *title,
			Subject:     *subject,
			Description: *description,
		})

	case "delete-note":
		cmd := flag.NewFlagSet("delete-note", flag.ExitOnError)
		id := cmd.String("id", "", "The note id.")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id == "" {
			cmd.Usage()
			return errHelp
		}
		return cli.svc.DeleteNote(ctx, *id)

	case "announcements":
		for _, a := range cli.svc.Announcements() {
			fmt.Printf("%s  %s by %s\n\t%s\n", a.ID, a.Title, a.PostedBy, a.Content)
		}
		return nil

	case "post-announcement":
		cmd := flag.NewFlagSet("post-announcement", flag.ExitOnError)
		title := cmd.String("title", "", "The announcement title.")
		content := cmd.String("content", "", "The content.")
		if err := cmd.Parse(args[1:]); err != nil {
			return err
		}
		return cli.svc.PostAnnouncement(ctx, collab.NewAnnouncement{
			Title:   *title,
			Content: *content,
		})

	case "watch":
		return cli.watch(ctx)

	default:
		cli.printUsage()
		return errHelp
	}
}

// watch keeps the session alive so the poller can surface other clients'
// writes, reprinting the board until interrupted.
func (cli *commandLine) watch(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	cli.svc.StartPolling(ctx)
	defer cli.svc.Stop()

	fmt.Printf("watching in %s mode; Ctrl-C to quit\n", cli.svc.Mode())
	ticker := time.NewTicker(cli.conf.API.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			fmt.Printf("-- %d messages | %d assignments | %d notes | %d announcements\n",
				len(cli.svc.Messages()), len(cli.svc.Assignments()), len(cli.svc.Notes()), len(cli.svc.Announcements()))
			for _, m := range cli.svc.Messages() {
				fmt.Printf("[%s] %s: %s\n", m.CreatedAt.Local().Format("15:04"), m.User, m.Text)
			}
		}
	}
}
