package main

import (
	"chat-hub/domain"
	"chat-hub/repositories"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" default:"./data/badger"`
	// INSPECT_COLOURS enables colorized headers
	Colours bool `envconfig:"INSPECT_COLOURS" default:"true"`
}

// inspect prints one page of a room's persisted messages from a Badger directory,
// without the server running.
func main() {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatal("Error while reading configuration: ", err)
	}

	dbPath := flag.String("db", config.BadgerFilepath, "Path to badger DB")
	roomID := flag.String("room", "", "Room to print")
	page := flag.Int("page", 1, "Page, 1 being the most recent messages")
	limit := flag.Int("limit", domain.DefaultMessagePageLimit, "Messages per page")
	flag.Parse()

	if *roomID == "" {
		flag.Usage()
		os.Exit(2)
	}

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repo := repositories.NewMessageRepository(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	request := domain.NewPageRequest(*page, *limit, domain.DefaultMessagePageLimit)
	messages, total, err := repo.GetMessages(*roomID, request)
	if err != nil {
		log.Fatal(err)
	}

	pagination := domain.NewPagination(request, total)
	header := fmt.Sprintf("  ====== room %s: page %d/%d, %d messages ======", *roomID, pagination.Page, pagination.Pages, total)
	if config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)

	render(os.Stdout, messages)
}

func render(w io.Writer, messages []domain.Message) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Created", "Sender", "Edited", "Content"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, m := range messages {
		// First 8 characters are enough to tell messages apart
		displayID := m.ID
		if len(displayID) > 8 {
			displayID = displayID[:8]
		}
		edited := ""
		if m.IsEdited {
			edited = "yes"
		}
		table.Append([]string{
			displayID,
			m.CreatedAt.Format("2006-01-02 15:04:05.000"),
			m.Sender.Username,
			edited,
			strings.ReplaceAll(m.Content, "\n", " "),
		})
	}
	table.Render()
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
