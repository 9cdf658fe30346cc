package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/jusunglee/jamoro/internal/db"
	"github.com/jusunglee/jamoro/internal/db/postgres"
	"github.com/jusunglee/jamoro/internal/db/sqlite"
	"github.com/jusunglee/jamoro/internal/logger"
	"github.com/jusunglee/jamoro/internal/romanize"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

// The reference sentence used when no text is given.
const defaultText = "원하시는 페이지를 찾을 수가 없습니다. 좋아요."

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("jamoro")
	var (
		text        = fs.StringLong("text", "", "Korean text to romanize (also accepted positionally; default: a reference sentence)")
		interactive = fs.BoolLong("interactive", "Start the interactive terminal UI")
		databaseURL = fs.StringLong("database-url", "", "Optional history store (sqlite:// or postgres://)")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.New()
	ctx := context.Background()

	var repo db.Repository
	if *databaseURL != "" {
		var err error
		repo, err = openRepository(ctx, *databaseURL)
		if err != nil {
			return fmt.Errorf("opening history store: %w", err)
		}
		defer repo.Close()
	}

	if *interactive {
		if _, err := tea.NewProgram(initialModel(repo), tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("running interactive mode: %w", err)
		}
		return nil
	}

	input := *text
	if input == "" {
		input = strings.Join(fs.GetArgs(), " ")
	}
	if input == "" {
		input = defaultText
	}

	result, err := romanize.Romanize(input)
	if err != nil {
		return fmt.Errorf("romanizing: %w", err)
	}

	display("before rules", result.Roman, result.Jamo, result.Hangul)
	display("after rules", result.AppliedRoman, result.AppliedJamo, result.AppliedHangul)

	if repo != nil {
		rec, err := repo.SaveRomanization(ctx, db.SaveRomanizationParams{
			Input:         result.Input,
			Roman:         result.Roman,
			Jamo:          result.Jamo,
			Hangul:        result.Hangul,
			AppliedRoman:  result.AppliedRoman,
			AppliedJamo:   result.AppliedJamo,
			AppliedHangul: result.AppliedHangul,
		})
		if err != nil {
			return fmt.Errorf("saving romanization: %w", err)
		}
		log.Info("saved to history", "id", rec.ID)
	}

	return nil
}

func display(header, roman, jamo, hangul string) {
	fmt.Printf("== %s ==\n[Roman]\n%s\n[Jamo]\n%s\n[Hangul]\n%s\n", header, roman, jamo, hangul)
}

func openRepository(ctx context.Context, databaseURL string) (db.Repository, error) {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return postgres.New(ctx, databaseURL)
	}
	return sqlite.New(ctx, databaseURL)
}
