package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"specialchars/internal/actions"
	"specialchars/internal/clipboard"
	"specialchars/internal/config"
	"specialchars/internal/logging"
	"specialchars/internal/model"
	"specialchars/internal/report"
	"specialchars/internal/store"
	"specialchars/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/pflag"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed, color.Bold)
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: specialchars [options]\n\n")
		fmt.Fprintf(os.Stderr, "specialchars is a picker for special characters and symbols.\n")
		fmt.Fprintf(os.Stderr, "Copy a character to the clipboard, keep favorites, and find the\n")
		fmt.Fprintf(os.Stderr, "last 10 characters you used at the top of the list.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  specialchars                 # Start TUI mode\n")
		fmt.Fprintf(os.Stderr, "  specialchars --list          # Print recent, favorites and catalog\n")
		fmt.Fprintf(os.Stderr, "  specialchars -l -o chars.txt # Save the listing to a file\n")
		fmt.Fprintf(os.Stderr, "  specialchars --json          # Output the lists as JSON\n")
		fmt.Fprintf(os.Stderr, "  specialchars -c π            # Copy π and record it as recently used\n")
		fmt.Fprintf(os.Stderr, "  specialchars -f ★            # Add or remove ★ from favorites\n")
		fmt.Fprintf(os.Stderr, "  specialchars --store sqlite  # Keep preferences in SQLite\n")
	}

	listFlag := pflag.BoolP("list", "l", false, "Print recently used, favorites and all characters (CLI mode)")
	outputFlag := pflag.StringP("output", "o", "", "Save the listing to the specified file (combined with --list)")
	jsonFlag := pflag.BoolP("json", "j", false, "Output catalog, recent and favorites as JSON")
	copyFlag := pflag.StringP("copy", "c", "", "Copy CHAR to the clipboard and record it as recently used")
	favoriteFlag := pflag.StringP("favorite", "f", "", "Toggle CHAR in favorites")
	clearFlag := pflag.Bool("clear-recent", false, "Clear the recently used list")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	config.RegisterFlags(pflag.CommandLine)
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("specialchars version %s\n", model.Version)
		return
	}

	cfg, err := config.Load(pflag.CommandLine)
	if err != nil {
		fail("Error loading config: %v", err)
	}

	logger, closeLog, err := logging.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		warnColor.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
	}
	defer closeLog()
	logger.Info("starting", "version", model.Version, "store", cfg.Store.Backend,
		"data_dir", cfg.DataDir, "config_file", cfg.ConfigFile)

	backend, err := store.OpenBackend(cfg.Store.Backend, cfg.DataDir)
	if err != nil {
		logger.Error("opening store failed", "error", err)
		fail("Error opening %s store: %v", cfg.Store.Backend, err)
	}
	st := store.New(backend, logger)
	defer st.Close()

	svc := actions.New(st, clipboard.System{}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var code int
	switch {
	case *copyFlag != "":
		code = runCopyMode(ctx, svc, *copyFlag)
	case *favoriteFlag != "":
		code = runFavoriteMode(ctx, svc, *favoriteFlag)
	case *clearFlag:
		code = runClearMode(ctx, svc)
	case *listFlag:
		code = runReportMode(ctx, st, *outputFlag)
	case *jsonFlag:
		code = runJsonMode(ctx, st)
	default:
		code = runTuiMode(ctx, svc, cfg, logger)
	}

	if code != 0 {
		st.Close()
		closeLog()
		os.Exit(code)
	}
}

func fail(format string, args ...any) {
	errColor.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func parseChar(s string) (model.Character, bool) {
	c, err := model.ParseCharacter(s)
	if err != nil {
		errColor.Fprintf(os.Stderr, "Error: %q: %v\n", s, err)
		fmt.Fprintf(os.Stderr, "Run 'specialchars --list' to see the available characters.\n")
		return "", false
	}
	return c, true
}

func runCopyMode(ctx context.Context, svc *actions.Service, arg string) int {
	c, ok := parseChar(arg)
	if !ok {
		return 1
	}

	_, err := svc.Copy(ctx, c)
	var writeErr *store.StorageWriteError
	switch {
	case err == nil:
		okColor.Printf("%s %s\n", model.IconCopied, actions.CopiedMessage(c))
		return 0
	case errors.As(err, &writeErr):
		okColor.Printf("%s %s\n", model.IconCopied, actions.CopiedMessage(c))
		warnColor.Fprintf(os.Stderr, "Warning: recently used list not saved: %v\n", err)
		return 1
	default:
		errColor.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}

func runFavoriteMode(ctx context.Context, svc *actions.Service, arg string) int {
	c, ok := parseChar(arg)
	if !ok {
		return 1
	}

	favorites, err := svc.ToggleFavorite(ctx, c)
	if err != nil {
		errColor.Fprintf(os.Stderr, "Error saving favorites: %v\n", err)
		return 1
	}
	if favorites.Contains(c) {
		okColor.Printf("%s %s added to favorites\n", model.IconFavorite, c)
	} else {
		okColor.Printf("%s %s removed from favorites\n", model.IconNotFavorite, c)
	}
	return 0
}

func runClearMode(ctx context.Context, svc *actions.Service) int {
	if err := svc.ClearRecent(ctx); err != nil {
		errColor.Fprintf(os.Stderr, "Error clearing recently used: %v\n", err)
		return 1
	}
	okColor.Println("Recently used list cleared")
	return 0
}

func runReportMode(ctx context.Context, st *store.Store, outputFile string) int {
	text := report.Generate(st.Recent(ctx), st.Favorites(ctx))

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
			errColor.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			return 1
		}
		fmt.Printf("Report saved to %s\n", outputFile)
		return 0
	}
	fmt.Print(text)
	return 0
}

func runJsonMode(ctx context.Context, st *store.Store) int {
	snap := report.NewSnapshot(st.Recent(ctx), st.Favorites(ctx))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		errColor.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return 1
	}
	return 0
}

func runTuiMode(ctx context.Context, svc *actions.Service, cfg *config.Config, logger *slog.Logger) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := tui.InitialModel(ctx, svc, cfg.UI.ToastDuration)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("tui exited with error", "error", err)
		fmt.Printf("Alas, there's been an error: %v", err)
		return 1
	}
	return 0
}
