package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/rutina-app/rutina/internal/cli"
	"github.com/rutina-app/rutina/internal/cli/areascmd"
	"github.com/rutina-app/rutina/internal/cli/calendarcmd"
	"github.com/rutina-app/rutina/internal/cli/habitscmd"
	"github.com/rutina-app/rutina/internal/cli/settingscmd"
	"github.com/rutina-app/rutina/internal/cli/system"
	"github.com/rutina-app/rutina/internal/constants"
	"github.com/rutina-app/rutina/internal/errors"
	"github.com/rutina-app/rutina/internal/logger"
	"github.com/rutina-app/rutina/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Database file path." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd          `cmd:"" help:"Initialize rutina storage."`
	Tui      system.TuiCmd           `cmd:"" help:"Launch the interactive habit board." default:"1"`
	Habit    habitscmd.HabitCmd      `cmd:"" help:"Manage habits and their progress."`
	Area     areascmd.AreaCmd        `cmd:"" help:"Manage to-do areas and tasks."`
	Calendar calendarcmd.CalendarCmd `cmd:"" help:"Week and month progress views."`
	Config   settingscmd.ConfigCmd   `cmd:"" help:"Theme and language preferences."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Seguimiento de hábitos, áreas y progreso diario"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Data)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	}

	store := storage.NewSQLiteStore(CLI.Data)
	appCtx := cli.NewContext(store)

	// Every command but init expects an existing database.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	err := ctx.Run(appCtx)
	store.Close()
	errors.Fatal(err)
}
