package settingscmd

import (
	"errors"
	"fmt"

	"github.com/rutina-app/rutina/internal/cli"
	"github.com/rutina-app/rutina/internal/prefs"
)

type ConfigCmd struct {
	Theme    ThemeCmd    `cmd:"" help:"Show or set the theme mode (system, light, dark)."`
	Language LanguageCmd `cmd:"" help:"Show or set the language mode (system, es, en)."`
	Show     ShowCmd     `cmd:"" help:"Show both preferences and their effective values."`
}

type ThemeCmd struct {
	Mode string `arg:"" optional:"" help:"New mode; omit to show the current one."`
}

func (c *ThemeCmd) Run(ctx *cli.Context) error {
	return setOrShow(ctx, ctx.Theme, "config.theme", c.Mode)
}

type LanguageCmd struct {
	Mode string `arg:"" optional:"" help:"New mode; omit to show the current one."`
}

func (c *LanguageCmd) Run(ctx *cli.Context) error {
	return setOrShow(ctx, ctx.Language, "config.language", c.Mode)
}

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	fmt.Printf(ctx.T("config.theme")+"\n", ctx.Theme.Mode(), ctx.Theme.Effective())
	fmt.Printf(ctx.T("config.language")+"\n", ctx.Language.Mode(), ctx.Language.Effective())
	return nil
}

func setOrShow(ctx *cli.Context, r *prefs.Resolver, showKey, mode string) error {
	if mode == "" {
		fmt.Printf(ctx.T(showKey)+"\n", r.Mode(), r.Effective())
		return nil
	}
	if err := r.SetMode(mode); err != nil {
		if errors.Is(err, prefs.ErrInvalidMode) {
			return fmt.Errorf("invalid mode %q", mode)
		}
		return err
	}
	fmt.Printf(ctx.T("config.updated")+"\n", mode)
	return nil
}
