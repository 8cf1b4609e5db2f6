package habitscmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/rutina-app/rutina/internal/cli"
	"github.com/rutina-app/rutina/internal/habits"
	"github.com/rutina-app/rutina/internal/models"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Create a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits with overall completion."`
	Toggle HabitToggleCmd `cmd:"" help:"Flip a habit between pending and completed."`
	Log    HabitLogCmd    `cmd:"" help:"Record progress for a day."`
	Tag    HabitTagCmd    `cmd:"" help:"Add a tag to a habit."`
	Target HabitTargetCmd `cmd:"" help:"Adjust a habit's target."`
	Stats  HabitStatsCmd  `cmd:"" help:"Show streaks for a habit."`
}

type HabitAddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name (omit for interactive form)."`
	Icon        string `help:"Icon identifier, e.g. Droplets."`
	Category    string `help:"Category (predefined or custom)."`
	Frequency   string `help:"Frequency (predefined or custom)."`
	Target      int    `help:"Daily target." default:"1"`
	Unit        string `help:"Target unit label."`
	Description string `help:"Free-form description."`
	Reminder    string `help:"Reminder time in HH:MM format."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	spec := habits.CreateSpec{
		Name:        c.Name,
		Icon:        c.Icon,
		Category:    c.Category,
		Frequency:   c.Frequency,
		Target:      c.Target,
		TargetUnit:  c.Unit,
		Description: c.Description,
	}
	if c.Reminder != "" {
		spec.Reminder = &models.Reminder{Time: c.Reminder, Enabled: true}
	}

	if c.Name == "" {
		if err := runAddForm(&spec); err != nil {
			return err
		}
	}

	habit, err := ctx.Habits.Create(spec)
	if err != nil {
		return err
	}

	fmt.Printf(ctx.T("habit.added")+"\n", habit.Name)
	return nil
}

// runAddForm collects the creation spec interactively. The icon, category,
// and frequency selects mirror the required-field order of validation.
func runAddForm(spec *habits.CreateSpec) error {
	targetStr := strconv.Itoa(max(spec.Target, 1))

	iconOptions := make([]huh.Option[string], 0, len(models.KnownIcons))
	for _, icon := range models.KnownIcons {
		iconOptions = append(iconOptions, huh.NewOption(icon, icon))
	}
	categoryOptions := make([]huh.Option[string], 0, len(models.PredefinedCategories)+1)
	for _, cat := range models.PredefinedCategories {
		categoryOptions = append(categoryOptions, huh.NewOption(cat, cat))
	}
	categoryOptions = append(categoryOptions, huh.NewOption("Otra…", ""))
	frequencyOptions := make([]huh.Option[string], 0, len(models.PredefinedFrequencies)+1)
	for _, freq := range models.PredefinedFrequencies {
		frequencyOptions = append(frequencyOptions, huh.NewOption(freq, freq))
	}
	frequencyOptions = append(frequencyOptions, huh.NewOption("Otra…", ""))

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Nombre").Value(&spec.Name),
			huh.NewSelect[string]().Title("Icono").Options(iconOptions...).Value(&spec.Icon),
			huh.NewSelect[string]().Title("Categoría").Options(categoryOptions...).Value(&spec.Category),
			huh.NewSelect[string]().Title("Frecuencia").Options(frequencyOptions...).Value(&spec.Frequency),
			huh.NewInput().Title("Meta diaria").Value(&targetStr),
			huh.NewInput().Title("Unidad").Value(&spec.TargetUnit),
		),
		huh.NewGroup(
			huh.NewInput().Title("Categoría personalizada").Value(&spec.CustomCategory),
			huh.NewInput().Title("Frecuencia personalizada").Value(&spec.CustomFrequency),
		).WithHideFunc(func() bool {
			return spec.Category != "" && spec.Frequency != ""
		}),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if target, err := strconv.Atoi(targetStr); err == nil {
		spec.Target = target
	}
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	all, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println(ctx.T("habit.none"))
		return nil
	}

	for _, h := range all {
		status := "○"
		if h.Completed {
			status = "✓"
		}
		fmt.Printf("%s %s  [%s · %s]  %d/%d %s\n", status, h.Name, h.Category, h.Frequency, h.Current, h.Target, h.TargetUnit)
	}
	fmt.Printf(ctx.T("stats.completion")+"\n", habits.CompletionPercentage(all))
	return nil
}

type HabitToggleCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitToggleCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.HabitByName(c.Name)
	if err != nil {
		return err
	}

	habit, err = ctx.Habits.Toggle(habit.ID)
	if err != nil {
		return err
	}

	key := "habit.toggled.off"
	if habit.Completed {
		key = "habit.toggled.on"
	}
	fmt.Printf(ctx.T(key)+"\n", habit.Name)
	return nil
}

type HabitLogCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Value int    `arg:"" help:"Progress value for the day."`
	Date  string `help:"Day in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitLogCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.HabitByName(c.Name)
	if err != nil {
		return err
	}

	entry, err := ctx.Habits.LogProgress(habit.ID, c.Date, c.Value)
	if err != nil {
		return err
	}

	fmt.Printf(ctx.T("habit.logged")+"\n", habit.Name, entry.Value, entry.Day)
	return nil
}

type HabitTagCmd struct {
	Name string `arg:"" help:"Habit name."`
	Tag  string `arg:"" help:"Tag to add."`
}

func (c *HabitTagCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.HabitByName(c.Name)
	if err != nil {
		return err
	}

	habit.Tags = habits.AddTag(habit.Tags, c.Tag)
	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf(ctx.T("habit.tag.added")+"\n", habit.Name, c.Tag)
	return nil
}

type HabitTargetCmd struct {
	Name  string `arg:"" help:"Habit name."`
	Delta int    `arg:"" help:"Amount to add to the target (may be negative)."`
}

func (c *HabitTargetCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.HabitByName(c.Name)
	if err != nil {
		return err
	}

	habit.Target = habits.AdjustTarget(habit.Target, c.Delta)
	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf(ctx.T("habit.target.set")+"\n", habit.Name, habit.Target)
	return nil
}

type HabitStatsCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitStatsCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.HabitByName(c.Name)
	if err != nil {
		return err
	}

	days, err := ctx.Store.GetHabitEntryDays(habit.ID)
	if err != nil {
		return err
	}

	current := habits.CurrentStreak(days, time.Now())
	longest := habits.LongestStreak(days)
	fmt.Printf(ctx.T("stats.streak")+"\n", current, longest)
	return nil
}
