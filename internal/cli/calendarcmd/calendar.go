package calendarcmd

import (
	"fmt"
	"time"

	"github.com/rutina-app/rutina/internal/calendar"
	"github.com/rutina-app/rutina/internal/cli"
	"github.com/rutina-app/rutina/internal/constants"
)

type CalendarCmd struct {
	Week  WeekCmd  `cmd:"" help:"Show the week view for a habit."`
	Month MonthCmd `cmd:"" help:"Show the month view for a habit."`
}

type WeekCmd struct {
	Habit string `arg:"" help:"Habit name."`
	Date  string `help:"Anchor date in YYYY-MM-DD format (default: today)." default:""`
	Shift int    `help:"Move the window by this many weeks (negative for past)." default:"0"`
}

func (c *WeekCmd) Run(ctx *cli.Context) error {
	anchor, err := resolveAnchor(c.Date, calendar.ViewWeek, c.Shift)
	if err != nil {
		return err
	}
	week := calendar.WeekWindow(anchor)
	return render(ctx, c.Habit, week[:])
}

type MonthCmd struct {
	Habit string `arg:"" help:"Habit name."`
	Date  string `help:"Anchor date in YYYY-MM-DD format (default: today)." default:""`
	Shift int    `help:"Move the window by this many months (negative for past)." default:"0"`
}

func (c *MonthCmd) Run(ctx *cli.Context) error {
	anchor, err := resolveAnchor(c.Date, calendar.ViewMonth, c.Shift)
	if err != nil {
		return err
	}
	return render(ctx, c.Habit, calendar.MonthWindow(anchor))
}

func resolveAnchor(date string, mode calendar.ViewMode, shift int) (time.Time, error) {
	anchor := time.Now()
	if date != "" {
		parsed, err := time.Parse(constants.DateFormat, date)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
		}
		anchor = parsed
	}
	if shift != 0 {
		anchor = calendar.ShiftWindow(anchor, mode, shift)
	}
	return anchor, nil
}

func render(ctx *cli.Context, habitName string, window []time.Time) error {
	habit, err := ctx.HabitByName(habitName)
	if err != nil {
		return err
	}

	entries, err := calendar.Project(habit, window, time.Now(), ctx.Store)
	if err != nil {
		return err
	}

	fmt.Printf("%s · %s\n", habit.Name, habit.Frequency)
	fmt.Println(cli.RenderCalendar(window, entries, ctx.Theme.Effective(), ctx.T("calendar.nodata")))
	fmt.Println(cli.RenderStats(calendar.PeriodStats(entries), habit.TargetUnit))
	return nil
}
