package areascmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rutina-app/rutina/internal/cli"
	"github.com/rutina-app/rutina/internal/models"
)

type AreaCmd struct {
	Add    AreaAddCmd    `cmd:"" help:"Create an area."`
	List   AreaListCmd   `cmd:"" help:"List areas with their tasks."`
	Delete AreaDeleteCmd `cmd:"" help:"Delete an area and all of its tasks."`
	Task   struct {
		Add    TaskAddCmd    `cmd:"" help:"Add a task to an area."`
		Toggle TaskToggleCmd `cmd:"" help:"Toggle a task's completed state."`
		Delete TaskDeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage an area's tasks."`
}

type AreaAddCmd struct {
	Name  string `arg:"" help:"Area name."`
	Color string `help:"Display color (hex or name)."`
	Emoji string `help:"Display emoji."`
}

func (c *AreaAddCmd) Run(ctx *cli.Context) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("area name is required")
	}
	if _, err := ctx.Store.GetAreaByName(c.Name); err == nil {
		return fmt.Errorf("area %q already exists", c.Name)
	}

	area := models.Area{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(c.Name),
		Color:     c.Color,
		Emoji:     c.Emoji,
		CreatedAt: time.Now(),
	}
	if err := ctx.Store.AddArea(area); err != nil {
		return err
	}

	fmt.Printf(ctx.T("area.added")+"\n", area.Name)
	return nil
}

type AreaListCmd struct{}

func (c *AreaListCmd) Run(ctx *cli.Context) error {
	areas, err := ctx.Store.GetAllAreas()
	if err != nil {
		return err
	}
	if len(areas) == 0 {
		fmt.Println(ctx.T("area.none"))
		return nil
	}

	for _, area := range areas {
		fmt.Printf("%s %s\n", area.Emoji, area.Name)
		tasks, err := ctx.Store.GetTasks(area.ID)
		if err != nil {
			return err
		}
		for i, task := range tasks {
			status := "○"
			if task.Completed {
				status = "✓"
			}
			fmt.Printf("  %d. %s %s (%s)\n", i+1, status, task.Text, task.Priority)
		}
	}
	return nil
}

type AreaDeleteCmd struct {
	Name string `arg:"" help:"Area name."`
}

func (c *AreaDeleteCmd) Run(ctx *cli.Context) error {
	area, err := ctx.AreaByName(c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteArea(area.ID); err != nil {
		return err
	}

	fmt.Printf(ctx.T("area.deleted")+"\n", area.Name)
	return nil
}

type TaskAddCmd struct {
	Area     string `arg:"" help:"Area name."`
	Text     string `arg:"" help:"Task text."`
	Priority string `help:"Priority: alta, media, or baja." default:"media" enum:"alta,media,baja"`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	if strings.TrimSpace(c.Text) == "" {
		return fmt.Errorf("task text is required")
	}
	area, err := ctx.AreaByName(c.Area)
	if err != nil {
		return err
	}

	existing, err := ctx.Store.GetTasks(area.ID)
	if err != nil {
		return err
	}

	task := models.Task{
		ID:        uuid.New().String(),
		AreaID:    area.ID,
		Text:      strings.TrimSpace(c.Text),
		Priority:  models.TaskPriority(c.Priority),
		Position:  len(existing),
		CreatedAt: time.Now(),
	}
	if err := ctx.Store.AddTask(task); err != nil {
		return err
	}

	fmt.Printf(ctx.T("task.added")+"\n", area.Name)
	return nil
}

type TaskToggleCmd struct {
	Area   string `arg:"" help:"Area name."`
	Number int    `arg:"" help:"Task number as shown by 'area list'."`
}

func (c *TaskToggleCmd) Run(ctx *cli.Context) error {
	task, err := findTask(ctx, c.Area, c.Number)
	if err != nil {
		return err
	}

	task.Completed = !task.Completed
	if err := ctx.Store.UpdateTask(task); err != nil {
		return err
	}

	fmt.Println(ctx.T("task.toggled"))
	return nil
}

type TaskDeleteCmd struct {
	Area   string `arg:"" help:"Area name."`
	Number int    `arg:"" help:"Task number as shown by 'area list'."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	task, err := findTask(ctx, c.Area, c.Number)
	if err != nil {
		return err
	}
	return ctx.Store.DeleteTask(task.ID)
}

func findTask(ctx *cli.Context, areaName string, number int) (models.Task, error) {
	area, err := ctx.AreaByName(areaName)
	if err != nil {
		return models.Task{}, err
	}
	tasks, err := ctx.Store.GetTasks(area.ID)
	if err != nil {
		return models.Task{}, err
	}
	if number < 1 || number > len(tasks) {
		return models.Task{}, fmt.Errorf("no task %d in area %q", number, areaName)
	}
	return tasks[number-1], nil
}
