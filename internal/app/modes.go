package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"empctl/internal/employee"
	"empctl/internal/tui/controller"
	"empctl/internal/tui/model"
	"empctl/internal/tui/utils"
	"empctl/pkg/logging"
)

// Column widths of the --no-tui table, in terminal cells.
var tableColumns = []struct {
	title string
	width int
	value func(employee.Employee) string
}{
	{"ID", 26, func(e employee.Employee) string { return e.ID }},
	{"NAME", 24, employee.Employee.FullName},
	{"STREET ADDRESS", 28, func(e employee.Employee) string { return e.StreetAddress }},
	{"CITY", 16, func(e employee.Employee) string { return e.City }},
	{"STATE/PROVINCE", 16, func(e employee.Employee) string { return e.StateProvince }},
	{"POSTAL CODE", 11, func(e employee.Employee) string { return e.PostalCode }},
	{"COUNTRY", 0, func(e employee.Employee) string { return e.Country }},
}

// runCLIMode fetches the directory once and writes it as a table to out.
func runCLIMode(ctx context.Context, config *Config, services *Services, out io.Writer) error {
	logging.Debug("CLI", "Running in no-TUI mode against %s", services.BaseURL)

	list, err := services.API.List(ctx)
	if err != nil {
		logging.Error("CLI", err, "Failed to list employees")
		return fmt.Errorf("failed to list employees: %w", err)
	}

	if len(list) == 0 {
		_, err = fmt.Fprintln(out, "No employees yet.")
		return err
	}
	if err := writeTable(out, list); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "\n%s\n", utils.Pluralize(len(list), "employee", "employees"))
	return err
}

func writeTable(out io.Writer, list []employee.Employee) error {
	row := func(cell func(i int) string) string {
		cells := make([]string, len(tableColumns))
		for i, c := range tableColumns {
			if c.width == 0 {
				cells[i] = cell(i)
				continue
			}
			cells[i] = utils.FitCell(cell(i), c.width)
		}
		return strings.TrimRight(strings.Join(cells, "  "), " ")
	}

	if _, err := fmt.Fprintln(out, row(func(i int) string { return tableColumns[i].title })); err != nil {
		return err
	}
	for _, e := range list {
		if _, err := fmt.Fprintln(out, row(func(i int) string { return tableColumns[i].value(e) })); err != nil {
			return err
		}
	}
	return nil
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Debug("CLI", "Starting TUI mode...")

	cfg := config.EmpctlConfig
	logLevel, _ := logging.ParseLevel(cfg.Logging.Level)
	if config.Debug {
		logLevel = logging.LevelDebug
	}

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	p := controller.NewProgram(model.TUIConfig{
		DebugMode:             config.Debug,
		API:                   services.API,
		BaseURL:               services.BaseURL,
		BulkDeleteConcurrency: cfg.API.BulkDeleteConcurrency,
		StatusTimeout:         cfg.UI.StatusTimeout,
		LogChannel:            logChan,
	})

	// Run the TUI until user exits
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}
