package view

import (
	"fmt"
	"strings"

	"empctl/internal/employee"
	"empctl/internal/tui/design"
	"empctl/internal/tui/model"
	"empctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

type column struct {
	title  string
	weight int
	value  func(e employee.Employee) string
}

var listColumns = []column{
	{title: "Name", weight: 6, value: employee.Employee.FullName},
	{title: "Street Address", weight: 8, value: func(e employee.Employee) string { return e.StreetAddress }},
	{title: "City", weight: 4, value: func(e employee.Employee) string { return e.City }},
	{title: "State/Province", weight: 4, value: func(e employee.Employee) string { return e.StateProvince }},
	{title: "Postal Code", weight: 3, value: func(e employee.Employee) string { return e.PostalCode }},
	{title: "Country", weight: 4, value: func(e employee.Employee) string { return e.Country }},
}

const (
	cursorWidth   = 2 // "› "
	checkboxWidth = 4 // "[x] "
	minColumn     = 4
)

func renderListPage(m *model.Model, width, height int) string {
	l := &m.List
	if l.Loading && !l.Loaded {
		return design.CenterHorizontal(width, m.Spinner.View()+" Loading employees...")
	}
	if len(l.Employees) == 0 {
		return renderEmptyState(width, height)
	}

	summary := renderListSummary(l)
	table := renderTable(l, width, height-lipgloss.Height(summary)-1)
	return lipgloss.JoinVertical(lipgloss.Left, summary, "", table)
}

// ListSummary is the line above the table, e.g. "3 employees registered (1 selected)".
func ListSummary(l *model.ListState) string {
	s := utils.Pluralize(len(l.Employees), "employee", "employees") + " registered"
	if n := l.Selection.Len(); n > 0 {
		s += fmt.Sprintf(" (%d selected)", n)
	}
	return s
}

func renderListSummary(l *model.ListState) string {
	actions := []string{design.ButtonStyle.Render("[n] Add Employee")}
	if n := l.Selection.Len(); n > 0 {
		actions = append([]string{design.ButtonDangerStyle.Render(fmt.Sprintf("[x] Delete Selected (%d)", n))}, actions...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		design.SubtitleStyle.Render(ListSummary(l)),
		"  ",
		strings.Join(actions, " "),
	)
}

func renderEmptyState(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		design.TitleStyle.Render("No employees yet"),
		design.SubtitleStyle.Render("Get started by adding your first employee"),
		"",
		design.ButtonStyle.Render("[n] Add Employee"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// columnWidths splits width across listColumns by weight.
func columnWidths(width int) []int {
	avail := width - cursorWidth - checkboxWidth - (len(listColumns) - 1)
	total := 0
	for _, c := range listColumns {
		total += c.weight
	}
	widths := make([]int, len(listColumns))
	used := 0
	for i, c := range listColumns {
		w := avail * c.weight / total
		if w < minColumn {
			w = minColumn
		}
		widths[i] = w
		used += w
	}
	// rounding leftovers go to the last column
	if rest := avail - used; rest > 0 {
		widths[len(widths)-1] += rest
	}
	return widths
}

func checkbox(checked, partial bool) string {
	switch {
	case checked:
		return design.CheckboxOnStyle.Render("[x]")
	case partial:
		return design.CheckboxOnStyle.Render("[-]")
	default:
		return "[ ]"
	}
}

func renderTable(l *model.ListState, width, height int) string {
	widths := columnWidths(width)
	n := len(l.Employees)

	cells := make([]string, len(listColumns))
	for i, c := range listColumns {
		cells[i] = utils.FitCell(c.title, widths[i])
	}
	head := strings.Repeat(" ", cursorWidth) +
		checkbox(l.Selection.AllSelected(n), l.Selection.SomeSelected(n)) + " " +
		design.TableHeaderStyle.Render(strings.Join(cells, " "))

	rows := []string{head}
	start, end := visibleRange(l.Cursor, n, height-1)
	for idx := start; idx < end; idx++ {
		e := l.Employees[idx]
		for i, c := range listColumns {
			cells[i] = utils.FitCell(c.value(e), widths[i])
		}
		line := strings.Join(cells, " ")

		marker := "  "
		style := design.TableRowStyle
		if idx == l.Cursor {
			marker = "› "
			style = design.TableCursorRowStyle
		}
		rows = append(rows, marker+checkbox(l.Selection.Has(e.ID), false)+" "+style.Render(line))
	}
	if end < n || start > 0 {
		rows = append(rows, design.DimStyle.Render(fmt.Sprintf("  %d-%d of %d", start+1, end, n)))
	}
	return strings.Join(rows, "\n")
}

// visibleRange returns the window of rows that keeps the cursor on screen.
func visibleRange(cursor, n, height int) (int, int) {
	if height < 1 {
		height = 1
	}
	if n <= height {
		return 0, n
	}
	// leave a line for the position indicator
	height--
	if height < 1 {
		height = 1
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > n {
		start = n - height
	}
	return start, start + height
}
