// Package ui provides the interactive terminal prompts used by the
// language builder.
package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is returned when the user aborts a prompt.
var ErrCanceled = errors.New("selection canceled")

var (
	titleStyle        = lipgloss.NewStyle().Bold(true).MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

type item string

func (i item) FilterValue() string { return string(i) }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. %s", index+1, i)
	if index == m.Index() {
		fmt.Fprint(w, selectedItemStyle.Render("> "+str))
		return
	}
	fmt.Fprint(w, itemStyle.Render(str))
}

type selectModel struct {
	list     list.Model
	choice   int
	canceled bool
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.canceled = true
			return m, tea.Quit
		case "enter":
			m.choice = m.list.Index()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	if m.canceled || m.choice >= 0 {
		return quitTextStyle.Render("")
	}
	return "\n" + m.list.View()
}

func buildModel(title string, options []string) selectModel {
	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = item(opt)
	}
	height := len(options) + 4
	if height > 20 {
		height = 20
	}

	l := list.New(items, itemDelegate{}, 40, height)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = lipgloss.NewStyle().PaddingLeft(4).PaddingBottom(1)

	return selectModel{list: l, choice: -1}
}

// Select prompts the user to pick one of the options and returns its
// index. It returns ErrCanceled when the prompt is aborted.
func Select(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("no options to select from")
	}

	final, err := tea.NewProgram(buildModel(title, options)).Run()
	if err != nil {
		return 0, fmt.Errorf("selection prompt failed: %w", err)
	}

	result, ok := final.(selectModel)
	if !ok || result.canceled || result.choice < 0 {
		return 0, ErrCanceled
	}
	return result.choice, nil
}

// DescribeOptions renders options as a numbered block for non-TTY
// fallbacks and error messages.
func DescribeOptions(options []string) string {
	var b strings.Builder
	for i, opt := range options {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, opt)
	}
	return b.String()
}
