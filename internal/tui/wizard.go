// Package tui implements the interactive three-step hashtag wizard:
// content in, platform/category/count tuning, generated hashtags out.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hashly/internal/catalog"
	"hashly/internal/core"
	"hashly/internal/fetch"
	"hashly/internal/generator"
	"hashly/internal/hashtag"
)

type step int

const (
	stepContent step = iota
	stepOptions
	stepResults
)

const (
	fieldPlatform = iota
	fieldCategory
	fieldCount
)

const (
	minWizardCount = 1
	maxWizardCount = 30
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type model struct {
	gen *generator.Generator

	step    step
	urlMode bool   // Step 1 accepts a URL instead of typed content
	input   string // Raw text entry (content or URL)
	content string // Resolved content fed to generation
	source  core.SourceType

	platformIdx int
	categoryIdx int
	count       int
	field       int // Focused row on the options step

	busy   bool
	status string
	result *generator.Result
	err    error

	width    int
	quitting bool
}

type extractedMsg struct {
	page *fetch.PageContent
	err  error
}

type generatedMsg struct {
	result *generator.Result
	err    error
}

func initialModel(gen *generator.Generator) model {
	return model{
		gen:    gen,
		step:   stepContent,
		source: core.SourceManual,
		count:  10,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case extractedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Could not read that page: %v", msg.err)
			return m, nil
		}
		if strings.TrimSpace(msg.page.Content) == "" {
			m.status = "That page had no usable text. Try another URL or type content directly."
			return m, nil
		}
		m.content = msg.page.Content
		m.source = core.SourceWebpage
		m.status = ""
		m.step = stepOptions
		return m, nil

	case generatedMsg:
		m.busy = false
		m.result = msg.result
		m.err = msg.err
		m.step = stepResults
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			if msg.String() == "ctrl+c" {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
		switch m.step {
		case stepContent:
			return m.updateContent(msg)
		case stepOptions:
			return m.updateOptions(msg)
		case stepResults:
			return m.updateResults(msg)
		}
	}

	return m, nil
}

func (m model) updateContent(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyTab:
		m.urlMode = !m.urlMode
		m.status = ""
		return m, nil
	case tea.KeyBackspace:
		if m.input != "" {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
		return m, nil
	case tea.KeyEnter:
		trimmed := strings.TrimSpace(m.input)
		if trimmed == "" {
			m.status = "Type something first."
			return m, nil
		}
		if m.urlMode {
			m.busy = true
			m.status = "Reading page..."
			return m, extractCmd(trimmed)
		}
		m.content = trimmed
		m.source = core.SourceManual
		m.status = ""
		m.step = stepOptions
		return m, nil
	case tea.KeySpace:
		m.input += " "
		return m, nil
	case tea.KeyRunes:
		m.input += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

func (m model) updateOptions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	platforms := core.Platforms()
	categories := core.Categories()

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.step = stepContent
		return m, nil
	case "up", "k":
		if m.field > fieldPlatform {
			m.field--
		}
	case "down", "j":
		if m.field < fieldCount {
			m.field++
		}
	case "left", "h":
		switch m.field {
		case fieldPlatform:
			m.platformIdx = (m.platformIdx + len(platforms) - 1) % len(platforms)
		case fieldCategory:
			m.categoryIdx = (m.categoryIdx + len(categories) - 1) % len(categories)
		case fieldCount:
			if m.count > minWizardCount {
				m.count--
			}
		}
	case "right", "l":
		switch m.field {
		case fieldPlatform:
			m.platformIdx = (m.platformIdx + 1) % len(platforms)
		case fieldCategory:
			m.categoryIdx = (m.categoryIdx + 1) % len(categories)
		case fieldCount:
			if m.count < maxWizardCount {
				m.count++
			}
		}
	case "enter":
		m.busy = true
		m.status = "Generating hashtags..."
		req := core.GenerationRequest{
			Content:        m.content,
			Platform:       platforms[m.platformIdx],
			Category:       categories[m.categoryIdx],
			RequestedCount: m.count,
			Source:         m.source,
		}
		return m, generateCmd(m.gen, req)
	}
	return m, nil
}

func (m model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "enter", "esc":
		m.quitting = true
		return m, tea.Quit
	case "n":
		fresh := initialModel(m.gen)
		fresh.width = m.width
		return fresh, nil
	case "r":
		if m.result == nil {
			return m, nil
		}
		m.busy = true
		m.status = "Generating hashtags..."
		return m, generateCmd(m.gen, m.result.Request)
	}
	return m, nil
}

func extractCmd(url string) tea.Cmd {
	return func() tea.Msg {
		page, err := fetch.Extract(url)
		return extractedMsg{page: page, err: err}
	}
}

func generateCmd(gen *generator.Generator, req core.GenerationRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := gen.Generate(context.Background(), req)
		return generatedMsg{result: result, err: err}
	}
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("hashly — AI hashtag wizard"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Step %d of 3", int(m.step)+1)))
	b.WriteString("\n\n")

	switch m.step {
	case stepContent:
		b.WriteString(m.viewContent())
	case stepOptions:
		b.WriteString(m.viewOptions())
	case stepResults:
		b.WriteString(m.viewResults())
	}

	if m.status != "" {
		style := dimStyle
		if !m.busy {
			style = errorStyle
		}
		b.WriteString("\n" + style.Render(m.status))
	}

	return lipgloss.NewStyle().Margin(1, 2).Render(b.String())
}

func (m model) viewContent() string {
	label := "What do you want hashtags for? Type your caption or keywords:"
	if m.urlMode {
		label = "Paste a blog post, article, or webpage URL:"
	}

	box := boxStyle.Render(m.input + "▌")
	help := "[tab] switch to URL mode | [enter] continue | [esc] quit"
	if m.urlMode {
		help = "[tab] switch to manual input | [enter] fetch & continue | [esc] quit"
	}

	return label + "\n\n" + box + "\n\n" + dimStyle.Render(help)
}

func (m model) viewOptions() string {
	platform := catalog.LookupPlatform(core.Platforms()[m.platformIdx])
	category := catalog.LookupCategory(core.Categories()[m.categoryIdx])

	rows := []string{
		m.optionRow(fieldPlatform, "Platform", platform.Name),
		m.optionRow(fieldCategory, "Category", category.Name),
		m.optionRow(fieldCount, "Hashtags", fmt.Sprintf("%d", m.count)),
	}

	detail := fmt.Sprintf("%s wants %d-%d hashtags: %s",
		platform.Name, platform.MinCount, platform.MaxCount, platform.Style)
	adjusted := catalog.AdjustCount(platform, m.count)
	if adjusted != m.count {
		detail += fmt.Sprintf("\nYour count of %d will be adjusted to %d.", m.count, adjusted)
	}

	help := "[↑/↓] field | [←/→] change | [enter] generate | [esc] back | [q] quit"

	return "Customize for your needs:\n\n" +
		boxStyle.Render(strings.Join(rows, "\n")) + "\n\n" +
		dimStyle.Render(detail) + "\n\n" +
		dimStyle.Render(help)
}

func (m model) optionRow(field int, label, value string) string {
	line := fmt.Sprintf("%-10s ◀ %s ▶", label, value)
	if m.field == field {
		return selectedStyle.Render("> " + line)
	}
	return "  " + line
}

func (m model) viewResults() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Generation failed: %v", m.err)) +
			"\n\n" + dimStyle.Render("[n] start over | [q] quit")
	}

	if m.result.Empty() {
		return "No usable hashtags came back. Try rephrasing your content or picking another category.\n\n" +
			dimStyle.Render("[r] retry | [n] start over | [q] quit")
	}

	var lines []string
	for i, tag := range m.result.Hashtags {
		lines = append(lines, fmt.Sprintf("%2d. %s", i+1, tagStyle.Render(tag)))
	}

	oneLine := hashtag.Join(m.result.Hashtags)

	return fmt.Sprintf("Your %d hashtags for %s:\n\n", len(m.result.Hashtags), m.result.Request.Platform) +
		boxStyle.Render(strings.Join(lines, "\n")) + "\n\n" +
		"Copy-paste line:\n" + boxStyle.Render(oneLine) + "\n\n" +
		dimStyle.Render("[r] regenerate | [n] start over | [q] quit")
}

// Run starts the wizard and blocks until the user quits.
func Run(gen *generator.Generator) error {
	p := tea.NewProgram(initialModel(gen), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard error: %w", err)
	}
	return nil
}
