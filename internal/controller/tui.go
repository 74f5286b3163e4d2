package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "cleanarch.dev/pkg/cleanarch/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	noticeStyle = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// reservedLines are taken by the pager title, notices and footer.
const reservedLines = 4

// TUI implements UI with a Bubble Tea pager. Output is collected while the
// workflow runs and shown by Wait: short output is printed as is, long
// output opens a scrollable viewport.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	mode    StartMode
	notices []string
	content strings.Builder
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start resets the collected output.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := newStartConfig(options)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.mode = config.mode
	p.notices = nil
	p.content.Reset()

	return nil
}

// Close finalizes the UI.
func (p *TUI) Close(_ context.Context) {}

// Wait shows the collected output and returns once the user leaves the
// pager.
func (p *TUI) Wait(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	p.mu.Lock()
	model := newPagerModel(p.mode.String(), strings.Join(p.notices, " | "), p.content.String())
	p.mu.Unlock()

	width, height := p.terminalSize()
	model = model.resize(width, height)

	if !model.needsPagination() {
		_, _ = fmt.Fprint(p.output, model.staticView())
		return
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		_, _ = fmt.Fprint(p.output, model.staticView())
	}
}

func (p *TUI) terminalSize() (int, int) {
	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			return width, height
		}
	}

	return 0, 0
}

// DisplayScanInfo records the scan statistics.
func (p *TUI) DisplayScanInfo(_ context.Context, info ScanInfo) {
	p.notice(fmt.Sprintf("%d file(s) scanned, %d from cache, %d skipped", info.Files, info.Cached, info.Skipped))
}

// DisplayReport records the rendered report.
func (p *TUI) DisplayReport(ctx context.Context, report m.Report, modules ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.write(RenderReport(report, modules...))

	return nil
}

// DisplayReportSaved records where the report was written.
func (p *TUI) DisplayReportSaved(_ context.Context, path m.FilePath) {
	p.notice("report saved to " + string(path))
}

// DisplayModules records the module listing.
func (p *TUI) DisplayModules(ctx context.Context, modules []m.ModuleSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.write(RenderModules(modules))

	return nil
}

// DisplayDiff records the colored diff of two reports.
func (p *TUI) DisplayDiff(ctx context.Context, from, to m.Report, fromName, toName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	diff, err := RenderDiff(from, to, fromName, toName)
	if err != nil {
		return err
	}

	if diff == "" {
		p.write("Reports are identical\n")
		return nil
	}

	p.write(colorDiff(diff))

	return nil
}

func (p *TUI) notice(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.notices = append(p.notices, text)
}

func (p *TUI) write(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.content.WriteString(text)
}

var (
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
)

func colorDiff(diff string) string {
	lines := strings.Split(diff, "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunkStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removedStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

// pagerModel is the Bubble Tea model scrolling over the collected output.
type pagerModel struct {
	title    string
	notices  string
	content  string
	viewport viewport.Model
	height   int
	width    int
	quitting bool
}

func newPagerModel(title, notices, content string) pagerModel {
	return pagerModel{
		title:    title,
		notices:  notices,
		content:  content,
		viewport: viewport.New(0, 0),
	}
}

func (pm pagerModel) resize(width, height int) pagerModel {
	pm.width = width
	pm.height = height

	pm.viewport.Width = width
	pm.viewport.Height = max(height-reservedLines, 1)
	pm.viewport.SetContent(pm.content)

	return pm
}

// needsPagination returns true if the output does not fit on screen.
func (pm pagerModel) needsPagination() bool {
	if pm.height == 0 {
		return false
	}

	return lipgloss.Height(pm.content) > pm.height-reservedLines
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return pm.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(pm.title))
	b.WriteString("\n")
	b.WriteString(noticeStyle.Render(pm.notices))
	b.WriteString("\n")
	b.WriteString(pm.viewport.View())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", helpStyle.Render(fmt.Sprintf(
		"%3.f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit",
		pm.viewport.ScrollPercent()*100,
	)))

	return b.String()
}

// staticView renders everything at once for output that needs no paging.
func (pm pagerModel) staticView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(pm.title))
	b.WriteString("\n")

	if pm.notices != "" {
		b.WriteString(noticeStyle.Render(pm.notices))
		b.WriteString("\n")
	}

	b.WriteString(pm.content)

	return b.String()
}
