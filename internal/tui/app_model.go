package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/carboncalc/internal/i18n"
)

// Page is one screen of the application shell.
type Page int

const (
	PageHome Page = iota
	PageAbout
	PageCalculator
)

// Pages returns the pages in navigation order.
func Pages() []Page {
	return []Page{PageHome, PageAbout, PageCalculator}
}

func (p Page) titleKey() string {
	switch p {
	case PageAbout:
		return i18n.MsgAbout
	case PageCalculator:
		return i18n.MsgCalculator
	default:
		return i18n.MsgHome
	}
}

// AppConfig configures the application shell.
type AppConfig struct {
	Calculator CalculatorConfig
	DarkMode   bool
	StartPage  Page
}

// AppModel is the top-level program: header with page tabs, the active
// page and a footer. It owns the language and theme and pushes changes
// down to the calculator.
type AppModel struct {
	ctx   context.Context
	page  Page
	dark  bool
	tr    *i18n.Translator
	theme Theme
	calc  *CalculatorModel
	now   func() time.Time

	width    int
	height   int
	quitting bool
}

// NewAppModel builds the shell around a fresh calculator form.
func NewAppModel(ctx context.Context, cfg AppConfig) *AppModel {
	tr := cfg.Calculator.Translator
	if tr == nil {
		tr = i18n.New(string(i18n.English))
	}
	theme := ThemeFor(cfg.DarkMode)

	calcCfg := cfg.Calculator
	calcCfg.Translator = tr
	calcCfg.Theme = theme

	return &AppModel{
		ctx:   ctx,
		page:  cfg.StartPage,
		dark:  cfg.DarkMode,
		tr:    tr,
		theme: theme,
		calc:  NewCalculatorModel(ctx, calcCfg),
		now:   time.Now,
		width: calcDefaultWidth,
	}
}

// Page returns the active page.
func (m *AppModel) Page() Page { return m.page }

// DarkMode reports whether the dark theme is active.
func (m *AppModel) DarkMode() bool { return m.dark }

// Lang returns the active language.
func (m *AppModel) Lang() i18n.Lang { return m.tr.Lang() }

// Calculator returns the calculator page model.
func (m *AppModel) Calculator() *CalculatorModel { return m.calc }

// Init implements tea.Model.
func (m *AppModel) Init() tea.Cmd {
	return m.calc.Init()
}

// Update implements tea.Model.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		_, cmd := m.calc.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Async results belong to the calculator whichever page is showing.
	_, cmd := m.calc.Update(msg)
	return m, cmd
}

// handleKeyMsg applies shell keys and forwards the rest to the calculator.
//
//nolint:exhaustive // Only shell-level keys are handled here.
func (m *AppModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyTab:
		m.switchPage(1)
		return m, nil
	case tea.KeyShiftTab:
		m.switchPage(-1)
		return m, nil
	case tea.KeyRunes:
		switch key := string(msg.Runes); key {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "d":
			m.dark = !m.dark
			m.theme = ThemeFor(m.dark)
			m.calc.SetTheme(m.theme)
			return m, nil
		case "l":
			m.tr = m.tr.Toggle()
			m.calc.SetTranslator(m.tr)
			return m, nil
		case "1", "2", "3":
			// Digits are form input on the calculator page.
			if m.page != PageCalculator {
				m.page = Page(key[0] - '1')
				return m, nil
			}
		}
	}

	if m.page != PageCalculator {
		return m, nil
	}
	_, cmd := m.calc.Update(msg)
	return m, cmd
}

func (m *AppModel) switchPage(delta int) {
	n := len(Pages())
	m.page = Page((int(m.page) + delta + n) % n)
}

// View implements tea.Model.
func (m *AppModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.page {
	case PageAbout:
		body = m.renderAbout()
	case PageCalculator:
		body = m.calc.View()
	default:
		body = m.renderHome()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		body,
		"",
		m.renderFooter(),
	)
}

func (m *AppModel) renderHeader() string {
	tabs := make([]string, 0, len(Pages()))
	for i, p := range Pages() {
		label := fmt.Sprintf("%d %s", i+1, m.tr.T(p.titleKey()))
		if p == m.page {
			tabs = append(tabs, m.theme.NavActive.Render(label))
		} else {
			tabs = append(tabs, m.theme.Nav.Render(label))
		}
	}

	lang := m.theme.Nav.Render(strings.ToUpper(string(m.tr.Lang())))
	mode := "☀"
	if m.dark {
		mode = "☾"
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Header.Render(m.tr.T(i18n.MsgAppTitle)),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		lang,
		m.theme.Nav.Render(mode),
	)
}

func (m *AppModel) renderHome() string {
	return m.theme.Title.Render(m.tr.T(i18n.MsgAppTitle)) + "\n\n" +
		m.tr.T(i18n.MsgWelcome) + "\n\n" +
		m.theme.Muted.Render("3 / tab → "+m.tr.T(i18n.MsgCalculator))
}

func (m *AppModel) renderAbout() string {
	wrap := lipgloss.NewStyle().Width(max(m.width-4, 20))
	return m.theme.Title.Render(m.tr.T(i18n.MsgAbout)) + "\n\n" +
		wrap.Render(m.tr.T(i18n.MsgAboutBody))
}

func (m *AppModel) renderFooter() string {
	help := []string{
		"tab: " + m.tr.T(i18n.MsgPages),
		"d: " + m.tr.T(i18n.MsgDarkMode),
		"l: " + m.tr.T(i18n.MsgLanguage),
		"q: " + m.tr.T(i18n.MsgQuit),
	}
	return m.theme.Muted.Render(strings.Join(help, " | ")) + "\n" +
		m.theme.Footer.Render(fmt.Sprintf("© %d %s", m.now().Year(), m.tr.T(i18n.MsgFooter)))
}
