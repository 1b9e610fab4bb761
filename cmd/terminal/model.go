package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const asciiLogo = `
██████╗ ███████╗██╗   ██╗██████╗  ██████╗ ████████╗
██╔══██╗██╔════╝██║   ██║██╔══██╗██╔═══██╗╚══██╔══╝
██████╔╝█████╗  ██║   ██║██████╔╝██║   ██║   ██║
██╔══██╗██╔══╝  ╚██╗ ██╔╝██╔══██╗██║   ██║   ██║
██║  ██║███████╗ ╚████╔╝ ██████╔╝╚██████╔╝   ██║
╚═╝  ╚═╝╚══════╝  ╚═══╝  ╚═════╝  ╚═════╝    ╚═╝

          AUTOMATED PULL REQUEST REVIEWER
`

type model struct {
	styles styles
	deps   *consoleDeps

	// UI components
	viewport  viewport.Model
	textarea  textarea.Model
	spinner   spinner.Model
	isLoading bool

	// Session state
	width      int
	lastTarget string
	history    []string
}

func initialModel(theme ThemeName) *model {
	styles := GetTheme(theme)
	ta := textarea.New()
	ta.Placeholder = "Paste a PR URL or type a command..."
	ta.Focus()
	ta.Prompt = styles.prompt.Render("► ")
	ta.CharLimit = 500
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	return &model{
		styles:    styles,
		textarea:  ta,
		spinner:   sp,
		isLoading: true,
		history:   []string{styles.ascii.Render(asciiLogo), "", "⚙ STARTING REVIEW CONSOLE..."},
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(initializeConsoleCmd(), m.spinner.Tick)
}

// pushHistory appends lines to the transcript and scrolls the viewport to the
// bottom.
func (m *model) pushHistory(lines ...string) {
	m.history = append(m.history, lines...)
	m.viewport.SetContent(strings.Join(m.history, "\n"))
	m.viewport.GotoBottom()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	m.spinner, spCmd = m.spinner.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}

			m.textarea.Reset()
			return m, m.processCommand(input)
		}

	case consoleReadyMsg:
		m.isLoading = false
		if msg.err != nil {
			m.pushHistory("", m.styles.error.Render(msg.err.Error()),
				m.styles.inactive.Render("Fix the configuration and restart. Press Esc to exit."))
			return m, nil
		}
		m.deps = msg.deps
		m.pushHistory("", m.styles.success.Render("✓ CONSOLE READY"),
			"", "Paste a PR URL to review it, or type /help for commands.")
		return m, nil

	case reviewDoneMsg:
		m.isLoading = false
		m.lastTarget = msg.target
		m.pushHistory("", m.styles.success.Render(fmt.Sprintf("✓ REVIEW COMPLETE: %s", msg.target)),
			"", msg.document)
		return m, nil

	case reviewPostedMsg:
		m.isLoading = false
		m.lastTarget = msg.target
		m.pushHistory("", m.styles.success.Render(fmt.Sprintf("✅ REVIEW POSTED: %s", msg.target)),
			m.styles.inactive.Render("The review lives in the PR's tracked comment."))
		return m, nil

	case errorMsg:
		m.isLoading = false
		m.pushHistory("", m.styles.error.Render("⚠ "+msg.err.Error()))
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 10
		m.textarea.SetWidth(msg.Width - 10)
		m.viewport.SetContent(strings.Join(m.history, "\n"))
	}

	return m, tea.Batch(tiCmd, vpCmd, spCmd)
}

func (m *model) View() string {
	if m.deps == nil && m.isLoading {
		return fmt.Sprintf("\n  %s STARTING...\n\n", m.spinner.View())
	}

	var statusParts []string
	if m.deps != nil {
		provider := m.deps.cfg.LLMProvider
		if provider == "" {
			provider = "openai"
		}
		statusParts = append(statusParts, fmt.Sprintf("🤖 %s (%s)", m.deps.cfg.LLMModelName, provider))
		statusParts = append(statusParts, fmt.Sprintf("TRIGGER: %s", m.deps.cfg.TriggerPhrase))
	}
	if m.lastTarget != "" {
		statusParts = append(statusParts, fmt.Sprintf("LAST REVIEW: %s", m.lastTarget))
	} else {
		statusParts = append(statusParts, "LAST REVIEW: none")
	}
	status := m.styles.inactive.Render(strings.Join(statusParts, " │ "))

	var loadingIndicator string
	if m.isLoading {
		loadingIndicator = " " + m.spinner.View() + " " + m.styles.success.Render("REVIEWING...")
	}

	return m.styles.app.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.styles.viewport.Render(m.viewport.View()),
			"",
			m.styles.footer.Render(
				lipgloss.JoinHorizontal(lipgloss.Left,
					m.textarea.View(),
					loadingIndicator,
				),
			),
			status,
		),
	)
}

func (m *model) processCommand(input string) tea.Cmd {
	m.pushHistory(m.styles.prompt.Render("► ") + input)

	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}
	command := parts[0]
	args := parts[1:]

	switch command {
	case "/review", "/r":
		if len(args) != 1 {
			m.pushHistory(m.styles.error.Render("USAGE: /review [pr-url]"))
			return nil
		}
		return m.startReview(args[0], false)

	case "/post":
		if len(args) != 1 {
			m.pushHistory(m.styles.error.Render("USAGE: /post [pr-url]"))
			return nil
		}
		return m.startReview(args[0], true)

	case "/help", "/h":
		helpText := m.styles.success.Render("AVAILABLE COMMANDS:") + `

  /review [pr-url]   Review a pull request and show the result here.
  /post [pr-url]     Review a pull request and publish the result as
                     the PR's tracked comment.
  /help              Show this help message.
  /exit, /quit       Leave the console.

  ` + m.styles.inactive.Render("TIP: Pasting a PR URL on its own reviews it without publishing.")
		m.pushHistory("", helpText)
		return nil

	case "/exit", "/quit":
		return tea.Quit

	default:
		// A bare PR URL reads as a review request.
		if looksLikePRURL(input) {
			return m.startReview(input, false)
		}
		m.pushHistory("",
			m.styles.error.Render(fmt.Sprintf("UNKNOWN COMMAND: %s", command)),
			m.styles.inactive.Render("Type /help for assistance, or paste a PR URL to review it."))
		return nil
	}
}

// startReview kicks off a review of prURL. One review runs at a time; model
// sessions are keyed by PR number, so interleaving two reviews of the same PR
// would cross their conversations.
func (m *model) startReview(prURL string, post bool) tea.Cmd {
	if m.deps == nil {
		m.pushHistory("", m.styles.error.Render("The console did not start cleanly. Fix the configuration and restart."))
		return nil
	}
	if m.isLoading {
		m.pushHistory("", m.styles.error.Render("A review is already running. Wait for it to finish."))
		return nil
	}

	m.isLoading = true
	verb := "Reviewing"
	if post {
		verb = "Reviewing and publishing"
	}
	m.pushHistory("", m.styles.command.Render(fmt.Sprintf("→ %s %s... (this may take a while)", verb, prURL)))
	return tea.Batch(m.spinner.Tick, reviewPRCmd(m.deps, prURL, post, m.viewport.Width-2))
}

func looksLikePRURL(input string) bool {
	return strings.Contains(input, "github.com/") && strings.Contains(input, "/pull/")
}
