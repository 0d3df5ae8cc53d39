package async_operation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sierrasoftworks/humane-errors-go"

	"github.com/spechtlabs/nba/internal/cli/pretty_print"
)

var errAborted = errors.New("aborted by user")

type checkTriggerMsg struct{}

type checkResultMsg struct {
	done bool
	err  humane.Error
}

type waitModel struct {
	ctx   context.Context
	check CheckFunc
	opts  *waitOptions
	s     spinner.Model

	done bool
	err  humane.Error
}

func runTea(ctx context.Context, check CheckFunc, opts *waitOptions) humane.Error {
	s := spinner.New()
	s.Spinner = opts.style

	m := waitModel{ctx: ctx, check: check, opts: opts, s: s}
	final, err := tea.NewProgram(m, tea.WithOutput(opts.out), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return humane.Wrap(err, "UI error while waiting")
	}

	result, ok := final.(waitModel)
	switch {
	case !ok || (!result.done && result.err == nil):
		return timeoutError(ctx, opts)
	case result.err != nil:
		return result.err
	default:
		return nil
	}
}

func (m waitModel) Init() tea.Cmd {
	return tea.Batch(m.s.Tick, m.checkCmd())
}

func (m waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = humane.Wrap(errAborted, "Stopped waiting", "the applied objects were left in place")
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.s, cmd = m.s.Update(msg)
		return m, cmd

	case checkTriggerMsg:
		return m, m.checkCmd()

	case checkResultMsg:
		if msg.err != nil || msg.done {
			m.done, m.err = msg.done, msg.err
			return m, tea.Quit
		}
		if m.ctx.Err() != nil {
			m.err = timeoutError(m.ctx, m.opts)
			return m, tea.Quit
		}
		return m, tea.Tick(m.opts.interval, func(time.Time) tea.Msg {
			return checkTriggerMsg{}
		})
	}

	return m, nil
}

func (m waitModel) View() string {
	switch {
	case m.done:
		return pretty_print.FormatOk(m.opts.doneMessage)
	case m.err != nil:
		return ""
	default:
		icon := strings.TrimSpace(m.s.View())
		return pretty_print.FormatWithOptions(pretty_print.InfoLvl, m.opts.inProgressMessage, nil,
			pretty_print.WithIcon(pretty_print.InfoLvl, icon))
	}
}

func (m waitModel) checkCmd() tea.Cmd {
	return func() tea.Msg {
		done, err := m.check(m.ctx)
		return checkResultMsg{done: done, err: err}
	}
}
