package hosting

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/funcbase/cli/internal/domain"
)

const (
	maxViewerRows    = 500
	pollIntervalInvs = 500 * time.Millisecond
)

type invsTickMsg time.Time

type invsLoadedMsg []domain.Invocation

// invocationsModel is the Bubble Tea model for the live invocation
// viewer: it polls the store and renders the rows in a viewport.
type invocationsModel struct {
	store domain.InvocationStore

	invs         []domain.Invocation
	sessionStart time.Time
	byStatus     map[int]int

	viewport viewport.Model
	ready    bool
	width    int
	height   int

	paused     bool
	autoScroll bool
}

func newInvocationsModel(store domain.InvocationStore) invocationsModel {
	return invocationsModel{
		store:        store,
		sessionStart: time.Now(),
		byStatus:     make(map[int]int),
		autoScroll:   true,
	}
}

func (m invocationsModel) Init() tea.Cmd {
	return tea.Batch(m.load(), invsTickCmd())
}

func invsTickCmd() tea.Cmd {
	return tea.Tick(pollIntervalInvs, func(t time.Time) tea.Msg {
		return invsTickMsg(t)
	})
}

func (m invocationsModel) load() tea.Cmd {
	return func() tea.Msg {
		invs, err := m.store.List(maxViewerRows)
		if err != nil {
			return invsLoadedMsg(nil)
		}
		return invsLoadedMsg(invs)
	}
}

func (m invocationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.viewport.SetContent(m.renderRows())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "p":
			m.paused = !m.paused
			return m, nil
		case "g":
			m.autoScroll = false
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.autoScroll = true
			m.viewport.GotoBottom()
			return m, nil
		case "k", "up":
			m.autoScroll = false
		}

	case invsTickMsg:
		if m.paused {
			return m, invsTickCmd()
		}
		return m, tea.Batch(m.load(), invsTickCmd())

	case invsLoadedMsg:
		m.setInvocations([]domain.Invocation(msg))
		if m.ready {
			m.viewport.SetContent(m.renderRows())
			if m.autoScroll {
				m.viewport.GotoBottom()
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// setInvocations replaces the buffer. The store returns newest first;
// the viewer displays oldest first so new rows arrive at the bottom.
func (m *invocationsModel) setInvocations(invs []domain.Invocation) {
	m.invs = m.invs[:0]
	for i := len(invs) - 1; i >= 0; i-- {
		m.invs = append(m.invs, invs[i])
	}

	m.byStatus = make(map[int]int)
	for _, inv := range m.invs {
		m.byStatus[inv.Status/100]++
	}
}
