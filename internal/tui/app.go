package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/maintstock/internal/clock"
	"github.com/jask/maintstock/internal/config"
	"github.com/jask/maintstock/internal/inventory"
	"github.com/jask/maintstock/internal/ledger"
)

// Suggester proposes a catalog item when a search matches nothing.
type Suggester interface {
	Suggest(query string) (inventory.Item, bool)
}

// Deps are the collaborators the dashboard reads from and writes through.
type Deps struct {
	Engine  *ledger.Engine
	Suggest Suggester
	Clock   clock.Clock
}

// App is the inventory dashboard.
type App struct {
	deps Deps
	cfg  config.UIConfig
	loc  *time.Location
	keys keyMap

	state  appState
	modal  modalState
	filter ledger.FilterStatus
	query  string
	cursor int
	status string
	failed bool

	search textinput.Model
	amount textinput.Model

	// pending movement while the amount modal is open
	pendingItem inventory.Item
	pendingType ledger.Type
}

type appState string

const (
	viewDashboard appState = "dashboard"
	viewHistory   appState = "history"
)

type modalState string

const (
	modalNone   modalState = ""
	modalSearch modalState = "search"
	modalAmount modalState = "amount"
)

// New builds the dashboard. It fails only when cfg.DefaultFilter is not a
// known filter status.
func New(cfg config.UIConfig, deps Deps) (*App, error) {
	filter, err := ledger.ParseFilterStatus(cfg.DefaultFilter)
	if err != nil {
		return nil, fmt.Errorf("ui.default_filter: %w", err)
	}
	if deps.Clock == nil {
		deps.Clock = clock.System{}
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 10
	}
	if cfg.DateFormat == "" {
		cfg.DateFormat = "02 Jan 15:04"
	}
	loc, err := clock.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.Local
	}

	search := textinput.New()
	search.Placeholder = "name or id"
	search.Prompt = "/ "
	search.CharLimit = 64

	amount := textinput.New()
	amount.Placeholder = "quantity"
	amount.Prompt = "> "
	amount.CharLimit = 9

	return &App{
		deps:   deps,
		cfg:    cfg,
		loc:    loc,
		keys:   defaultKeys(),
		state:  viewDashboard,
		filter: filter,
		search: search,
		amount: amount,
	}, nil
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch a.modal {
		case modalSearch:
			return a.handleSearchKey(m)
		case modalAmount:
			return a.handleAmountKey(m)
		}
		switch {
		case key.Matches(m, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(m, a.keys.Search):
			a.modal = modalSearch
			a.search.SetValue(a.query)
			a.search.CursorEnd()
			return a, a.search.Focus()
		case key.Matches(m, a.keys.Clear):
			a.setQuery("")
		case key.Matches(m, a.keys.Filter):
			a.filter = a.filter.Next()
			a.clampCursor()
		case key.Matches(m, a.keys.History):
			if a.state == viewHistory {
				a.state = viewDashboard
			} else {
				a.state = viewHistory
			}
		case key.Matches(m, a.keys.Dashboard):
			a.state = viewDashboard
		case key.Matches(m, a.keys.Up):
			if a.cursor > 0 {
				a.cursor--
			}
		case key.Matches(m, a.keys.Down):
			if a.cursor < len(a.visibleItems())-1 {
				a.cursor++
			}
		case key.Matches(m, a.keys.StockIn):
			return a, a.openAmount(ledger.TypeIn)
		case key.Matches(m, a.keys.StockOut):
			return a, a.openAmount(ledger.TypeOut)
		}
	case recordedMsg:
		a.modal = modalNone
		a.amount.Blur()
		a.amount.SetValue("")
		a.failed = false
		a.status = fmt.Sprintf("%s %d %s %s (stock now %d)", m.tx.Type, m.tx.Amount, m.item.Unit, m.tx.ItemName, m.item.Stock)
		a.clampCursor()
	case errMsg:
		// keep the modal open so the operator can correct the amount
		a.failed = true
		a.status = "error: " + describe(m.error)
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Confirm, a.keys.Cancel):
		a.modal = modalNone
		a.search.Blur()
		return a, nil
	case m.Type == tea.KeyCtrlC:
		return a, tea.Quit
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	a.setQuery(a.search.Value())
	return a, cmd
}

func (a *App) handleAmountKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Cancel):
		a.modal = modalNone
		a.amount.Blur()
		a.amount.SetValue("")
		a.status = ""
		a.failed = false
		return a, nil
	case m.Type == tea.KeyCtrlC:
		return a, tea.Quit
	case key.Matches(m, a.keys.Confirm):
		return a, a.recordCmd(a.pendingItem.ID, a.pendingType, a.amount.Value())
	}
	var cmd tea.Cmd
	a.amount, cmd = a.amount.Update(m)
	return a, cmd
}

func (a *App) openAmount(typ ledger.Type) tea.Cmd {
	items := a.visibleItems()
	if len(items) == 0 {
		return nil
	}
	a.pendingItem = items[a.cursor]
	a.pendingType = typ
	a.modal = modalAmount
	a.status = ""
	a.failed = false
	a.amount.SetValue("")
	return a.amount.Focus()
}

// commands
func (a *App) recordCmd(itemID string, typ ledger.Type, input string) tea.Cmd {
	return func() tea.Msg {
		qty, err := ledger.ParseQuantity(input)
		if err != nil {
			return errMsg{err}
		}
		tx, err := a.deps.Engine.RecordTransaction(itemID, typ, qty, a.deps.Clock.Now())
		if err != nil {
			return errMsg{err}
		}
		for _, it := range a.deps.Engine.Items() {
			if it.ID == itemID {
				return recordedMsg{tx: tx, item: it}
			}
		}
		return recordedMsg{tx: tx}
	}
}

func (a *App) setQuery(q string) {
	a.query = q
	a.cursor = 0
}

func (a *App) clampCursor() {
	n := len(a.visibleItems())
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) visibleItems() []inventory.Item {
	return ledger.FilterItems(a.deps.Engine.Items(), a.query, a.filter)
}

type recordedMsg struct {
	tx   ledger.Transaction
	item inventory.Item
}

type errMsg struct{ error }

// describe turns ledger rejections into operator-facing text.
func describe(err error) string {
	switch {
	case errors.Is(err, ledger.ErrInvalidQuantity):
		return "enter a whole number greater than zero"
	case errors.Is(err, ledger.ErrNegativeStock):
		return "stock cannot be negative"
	case errors.Is(err, ledger.ErrItemNotFound):
		return "item no longer exists"
	}
	return err.Error()
}

func (a *App) View() string {
	var body string
	switch a.state {
	case viewHistory:
		body = a.renderHistory()
	default:
		body = a.renderDashboard()
	}
	if a.modal == modalAmount {
		body += "\n\n" + a.renderAmountModal()
	}
	if a.status != "" {
		style := statusStyle
		if a.failed {
			style = errorStyle
		}
		body += "\n" + style.Render(a.status)
	}
	return body
}

func (a *App) renderStats() string {
	now := a.deps.Clock.Now().In(a.loc)
	stats := a.deps.Engine.Statistics(now)

	reorderValue := cardValueStyle
	reorderNote := "all stocked"
	if stats.ReorderCount > 0 {
		reorderValue = cardAlertStyle
		reorderNote = "action required"
	}
	cards := []string{
		cardStyle.Render(cardLabelStyle.Render("Total SKU") + "\n" + cardValueStyle.Render(fmt.Sprint(stats.TotalSKU)) + "\n" + cardLabelStyle.Render("registered parts")),
		cardStyle.Render(cardLabelStyle.Render("Need reorder") + "\n" + reorderValue.Render(fmt.Sprint(stats.ReorderCount)) + "\n" + cardLabelStyle.Render(reorderNote)),
		cardStyle.Render(cardLabelStyle.Render("Today's transactions") + "\n" + cardValueStyle.Render(fmt.Sprint(stats.TodayTransactionCount)) + "\n" + cardLabelStyle.Render(now.Format("Mon 02 Jan"))),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (a *App) renderDashboard() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Maintenance Stock"))
	b.WriteString("\n")
	b.WriteString(a.renderStats())
	b.WriteString("\n")

	filterLabel := "all items"
	if a.filter == ledger.FilterReorderOnly {
		filterLabel = "reorder only"
	}
	if a.modal == modalSearch {
		b.WriteString(a.search.View())
	} else {
		fmt.Fprintf(&b, "search: %q", a.query)
	}
	fmt.Fprintf(&b, "  filter: %s\n\n", filterLabel)

	items := a.visibleItems()
	if len(items) == 0 {
		b.WriteString("No items found. Try adjusting your search or filter.")
		if s, ok := a.suggestion(); ok {
			fmt.Fprintf(&b, " Did you mean %s (%s)?", s.ID, s.Name)
		}
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "  %-6s  %-22s  %-8s  %-14s  %-7s  %s\n", "ID", "NAME", "CATEGORY", "STOCK / MIN", "STATUS", "UPDATED")
		for i, it := range items {
			b.WriteString(a.renderItemRow(it, i == a.cursor))
			b.WriteString("\n")
		}
	}
	b.WriteString(renderHelp(a.keys.dashboardHelp()))
	return b.String()
}

func (a *App) renderItemRow(it inventory.Item, selected bool) string {
	marker := " "
	if selected {
		marker = cursorStyle.Render("▶")
	}
	badge := okBadge.Render("OK     ")
	if ledger.ReorderStatus(it) {
		badge = reorderBadge.Render("REORDER")
	}
	updated := "-"
	if !it.LastUpdated.IsZero() {
		updated = it.LastUpdated.In(a.loc).Format(a.cfg.DateFormat)
	}
	qty := fmt.Sprintf("%d / %d %s", it.Stock, it.MinStock, it.Unit)
	return fmt.Sprintf("%s %-6s  %-22s  %-8s  %-14s  %s  %s", marker, it.ID, truncate(it.Name, 22), it.Category, qty, badge, updated)
}

func (a *App) renderHistory() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Recent transactions"))
	b.WriteString("\n")
	hist := a.deps.Engine.History()
	if len(hist) == 0 {
		b.WriteString("No transactions recorded yet.\n")
	}
	if len(hist) > a.cfg.HistoryLimit {
		hist = hist[:a.cfg.HistoryLimit]
	}
	for _, tx := range hist {
		dir := inStyle.Render("IN ")
		sign := "+"
		if tx.Type == ledger.TypeOut {
			dir = outStyle.Render("OUT")
			sign = "-"
		}
		fmt.Fprintf(&b, "%s  %s  %-6s  %-22s  %s%d\n", tx.Timestamp.In(a.loc).Format(a.cfg.DateFormat), dir, tx.ItemID, truncate(tx.ItemName, 22), sign, tx.Amount)
	}
	b.WriteString(renderHelp(a.keys.historyHelp()))
	return b.String()
}

func (a *App) renderAmountModal() string {
	verb := "Stock in"
	if a.pendingType == ledger.TypeOut {
		verb = "Stock out"
	}
	it := a.pendingItem
	body := fmt.Sprintf("%s: %s %s\nCurrent stock: %d %s\n%s\n%s",
		verb, it.ID, it.Name, it.Stock, it.Unit, a.amount.View(),
		renderHelp(a.keys.modalHelp()))
	return modalStyle.Render(body)
}

func (a *App) suggestion() (inventory.Item, bool) {
	if a.deps.Suggest == nil || strings.TrimSpace(a.query) == "" {
		return inventory.Item{}, false
	}
	return a.deps.Suggest.Suggest(a.query)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
