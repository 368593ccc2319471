package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"horsemanager/internal/domain"
	"horsemanager/internal/exchange"
	"horsemanager/internal/game"
	"horsemanager/internal/pricing"
	"horsemanager/internal/table"
	"horsemanager/internal/util"
)

var (
	ordinaryDay = time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)
	holiday     = time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)
)

type fixture struct {
	state   *game.State
	nav     *Navigator
	trades  []exchange.Receipt
	saveErr error
}

func newFixture(t *testing.T, day time.Time, balance int) *fixture {
	t.Helper()
	state := game.NewState(game.Player{Name: "Rita", Balance: balance}, day, 1, util.MustEventCalendar([]string{"12-25"}))
	state.Stock(domain.CatalogShop,
		domain.Horse{ID: "h1", Name: "Abbey Ace", Rarity: domain.RarityCommon, Energy: 100, Price: 600},
		domain.Horse{ID: "h2", Name: "Blue Comet", Rarity: domain.RarityLegendary, Energy: 100, Price: 1300},
		domain.Jockey{ID: "j1", Name: "Rui Costa", Rarity: domain.RarityRare, Skill: 50, Price: 600},
	)
	nav, err := NewNavigator(state, exchange.NewEngine(pricing.Default, nil, nil), domain.Fields, nil, DefaultScreens()...)
	if err != nil {
		t.Fatalf("NewNavigator: %v", err)
	}
	f := &fixture{state: state, nav: nav}
	nav.OnTrade = func(r exchange.Receipt) error {
		f.trades = append(f.trades, r)
		return f.saveErr
	}
	return f
}

func (f *fixture) show(t *testing.T, id string) {
	t.Helper()
	if err := f.nav.Show(id); err != nil {
		t.Fatalf("Show(%s): %v", id, err)
	}
}

func (f *fixture) confirm(t *testing.T) {
	t.Helper()
	if err := f.nav.Confirm(context.Background()); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
}

func plain(lines []string) string {
	return ansi.Strip(strings.Join(lines, "\n"))
}

func TestNewNavigatorValidatesLinks(t *testing.T) {
	state := game.NewState(game.Player{}, ordinaryDay, 1, nil)
	engine := exchange.NewEngine(pricing.Default, nil, nil)

	if _, err := NewNavigator(state, engine, domain.Fields, nil); err == nil {
		t.Error("NewNavigator accepted no screens")
	}
	broken := &Screen{ID: "a", Kind: MenuScreen, Options: []MenuOption{{Label: "x", Target: "missing"}}}
	if _, err := NewNavigator(state, engine, domain.Fields, nil, broken); err == nil {
		t.Error("NewNavigator accepted a dangling link")
	}
	dup := []*Screen{{ID: "a"}, {ID: "a"}}
	if _, err := NewNavigator(state, engine, domain.Fields, nil, dup...); err == nil {
		t.Error("NewNavigator accepted duplicate IDs")
	}
}

func TestShowAndBack(t *testing.T) {
	f := newFixture(t, ordinaryDay, 1000)
	nav := f.nav

	if nav.Active().ID != "main" || nav.Depth() != 1 {
		t.Fatalf("root = %s depth %d", nav.Active().ID, nav.Depth())
	}
	if nav.Back() {
		t.Error("Back popped the root")
	}

	f.show(t, "stable-horses")
	f.show(t, "shop-horses")
	if nav.Depth() != 3 {
		t.Errorf("depth = %d, want 3", nav.Depth())
	}

	// Showing a screen already on the stack pops back to it.
	f.show(t, "stable-horses")
	if nav.Depth() != 2 || nav.Active().ID != "stable-horses" {
		t.Errorf("after re-show: %s depth %d", nav.Active().ID, nav.Depth())
	}

	if !nav.Back() || nav.Active().ID != "main" {
		t.Errorf("Back landed on %s", nav.Active().ID)
	}
	if err := nav.Show("nowhere"); err == nil {
		t.Error("Show accepted an unknown screen")
	}
}

func TestMoveSelectionClamps(t *testing.T) {
	f := newFixture(t, ordinaryDay, 1000)
	nav := f.nav

	f.show(t, "shop-horses") // two horses, not addable
	nav.MoveSelection(-5)
	if got := nav.Active().Selected(); got != 0 {
		t.Errorf("selection after -5 = %d, want 0", got)
	}
	nav.MoveSelection(10)
	if got := nav.Active().Selected(); got != 1 {
		t.Errorf("selection after +10 = %d, want 1", got)
	}

	f.show(t, "stable-horses") // empty, addable: only the "add new" row
	if got := nav.Active().Selected(); got != 0 {
		t.Errorf("empty addable selection = %d, want 0", got)
	}
	nav.MoveSelection(1)
	if got := nav.Active().Selected(); got != 0 {
		t.Errorf("empty addable selection after +1 = %d, want 0", got)
	}
}

func TestEmptyNonAddableHasNoSelection(t *testing.T) {
	f := newFixture(t, ordinaryDay, 1000)
	for _, id := range []string{"h1", "h2"} {
		if err := f.state.Move(id, domain.CatalogShop, domain.CatalogPlayer); err != nil {
			t.Fatal(err)
		}
	}
	f.show(t, "shop-horses")
	if got := f.nav.Active().Selected(); got != -1 {
		t.Errorf("selection = %d, want -1", got)
	}
	f.nav.MoveSelection(1)
	if got := f.nav.Active().Selected(); got != -1 {
		t.Errorf("selection after move = %d, want -1", got)
	}
	f.confirm(t)
	if f.nav.Dialog() != nil {
		t.Error("Confirm on an empty table opened a dialog")
	}
	if !strings.Contains(plain(f.nav.Render(table.PlainStyles())), table.EmptyMessage) {
		t.Error("empty shop does not show the empty message")
	}
}

func TestRowsAreRarestFirst(t *testing.T) {
	f := newFixture(t, ordinaryDay, 1000)
	f.show(t, "shop-horses")
	items := f.nav.Items(f.nav.Active())
	if len(items) != 2 || items[0].Key() != "h2" || items[1].Key() != "h1" {
		t.Errorf("rows = %v, want legendary first", items)
	}
}

func TestBuyFlow(t *testing.T) {
	f := newFixture(t, holiday, 1000)
	nav := f.nav
	f.show(t, "shop-horses")
	nav.MoveSelection(1) // Abbey Ace

	f.confirm(t)
	d := nav.Dialog()
	if d == nil {
		t.Fatal("Confirm on a row did not open a dialog")
	}
	req, ok := d.Request.(ConfirmRequest)
	if !ok || req.Item.Key() != "h1" || req.Price != 450 || req.Direction != domain.Buying {
		t.Fatalf("request = %+v", d.Request)
	}
	if d.Title() != "buy horse" {
		t.Errorf("Title() = %q", d.Title())
	}
	if want := "Are you sure you want to buy Abbey Ace for 450,00 € ?"; d.Text() != want {
		t.Errorf("Text() = %q, want %q", d.Text(), want)
	}

	// Inputs go to the dialog while it is open.
	nav.MoveSelection(-1)
	if nav.Active().Selected() != 1 {
		t.Error("MoveSelection changed the screen under a dialog")
	}
	if nav.Back() {
		t.Error("Back worked under a dialog")
	}

	f.confirm(t)
	msg, ok := nav.Dialog().Request.(MessageRequest)
	if !ok || msg.Kind != SuccessMessage || msg.Text != "Abbey Ace was successfully bought!" {
		t.Fatalf("result dialog = %+v", nav.Dialog().Request)
	}
	if f.state.Balance() != 550 {
		t.Errorf("balance = %d, want 550", f.state.Balance())
	}
	if len(f.trades) != 1 || f.trades[0].Price != 450 {
		t.Errorf("OnTrade saw %v", f.trades)
	}
	// One horse left: the selection was clamped.
	if nav.Active().Selected() != 0 {
		t.Errorf("selection = %d, want 0", nav.Active().Selected())
	}

	f.confirm(t)
	if nav.Dialog() != nil {
		t.Error("confirming a message did not close it")
	}
}

func TestBuyInsufficientFunds(t *testing.T) {
	f := newFixture(t, ordinaryDay, 599)
	f.show(t, "shop-horses")
	f.nav.MoveSelection(1)

	f.confirm(t)
	f.confirm(t)
	msg, ok := f.nav.Dialog().Request.(MessageRequest)
	if !ok || msg.Kind != ErrorMessage || msg.Text != "You don't have enough money to buy Abbey Ace!" {
		t.Fatalf("result dialog = %+v", f.nav.Dialog().Request)
	}
	if f.state.Balance() != 599 || len(f.trades) != 0 {
		t.Errorf("balance %d, trades %d; want untouched", f.state.Balance(), len(f.trades))
	}
	f.nav.Cancel()
	if f.nav.Dialog() != nil {
		t.Error("Cancel did not close the message")
	}
}

func TestDeclineAndCancel(t *testing.T) {
	f := newFixture(t, ordinaryDay, 1000)
	f.show(t, "shop-horses")

	// Focus "No" then confirm.
	f.confirm(t)
	f.nav.MoveSelection(1)
	if f.nav.Dialog().Focus() != ButtonNo {
		t.Fatalf("focus = %d, want No", f.nav.Dialog().Focus())
	}
	f.confirm(t)
	if f.nav.Dialog() != nil {
		t.Error("declining left a dialog open")
	}

	// Cancel directly.
	f.confirm(t)
	f.nav.Cancel()
	if f.nav.Dialog() != nil {
		t.Error("Cancel left the dialog open")
	}
	if f.nav.Active().ID != "shop-horses" {
		t.Error("Cancel on a dialog also left the screen")
	}

	if f.state.Balance() != 1000 || len(f.trades) != 0 {
		t.Errorf("balance %d, trades %d; want no transaction", f.state.Balance(), len(f.trades))
	}
}

func TestDialogResolvesOnce(t *testing.T) {
	d := newDialog(MessageRequest{Text: "hi"}, nil)
	if !d.resolve() {
		t.Fatal("first resolve failed")
	}
	if d.resolve() {
		t.Error("second resolve succeeded")
	}
	if !d.Resolved() {
		t.Error("Resolved() = false")
	}
}

func TestSellFlow(t *testing.T) {
	f := newFixture(t, holiday, 0)
	if err := f.state.Move("h1", domain.CatalogShop, domain.CatalogPlayer); err != nil {
		t.Fatal(err)
	}
	f.show(t, "stable-horses")

	f.confirm(t)
	if got := f.nav.Dialog().Text(); got != "Are you sure you want to sell Abbey Ace for 750,00 € ?" {
		t.Errorf("Text() = %q", got)
	}
	f.confirm(t)
	if f.state.Balance() != 750 {
		t.Errorf("balance = %d, want 750", f.state.Balance())
	}
	if got := f.nav.Dialog().Request.(MessageRequest).Text; got != "Abbey Ace was successfully sold!" {
		t.Errorf("message = %q", got)
	}
}

func TestConfirmReportsSaveFailure(t *testing.T) {
	f := newFixture(t, ordinaryDay, 1000)
	f.saveErr = errors.New("disk full")
	f.show(t, "shop-horses")
	f.nav.MoveSelection(1) // Abbey Ace

	f.confirm(t)
	err := f.nav.Confirm(context.Background())
	if !errors.Is(err, f.saveErr) {
		t.Fatalf("Confirm error = %v, want %v", err, f.saveErr)
	}
	if len(f.trades) != 1 {
		t.Errorf("OnTrade called %d times, want 1", len(f.trades))
	}
	msg, ok := f.nav.Dialog().Request.(MessageRequest)
	if !ok || msg.Kind != SuccessMessage {
		t.Errorf("dialog = %+v, want the success message", f.nav.Dialog().Request)
	}
}

func TestAddNewRowNavigates(t *testing.T) {
	f := newFixture(t, ordinaryDay, 1000)
	f.show(t, "stable-horses")

	f.confirm(t) // only row is "Add new Horse"
	if f.nav.Active().ID != "shop-horses" {
		t.Errorf("active = %s, want shop-horses", f.nav.Active().ID)
	}
	if f.nav.Dialog() != nil {
		t.Error("add-new row opened a dialog")
	}
}

func TestMenu(t *testing.T) {
	f := newFixture(t, ordinaryDay, 1000)
	nav := f.nav

	nav.MoveSelection(1)
	f.confirm(t)
	if nav.Active().ID != "shop-jockeys" {
		t.Errorf("menu option 1 opened %s", nav.Active().ID)
	}
	nav.Cancel()
	if nav.Active().ID != "main" {
		t.Errorf("Cancel without dialog did not go back: %s", nav.Active().ID)
	}

	nav.MoveSelection(100)
	f.confirm(t)
	if !nav.Quit() {
		t.Error("Exit option did not quit")
	}
}

func TestRenderShowsDialogAndPrices(t *testing.T) {
	f := newFixture(t, holiday, 1000)
	f.show(t, "shop-horses")
	f.nav.MoveSelection(1)
	f.confirm(t)

	out := plain(f.nav.Render(table.PlainStyles()))
	for _, want := range []string{"Horse Shop", "975,00 €", "450,00 €", "buy horse", "[ Yes ]", "[ No ]", "Abbey Ace for"} {
		if !strings.Contains(out, want) {
			t.Errorf("render lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "h1") {
		t.Error("ID column should be excluded")
	}
}

func TestRenderMenu(t *testing.T) {
	f := newFixture(t, ordinaryDay, 1000)
	lines := f.nav.Render(table.PlainStyles())
	out := plain(lines)
	if !strings.Contains(out, " [X] Horse Shop") || !strings.Contains(out, " [ ] Exit") {
		t.Errorf("menu render:\n%s", out)
	}
	width := len(ansi.Strip(lines[0]))
	for i, l := range lines {
		if w := len([]rune(ansi.Strip(l))); w != width {
			t.Errorf("menu line %d width %d, want %d", i, w, width)
		}
	}
}

func TestRenderDialogWrapsLongText(t *testing.T) {
	text := "Could not buy Abbey Ace: recording buy of Abbey Ace: the ledger database is locked by another process"
	lines := renderDialog(newDialog(MessageRequest{Text: text, Kind: ErrorMessage}, nil), table.PlainStyles())

	// border, title, border, body..., blank, buttons, border
	body := lines[3 : len(lines)-3]
	if len(body) < 2 {
		t.Fatalf("long text was not wrapped: %d body lines", len(body))
	}
	for i, l := range lines {
		if w := len([]rune(ansi.Strip(l))); w != DialogWidth+2 {
			t.Errorf("dialog line %d width %d, want %d: %q", i, w, DialogWidth+2, l)
		}
	}
	var words []string
	for _, l := range body {
		words = append(words, strings.Fields(strings.Trim(ansi.Strip(l), "|"))...)
	}
	if got := strings.Join(words, " "); got != text {
		t.Errorf("wrapped text = %q, want %q", got, text)
	}
}
