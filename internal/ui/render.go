package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"horsemanager/internal/fields"
	"horsemanager/internal/table"
)

// DialogWidth is the inner width of dialog boxes.
const DialogWidth = 56

// Render draws the active screen and, below it, the open dialog.
func (n *Navigator) Render(st *table.Styles) []string {
	if st == nil {
		st = table.DefaultStyles()
	}
	lines := n.renderScreen(n.Active(), st)
	if n.dialog != nil {
		lines = append(lines, "")
		lines = append(lines, renderDialog(n.dialog, st)...)
	}
	return lines
}

func (n *Navigator) renderScreen(s *Screen, st *table.Styles) []string {
	if s.Kind == MenuScreen {
		return renderMenu(s, st)
	}

	items := n.Items(s)
	entities := make([]fields.Entity, len(items))
	for i, it := range items {
		entities[i] = it
	}
	return table.Render(entities, n.registry.Describe(s.TypeName, s.Exclude...), table.Options{
		Title:      s.Title,
		TypeName:   s.TypeName,
		Selectable: s.Selectable,
		Addable:    s.Addable,
		Selected:   s.selected,
		Quote:      n.engine.Quote(n.game, s.Direction),
		Styles:     st,
	})
}

func boxBorder(st *table.Styles, width int) string {
	return st.Border.Render("+" + strings.Repeat("-", width) + "+")
}

func boxRow(st *table.Styles, text string) string {
	return st.Border.Render("|") + text + st.Border.Render("|")
}

func renderMenu(s *Screen, st *table.Styles) []string {
	width := table.DefaultWidth / 2
	lines := []string{
		boxBorder(st, width),
		boxRow(st, st.Title.Render(table.AlignCenter(s.Title, width))),
		boxBorder(st, width),
	}
	for i, o := range s.Options {
		marker := " [ ] "
		if i == s.selected {
			marker = st.Marker.Render(" [X] ")
		}
		lines = append(lines, boxRow(st, marker+table.AlignLeft(o.Label, width-5)))
	}
	return append(lines, boxBorder(st, width))
}

func renderDialog(d *Dialog, st *table.Styles) []string {
	width := DialogWidth
	lines := []string{
		boxBorder(st, width),
		boxRow(st, st.Title.Render(table.AlignCenter(d.Title(), width))),
		boxBorder(st, width),
	}
	body := st.Color(fields.ColorDefault).Width(width - 2).Render(d.Text())
	for _, l := range strings.Split(body, "\n") {
		lines = append(lines, boxRow(st, " "+table.AlignLeft(l, width-2)+" "))
	}
	lines = append(lines, boxRow(st, strings.Repeat(" ", width)))

	var buttons string
	if _, ok := d.Request.(ConfirmRequest); ok {
		yes, no := "[ Yes ]", "[ No ]"
		if d.focus == ButtonYes {
			yes = st.Marker.Render(yes)
		} else {
			no = st.Marker.Render(no)
		}
		buttons = yes + "   " + no
	} else {
		buttons = st.Marker.Render("[ OK ]")
	}
	lines = append(lines,
		boxRow(st, centerStyled(buttons, width)),
		boxBorder(st, width),
	)
	return lines
}

// centerStyled centers text that may contain escape sequences.
func centerStyled(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
