package editor

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"github.com/teranos/innkeep/sym"
)

// Placeholders shown for empty fields
const (
	typePlaceholder  = "选择床型"
	widthPlaceholder = "宽度"
)

// Render writes the editor layout to w
func (v *View) Render(w io.Writer) error {
	_, err := io.WriteString(w, v.String())
	return err
}

// String renders the editor layout with terminal colours
func (v *View) String() string {
	var b strings.Builder

	text := v.store.Text()
	if text == "" {
		text = pterm.Gray("(empty)")
	}
	fmt.Fprintf(&b, "%s %s\n", sym.Bed, text)
	if v.readOnly {
		fmt.Fprintf(&b, "%s\n", pterm.Yellow(sym.Lock+" read-only"))
	}

	for _, row := range v.Rows() {
		b.WriteString(renderRow(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderRow(row Row) string {
	switch row.Kind {
	case RowOrDivider:
		return pterm.Gray("  ── " + sym.OrLabel + " ──")
	case RowGroupHeader:
		line := fmt.Sprintf("  方案 %d %s", row.GroupIndex+1, pterm.Gray("["+row.GroupID+"]"))
		return line + removeMark(row.Removable)
	case RowAndConnector:
		return pterm.Gray("     " + sym.AndLabel)
	case RowItem:
		return renderItem(row)
	case RowAddItem:
		return pterm.Cyan("    + 组合其他床型 (" + sym.And + ")")
	case RowAddGroup:
		return pterm.Cyan("  + 添加备选方案 (" + sym.Or + ")")
	}
	return ""
}

func renderItem(row Row) string {
	typ := row.Item.Type
	if typ == "" {
		typ = pterm.Gray(typePlaceholder)
	}
	width := row.Item.Width
	if width == "" {
		width = pterm.Gray(widthPlaceholder)
	}
	line := fmt.Sprintf("    %d. %s  %s%s  %s%s  %s",
		row.ItemIndex+1,
		typ,
		width, sym.UnitMeter,
		row.Item.Count, sym.UnitBed,
		pterm.Gray("["+row.ItemID+"]"))
	return line + removeMark(row.Removable)
}

func removeMark(removable bool) string {
	if !removable {
		return ""
	}
	return " " + pterm.LightRed("✕")
}
