package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"github.com/teranos/innkeep/editor"
	"github.com/teranos/innkeep/errors"
	"github.com/teranos/innkeep/room"
	"github.com/teranos/innkeep/sym"
)

const formUsage = `Commands:
  show                      render the form
  name VALUE                set the room type name
  window VALUE              set the window, e.g. 有窗
  floor VALUE               set the floor, e.g. 3-5层
  area VALUE                set the area: 25 or 20-30 (㎡)
  occupancy N               set the guest count
  feature TAG               toggle a feature tag
  sync on|off               let system updates overwrite this room
  cover ID                  make photo ID the cover
  move FROM TO              move a photo between 0-based positions
  bed COMMAND...            run a bed command (see innkeep bed edit --help)
  save                      save the room
  quit                      leave without saving`

// formArity is the number of arguments each form command takes; bed is variadic
var formArity = map[string]int{
	"show": 0, "save": 0,
	"name": 1, "window": 1, "floor": 1, "area": 1, "occupancy": 1, "feature": 1, "sync": 1, "cover": 1,
	"move": 2,
}

// runRoomForm runs the form command loop. It returns the saved room and true after a
// successful save, or false when the session ends without one.
func runRoomForm(in io.Reader, out io.Writer, f *room.Form, prompt string) (room.Room, bool, error) {
	renderForm(out, f)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			fmt.Fprintln(out)
			return room.Room{}, false, nil
		case "help":
			fmt.Fprintln(out, formUsage)
			continue
		}

		args, err := shellquote.Split(line)
		if err != nil {
			printError(out, errors.Wrap(errors.NewInvalidRequestError("%s", err.Error()), "bad quoting"))
			continue
		}

		if strings.ToLower(args[0]) == "save" && len(args) == 1 {
			saved, err := f.Save()
			if err == nil {
				return saved, true, nil
			}
			if w, ok := f.ActiveWarning(); ok && errors.IsConflictError(err) {
				fmt.Fprintf(out, "%s %s\n", pterm.Yellow(sym.Warn), w.Message)
				continue
			}
			printError(out, err)
			continue
		}

		if err := applyFormCommand(out, f, args); err != nil {
			printError(out, err)
		}
	}
	fmt.Fprintln(out)

	if err := scanner.Err(); err != nil {
		return room.Room{}, false, errors.Wrap(err, "failed to read commands")
	}
	return room.Room{}, false, nil
}

func applyFormCommand(out io.Writer, f *room.Form, args []string) error {
	name := strings.ToLower(args[0])
	if name == "bed" {
		action, err := editor.ParseAction(args[1:])
		if err != nil {
			return err
		}
		return applyBedAction(out, f.BedView(), action)
	}

	want, ok := formArity[name]
	if !ok {
		return errors.WithHint(
			errors.NewInvalidRequestError("unknown command %q", args[0]),
			"type help to list commands")
	}
	if got := len(args) - 1; got != want {
		return errors.NewInvalidRequestError("%s takes %d argument(s), got %d", name, want, got)
	}

	switch name {
	case "show":
		renderForm(out, f)
		return nil
	case "name":
		return f.SetName(args[1])
	case "window":
		return f.SetWindow(args[1])
	case "floor":
		return f.SetFloor(args[1])
	case "area":
		return f.SetArea(room.ParseArea(args[1]))
	case "occupancy":
		return f.SetOccupancy(args[1])
	case "feature":
		return f.ToggleFeature(args[1])
	case "sync":
		on, err := parseSwitch(args[1])
		if err != nil {
			return err
		}
		return f.SetSyncWithSystem(on)
	case "cover":
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.NewInvalidRequestError("photo id %q is not a number", args[1])
		}
		return f.SetCover(id)
	case "move":
		from, err1 := strconv.Atoi(args[1])
		to, err2 := strconv.Atoi(args[2])
		if err1 != nil || err2 != nil {
			return errors.NewInvalidRequestError("move takes two positions, got %q %q", args[1], args[2])
		}
		return f.MoveImage(from, to)
	}
	return nil
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	}
	return false, errors.NewInvalidRequestError("expected on or off, got %q", s)
}

func renderForm(out io.Writer, f *room.Form) {
	r := f.Room()

	title := r.Name
	if title == "" {
		title = "(new room)"
	}
	fmt.Fprintf(out, "%s %s", sym.Room, pterm.Bold.Sprint(title))
	if !f.IsNew() {
		fmt.Fprintf(out, " [%d]", r.ID)
	}
	fmt.Fprintf(out, "  %s\n", pterm.Gray(r.Source.Label()))

	field := func(label, value string) {
		if value == "" {
			value = pterm.Gray("-")
		}
		fmt.Fprintf(out, "  %s  %s\n", label, value)
	}
	field("面积", r.Area)
	field("入住", r.Occupancy)
	field("窗户", r.Window)
	field("楼层", r.Floor)
	field("特色", strings.Join(r.Features, ", "))
	if r.SyncWithSystem {
		field("同步", "on")
	}

	var photos []string
	for _, img := range f.Images() {
		label := strconv.Itoa(img.ID)
		if img.Cover {
			label = sym.Cover + label
		}
		photos = append(photos, label)
	}
	field("图片", strings.Join(photos, " "))

	fmt.Fprint(out, f.BedView().String())

	if w, ok := f.ActiveWarning(); ok {
		fmt.Fprintf(out, "%s %s\n", pterm.Yellow(sym.Warn), w.Message)
	}
}
