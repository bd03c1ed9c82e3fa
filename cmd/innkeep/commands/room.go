package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/innkeep/am"
	"github.com/teranos/innkeep/bed"
	"github.com/teranos/innkeep/display"
	"github.com/teranos/innkeep/errors"
	"github.com/teranos/innkeep/room"
	"github.com/teranos/innkeep/sym"
)

// RoomCmd groups the room catalog commands
var RoomCmd = &cobra.Command{
	Use:   "room",
	Short: sym.Room + " Browse, check and edit room types",
	Long: sym.Room + ` room: Browse, check and edit room types

Rooms are read from a catalog file (.yaml, .toml or .json) set by room.catalog
in innkeep.toml, INNKEEP_ROOM_CATALOG, or --catalog.

Examples:
  innkeep room ls                                   # List room types
  innkeep room check --area 35㎡ --bed 2张1.2米单人床 --window 有窗 --floor 2-10层
  innkeep room edit 3                               # Edit room 3
  innkeep room edit                                 # Create a room`,
}

var roomLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List room types",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(cmd.OutOrStdout(), catalog)
		}
		return renderCatalog(cmd.OutOrStdout(), catalog)
	},
}

var roomCheckCmd = &cobra.Command{
	Use:   "check [id]",
	Short: "Check for a similar physical room type",
	Long: `Check whether a room shares area, bed, window and floor with another catalog room.

Pass a catalog room id, or describe a candidate with --area, --bed, --window and --floor.
The bed description is normalized before comparing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		var candidate room.Room
		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.NewInvalidRequestError("room id %q is not a number", args[0])
			}
			if candidate, err = room.FindByID(catalog, id); err != nil {
				return err
			}
		} else {
			candidate.Area, _ = cmd.Flags().GetString("area")
			candidate.Window, _ = cmd.Flags().GetString("window")
			candidate.Floor, _ = cmd.Flags().GetString("floor")
			bedText, _ := cmd.Flags().GetString("bed")
			candidate.Bed = bed.Normalize(bedText)
		}

		return checkDuplicate(cmd.OutOrStdout(), catalog, candidate)
	},
}

var roomEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a room type interactively",
	Long: `Open the room form on a catalog room, or on a new room when no id is given,
and read commands from stdin. System-synced rooms (L2, L3) open read-only.

` + formUsage,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		var existing *room.Room
		if len(args) == 1 {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.NewInvalidRequestError("room id %q is not a number", args[0])
			}
			r, err := room.FindByID(catalog, id)
			if err != nil {
				return err
			}
			existing = &r
		}

		form := room.OpenForm(existing,
			room.WithCatalog(catalog),
			room.WithWarningDelay(cfg.GetDuplicateWarningDelay()),
			room.WithBedOptions(bed.WithIDGenerator(bed.NewIDGenerator(bed.IDStrategy(cfg.GetIDStrategy())))),
		)

		saved, ok, err := runRoomForm(cmd.InOrStdin(), cmd.OutOrStdout(), form, cfg.GetPrompt())
		if err != nil || !ok {
			return err
		}
		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(cmd.OutOrStdout(), saved)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s saved %s\n", sym.Room, saved.Name)
		return nil
	},
}

func init() {
	RoomCmd.PersistentFlags().String("catalog", "", "Room catalog file (default: room.catalog from config)")

	roomCheckCmd.Flags().String("area", "", "Area, e.g. 25㎡ or 20-30㎡")
	roomCheckCmd.Flags().String("bed", "", "Bed description")
	roomCheckCmd.Flags().String("window", "", "Window, e.g. 有窗")
	roomCheckCmd.Flags().String("floor", "", "Floor, e.g. 3-5层")

	RoomCmd.AddCommand(roomLsCmd)
	RoomCmd.AddCommand(roomCheckCmd)
	RoomCmd.AddCommand(roomEditCmd)
}

// loadCatalog reads the catalog named by --catalog or room.catalog
func loadCatalog(cmd *cobra.Command) ([]room.Room, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		cfg, err := am.Load()
		if err != nil {
			return nil, errors.Wrap(err, "failed to load config")
		}
		path = cfg.Room.Catalog
	}
	if path == "" {
		return nil, errors.WithHint(
			errors.NewInvalidRequestError("no room catalog configured"),
			"pass --catalog or set room.catalog in innkeep.toml")
	}
	return room.LoadCatalog(path)
}

func renderCatalog(out io.Writer, catalog []room.Room) error {
	data := pterm.TableData{{"ID", "名称", "面积", "床型", "入住", "窗户", "楼层", "来源"}}
	for _, r := range catalog {
		source := string(r.Source)
		if r.Source.IsSystem() {
			source = sym.Lock + " " + source
		}
		data = append(data, []string{
			strconv.Itoa(r.ID), r.Name, r.Area, r.Bed, r.Occupancy, r.Window, r.Floor, source,
		})
	}

	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render room table")
	}
	_, err = fmt.Fprintln(out, s)
	return err
}

// checkDuplicate reports a similar room as a *room.DuplicateError
func checkDuplicate(out io.Writer, catalog []room.Room, candidate room.Room) error {
	dup, ok := room.FindDuplicate(catalog, candidate)
	if !ok {
		fmt.Fprintf(out, "%s no similar physical room type\n", pterm.Green("✓"))
		return nil
	}
	fmt.Fprintf(out, "%s similar physical room type: %d %s (%s)\n",
		pterm.Yellow(sym.Warn), dup.ID, dup.Name, strings.Join([]string{dup.Area, dup.Bed, dup.Window, dup.Floor}, ", "))
	return &room.DuplicateError{Existing: dup}
}
