package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/innkeep/am"
	"github.com/teranos/innkeep/bed"
	"github.com/teranos/innkeep/display"
	"github.com/teranos/innkeep/editor"
	"github.com/teranos/innkeep/errors"
	"github.com/teranos/innkeep/logger"
	"github.com/teranos/innkeep/sym"
)

// BedCmd groups the bed description commands
var BedCmd = &cobra.Command{
	Use:   "bed",
	Short: sym.Bed + " Parse, format and edit bed descriptions",
	Long: sym.Bed + ` bed: Parse, format and edit bed descriptions

A bed description lists alternatives joined by 或 (or), each a set of beds
joined by 及 (and): "1张1.8米大床 及 1张1.2米单人床 或 2张1.5米双床".

Examples:
  innkeep bed parse "2张1.5米双床"          # Show the parsed structure
  innkeep bed format < beds.txt           # Normalize one description per line
  innkeep bed edit "1张1.8米大床"            # Edit interactively`,
}

var bedParseCmd = &cobra.Command{
	Use:   "parse [text]",
	Short: "Show how a bed description is parsed",
	Long:  "Parse a bed description (from arguments or stdin) and print its alternatives and beds",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := textArg(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}
		cfg := bed.Parse(text)
		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(cmd.OutOrStdout(), cfg)
		}
		return renderConfiguration(cmd.OutOrStdout(), cfg)
	},
}

var bedFormatCmd = &cobra.Command{
	Use:   "format [text]",
	Short: "Normalize bed descriptions",
	Long:  "Print the canonical form of a bed description, or of every line read from stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		var inputs []string
		if len(args) > 0 {
			inputs = []string{strings.Join(args, " ")}
		} else {
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				inputs = append(inputs, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, "failed to read stdin")
			}
		}
		return formatDescriptions(cmd.OutOrStdout(), inputs, display.ShouldOutputJSON(cmd))
	},
}

var bedEditCmd = &cobra.Command{
	Use:   "edit [text]",
	Short: "Edit a bed description interactively",
	Long: `Open an editing session on a bed description and read commands from stdin.

` + editor.Usage,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		readOnly, _ := cmd.Flags().GetBool("read-only")

		text := ""
		if len(args) > 0 {
			text = args[0]
		}
		store := newBedStore(cmd, cfg, text, len(args) == 0)
		view := editor.New(store, readOnly)

		final, err := runBedEditor(cmd.InOrStdin(), cmd.OutOrStdout(), view, cfg.GetPrompt())
		if err != nil {
			return err
		}
		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(cmd.OutOrStdout(), map[string]string{"bed": final})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", sym.Bed, final)
		return nil
	},
}

func init() {
	bedEditCmd.Flags().Bool("read-only", false, "Open the session read-only, as for system-synced rooms")

	BedCmd.AddCommand(bedParseCmd)
	BedCmd.AddCommand(bedFormatCmd)
	BedCmd.AddCommand(bedEditCmd)
}

// textArg joins args, or reads all of in when no args are given
func textArg(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", errors.Wrap(err, "failed to read stdin")
	}
	return strings.TrimSpace(string(data)), nil
}

// newBedStore opens a store using the configured id strategy and a session-scoped logger
func newBedStore(cmd *cobra.Command, cfg *am.Config, text string, empty bool) *bed.Store {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithSessionID(ctx, uuid.NewString())
	ctx = logger.WithComponent(ctx, "bed.store")
	opts := []bed.Option{
		bed.WithIDGenerator(bed.NewIDGenerator(bed.IDStrategy(cfg.GetIDStrategy()))),
		bed.WithLogger(logger.LoggerFromContext(ctx)),
	}
	if empty {
		return bed.NewEmptyStore(opts...)
	}
	return bed.NewStore(text, opts...)
}

type formatResult struct {
	Input string `json:"input"`
	Bed   string `json:"bed"`
}

func formatDescriptions(out io.Writer, inputs []string, jsonOutput bool) error {
	results := make([]formatResult, 0, len(inputs))
	for _, in := range inputs {
		results = append(results, formatResult{Input: in, Bed: bed.Normalize(in)})
	}
	if jsonOutput {
		return display.OutputJSON(out, results)
	}
	for _, r := range results {
		fmt.Fprintln(out, r.Bed)
	}
	return nil
}

// renderConfiguration prints the parsed structure as a tree
func renderConfiguration(out io.Writer, cfg *bed.Configuration) error {
	root := pterm.TreeNode{Text: sym.Bed + " " + bed.Serialize(cfg)}
	for gi, g := range cfg.Groups {
		group := pterm.TreeNode{Text: fmt.Sprintf("方案 %d [%s]", gi+1, g.ID)}
		for _, item := range g.Items {
			width := "-"
			if item.Width != "" {
				width = item.Width + sym.UnitMeter
			}
			group.Children = append(group.Children, pterm.TreeNode{
				Text: fmt.Sprintf("%s%s  %s  %s  [%s]", item.Count, sym.UnitBed, width, item.Type, item.ID),
			})
		}
		root.Children = append(root.Children, group)
	}

	s, err := pterm.DefaultTree.WithRoot(root).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render bed configuration")
	}
	_, err = fmt.Fprint(out, s)
	return err
}

// runBedEditor runs the command loop until quit or end of input and returns the final text
func runBedEditor(in io.Reader, out io.Writer, view *editor.View, prompt string) (string, error) {
	if err := view.Render(out); err != nil {
		return "", err
	}

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
			return view.Text(), nil
		case "help":
			fmt.Fprintln(out, editor.Usage)
			continue
		}

		action, err := editor.ParseLine(line)
		if err != nil {
			printError(out, err)
			continue
		}
		if err := applyBedAction(out, view, action); err != nil {
			printError(out, err)
		}
	}
	fmt.Fprintln(out)

	if err := scanner.Err(); err != nil {
		return view.Text(), errors.Wrap(err, "failed to read commands")
	}
	return view.Text(), nil
}

func applyBedAction(out io.Writer, view *editor.View, action editor.Action) error {
	switch action.Kind {
	case editor.ActionShow:
		return view.Render(out)
	case editor.ActionText:
		fmt.Fprintln(out, view.Text())
		return nil
	}
	text, err := view.Dispatch(action)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, text)
	return nil
}

// printError writes err and its hints without ending the session
func printError(out io.Writer, err error) {
	fmt.Fprintf(out, "%s %s\n", pterm.LightRed(sym.Warn), err.Error())
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(out, "  %s\n", pterm.Gray("hint: "+hint))
	}
}
