package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/burrsolve/burrlog"
	"github.com/katalvlaran/burrsolve/burrsolvecfg"
	"github.com/katalvlaran/burrsolve/disassembler"
	"github.com/katalvlaran/burrsolve/puzzledef"
	"github.com/katalvlaran/burrsolve/separation"
)

// errNoFile is returned by runBurrsolve when no puzzle file was named on
// the command line; main maps it to exit code 1, mirroring burrTxt.cpp's
// "usage(); return 1" when filenumber stays zero.
var errNoFile = fmt.Errorf("burrsolve: no puzzle file given")

var (
	flagDisassemble bool
	flagPrintPlan   bool
	flagReduce      bool
	flagPrintAssm   bool
	flagQuiet       bool
	flagNoNewline   bool
	flagConfigPath  string
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "burrsolve [flags] <puzzle-file>",
		Short: "Disassembly analysis core for interlocking burr puzzles",
		Long: `burrsolve reads an already-assembled burr puzzle (shapes, pieces, and
their fixed starting placement) and searches for a sequence of
axis-aligned slides that takes the pieces apart.

It does not parse the legacy candidate-assembly XML format and does not
enumerate candidate assemblies itself (-r and -s are accepted for
command-line compatibility but are documented stubs): it operates on a
single already-placed assembly given as a YAML puzzle definition.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBurrsolve(cmd, args, stdout, stderr)
		},
	}

	cmd.Flags().BoolVarP(&flagDisassemble, "disassemble", "d", false, "attempt disassembly")
	cmd.Flags().BoolVarP(&flagPrintPlan, "print-plan", "p", false, "print the disassembly plan")
	cmd.Flags().BoolVarP(&flagReduce, "reduce", "r", false, "reduce placements before solving (not implemented: assembly reduction is out of scope)")
	cmd.Flags().BoolVarP(&flagPrintAssm, "print-assemblies", "s", false, "print assemblies (not implemented: assembly enumeration is out of scope)")
	cmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress -p and -s output")
	cmd.Flags().BoolVarP(&flagNoNewline, "no-newline", "n", false, "suppress the trailing newline on the summary line")
	cmd.Flags().StringVar(&flagConfigPath, "config", "", "path to a burrsolve config YAML file")

	return cmd
}

func runBurrsolve(cmd *cobra.Command, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintln(stderr, cmd.UsageString())
		return errNoFile
	}
	filePath := args[0]

	if flagQuiet {
		flagPrintPlan = false
		flagPrintAssm = false
	}

	cfg, err := burrsolvecfg.Load(flagConfigPath)
	if err != nil {
		return err
	}
	logger := burrlog.New(burrlog.ParseLevel(cfg.Log.Level), stderr)

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("burrsolve: reading %s: %w", filePath, err)
	}

	def, asm, err := puzzledef.Load(content)
	if err != nil {
		return err
	}
	logger.Info("loaded puzzle with %d pieces", def.PieceCount())

	if flagReduce {
		logger.Warn("-r (reduce placements) is not implemented: assembly reduction is out of scope for this core")
	}
	if flagPrintAssm {
		logger.Warn("-s (print assemblies) is not implemented: assembly enumeration is out of scope for this core")
	}

	if !flagDisassemble {
		fmt.Fprintln(stdout, "nothing to do: pass -d to attempt disassembly")
		return nil
	}

	sep, err := disassembler.Disassemble(asm, def, disassembler.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("burrsolve: disassembling: %w", err)
	}
	if sep == nil {
		fmt.Fprint(stdout, "no disassembly found")
		if !flagNoNewline {
			fmt.Fprintln(stdout)
		}
		return nil
	}

	if flagPrintPlan {
		data, err := separation.Save(sep)
		if err != nil {
			return fmt.Errorf("burrsolve: serialising separation: %w", err)
		}
		stdout.Write(data)
		fmt.Fprintln(stdout)
	}

	fmt.Fprintf(stdout, "disassembled in %d move(s)", sep.SumMoves())
	if !flagNoNewline {
		fmt.Fprintln(stdout)
	}
	return nil
}
