package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"prepress/internal/manifest"
	"prepress/internal/preflight"
)

const (
	ansiReset = "\x1b[0m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Report manifest readiness and rewrite targets without writing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			titler := cases.Title(language.English)

			checks := preflight.RunAll(cfg.Manifest.Path)
			checkRows := make([][]string, 0, len(checks))
			for _, check := range checks {
				checkRows = append(checkRows, []string{
					check.Name,
					passFail(check.Passed, colorize),
					check.Detail,
				})
			}
			fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, checkRows))

			content, err := manifest.NewRewriter(cfg, nil).Read()
			if err != nil {
				// Access failure is already visible in the checks table.
				return nil
			}

			probes := manifest.Probes(content)
			probeRows := make([][]string, 0, len(probes))
			for _, probe := range probes {
				probeRows = append(probeRows, []string{
					titler.String(probe.Name),
					yesNo(probe.Present),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"Rewrite Target", "Present"}, probeRows, 1))
			return nil
		},
	}
}

func passFail(passed bool, colorize bool) string {
	if passed {
		if colorize {
			return ansiGreen + "pass" + ansiReset
		}
		return "pass"
	}
	if colorize {
		return ansiRed + "fail" + ansiReset
	}
	return "fail"
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
