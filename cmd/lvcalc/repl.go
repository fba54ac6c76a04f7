package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvcalc/session"
	"github.com/spf13/cobra"
)

const replHelp = `One key per line. Lines starting with ":" are commands:
  :mode NAME   switch to arithmetic, geometry, equations or calculus
  :state       show the session state
  :help        show this text
  :quit        leave`

func (a *app) replCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Drive a calculator mode key by key",
		Long:  "Reads keys from standard input and prints the display after each one.\n\n" + replHelp,
		Example: "  printf 'quadratic\\n1,-3,2\\n=\\n' | lvcalc repl --mode equations\n" +
			"  printf 'integral\\nf=x^2\\nlower=0\\nupper=1\\n=\\n' | lvcalc repl --mode calculus",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := session.ParseMode(mode)
			if err != nil {
				return err
			}

			return a.repl(m, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(session.ModeArithmetic), "Calculator mode")

	return cmd
}

func (a *app) repl(mode session.Mode, in io.Reader, out io.Writer) error {
	s, err := session.New(mode, a.cfg.SessionEnv(a.log))
	if err != nil {
		return err
	}
	a.log.WithField("session", s.ID()).Debug("repl started")

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			cmd, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
			switch cmd {
			case "quit", "q", "exit":
				return nil
			case "help":
				fmt.Fprintln(out, replHelp)
			case "state":
				fmt.Fprintf(out, "%s %s\n", s.Mode(), s.State())
			case "mode":
				m, err := session.ParseMode(arg)
				if err != nil {
					fmt.Fprintln(out, err)

					continue
				}
				if s, err = session.New(m, a.cfg.SessionEnv(a.log)); err != nil {
					return err
				}
				fmt.Fprintln(out, s.Display())
			default:
				fmt.Fprintf(out, "unknown command %q\n", cmd)
			}

			continue
		}

		if err := s.Press(line); err != nil {
			fmt.Fprintln(out, err)

			continue
		}
		fmt.Fprintln(out, s.Display())
	}

	return sc.Err()
}
