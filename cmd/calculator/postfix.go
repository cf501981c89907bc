package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator"
)

func newPostfixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "postfix [expr...]",
		Short: "Print expressions converted to postfix form",
		Long:  `Converts each infix expression to postfix (reverse Polish) form without evaluating it.`,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exprs, err := a.inputs(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failed := 0
			for _, src := range exprs {
				s, err := calculator.ToPostfix(src, a.cfg.Options()...)
				if err != nil {
					failed++
					a.log.Debug("conversion failed", "expr", src, "err", err)
					fmt.Fprintln(out, err)
					continue
				}
				a.log.Debug("converted", "expr", src, "postfix", s)
				fmt.Fprintln(out, s)
			}
			return failures(failed, len(exprs))
		},
	}
}
