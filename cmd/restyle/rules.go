package main

import (
	"github.com/spf13/cobra"
	"github.com/yacobolo/restyle"
	"github.com/yacobolo/restyle/internal/report"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the built-in rules in the order they are applied",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		color := getBoolWithFallback("color", "color", false)
		reporter := report.NewReporter(cmd.OutOrStdout(), report.ShouldUseColors(cmd.OutOrStdout(), color))
		reporter.PrintRules(ruleRows(restyle.DefaultRuleGroups()))
		return nil
	},
}

// ruleRows flattens rule groups into display rows, preserving order.
func ruleRows(groups []restyle.RuleGroup) []report.RuleRow {
	var rows []report.RuleRow
	for _, g := range groups {
		for _, r := range g.Rules {
			rows = append(rows, report.RuleRow{
				Group:       g.Name,
				Kind:        string(r.Kind()),
				Match:       r.Match(),
				Replacement: r.Replacement(),
			})
		}
	}
	return rows
}
