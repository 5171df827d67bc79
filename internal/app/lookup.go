package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"shoplist/internal/domain"
	"shoplist/internal/interpreter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
)

type interpretation struct {
	Intent domain.Intent `json:"intent"`
	Result domain.Result `json:"result"`
	Reason string        `json:"reason,omitempty"`
}

func interpretCmd(rt *runtime) *cobra.Command {
	var product string
	var listSize int
	cmd := &cobra.Command{
		Use:   "interpret <utterance...>",
		Short: "Interpret one utterance and print the result as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := interpreter.New(rt.catalog)
			result := in.Interpret(strings.Join(args, " "), interpreter.Context{
				CurrentProduct: product,
				ListSize:       listSize,
			})

			payload := interpretation{Intent: result.Intent(), Result: result}
			if u, ok := result.(domain.Unrecognized); ok && u.Reason != nil {
				payload.Reason = u.Reason.Error()
			}
			enc := json.NewEncoder(rt.out)
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		},
	}
	cmd.Flags().StringVar(&product, "product", "", "product currently being viewed")
	cmd.Flags().IntVar(&listSize, "list-size", 0, "number of items on the list")
	return cmd
}

func categorizeCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "categorize <name...>",
		Short: "Print the category of each item name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				fmt.Fprintf(rt.out, "%s: %s\n", name, rt.catalog.Categorize(name))
			}
			return nil
		},
	}
}

func substitutesCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "substitutes <item>",
		Short: "Print known substitutes for an item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := strings.Join(args, " ")
			subs := rt.catalog.Substitutes(item)
			if len(subs) == 0 {
				fmt.Fprintf(rt.out, "No substitutes for %s\n", item)
				return nil
			}
			fmt.Fprintf(rt.out, "%s: %s\n", item, strings.Join(subs, ", "))
			return nil
		},
	}
}

func catalogCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the categories, seasonal items and products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title := cases.Title(rt.cfg.LanguageTag)

			fmt.Fprintln(rt.out, "Categories:")
			for _, cat := range rt.catalog.Categories() {
				fmt.Fprintf(rt.out, "  %s: %s\n", title.String(cat.String()), strings.Join(rt.catalog.Keywords(cat), ", "))
			}
			fmt.Fprintf(rt.out, "Seasonal: %s\n", strings.Join(rt.catalog.Seasonal(), ", "))
			fmt.Fprintln(rt.out, "Products:")
			for _, p := range rt.catalog.Products() {
				fmt.Fprintf(rt.out, "  %s: %s\n", title.String(p.Name), interpreter.FormatDetails(p.Details))
			}
			return nil
		},
	}
}
