package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"doorforge/internal/relation"
	"doorforge/internal/server"
)

func newRelateCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var shuffleGroup string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "relate <slug>",
		Short: "Show related-product groups for a catalog product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := ctx.loadCatalog()
			if err != nil {
				return err
			}
			product, found := db.ProductBySlug(args[0])
			if !found {
				return fmt.Errorf("product %q not found in catalog", args[0])
			}

			engine := relation.NewEngine(limit)
			anchor := server.ToRelation(product, db.Categories)
			pool := server.ToRelationPool(db.Products, db.Categories)
			groups := engine.Groups(anchor, pool)

			if shuffleGroup != "" {
				rng := rand.New(rand.NewSource(time.Now().UnixNano()))
				shuffled := false
				for i := range groups {
					if groups[i].Title == shuffleGroup {
						groups[i] = groups[i].Shuffled(rng)
						shuffled = true
						break
					}
				}
				if !shuffled {
					return fmt.Errorf("no group titled %q", shuffleGroup)
				}
			}

			if jsonOut {
				return writeJSON(cmd, groups)
			}

			out := cmd.OutOrStdout()
			if len(groups) == 0 {
				fmt.Fprintln(out, "No related products found")
				return nil
			}
			for _, group := range groups {
				fmt.Fprintf(out, "%s (%s)\n", group.Title, group.Reason)
				rows := make([][]string, 0, len(group.Products))
				for _, related := range group.Products {
					price := ""
					if len(related.Variants) > 0 {
						price = strconv.FormatFloat(related.Variants[0].Price, 'f', 2, 64)
					}
					rows = append(rows, []string{related.ID, related.Title, related.Type, price})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Title", "Type", "Price"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
				))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", relation.DefaultLimit, "Maximum products per group")
	cmd.Flags().StringVar(&shuffleGroup, "shuffle", "", "Reorder the named group randomly")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit groups as JSON")
	return cmd
}
