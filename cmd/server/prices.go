package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yuzvak/nhh-storefront/internal/domain/pricing"
	"github.com/yuzvak/nhh-storefront/internal/infrastructure/catalogsource"
)

var pricesCmd = &cobra.Command{
	Use:   "prices [page.html]",
	Short: "Scan a catalog page and print the synthesized shelf prices",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPrices,
}

func runPrices(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		path = cfg.Storefront.CatalogPage
	}

	c, err := catalogsource.ScanFile(path, pricing.DefaultTable())
	if err != nil {
		return fmt.Errorf("scan %s: %w", path, err)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SUBCATEGORY\tPOSITION\tPRODUCT\tPRICE")
	for _, p := range c.Products() {
		fmt.Fprintf(tw, "%s\t%d/%d\t%s\t%s\n", p.Subcategory, p.Index+1, p.Count, p.Name, pricing.Format(p.Price))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d products\n", c.Len())
	return nil
}
