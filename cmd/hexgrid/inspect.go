package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohammed-shakir/hexgrid/pkg/h3"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <index>",
	Short: "Show the structure of a cell index",
	Example: `  hexgrid inspect 8a1fb46622dffff
  hexgrid inspect 8009fffffffffff`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	c, err := h3.ParseCell(args[0])
	if err != nil {
		return err
	}
	center := c.LatLng()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "index       %s\n", c)
	fmt.Fprintf(out, "resolution  %d\n", c.Resolution())
	fmt.Fprintf(out, "base cell   %d\n", c.Base())
	fmt.Fprintf(out, "pentagon    %v\n", c.IsPentagon())
	fmt.Fprintf(out, "center      %.6f, %.6f\n", center.LatDegrees(), center.LngDegrees())
	fmt.Fprintf(out, "avg area    %.6f km2\n", c.Resolution().AreaKm2())
	fmt.Fprintf(out, "avg edge    %.6f km\n", c.Resolution().EdgeLengthKm())
	return nil
}
