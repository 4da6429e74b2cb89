package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohammed-shakir/hexgrid/pkg/h3"
)

var parentCmd = &cobra.Command{
	Use:   "parent <index> <res>",
	Short: "Print the ancestor of a cell at a coarser resolution",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, res, err := cellAndRes(args)
		if err != nil {
			return err
		}
		p, ok := c.Parent(res)
		if !ok {
			return fmt.Errorf("%s has no parent at resolution %d", c, res)
		}
		fmt.Fprintln(cmd.OutOrStdout(), p)
		return nil
	},
}

var childrenCmd = &cobra.Command{
	Use:   "children <index> <res>",
	Short: "List the descendants of a cell at a finer resolution",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, res, err := cellAndRes(args)
		if err != nil {
			return err
		}
		if _, ok := c.ChildrenCount(res); !ok {
			return fmt.Errorf("%s has no children at resolution %d", c, res)
		}
		out := cmd.OutOrStdout()
		for child := range c.Children(res) {
			fmt.Fprintln(out, child)
		}
		return nil
	},
}

var neighborsCmd = &cobra.Command{
	Use:   "neighbors <index>",
	Short: "List the cells sharing an edge with a cell",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := h3.ParseCell(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, n := range c.Neighbors() {
			fmt.Fprintln(out, n)
		}
		return nil
	},
}

var latlngCmd = &cobra.Command{
	Use:     "latlng <lat> <lng> <res>",
	Short:   "Index a degree coordinate at a resolution",
	Example: `  hexgrid latlng 59.3293 18.0686 9`,
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var lat, lng float64
		if _, err := fmt.Sscanf(args[0], "%f", &lat); err != nil {
			return fmt.Errorf("lat: %w", err)
		}
		if _, err := fmt.Sscanf(args[1], "%f", &lng); err != nil {
			return fmt.Errorf("lng: %w", err)
		}
		res, err := parseRes(args[2])
		if err != nil {
			return err
		}
		ll, err := h3.NewLatLngDegrees(lat, lng)
		if err != nil {
			return err
		}
		c, err := h3.LatLngToCell(ll, res)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), c)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parentCmd, childrenCmd, neighborsCmd, latlngCmd)
}

func cellAndRes(args []string) (h3.Cell, h3.Resolution, error) {
	c, err := h3.ParseCell(args[0])
	if err != nil {
		return 0, 0, err
	}
	res, err := parseRes(args[1])
	if err != nil {
		return 0, 0, err
	}
	return c, res, nil
}

func parseRes(s string) (h3.Resolution, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, fmt.Errorf("res: %w", err)
	}
	return h3.NewResolution(n)
}
