package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/mirror"
)

func newToneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tone <#RRGGBB | R G B>",
		Short: "Classify a skin colour and recommend lipstick shades",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColorArgs(args)
			if err != nil {
				return err
			}
			printAnalysis(cmd.OutOrStdout(), mirror.AnalyzeSkinTone(c))
			return nil
		},
	}
}

func parseColorArgs(args []string) (mirror.RGB, error) {
	switch len(args) {
	case 1:
		c, ok := mirror.ParseHex(args[0])
		if !ok {
			return mirror.RGB{}, fmt.Errorf("%w: bad colour %q", mirror.ErrInvalidConfig, args[0])
		}
		return c, nil
	case 3:
		var ch [3]uint8
		for i, a := range args {
			n, err := strconv.ParseUint(a, 10, 8)
			if err != nil {
				return mirror.RGB{}, fmt.Errorf("%w: channel %q: %w", mirror.ErrInvalidConfig, a, err)
			}
			ch[i] = uint8(n)
		}
		return mirror.RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
	default:
		return mirror.RGB{}, fmt.Errorf("%w: want a hex colour or three channels", mirror.ErrInvalidConfig)
	}
}

func printAnalysis(w io.Writer, a mirror.SkinAnalysis) {
	fmt.Fprintf(w, "colour:    %s\n", a.DominantColor())
	fmt.Fprintf(w, "tone:      %s\n", a.Tone)
	fmt.Fprintf(w, "undertone: %s\n", a.Undertone)
	fmt.Fprintln(w, "recommended lipsticks:")
	for _, s := range mirror.RecommendedShades(a) {
		fmt.Fprintf(w, "  %-14s %s\n", s.Name, s.Color)
	}
}

func newLooksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "looks",
		Short: "List the built-in looks",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, l := range mirror.Looks {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", l.Name, l.Description)
			}
		},
	}
}
