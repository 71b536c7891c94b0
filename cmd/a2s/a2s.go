// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package main

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/a2svg/a2svg"
)

const logo = `.-------------------------.
|                         |
| .---.-. .-----. .-----. |
| | .-. | +-->  | |  <--| |
| | '-' | |  <--| +-->  | |
| '---'-' '-----' '-----' |
|  ascii     2      svg   |
|                         |
'-------------------------'
`

type flags struct {
	in       string
	out      string
	noBlur   bool
	font     string
	scaleX   float64
	scaleY   float64
	tabWidth int
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:     "a2s",
		Short:   "Convert an ASCII diagram to SVG",
		Long:    logo + "\nConvert an ASCII diagram to SVG",
		Version: "2.0.0",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
	}

	pf := cmd.Flags()
	pf.StringVarP(&f.in, "in", "i", "-", `path to input text file, or "-" for stdin`)
	pf.StringVarP(&f.out, "out", "o", "-", `path to output SVG file, or "-" for stdout`)
	pf.BoolVarP(&f.noBlur, "no-blur", "b", false, "disable the drop-shadow blur filter")
	pf.StringVarP(&f.font, "font", "f", "", "font family to use (default: monospace)")
	pf.Float64VarP(&f.scaleX, "scale-x", "x", 9, "grid-to-SVG X scale, in user units per column")
	pf.Float64VarP(&f.scaleY, "scale-y", "y", 16, "grid-to-SVG Y scale, in user units per row")
	pf.IntVarP(&f.tabWidth, "tab-width", "t", 8, "tab width, in columns, for tab expansion")

	return cmd
}

func run(f *flags) error {
	input, err := readInput(f.in)
	if err != nil {
		return errors.Wrapf(err, "reading input %q", f.in)
	}

	scale := a2svg.NewScale(f.scaleX, f.scaleY)
	canvas := a2svg.Parse(input, scale, f.tabWidth)
	svg := a2svg.Render(canvas, a2svg.RenderOptions{
		FontFamily:        f.font,
		DisableDropShadow: f.noBlur,
	})

	if err := writeOutput(f.out, svg); err != nil {
		return errors.Wrapf(err, "writing output %q", f.out)
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return ioutil.ReadAll(os.Stdin)
	}
	return ioutil.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return ioutil.WriteFile(path, data, 0666)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("a2s failed")
		os.Exit(1)
	}
}
