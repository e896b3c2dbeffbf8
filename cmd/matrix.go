package cmd

import (
	"io"

	"github.com/spf13/cobra"
	builder "github.com/xplane-tools/xplconf/builder"
	"github.com/xplane-tools/xplconf/builder/emit"
)

// matrixCmd represents the matrix command
var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Document the configuration of every supported platform",
	Long: `matrix prints a Markdown comparison of the flags and libraries derived for
windows, macos and linux.  It does not need a target platform.  With --html
the document is rendered to XHTML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := load(cmd); err != nil {
			return err
		}
		b := builder.New(c.AcfutilsDir, c.SdkDir)
		doc := emit.Matrix(b)
		if c.Html {
			doc = emit.MatrixHTML(b)
		}
		w, closeOut, err := output(cmd, c.Output)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, doc)
		if cerr := closeOut(); err == nil {
			err = cerr
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(matrixCmd)

	addRootFlags(matrixCmd)
	matrixCmd.Flags().Bool("html", false, "render the matrix as XHTML")
	matrixCmd.Flags().String("output", "", "write to this file instead of stdout")
}
