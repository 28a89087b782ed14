package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-i2p/go-padding/lib/vectors"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

var (
	passStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).PaddingLeft(6)
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [vectors.yaml]",
		Short: "Run padding vectors and report PASS or FAIL",
		Long: `Verify runs a YAML vector suite against the padding implementation.
Without a file the built-in reference suite is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				suite *vectors.Suite
				err   error
			)
			if len(args) == 1 {
				suite, err = vectors.LoadFile(args[0])
			} else {
				suite, err = vectors.Default()
			}
			if err != nil {
				return err
			}

			results := suite.Run()
			printResults(cmd.OutOrStdout(), suite.Name, results)

			if failed := vectors.Failed(results); failed > 0 {
				return oops.In("cli").
					With("suite", suite.Name).
					Errorf("%d of %d vectors failed", failed, len(results))
			}
			return nil
		},
	}
}

func printResults(w io.Writer, name string, results []vectors.Result) {
	for _, r := range results {
		if r.Passed {
			fmt.Fprintf(w, "%s  %s\n", passStyle.Render("PASS"), r.Name)
			continue
		}
		fmt.Fprintf(w, "%s  %s\n", failStyle.Render("FAIL"), r.Name)
		if r.Err != nil {
			fmt.Fprintln(w, detailStyle.Render("error: "+r.Err.Error()))
			continue
		}
		fmt.Fprintln(w, detailStyle.Render("want "+r.Want))
		fmt.Fprintln(w, detailStyle.Render("got  "+r.Got))
	}
	fmt.Fprintf(w, "%s: %d passed, %d failed\n", name, len(results)-vectors.Failed(results), vectors.Failed(results))
}
