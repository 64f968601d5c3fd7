package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"vocabsearch/internal/loader"
)

var versionRemote string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the program version, and optionally a server's vocabulary version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "vocabsearch %s\n", Version)
		if versionRemote == "" {
			return nil
		}
		v, err := loader.NewHTTPSource(versionRemote).Version(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "vocabulary %s (%s)\n", v, versionRemote)
		return nil
	},
}

func init() {
	versionCmd.Flags().StringVar(&versionRemote, "remote", "", "also print the vocabulary version of this server")
}
