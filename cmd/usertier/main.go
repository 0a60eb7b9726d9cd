package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/usertier/usertier/pkg/classifier"
	"github.com/usertier/usertier/pkg/logging"
	"github.com/usertier/usertier/pkg/tier"
)

var (
	version = "dev" // Will be set during build

	wordForm    bool
	strict      bool
	debug       bool
	showVersion bool
)

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

var rootCmd = &cobra.Command{
	Use:           "usertier",
	Short:         "Print the permission tier of the current user",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `usertier prints a one-character summary of the current user's
permission tier:

    #  absolute  root / administrator
    @  system    system service account
    $  user      ordinary user
    %  guest     guest or nobody
    ?  unknown   the tier could not be determined

The tier is a guess based on the UID ranges in /etc/login.defs (or the
account privilege level on Windows). It is informational only and must
not be used to gate privileged operations.

By default an error still prints the unknown tier before the process
exits non-zero; with --strict nothing is printed on error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("usertier %s\n", version)
			return nil
		}

		if debug {
			logging.Initialize(logging.LogLevelDebug)
		}

		if strict {
			t, err := classifier.Current()
			if err != nil {
				return err
			}
			printTier(cmd, t)
			return nil
		}

		// The degrade path logs the error itself; Unknown comes back
		// only when that happened, so it decides the exit status.
		t := classifier.CurrentOrUnknown()
		printTier(cmd, t)
		if t == tier.Unknown {
			os.Exit(1)
		}
		return nil
	},
}

func printTier(cmd *cobra.Command, t tier.Tier) {
	if wordForm {
		fmt.Fprintln(cmd.OutOrStdout(), t.String())
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%c\n", t.Byte())
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&wordForm, "word", "w", false, "print the tier as a word instead of a symbol")
	rootCmd.Flags().BoolVarP(&strict, "strict", "s", false, "print nothing on error instead of the unknown tier")
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "show version information")
}
