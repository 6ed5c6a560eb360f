package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jules-virtual-piano",
	Short: "Virtual piano chord engine",
	Long:  `Names the chord formed by whatever notes are currently held down.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
