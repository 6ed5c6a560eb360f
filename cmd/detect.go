package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pistofo/jules-virtual-piano/chord"
)

var detectFlats bool

func init() {
	detectCmd.Flags().BoolVar(&detectFlats, "flats", false, "spell pitch classes with flats")
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect [notes...]",
	Short: "Names the chord formed by the given notes",
	Long:  `Names the chord formed by the given notes, e.g. detect C4 E4 G4`,
	Run: func(cmd *cobra.Command, args []string) {
		name, err := chord.Detect(args, detectFlats)
		cobra.CheckErr(err)
		if name == "" {
			return
		}
		fmt.Println(name)
	},
}
