package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pistofo/jules-virtual-piano/chord"
	"github.com/pistofo/jules-virtual-piano/midi"
)

var analyzeFlats bool

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeFlats, "flats", false, "spell pitch classes with flats")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Prints the chord timeline of a MIDI file",
	Long:  `Prints the chord timeline of a MIDI file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			cobra.CheckErr(fmt.Errorf("need exactly 1 midi file path"))
		}
		analyze(args[0])
	},
}

func analyze(path string) {
	s, err := midi.ReadFile(path)
	cobra.CheckErr(err)

	for _, snapshot := range midi.Snapshots(s) {
		name, err := chord.Detect(midi.NoteNames(snapshot.Notes), analyzeFlats)
		cobra.CheckErr(err)
		seconds := float64(snapshot.OffsetMicros) / 1e6
		fmt.Printf("%9.3fs  %v\n", seconds, name)
	}
}
