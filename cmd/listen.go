package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/pistofo/jules-virtual-piano/chord"
	"github.com/pistofo/jules-virtual-piano/constants"
	"github.com/pistofo/jules-virtual-piano/midi"
	"github.com/pistofo/jules-virtual-piano/util"
)

var listenFlats bool

func init() {
	listenCmd.Flags().BoolVar(&listenFlats, "flats", false, "spell pitch classes with flats")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on a MIDI input live",
	Long:  `Names chords played on a MIDI input live`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(constants.GetMidiPortNum())
	if err != nil {
		fmt.Printf("can't find MIDI in port %v\n", constants.GetMidiPortNum())
		return
	}

	var mu sync.Mutex
	onNotes := make(map[uint8]bool)

	// a chord lands as a burst of events; wait for the burst to settle
	// before redetecting
	debounced := debounce.New(30 * time.Millisecond)
	show := func() {
		mu.Lock()
		notes := util.GetKeys(onNotes)
		mu.Unlock()
		sort.Slice(notes, func(i, j int) bool { return notes[i] < notes[j] })

		name, err := chord.Detect(midi.NoteNames(notes), listenFlats)
		if err != nil {
			fmt.Printf("ERROR: %v\n", err)
			return
		}
		if name == "" {
			name = "-"
		}
		fmt.Println(name)
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var channel uint8
		var key uint8
		var velocity uint8
		switch {
		case msg.GetNoteStart(&channel, &key, &velocity):
			mu.Lock()
			onNotes[key] = true
			mu.Unlock()
			debounced(show)
		case msg.GetNoteEnd(&channel, &key):
			mu.Lock()
			delete(onNotes, key)
			mu.Unlock()
			debounced(show)
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		return
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	stop()
}
