package constants

import (
	"os"
	"strconv"
)

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetMidiPortNum() int {
	raw := os.Getenv("MIDI_PORT")
	if raw == "" {
		return 0
	}
	num, err := strconv.Atoi(raw)
	if err != nil {
		panic("MIDI_PORT must be a number, got: " + raw)
	}
	return num
}
