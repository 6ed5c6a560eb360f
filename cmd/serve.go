package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/pistofo/jules-virtual-piano/chord"
	"github.com/pistofo/jules-virtual-piano/constants"
	"github.com/pistofo/jules-virtual-piano/model"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves chord detection over HTTP",
	Long:  `Serves chord detection over HTTP for the on-screen keyboard`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleDetect(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "could not read request body")
		return
	}

	var input model.DetectRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, 400, "could not unmarshal request body: "+err.Error())
		return
	}

	results := make([]model.DetectResult, 0, len(input.Chords))
	for _, notes := range input.Chords {
		name, err := chord.Detect(notes, input.Flats)
		if err != nil {
			writeError(w, 400, err.Error())
			return
		}
		results = append(results, model.DetectResult{Name: name})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.DetectResponse{Results: results})
}

// requestID tags every response so the front end can correlate logs.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", uuid.New().String())
		next.ServeHTTP(w, r)
	})
}

func serve() {
	// force the one-time build before the first request arrives
	chord.Templates()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/detect", HandleDetect).Methods("POST")
	router.Use(requestID)

	handler := cors.Default().Handler(router)
	addr := ":" + constants.GetPort()
	fmt.Printf("Listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
