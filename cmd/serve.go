package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"

	"github.com/ecopsychologer/abc-tab-converter/abc"
	"github.com/ecopsychologer/abc-tab-converter/constants"
	"github.com/ecopsychologer/abc-tab-converter/library"
	"github.com/ecopsychologer/abc-tab-converter/model"
	"github.com/ecopsychologer/abc-tab-converter/pitch"
	"github.com/ecopsychologer/abc-tab-converter/song"
	"github.com/ecopsychologer/abc-tab-converter/tab"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var serveAddr string

// libMu serializes chord library writes; renderers work off snapshots so
// reads never block each other.
var libMu sync.Mutex

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the render API",
	Long:  `Serves the render API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func HandleListChords(w http.ResponseWriter, r *http.Request) {
	lib := library.Load(constants.GetChordsPath())
	writeJSON(w, http.StatusOK, lib.Chords)
}

func HandleAddChord(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "could not read request body")
		return
	}

	var input model.ChordEntry
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeErr(w, http.StatusBadRequest, "could not parse request body: "+err.Error())
		return
	}

	libMu.Lock()
	defer libMu.Unlock()
	lib := library.Load(constants.GetChordsPath())
	if err := lib.Add(input.Name, input.Shape); err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, input)
}

func HandleListSongs(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0)
	for _, s := range song.List(constants.GetSongsDir()) {
		names = append(names, s.Name)
	}
	writeJSON(w, http.StatusOK, names)
}

func HandleSongInfo(w http.ResponseWriter, r *http.Request) {
	info, err := songInfo(mux.Vars(r)["name"])
	if err != nil {
		writeErr(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func HandleSongMelody(w http.ResponseWriter, r *http.Request) {
	s := song.FromName(constants.GetSongsDir(), mux.Vars(r)["name"])
	text, err := s.ReadAbc()
	if err != nil {
		writeErr(w, http.StatusNotFound, err.Error())
		return
	}
	score := abc.Parse(text, s.Name)
	writeJSON(w, http.StatusOK, model.RenderResponse{
		Title: score.Title,
		Key:   score.Key,
		Tab:   tab.GenerateMelody(score, pitch.Standard, tab.DefaultBarsPerLine),
	})
}

func HandleSongTab(w http.ResponseWriter, r *http.Request) {
	s := song.FromName(constants.GetSongsDir(), mux.Vars(r)["name"])
	text, err := s.ReadAbc()
	if err != nil {
		writeErr(w, http.StatusNotFound, err.Error())
		return
	}
	score := abc.Parse(text, s.Name)
	lib := library.Load(constants.GetChordsPath())
	writeJSON(w, http.StatusOK, model.RenderResponse{
		Title: score.Title,
		Key:   score.Key,
		Tab:   tab.RenderChordTab(score.Tokens, s.LoadMapping(), lib.Snapshot()),
	})
}

// HandleRenderMelody renders ad hoc ABC text without storing anything.
func HandleRenderMelody(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "could not read request body")
		return
	}

	var input model.RenderRequest
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeErr(w, http.StatusBadRequest, "could not parse request body: "+err.Error())
		return
	}
	if input.Abc == "" {
		writeErr(w, http.StatusBadRequest, "abc text is required")
		return
	}

	score := abc.Parse(input.Abc, input.Title)
	writeJSON(w, http.StatusOK, model.RenderResponse{
		Title: score.Title,
		Key:   score.Key,
		Tab:   tab.GenerateMelody(score, pitch.Standard, tab.DefaultBarsPerLine),
	})
}

// NewRouter wires every API route. Split out from serve so tests can run
// requests through the real routing table.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/chords", HandleListChords).Methods("GET")
	router.HandleFunc("/chords", HandleAddChord).Methods("POST")
	router.HandleFunc("/songs", HandleListSongs).Methods("GET")
	router.HandleFunc("/songs/{name}", HandleSongInfo).Methods("GET")
	router.HandleFunc("/songs/{name}/melody", HandleSongMelody).Methods("GET")
	router.HandleFunc("/songs/{name}/tab", HandleSongTab).Methods("GET")
	router.HandleFunc("/render/melody", HandleRenderMelody).Methods("POST")
	return router
}

func serve() {
	fmt.Printf("Serving on %v\n", serveAddr)
	handler := cors.Default().Handler(NewRouter())
	log.Fatal(http.ListenAndServe(serveAddr, handler))
}
