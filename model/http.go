package model

type DetectRequestBody struct {
	Chords [][]string `json:"chords"`
	Flats  bool       `json:"flats"`
}

type DetectResult struct {
	Name string `json:"name"`
}

type DetectResponse struct {
	Results []DetectResult `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
