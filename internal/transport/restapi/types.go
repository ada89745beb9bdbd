package restapi

// Wire types for the term action API. Field names are part of the API
// contract; every response may carry an error message instead of a payload.

type errorEnvelope struct {
	Error string `json:"error,omitempty"`
}

type actionResponse struct {
	Error string `json:"error,omitempty"`
}

type setStatusRequest struct {
	Status int `json:"status"`
}

type quickCreateRequest struct {
	TextID   int `json:"textId"`
	Position int `json:"position"`
	Status   int `json:"status"`
}

type quickCreateResponse struct {
	TermID string `json:"termId"`
	Hex    string `json:"hex"`
	Error  string `json:"error,omitempty"`
}

type incrementRequest struct {
	Up bool `json:"up"`
}

type incrementResponse struct {
	Set       int    `json:"set"`
	Increment int    `json:"increment"`
	Error     string `json:"error,omitempty"`
}

type multiWordCreateRequest struct {
	TextID      int    `json:"textId"`
	Position    int    `json:"position"`
	Text        string `json:"text"`
	WordCount   int    `json:"wordCount"`
	Status      int    `json:"status"`
	Translation string `json:"translation,omitempty"`
}

type multiWordCreateResponse struct {
	TermID string `json:"termId"`
	TermLc string `json:"termLc"`
	Error  string `json:"error,omitempty"`
}

type multiWordUpdateRequest struct {
	Translation  *string `json:"translation,omitempty"`
	Romanization *string `json:"romanization,omitempty"`
	Status       *int    `json:"status,omitempty"`
}
