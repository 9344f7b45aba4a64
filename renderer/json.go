package renderer

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONRenderer renders words in JSON format, one record per instruction.
type JSONRenderer struct{}

func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

type jsonWord struct {
	Address int    `json:"address"`
	Binary  string `json:"binary"`
}

func (r *JSONRenderer) Render(words []uint16, output io.Writer) error {
	records := make([]jsonWord, len(words))
	for i, word := range words {
		records[i] = jsonWord{Address: i, Binary: fmt.Sprintf("%016b", word)}
	}
	return json.NewEncoder(output).Encode(records)
}

func (r *JSONRenderer) Format() string {
	return "json"
}
