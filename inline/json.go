// Package inline provides the application's non-interactive, programmable evaluation mode.
package inline

import (
	"encoding/json"
	"io"

	"github.com/xpslvs/stackr/word"
)

// Output is the structured result of an inline evaluation.
type Output struct {
	// Program is the evaluated source.
	Program string `json:"program"`
	// Capacity of the stack after evaluation.
	Capacity int `json:"capacity"`
	// Size is the number of live elements after evaluation.
	Size int `json:"size"`
	// Items are the live elements, bottom first.
	Items []float64 `json:"items"`
	// Error describes the failing token, if any.
	Error string `json:"error,omitempty"`
}

func asJson(program string, s *word.Stack, evalErr error) ([]byte, error) {
	output := &Output{
		Program:  program,
		Capacity: s.Cap(),
		Size:     s.Len(),
		Items:    s.Items(),
	}
	if evalErr != nil {
		output.Error = evalErr.Error()
	}
	return json.Marshal(output)
}

func writeJson(w io.Writer, program string, s *word.Stack, evalErr error) error {
	data, err := asJson(program, s, evalErr)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
