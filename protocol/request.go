package protocol

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
)

// MethodCalculateHash is the only method the hasher serves.
const MethodCalculateHash = "calculateHash"

// DefaultAlgorithm is applied when params.algorithm is absent.
const DefaultAlgorithm = "sha256"

var (
	// ErrNoInput indicates that no request line could be read.
	ErrNoInput = errors.New("no input received")

	// ErrMalformedRequest indicates that the request line is
	// not valid JSON or lacks a required field.
	ErrMalformedRequest = errors.New("failed to parse input")
)

// Request is a single hasher invocation.
type Request struct {
	Method string
	Params Params
}

// Params are the arguments of a calculateHash request.
type Params struct {
	Path      string
	Algorithm string
}

// wireRequest mirrors Request with pointers so that absent
// required fields can be told apart from empty ones.
type wireRequest struct {
	Method *string     `json:"method"`
	Params *wireParams `json:"params"`
}

type wireParams struct {
	Path      *string `json:"path"`
	Algorithm *string `json:"algorithm"`
}

// ReadRequest reads exactly one line from r and decodes it.
// It returns ErrNoInput when r yields no bytes and wraps
// ErrMalformedRequest around any decoding failure.
func ReadRequest(r io.Reader) (Request, error) {
	line, err := readLine(r)
	if err != nil {
		return Request{}, err
	}

	return ParseRequest(line)
}

// ParseRequest decodes one request line. Unknown fields are
// ignored.
func ParseRequest(line []byte) (Request, error) {
	var wr wireRequest

	if len(bytes.TrimSpace(line)) == 0 {
		return Request{}, fmt.Errorf(
			"%w: empty request line", ErrMalformedRequest,
		)
	}

	if err := json.Unmarshal(line, &wr); err != nil {
		return Request{}, fmt.Errorf(
			"%w: %w", ErrMalformedRequest, err,
		)
	}

	switch {
	case wr.Method == nil:
		return Request{}, missingField("method")
	case wr.Params == nil:
		return Request{}, missingField("params")
	case wr.Params.Path == nil:
		return Request{}, missingField("path")
	}

	req := Request{
		Method: *wr.Method,
		Params: Params{
			Path:      *wr.Params.Path,
			Algorithm: DefaultAlgorithm,
		},
	}

	if wr.Params.Algorithm != nil {
		req.Params.Algorithm = *wr.Params.Algorithm
	}

	return req, nil
}

func missingField(name string) error {
	return fmt.Errorf(
		"%w: missing field `%s`", ErrMalformedRequest, name,
	)
}

// readLine returns the first line of r without its line
// terminator. Bytes past the first newline are never consumed
// by the caller's decoding.
func readLine(r io.Reader) ([]byte, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	line, err := br.ReadString('\n')
	if line == "" && err != nil {
		return nil, ErrNoInput
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return []byte(line), nil
}
