package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/francoispqt/gojay"
)

// stringArray decodes a JSON array of strings
type stringArray []string

// UnmarshalJSONArray implements gojay.UnmarshalerJSONArray
func (a *stringArray) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var value string
	if err := dec.String(&value); err != nil {
		return err
	}
	*a = append(*a, value)
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func readJSON(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var values stringArray
	if err := gojay.UnmarshalJSONArray(data, &values); err != nil {
		return nil, fmt.Errorf("invalid JSON array: %w", err)
	}
	return values, nil
}
