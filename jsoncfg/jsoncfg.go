// Package jsoncfg provides helpers for working with JSON configuration files.
package jsoncfg

import (
	"encoding/json"
	"fmt"
	"os"
)

// Open decodes the JSON configuration file at path into v.
func Open(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	d := json.NewDecoder(f)
	d.DisallowUnknownFields()
	if err = d.Decode(v); err != nil {
		return fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	return nil
}

// Save encodes v as indented JSON and writes it to the file at path.
func Save(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	e := json.NewEncoder(f)
	e.SetIndent("", "    ")
	if err = e.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode config file %s: %w", path, err)
	}
	return f.Close()
}
