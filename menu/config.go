package menu

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

//go:embed menu.json
var defaultMenu []byte

// Load читает пункты меню из path; пустой path: встроенное меню.
func Load(path string) (Menu, error) {
	if path == "" {
		return decode(bytes.NewReader(defaultMenu))
	}
	f, err := os.Open(path)
	if err != nil {
		return Menu{}, err
	}
	defer f.Close()
	return decode(f)
}

func decode(r io.Reader) (Menu, error) {
	var items []Item
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return Menu{}, fmt.Errorf("decode menu: %w", err)
	}
	if len(items) == 0 {
		return Menu{}, fmt.Errorf("menu has no items")
	}
	return Menu{Items: items}, nil
}
