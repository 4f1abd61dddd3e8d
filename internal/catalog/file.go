package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jask/maintstock/internal/inventory"
)

type fileItem struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	Category string `toml:"category"`
	Stock    int    `toml:"stock"`
	MinStock int    `toml:"min_stock"`
	Unit     string `toml:"unit"`
}

type file struct {
	Items []fileItem `toml:"item"`
}

// Load returns the items in path, or Defaults when path is empty.
func Load(path string) ([]inventory.Item, error) {
	if strings.TrimSpace(path) == "" {
		return Defaults(), nil
	}
	return LoadFile(path)
}

// LoadFile decodes a catalog of [[item]] tables.
//
//	[[item]]
//	id = "M-001"
//	name = "Ball Bearing 6205"
//	category = "Mechanic"
//	stock = 45
//	min_stock = 10
//	unit = "pcs"
func LoadFile(path string) ([]inventory.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode catalog %s: unknown key %s", path, undecoded[0])
	}
	if len(f.Items) == 0 {
		return nil, fmt.Errorf("catalog %s has no items", path)
	}

	out := make([]inventory.Item, 0, len(f.Items))
	for idx, fi := range f.Items {
		cat, err := inventory.ParseCategory(fi.Category)
		if err != nil {
			return nil, fmt.Errorf("catalog %s item %d: %w", path, idx+1, err)
		}
		out = append(out, inventory.Item{
			ID:       strings.TrimSpace(fi.ID),
			Name:     strings.TrimSpace(fi.Name),
			Category: cat,
			Stock:    fi.Stock,
			MinStock: fi.MinStock,
			Unit:     strings.TrimSpace(fi.Unit),
		})
	}
	return out, nil
}
