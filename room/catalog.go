package room

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/teranos/innkeep/errors"
	"gopkg.in/yaml.v3"
)

// catalogFile is the document shape shared by every catalog format
type catalogFile struct {
	Rooms []Room `json:"rooms" yaml:"rooms" toml:"rooms"`
}

// LoadCatalog reads a room list from path. The format follows the extension:
// .yaml/.yml, .toml or .json, each holding a top-level "rooms" list.
func LoadCatalog(path string) ([]Room, error) {
	var doc catalogFile

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &doc); err != nil {
			return nil, errors.Wrapf(err, "failed to parse room catalog %s", path)
		}
	case ".yaml", ".yml", ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read room catalog %s", path)
		}
		if ext == ".json" {
			err = json.Unmarshal(data, &doc)
		} else {
			err = yaml.Unmarshal(data, &doc)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse room catalog %s", path)
		}
	default:
		return nil, errors.WithHint(
			errors.NewInvalidRequestError("unsupported room catalog format %q", ext),
			"use a .yaml, .toml or .json file")
	}

	for i := range doc.Rooms {
		if doc.Rooms[i].Source == "" {
			doc.Rooms[i].Source = SourceBusiness
		}
	}
	return doc.Rooms, nil
}

// FindByID returns the catalog room with the given id
func FindByID(catalog []Room, id int) (Room, error) {
	for _, r := range catalog {
		if r.ID == id {
			return r, nil
		}
	}
	return Room{}, errors.NewNotFoundError("room %d", id)
}
