package circuit

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/gatexray/pkg/errors"
)

// Catalog file formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// catalogFile is the on-disk catalog document.
//
// TOML:
//
//	[[gate]]
//	id = "AND"
//	fill = "lightblue"
//	icon = "&"
//
// YAML:
//
//	gates:
//	  - id: AND
//	    fill: lightblue
//	    icon: "&"
type catalogFile struct {
	Gates []GateType `toml:"gate" yaml:"gates"`
}

// FormatFromPath infers the catalog format from a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported catalog file %q (want .toml, .yaml or .yml)", filepath.Base(path))
}

// ReadCatalog decodes a catalog document in the given format.
func ReadCatalog(r io.Reader, format string) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "read catalog")
	}

	var doc catalogFile
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode TOML catalog")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode YAML catalog")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported catalog format %q", format)
	}

	if len(doc.Gates) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "catalog defines no gates")
	}
	return NewCatalog(doc.Gates...)
}

// LoadCatalog reads a catalog file, picking the decoder from its extension.
func LoadCatalog(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "open catalog %s", path)
	}
	defer f.Close()

	return ReadCatalog(f, format)
}

// WriteCatalog encodes c in the given format.
func WriteCatalog(w io.Writer, c *Catalog, format string) error {
	doc := catalogFile{Gates: c.Entries()}
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported catalog format %q", format)
}
