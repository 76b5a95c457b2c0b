package configs

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/PolarWolf314/pageseal/internal/utils"
)

// SaveTOML encodes data as TOML and writes it atomically, creating parent
// directories.
func SaveTOML(filePath string, data any) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(data); err != nil {
		return fmt.Errorf("encoding %s: %w", filePath, err)
	}
	return utils.WriteFileAtomic(filePath, buf.Bytes(), 0644)
}

// LoadTOML decodes a TOML file into data. Keys missing from the file leave
// the corresponding fields untouched. Keys with no matching field are an
// error.
func LoadTOML(filePath string, data any) error {
	meta, err := toml.DecodeFile(filePath, data)
	if err != nil {
		return err
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	return nil
}
