package vocab

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// configDirOverride holds a user-specified configuration directory.
// When empty, the default $HOME/.linkedart is used.
var configDirOverride string

// SetConfigDir overrides the default configuration directory.
func SetConfigDir(dir string) {
	configDirOverride = dir
}

// ConfigDir returns the linkedart configuration directory.
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".linkedart"), nil
}

// TablesDir returns the directory holding user vocabulary tables.
func TablesDir() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "vocab"), nil
}

// TablePath returns the path for a user table file.
func TablePath(name string) (string, error) {
	dir, err := TablesDir()
	if err != nil {
		return "", err
	}
	name = strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	return filepath.Join(dir, name+".yaml"), nil
}

// Save writes the table to the user tables directory under its name.
func (t *Table) Save() error {
	if t.Name == "" {
		return fmt.Errorf("saving vocabulary table: table has no name")
	}
	dir, err := TablesDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating vocabulary directory: %w", err)
	}

	path, err := TablePath(t.Name)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshaling vocabulary table: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing vocabulary table: %w", err)
	}
	return nil
}

// LoadUser reads a named table from the user tables directory and layers it
// over the bundled table, so a user table only needs the entries it changes.
func LoadUser(name string) (*Table, error) {
	path, err := TablePath(name)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("vocabulary table %q not found", name)
	}
	custom, err := Load(path)
	if err != nil {
		return nil, err
	}
	if custom.Name == "" {
		custom.Name = name
	}
	return Merge(Default(), custom), nil
}

// ListUser returns the names of the tables in the user tables directory.
func ListUser() ([]string, error) {
	dir, err := TablesDir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading vocabulary directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			names = append(names, strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml"))
		}
	}
	return names, nil
}
