package words

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/words.yaml
var defaultWordsYAML []byte

// Load loads the word list.
// Search order: customPath -> ~/.hangman/words.yaml -> ./words.yaml -> embedded default
func Load(customPath string) (List, error) {
	var list List

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return list, fmt.Errorf("failed to read word list %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &list); err != nil {
			return list, fmt.Errorf("failed to parse word list %s: %w", customPath, err)
		}
		if err := list.Normalize(); err != nil {
			return list, fmt.Errorf("invalid word list %s: %w", customPath, err)
		}
		return list, nil
	}

	// Try user config directory
	if userPath := userWordsPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &list); err == nil {
				if err := list.Normalize(); err == nil {
					return list, nil
				}
			}
		}
	}

	// Try local word list
	if data, err := os.ReadFile("words.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &list); err == nil {
			if err := list.Normalize(); err == nil {
				return list, nil
			}
		}
	}

	// Use embedded default
	if err := yaml.Unmarshal(defaultWordsYAML, &list); err != nil {
		return list, fmt.Errorf("failed to parse embedded word list: %w", err)
	}
	if err := list.Normalize(); err != nil {
		return list, fmt.Errorf("invalid embedded word list: %w", err)
	}
	return list, nil
}

// userWordsPath returns the path to the user word list, or empty if home is unavailable.
func userWordsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hangman", "words.yaml")
}
