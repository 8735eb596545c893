package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions based on error category.
type SuggestionGenerator interface {
	Generate(category ErrorCategory, affectedPath string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

// suggestionGenerator is the concrete implementation of SuggestionGenerator.
type suggestionGenerator struct{}

// Generate returns actionable suggestions based on the error category and affected path.
func (g *suggestionGenerator) Generate(category ErrorCategory, affectedPath string) []string {
	switch category {
	case CategoryPermission:
		return g.generatePermissionSuggestions(affectedPath)
	case CategoryPath:
		return g.generatePathSuggestions(affectedPath)
	case CategoryDelete:
		return g.generateDeleteSuggestions(affectedPath)
	case CategoryUnknown:
		return g.generateUnknownSuggestions(affectedPath)
	default:
		return g.generateUnknownSuggestions(affectedPath)
	}
}

func (g *suggestionGenerator) generateDeleteSuggestions(path string) []string {
	suggestions := []string{
		"Check whether a process is still using the environment (an active shell, editor, or running interpreter)",
		"Deactivate the environment in any open terminal and retry",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("List contents with 'ls -la %s'", path))
	}

	return suggestions
}

func (g *suggestionGenerator) generatePathSuggestions(path string) []string {
	suggestions := []string{
		"The folder may have been removed by another process since the scan",
		"Re-run the scan to refresh the folder list",
	}

	if path != "" {
		suggestions = append(suggestions, "Verify the path still exists: "+path)
	}

	return suggestions
}

func (g *suggestionGenerator) generatePermissionSuggestions(path string) []string {
	suggestions := []string{}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check permissions with 'ls -la %s'", path))
		suggestions = append(suggestions, fmt.Sprintf("Take ownership with 'sudo chown -R $(whoami) %s'", path))
	} else {
		suggestions = append(suggestions, "Check the file and directory permissions")
	}

	suggestions = append(suggestions, "Run venv-sweep as a user with write access to the folder")

	return suggestions
}

func (g *suggestionGenerator) generateUnknownSuggestions(_ string) []string {
	return []string{
		"Try the operation again - this may be a transient I/O error",
		"Check system logs for filesystem or hardware issues",
		"Delete the folder manually to see the underlying error",
	}
}
