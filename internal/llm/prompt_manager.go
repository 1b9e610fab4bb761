package llm

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed prompts/*.prompt
var promptFiles embed.FS

// PromptKey names one embedded prompt template.
type PromptKey string

const (
	// ReviewSystemPrompt is the role statement sent as the system prompt,
	// parameterized by the pull-request title.
	ReviewSystemPrompt PromptKey = "review_system"
	// ReviewQuestionPrompt wraps a single file's content into the per-file
	// review instruction.
	ReviewQuestionPrompt PromptKey = "review_question"
)

// SystemPromptData feeds ReviewSystemPrompt.
type SystemPromptData struct {
	Title              string
	CustomInstructions []string
}

// QuestionPromptData feeds ReviewQuestionPrompt.
type QuestionPromptData struct {
	Content string
}

// PromptManager loads the embedded prompt templates and renders them on
// demand. Template keys are the file names without the .prompt extension.
type PromptManager struct {
	prompts map[PromptKey]*template.Template
}

func NewPromptManager() (*PromptManager, error) {
	pm := &PromptManager{
		prompts: make(map[PromptKey]*template.Template),
	}

	files, err := promptFiles.ReadDir("prompts")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded prompts directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		fileName := file.Name()
		key := PromptKey(strings.TrimSuffix(fileName, filepath.Ext(fileName)))

		content, err := promptFiles.ReadFile("prompts/" + fileName)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded prompt file %s: %w", fileName, err)
		}

		tmpl, err := template.New(string(key)).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("could not parse prompt template %s: %w", fileName, err)
		}
		pm.prompts[key] = tmpl
	}

	return pm, nil
}

func (pm *PromptManager) Render(key PromptKey, data any) (string, error) {
	tmpl, ok := pm.prompts[key]
	if !ok {
		return "", fmt.Errorf("no prompt found for key '%s'", key)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt template: %w", err)
	}
	return buf.String(), nil
}
