package note

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/obsidian-link/obsidian-link/filesystem"
	"github.com/obsidian-link/obsidian-link/util"
)

// Write composes the note document and writes it into the vault, creating
// the destination folder as needed. An existing note at the same path is
// truncated. It returns the path of the written file.
func Write(vault, folder, title, frontmatter, embed, description string) (string, error) {
	root, err := util.ExpandHome(vault)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(root, folder)
	if err := filesystem.API().MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create note folder %s: %w", dir, err)
	}

	path := filepath.Join(dir, util.SanitizeFilename(title)+".md")
	content := frontmatter + "\n" + embed + "\n\n## Description\n" + description

	if err := filesystem.API().WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write note %s: %w", path, err)
	}

	return path, nil
}
