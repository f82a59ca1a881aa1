// Package store persists generated project bundles to disk. Persistence is
// a write-through convenience for the serving layer; the generation pipeline
// itself never touches it.
package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"weaver_ai_server/internal/types"
	"weaver_ai_server/internal/utils"
)

// SaveBundle writes every file record of a bundle under baseDir/projectID.
// Per-file failures are logged and skipped; an error is returned only when
// at least one file could not be written.
func SaveBundle(baseDir, projectID string, bundle *types.ProjectBundle) error {
	projectDir := filepath.Join(baseDir, projectID)

	saved := 0
	for _, record := range bundle.Files {
		fileType := record.FileType
		if fileType == "" {
			fileType = utils.DetermineFileType(record.Filename)
		}

		filePath := filepath.Join(projectDir, record.Filename)
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			log.Printf("Failed to create directory path for %s: %v", record.Filename, err)
			continue
		}
		if err := os.WriteFile(filePath, []byte(record.Content), 0o644); err != nil {
			log.Printf("Failed to write file %s: %v", filePath, err)
			continue
		}

		log.Printf("File saved: %s (%s)", filePath, fileType)
		saved++
	}

	log.Printf("Stored project %s: %d files written", projectID, saved)
	if saved != len(bundle.Files) {
		return fmt.Errorf("stored %d of %d files for project %s", saved, len(bundle.Files), projectID)
	}
	return nil
}
